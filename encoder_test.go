package huffman

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeTable_Dump(t *testing.T) {
	var freq FrequencyTable
	copy(freq[:], []uint64{5, 9, 12, 13, 16, 45})
	freq[EOF] = 1

	table := NewCodeTable(BuildTree(&freq))

	expectDump := strings.Join([]string{
		"CodeTable{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 5\n",
		"\tEncode(0) = \"11001\"\n",
		"\tEncode(1) = \"1101\"\n",
		"\tEncode(2) = \"100\"\n",
		"\tEncode(3) = \"101\"\n",
		"\tEncode(4) = \"111\"\n",
		"\tEncode(5) = \"0\"\n",
		"\tEncode(256) = \"11000\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = table.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestBuildTree_ThreeAOneB(t *testing.T) {
	freq := freqOf([]byte{0x41, 0x41, 0x41, 0x42})
	require.Equal(t, uint64(3), freq['A'])
	require.Equal(t, uint64(1), freq['B'])
	require.Equal(t, uint64(1), freq[EOF])
	require.Equal(t, 3, freq.NumPresent())

	root := BuildTree(&freq)
	// B and EOF (both weight 1) merge first, B on the left.
	assert.Equal(t, "((66 256) 65)", shape(root))
	assert.Equal(t, uint64(5), root.Weight())

	table := NewCodeTable(root)
	assert.Equal(t, `"1"`, table.Encode('A').String())
	assert.Equal(t, `"00"`, table.Encode('B').String())
	assert.Equal(t, `"01"`, table.Encode(EOF).String())
	assert.Equal(t, uint16(0), table.Encode('C').Size)
	assert.Equal(t, uint16(1), table.MinSize())
	assert.Equal(t, uint16(2), table.MaxSize())
}

func TestBuildTree_Empty(t *testing.T) {
	freq := freqOf(nil)
	root := BuildTree(&freq)

	leaf, ok := root.(*Leaf)
	require.True(t, ok, "expected a lone leaf, got %s", shape(root))
	assert.Equal(t, EOF, leaf.Symbol)

	table := NewCodeTable(root)
	assert.Equal(t, `"0"`, table.Encode(EOF).String())
	assert.Equal(t, uint16(1), table.MinSize())
	assert.Equal(t, uint16(1), table.MaxSize())
}

func TestBuildTree_SingleDistinctByte(t *testing.T) {
	freq := freqOf([]byte("zzzzzz"))
	root := BuildTree(&freq)
	assert.Equal(t, "(256 122)", shape(root))

	table := NewCodeTable(root)
	assert.Equal(t, `"0"`, table.Encode(EOF).String())
	assert.Equal(t, `"1"`, table.Encode('z').String())
}

func TestBuildTree_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	data := make([]byte, 4096)
	for i := range data {
		data[i] = byte(rng.Intn(16))
	}
	freq := freqOf(data)

	first := shape(BuildTree(&freq))
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, shape(BuildTree(&freq)))
	}
}

func TestCodeTable_PrefixFree(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 20; round++ {
		var freq FrequencyTable
		freq[EOF] = 1
		for symbol := 0; symbol < 256; symbol++ {
			if rng.Intn(3) != 0 {
				freq[symbol] = uint64(rng.Intn(1000))
			}
		}

		table := NewCodeTable(BuildTree(&freq))
		var present []Symbol
		for symbol := Symbol(0); symbol < NumSymbols; symbol++ {
			if freq[symbol] != 0 {
				present = append(present, symbol)
				require.NotZero(t, table.Encode(symbol).Size, "symbol %d has no code", symbol)
			} else {
				require.Zero(t, table.Encode(symbol).Size, "absent symbol %d has a code", symbol)
			}
		}

		for _, a := range present {
			for _, b := range present {
				if a == b {
					continue
				}
				ca, cb := table.Encode(a), table.Encode(b)
				require.False(t, ca.HasPrefix(cb), "round %d: code %s of %d starts with code %s of %d", round, ca, a, cb, b)
			}
		}
	}
}

func TestCodeTable_Fibonacci(t *testing.T) {
	// EOF plus Fibonacci weights produce the most skewed tree possible.
	var freq FrequencyTable
	freq[EOF] = 1
	a, b := uint64(1), uint64(2)
	for symbol := 0; symbol < 40; symbol++ {
		freq[symbol] = a
		a, b = b, a+b
	}

	table := NewCodeTable(BuildTree(&freq))
	assert.Equal(t, uint16(1), table.MinSize())
	assert.Equal(t, uint16(40), table.MaxSize())
	assert.Equal(t, `"0"`, table.Encode(39).String())
	assert.Equal(t, `"`+strings.Repeat("1", 39)+`0"`, table.Encode(0).String())
	assert.Equal(t, `"`+strings.Repeat("1", 40)+`"`, table.Encode(EOF).String())
}
