package huffman

import (
	"bytes"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/icza/bitio"
)

// packBits packs a string of '0' and '1' characters (spaces ignored) into
// bytes, most significant bit first, padding the last byte with zeros.
func packBits(t *testing.T, str string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	for _, ch := range strings.ReplaceAll(str, " ", "") {
		if err := w.WriteBool(ch == '1'); err != nil {
			t.Fatalf("WriteBool failed: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	return buf.Bytes()
}

// stringBits is a BitReader over a string of '0' and '1' characters with no
// padding, so tests can end a stream on any bit.
type stringBits struct {
	bits string
}

func newStringBits(str string) *stringBits {
	return &stringBits{bits: strings.ReplaceAll(str, " ", "")}
}

func (r *stringBits) ReadBits(n uint8) (uint64, error) {
	if int(n) > len(r.bits) {
		r.bits = ""
		return 0, io.EOF
	}
	u, err := strconv.ParseUint(r.bits[:n], 2, 64)
	if err != nil {
		return 0, err
	}
	r.bits = r.bits[n:]
	return u, nil
}

var _ BitReader = (*stringBits)(nil)

// shape renders a tree as nested parentheses of leaf symbols.
func shape(n Node) string {
	switch x := n.(type) {
	case *Leaf:
		return strconv.Itoa(int(x.Symbol))
	case *Internal:
		return "(" + shape(x.Left) + " " + shape(x.Right) + ")"
	default:
		return "?"
	}
}

func freqOf(data []byte) FrequencyTable {
	freq, err := CountFrequencies(bytes.NewReader(data))
	if err != nil {
		panic(err)
	}
	return freq
}
