package huffman

import (
	"fmt"
	"io"
)

// FrequencyTable holds the number of occurrences of each Symbol in an input.
// The EOF entry is always 1.
type FrequencyTable [NumSymbols]uint64

// CountFrequencies reads r to the end and tallies each byte.  An empty input
// yields a table in which only EOF is non-zero.
func CountFrequencies(r io.Reader) (FrequencyTable, error) {
	var freq FrequencyTable
	freq[EOF] = 1

	buf := make([]byte, 32*1024)
	for {
		n, err := r.Read(buf)
		for _, b := range buf[:n] {
			freq[b]++
		}
		if err == io.EOF {
			return freq, nil
		}
		if err != nil {
			return freq, fmt.Errorf("huffman: failed to read input: %w", err)
		}
	}
}

// Len returns the number of input bytes that were counted, i.e. the sum of
// all entries except EOF.
func (freq *FrequencyTable) Len() uint64 {
	var sum uint64
	for symbol := Symbol(0); symbol < EOF; symbol++ {
		sum += freq[symbol]
	}
	return sum
}

// NumPresent returns the number of symbols with a non-zero count, EOF
// included.
func (freq *FrequencyTable) NumPresent() int {
	var n int
	for _, count := range freq {
		if count != 0 {
			n++
		}
	}
	return n
}
