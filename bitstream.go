package huffman

import (
	"errors"
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// BitReader reads unsigned values of up to 64 bits, most significant bit
// first.  *bitio.Reader implements it.
//
// ReadBits must return io.EOF or io.ErrUnexpectedEOF once the underlying
// stream cannot supply all n bits.
type BitReader interface {
	ReadBits(n uint8) (uint64, error)
}

// BitWriter writes the n low bits of a value, most significant bit first.
// *bitio.Writer implements it.
type BitWriter interface {
	WriteBits(r uint64, n uint8) error
}

var (
	_ BitReader = (*bitio.Reader)(nil)
	_ BitWriter = (*bitio.Writer)(nil)
)

// readBits reads n bits from r, reporting exhaustion as ErrMalformedStream.
// The what argument names the thing being read, for the error message.
func readBits(r BitReader, n uint8, what string) (uint64, error) {
	u, err := r.ReadBits(n)
	if err == nil {
		return u, nil
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return 0, malformedf("stream ended while reading %s", what)
	}
	return 0, fmt.Errorf("huffman: failed to read %s: %w", what, err)
}
