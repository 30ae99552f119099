package huffman

import (
	"errors"
	"fmt"
)

// ErrMalformedStream is returned (wrapped) when a compressed stream ends
// before its tree header or its payload is complete, or when the header does
// not describe a tree this package could have written.
var ErrMalformedStream = errors.New("huffman: malformed stream")

// FormatError is returned when a stream does not start with Magic.
type FormatError struct {
	// Magic holds the 32 bits actually found at the start of the stream.
	Magic uint32
}

// Error fulfills the error interface.
func (e *FormatError) Error() string {
	return fmt.Sprintf("huffman: not a compressed stream: magic number is %#08x, expected %#08x", e.Magic, Magic)
}

var _ error = (*FormatError)(nil)

func malformedf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrMalformedStream}, args...)...)
}
