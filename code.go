package huffman

import (
	"fmt"
	"strconv"
	"strings"
)

const codeWords = (MaxCodeSize + 63) / 64

// Code represents a sequence of bits: the path from the root of a Huffman
// tree to one of its leaves, where 0 means "left" and 1 means "right".
type Code struct {
	// Size holds the number of valid bits.
	Size uint16

	// Bits holds the actual values of the bits, packed most significant
	// bit first.  Bit i lives in Bits[i/64] at position 63-(i%64).  Bits
	// past Size are always zero, so Codes are comparable with ==.
	Bits [codeWords]uint64
}

// ParseCode constructs a Code from a string of '0' and '1' characters.
func ParseCode(str string) (Code, error) {
	if len(str) > MaxCodeSize {
		return Code{}, fmt.Errorf("huffman: code %q is longer than %d bits", str, MaxCodeSize)
	}
	var hc Code
	for i := 0; i < len(str); i++ {
		switch str[i] {
		case '0':
			hc = hc.Append(0)
		case '1':
			hc = hc.Append(1)
		default:
			return Code{}, fmt.Errorf("huffman: invalid character %q in code %q", str[i], str)
		}
	}
	return hc, nil
}

// Append returns a copy of this Code with one more bit on the end.
func (hc Code) Append(bit uint) Code {
	if hc.Size >= MaxCodeSize {
		panic(fmt.Errorf("huffman: code %s cannot grow past %d bits", hc, MaxCodeSize))
	}
	if bit != 0 {
		hc.Bits[hc.Size/64] |= 1 << (63 - hc.Size%64)
	}
	hc.Size++
	return hc
}

// Bit returns the i'th bit of this Code, counting from the first.
func (hc Code) Bit(i int) uint {
	return uint(hc.Bits[i/64]>>(63-uint(i)%64)) & 1
}

// HasPrefix returns true iff the first prefix.Size bits of this Code equal
// prefix.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	for i := 0; i < int(prefix.Size); i++ {
		if hc.Bit(i) != prefix.Bit(i) {
			return false
		}
	}
	return true
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	var buf strings.Builder
	buf.Grow(int(hc.Size))
	for i := 0; i < int(hc.Size); i++ {
		buf.WriteByte('0' + byte(hc.Bit(i)))
	}
	return strconv.Quote(buf.String())
}

var _ fmt.Stringer = Code{}

// writeTo emits the bits of this Code in order, 64 at a time.
func (hc Code) writeTo(w BitWriter) error {
	remaining := int(hc.Size)
	for _, word := range hc.Bits {
		if remaining <= 0 {
			break
		}
		n := remaining
		if n > 64 {
			n = 64
		}
		if err := w.WriteBits(word>>(64-n), uint8(n)); err != nil {
			return err
		}
		remaining -= n
	}
	return nil
}
