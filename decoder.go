package huffman

import (
	"fmt"
	"io"
)

// decodePayload walks the tree rooted at root one bit at a time, writing the
// byte of each leaf it reaches to w, until it reaches the EOF leaf.  It
// returns the number of bytes written.
//
// Bytes written before an error are not taken back.
//
func decodePayload(r BitReader, root Node, w io.ByteWriter) (int64, error) {
	// A lone leaf has nothing to choose between; its code is "0".
	if leaf, ok := root.(*Leaf); ok {
		if leaf.Symbol != EOF {
			return 0, malformedf("single-leaf tree holds symbol %d instead of EOF", leaf.Symbol)
		}
		bit, err := readBits(r, 1, "payload")
		if err != nil {
			return 0, err
		}
		if bit != 0 {
			return 0, malformedf("single-leaf tree expects code \"0\", got \"1\"")
		}
		return 0, nil
	}

	var n int64
	current := root
	for {
		bit, err := readBits(r, 1, "payload")
		if err != nil {
			return n, err
		}

		internal := current.(*Internal)
		if bit == 0 {
			current = internal.Left
		} else {
			current = internal.Right
		}

		leaf, ok := current.(*Leaf)
		if !ok {
			continue
		}
		if leaf.Symbol == EOF {
			return n, nil
		}
		if err := w.WriteByte(byte(leaf.Symbol)); err != nil {
			return n, fmt.Errorf("huffman: failed to write output: %w", err)
		}
		n++
		current = root
	}
}
