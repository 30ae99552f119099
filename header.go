package huffman

import (
	"fmt"
)

// Magic is the 32-bit value at the start of every compressed stream.
const Magic = uint32(0xface8201)

// WriteTree writes the shape of the tree rooted at root in preorder: a 0 bit
// for each internal node, followed by its left and then its right subtree,
// and a 1 bit for each leaf, followed by its symbol as a 9-bit integer.
func WriteTree(w BitWriter, root Node) error {
	switch x := root.(type) {
	case *Leaf:
		if err := w.WriteBits(1, 1); err != nil {
			return err
		}
		return w.WriteBits(uint64(x.Symbol), symbolBits)

	case *Internal:
		if err := w.WriteBits(0, 1); err != nil {
			return err
		}
		if err := WriteTree(w, x.Left); err != nil {
			return err
		}
		return WriteTree(w, x.Right)

	default:
		panic(fmt.Errorf("huffman: unknown node type %T", root))
	}
}

// ReadTree reads a tree written by WriteTree.  The nodes of the result have
// weight 0.
//
// ReadTree rejects, with ErrMalformedStream, any header that ends early,
// holds a symbol larger than EOF, holds the same symbol twice, or nests
// deeper than any tree over a 257-symbol alphabet can.
//
func ReadTree(r BitReader) (Node, error) {
	var seen [NumSymbols]bool
	return readTree(r, &seen, 0)
}

func readTree(r BitReader, seen *[NumSymbols]bool, depth int) (Node, error) {
	if depth > MaxCodeSize {
		return nil, malformedf("tree header nests deeper than %d", MaxCodeSize)
	}

	bit, err := readBits(r, 1, "tree header")
	if err != nil {
		return nil, err
	}

	if bit == 0 {
		left, err := readTree(r, seen, depth+1)
		if err != nil {
			return nil, err
		}
		right, err := readTree(r, seen, depth+1)
		if err != nil {
			return nil, err
		}
		return &Internal{Left: left, Right: right}, nil
	}

	u, err := readBits(r, symbolBits, "leaf symbol")
	if err != nil {
		return nil, err
	}
	symbol := Symbol(u)
	if !symbol.IsValid() {
		return nil, malformedf("leaf symbol %d is out of range", symbol)
	}
	if seen[symbol] {
		return nil, malformedf("leaf symbol %d appears twice", symbol)
	}
	seen[symbol] = true
	return &Leaf{Symbol: symbol}, nil
}
