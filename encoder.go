package huffman

import (
	"bufio"
	"bytes"
	"container/heap"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// Node is a node of a Huffman tree.  It is either a *Leaf or an *Internal.
type Node interface {
	// Weight returns the total frequency of the leaves under this node.
	// Trees read back from a header have weight 0 everywhere.
	Weight() uint64

	isNode()
}

// Leaf is a Node that carries a Symbol.
type Leaf struct {
	Symbol Symbol
	Count  uint64
}

// Internal is a Node with exactly two children.
type Internal struct {
	Sum   uint64
	Left  Node
	Right Node
}

// Weight fulfills the Node interface.
func (n *Leaf) Weight() uint64 { return n.Count }

// Weight fulfills the Node interface.
func (n *Internal) Weight() uint64 { return n.Sum }

func (*Leaf) isNode()     {}
func (*Internal) isNode() {}

var (
	_ Node = (*Leaf)(nil)
	_ Node = (*Internal)(nil)
)

// BuildTree builds a Huffman tree from the given frequencies.  Every symbol
// with a non-zero count becomes a leaf.
//
// The tree is fully determined by the table: nodes of equal weight are merged
// in a fixed order (leaves by ascending symbol, then internal nodes in the
// order they were created), and the first of each merged pair becomes the
// left child.
//
// If only EOF is present, the result is a lone *Leaf.
//
func BuildTree(freq *FrequencyTable) Node {
	assert.Assertf(freq[EOF] != 0, "EOF must be present in the frequency table")

	// Step 1: build a minheap of leaves.

	items := make([]weightedNode, 0, NumSymbols)
	for symbol := Symbol(0); symbol < NumSymbols; symbol++ {
		if count := freq[symbol]; count != 0 {
			items = append(items, weightedNode{
				node: &Leaf{Symbol: symbol, Count: count},
				key:  uint32(symbol),
			})
		}
	}

	h := weightHeap{items}
	h.Init()

	// Step 2: process the minheap by popping two nodes, combining them
	// into a new internal node, and pushing the new node back onto the
	// minheap.
	//
	// Internal nodes take keys NumSymbols, NumSymbols+1, ... in creation
	// order, so they sort after every leaf of the same weight.

	nextKey := uint32(NumSymbols)
	for h.Len() > 1 {
		a := heap.Pop(&h).(weightedNode)
		b := heap.Pop(&h).(weightedNode)

		sum := a.node.Weight() + b.node.Weight()
		assert.Assertf(sum >= a.node.Weight(), "weight overflow: %d + %d", a.node.Weight(), b.node.Weight())

		heap.Push(&h, weightedNode{
			node: &Internal{Sum: sum, Left: a.node, Right: b.node},
			key:  nextKey,
		})
		nextKey++
	}

	root := heap.Pop(&h).(weightedNode).node
	assert.Assertf(root.Weight() == freq.Len()+freq[EOF], "root weight %d != total %d", root.Weight(), freq.Len()+freq[EOF])
	return root
}

// CodeTable maps each Symbol present in a Huffman tree to its Code.
type CodeTable struct {
	codes   [NumSymbols]Code
	minSize uint16
	maxSize uint16
}

// NewCodeTable walks the tree rooted at root and assigns each leaf the path
// that leads to it: 0 for every step left, 1 for every step right.
//
// A tree consisting of a lone leaf is given the one-bit code "0".
//
func NewCodeTable(root Node) *CodeTable {
	t := &CodeTable{}

	record := func(leaf *Leaf, hc Code) {
		assert.Assertf(leaf.Symbol.IsValid(), "invalid symbol %d", leaf.Symbol)
		assert.Assertf(t.codes[leaf.Symbol].Size == 0, "symbol %d appears twice in the tree", leaf.Symbol)
		t.codes[leaf.Symbol] = hc
		if t.minSize == 0 || t.minSize > hc.Size {
			t.minSize = hc.Size
		}
		if t.maxSize < hc.Size {
			t.maxSize = hc.Size
		}
	}

	var walk func(n Node, path Code)
	walk = func(n Node, path Code) {
		switch x := n.(type) {
		case *Leaf:
			record(x, path)
		case *Internal:
			walk(x.Left, path.Append(0))
			walk(x.Right, path.Append(1))
		default:
			panic(fmt.Errorf("huffman: unknown node type %T", n))
		}
	}

	if leaf, ok := root.(*Leaf); ok {
		record(leaf, Code{}.Append(0))
	} else {
		walk(root, Code{})
	}
	return t
}

// Encode returns the Code for a Symbol.  The Code has Size 0 if the Symbol
// was not in the tree.
func (t *CodeTable) Encode(symbol Symbol) Code {
	return t.codes[symbol]
}

// MinSize is the bit length of the shortest code.
func (t *CodeTable) MinSize() uint16 {
	return t.minSize
}

// MaxSize is the bit length of the longest code.
func (t *CodeTable) MaxSize() uint16 {
	return t.maxSize
}

// Dump writes a programmer-readable debugging dump of the CodeTable to the
// given writer.  Symbols absent from the tree are omitted.
func (t *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", t.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", t.maxSize)
	for symbol := Symbol(0); symbol < NumSymbols; symbol++ {
		hc := t.codes[symbol]
		if hc.Size != 0 {
			fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, hc)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// encodePayload writes the code of every byte of r to w, followed by the
// code for EOF.  It returns the number of input bytes consumed.
func encodePayload(r io.Reader, t *CodeTable, w BitWriter) (int64, error) {
	br := bufio.NewReader(r)

	var n int64
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return n, fmt.Errorf("huffman: failed to read input: %w", err)
		}

		hc := t.codes[b]
		if hc.Size == 0 {
			return n, fmt.Errorf("huffman: byte %#02x at offset %d was not counted; input changed between passes", b, n)
		}
		if err := hc.writeTo(w); err != nil {
			return n, fmt.Errorf("huffman: failed to write payload: %w", err)
		}
		n++
	}

	if err := t.codes[EOF].writeTo(w); err != nil {
		return n, fmt.Errorf("huffman: failed to write payload: %w", err)
	}
	return n, nil
}

// type weightedNode + type weightHeap {{{

type weightedNode struct {
	node Node
	key  uint32
}

type weightHeap struct {
	list []weightedNode
}

func (h *weightHeap) Init() {
	heap.Init(h)
}

func (h *weightHeap) Len() int {
	return len(h.list)
}

func (h *weightHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *weightHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if wa, wb := a.node.Weight(), b.node.Weight(); wa != wb {
		return wa < wb
	}
	return a.key < b.key
}

func (h *weightHeap) Push(x interface{}) {
	h.list = append(h.list, x.(weightedNode))
}

func (h *weightHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = weightedNode{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*weightHeap)(nil)

// }}}
