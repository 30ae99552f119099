package huffman

// Symbol represents a symbol in the compressor's alphabet: a literal byte
// value 0..255, or EOF.
type Symbol int32

const (
	// NumSymbols is the size of the alphabet: 256 byte values plus EOF.
	NumSymbols = 257

	// EOF is the synthetic symbol that terminates every payload.
	EOF = Symbol(256)

	// MaxSymbol is the maximum valid symbol.
	MaxSymbol = EOF

	// MaxCodeSize is the longest code any tree over this alphabet can
	// produce, reached only by a maximally skewed tree.
	MaxCodeSize = NumSymbols - 1

	// symbolBits is the width of a leaf symbol in the tree header.
	symbolBits = 9
)

// IsValid returns true iff sym is a byte value or EOF.
func (sym Symbol) IsValid() bool {
	return sym >= 0 && sym <= MaxSymbol
}
