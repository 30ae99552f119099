// Package huffman implements a lossless, file-level Huffman compressor.
//
// A compressed stream is a 32-bit magic number, followed by the Huffman tree
// in preorder (0 for an internal node, 1 plus a 9-bit symbol for a leaf),
// followed by the code for every input byte and then the code for the
// synthetic EOF symbol.  Nothing in the stream is byte-aligned except its end,
// which is padded with zero bits.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
