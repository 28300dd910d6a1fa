// Package huffman implements a static Huffman byte-stream codec with a small
// self-describing container.  The container carries only the symbol
// frequencies; the decoder rebuilds the identical code tree from them using
// the same deterministic construction as the encoder.
//
// Container layout (all integers big-endian):
//
//     [4 bytes]     L = number of distinct symbols
//     [L × 5 bytes] entries: 1 byte symbol, 4 bytes frequency count
//     [N bytes]     payload: packed code bits, MSB-first
//     [1 byte]      R = number of meaningful bits in the final byte (0..8)
//     [1 byte]      final byte, R high bits meaningful, the rest zero
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
