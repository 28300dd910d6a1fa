package huffman

import (
	"errors"
)

var (
	// ErrEmptyInput is returned when asked to encode a zero-length input.
	ErrEmptyInput = errors.New("huffman: empty input")

	// ErrInputTooLarge is returned when a symbol occurs more often than a
	// 4-byte frequency count can represent.
	ErrInputTooLarge = errors.New("huffman: input too large")

	// ErrMalformedHeader is returned when the container header is
	// inconsistent: L is 0, L disagrees with the available bytes, or an
	// entry repeats a symbol or carries a zero count.
	ErrMalformedHeader = errors.New("huffman: malformed header")

	// ErrTruncatedPayload is returned when the payload holds fewer bits
	// than the stored frequencies require.
	ErrTruncatedPayload = errors.New("huffman: truncated payload")

	// ErrInvalidResidualLength is returned when the trailer's residual
	// bit length is outside 0..8.
	ErrInvalidResidualLength = errors.New("huffman: invalid residual length")

	// ErrTreeReconstructionMismatch is returned when the payload does not
	// decode to exactly the number of symbols the header declares.
	ErrTreeReconstructionMismatch = errors.New("huffman: tree reconstruction mismatch")
)
