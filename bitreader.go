package huffman

// bitReader yields the meaningful bits of a payload MSB-first: every bit of
// the whole payload bytes, then the residual high bits of the final byte.
type bitReader struct {
	payload []byte
	final   byte
	bits    uint64
	pos     uint64
}

func newBitReader(payload []byte, residualBits byte, final byte) *bitReader {
	return &bitReader{
		payload: payload,
		final:   final,
		bits:    uint64(len(payload))*8 + uint64(residualBits),
	}
}

// Remaining returns the number of meaningful bits not yet read.
func (br *bitReader) Remaining() uint64 {
	return br.bits - br.pos
}

// ReadBit returns the next bit.  The second result is false once every
// meaningful bit has been consumed.
func (br *bitReader) ReadBit() (uint8, bool) {
	if br.pos >= br.bits {
		return 0, false
	}
	byteIndex := br.pos / 8
	bitOffset := uint(br.pos % 8)
	var b byte
	if byteIndex < uint64(len(br.payload)) {
		b = br.payload[byteIndex]
	} else {
		b = br.final
	}
	br.pos++
	return (b >> (7 - bitOffset)) & 1, true
}
