package huffman

import (
	"github.com/chronos-tachyon/assert"
)

// bitWriter packs Codes MSB-first into whole bytes.  Whenever at least 8
// bits are buffered, the leading 8 are emitted, so at most 7 bits remain
// buffered between writes.
type bitWriter struct {
	out  []byte
	acc  uint64
	nacc uint
}

func newBitWriter(capacity uint64) *bitWriter {
	return &bitWriter{out: make([]byte, 0, capacity)}
}

func (bw *bitWriter) WriteCode(hc Code) {
	assert.Assertf(hc.Size != 0, "attempt to write an empty Code")

	// Feed the code in chunks small enough that acc never overflows.
	size := uint(hc.Size)
	for size != 0 {
		n := size
		if n > 32 {
			n = 32
		}
		size -= n
		chunk := (hc.Bits >> size) & (uint64(1)<<n - 1)
		bw.acc = (bw.acc << n) | chunk
		bw.nacc += n
		for bw.nacc >= 8 {
			bw.nacc -= 8
			bw.out = append(bw.out, byte(bw.acc>>bw.nacc))
		}
		bw.acc &= uint64(1)<<bw.nacc - 1
	}
}

// Finish returns the packed payload, the number of residual bits still
// buffered (0..7), and those bits left-justified in a byte.
func (bw *bitWriter) Finish() (payload []byte, residualBits byte, final byte) {
	assert.Assertf(bw.nacc < 8, "residual bit count %d not below 8", bw.nacc)
	residualBits = byte(bw.nacc)
	final = byte(bw.acc << (8 - bw.nacc))
	return bw.out, residualBits, final
}
