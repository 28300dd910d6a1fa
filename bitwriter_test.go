package huffman

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitWriter_FlushAtEight(t *testing.T) {
	// Exactly 8 buffered bits must be flushed as a payload byte, leaving
	// an empty residual.
	bw := newBitWriter(0)
	bw.WriteCode(MakeCode(8, 0xa5))
	payload, residualBits, final := bw.Finish()
	require.Equal(t, []byte{0xa5}, payload)
	require.Equal(t, byte(0), residualBits)
	require.Equal(t, byte(0), final)

	bw = newBitWriter(0)
	bw.WriteCode(MakeCode(4, 0xa))
	bw.WriteCode(MakeCode(4, 0x5))
	payload, residualBits, final = bw.Finish()
	require.Equal(t, []byte{0xa5}, payload)
	require.Equal(t, byte(0), residualBits)
	require.Equal(t, byte(0), final)
}

func TestBitWriter_Residual(t *testing.T) {
	bw := newBitWriter(0)
	bw.WriteCode(MakeCode(7, 0x55))
	payload, residualBits, final := bw.Finish()
	require.Empty(t, payload)
	require.Equal(t, byte(7), residualBits)
	require.Equal(t, byte(0xaa), final)

	bw = newBitWriter(0)
	bw.WriteCode(MakeCode(3, 0x7))
	bw.WriteCode(MakeCode(6, 0x01))
	payload, residualBits, final = bw.Finish()
	require.Equal(t, []byte{0xe0}, payload)
	require.Equal(t, byte(1), residualBits)
	require.Equal(t, byte(0x80), final)
}

func TestBitWriter_LongCode(t *testing.T) {
	bw := newBitWriter(0)
	bw.WriteCode(MakeCode(1, 1))
	bw.WriteCode(MakeCode(64, 0x0123456789abcdef))
	payload, residualBits, final := bw.Finish()
	require.Equal(t, []byte{0x80, 0x91, 0xa2, 0xb3, 0xc4, 0xd5, 0xe6, 0xf7}, payload)
	require.Equal(t, byte(1), residualBits)
	require.Equal(t, byte(0x80), final)
}

func TestBitReader(t *testing.T) {
	br := newBitReader([]byte{0xa5}, 3, 0xc0)
	require.Equal(t, uint64(11), br.Remaining())

	var bits []uint8
	for {
		bit, ok := br.ReadBit()
		if !ok {
			break
		}
		bits = append(bits, bit)
	}
	require.Equal(t, []uint8{1, 0, 1, 0, 0, 1, 0, 1, 1, 1, 0}, bits)
	require.Equal(t, uint64(0), br.Remaining())
}

func TestBitReader_FullFinalByte(t *testing.T) {
	br := newBitReader(nil, 8, 0x0f)
	var n int
	for {
		if _, ok := br.ReadBit(); !ok {
			break
		}
		n++
	}
	require.Equal(t, 8, n)
}
