package huffman

import (
	"fmt"

	"github.com/chronos-tachyon/assert"
)

// Decoder decompresses one Container.
type Decoder struct {
	c    Container
	tree *Tree
}

// Init initializes this Decoder from the binary form of a Container: it
// parses the header and rebuilds the Huffman tree from the stored
// frequencies, in stored order.
func (d *Decoder) Init(data []byte) error {
	c, err := ParseContainer(data)
	if err != nil {
		return err
	}

	*d = Decoder{c: c, tree: BuildTree(c.Frequencies)}
	return nil
}

// Frequencies returns the FrequencyTable stored in the Container header.
func (d *Decoder) Frequencies() FrequencyTable {
	return d.c.Frequencies
}

// Tree returns the rebuilt Huffman tree.
func (d *Decoder) Tree() *Tree {
	return d.tree
}

// Decode walks the payload through the tree and returns the original data.
//
// The payload must hold exactly Tree().PayloadBits() meaningful bits; a
// shortfall is reported as ErrTruncatedPayload and an excess as
// ErrTreeReconstructionMismatch, before any bit is decoded.  The decoded
// Symbols must also reproduce the stored frequencies exactly.
//
func (d *Decoder) Decode() ([]byte, error) {
	assert.Assertf(d.tree != nil, "Decoder used before Init")

	br := newBitReader(d.c.Payload, d.c.ResidualBits, d.c.Final)
	expectBits := d.tree.PayloadBits()
	actualBits := br.Remaining()
	if actualBits < expectBits {
		return nil, fmt.Errorf("%w: have %d bits, need %d", ErrTruncatedPayload, actualBits, expectBits)
	}
	if actualBits > expectBits {
		return nil, fmt.Errorf("%w: have %d bits, frequencies account for %d", ErrTreeReconstructionMismatch, actualBits, expectBits)
	}

	// Every Symbol costs at least one bit, so total <= actualBits and the
	// allocation is bounded by the size of the input.
	total := d.c.Frequencies.Total()
	out := make([]byte, 0, total)

	root := d.tree.Root()
	if root.IsLeaf() {
		for {
			bit, ok := br.ReadBit()
			if !ok {
				break
			}
			if bit != 0 {
				return nil, fmt.Errorf("%w: unexpected 1 bit after %d symbols of a single-symbol stream", ErrTreeReconstructionMismatch, len(out))
			}
			out = append(out, byte(root.Symbol))
		}
	} else {
		cursor := root
		for {
			bit, ok := br.ReadBit()
			if !ok {
				break
			}
			if bit == 0 {
				cursor = cursor.Left
			} else {
				cursor = cursor.Right
			}
			if cursor.IsLeaf() {
				out = append(out, byte(cursor.Symbol))
				cursor = root
			}
		}
		if cursor != root {
			return nil, fmt.Errorf("%w: payload ends inside a code after %d symbols", ErrTreeReconstructionMismatch, len(out))
		}
	}

	if uint64(len(out)) != total {
		return nil, fmt.Errorf("%w: decoded %d symbols, header declares %d", ErrTreeReconstructionMismatch, len(out), total)
	}

	// The decoded histogram must reproduce the header exactly.
	var counts [NumSymbols]uint64
	for _, ch := range out {
		counts[ch]++
	}
	for _, entry := range d.c.Frequencies.entries {
		if counts[entry.Symbol] != uint64(entry.Count) {
			return nil, fmt.Errorf("%w: decoded %d of symbol %d, header declares %d", ErrTreeReconstructionMismatch, counts[entry.Symbol], entry.Symbol, entry.Count)
		}
	}
	return out, nil
}

// Decode decompresses the binary form of a Container.
func Decode(data []byte) ([]byte, error) {
	var d Decoder
	if err := d.Init(data); err != nil {
		return nil, err
	}
	return d.Decode()
}
