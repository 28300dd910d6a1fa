package huffman

import (
	"github.com/chronos-tachyon/assert"
)

// Encoder compresses one input into a Container.
type Encoder struct {
	data  []byte
	ft    FrequencyTable
	tree  *Tree
	codes CodeTable
}

// Init initializes this Encoder for the given input: it counts the Symbol
// frequencies, builds the Huffman tree, and derives the CodeTable.  The
// input must be non-empty.
//
// The Encoder retains data until it is re-initialized.
//
func (e *Encoder) Init(data []byte) error {
	ft, err := CountFrequencies(data)
	if err != nil {
		return err
	}

	tree := BuildTree(ft)
	*e = Encoder{
		data:  data,
		ft:    ft,
		tree:  tree,
		codes: NewCodeTable(tree),
	}
	return nil
}

// Frequencies returns the FrequencyTable of the input.
func (e *Encoder) Frequencies() FrequencyTable {
	return e.ft
}

// Tree returns the Huffman tree built for the input.
func (e *Encoder) Tree() *Tree {
	return e.tree
}

// Codes returns the CodeTable derived for the input.
func (e *Encoder) Codes() *CodeTable {
	return &e.codes
}

// Container packs the input and returns the resulting Container.
func (e *Encoder) Container() Container {
	assert.Assertf(e.tree != nil, "Encoder used before Init")

	bw := newBitWriter(e.tree.PayloadBits() / 8)
	for _, ch := range e.data {
		hc, found := e.codes.Encode(Symbol(ch))
		assert.Assertf(found, "symbol %d missing from CodeTable", ch)
		bw.WriteCode(hc)
	}

	payload, residualBits, final := bw.Finish()
	return Container{
		Frequencies:  e.ft,
		Payload:      payload,
		ResidualBits: residualBits,
		Final:        final,
	}
}

// Encode packs the input and returns the binary form of the Container.
func (e *Encoder) Encode() ([]byte, error) {
	return e.Container().MarshalBinary()
}

// Encode compresses data and returns the binary form of the Container.
func Encode(data []byte) ([]byte, error) {
	var e Encoder
	if err := e.Init(data); err != nil {
		return nil, err
	}
	return e.Encode()
}
