package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// CodeTable maps each Symbol of a Tree to its prefix-free Code.
type CodeTable struct {
	codes   [NumSymbols]Code
	weights [NumSymbols]uint64
	order   []Symbol
	minSize byte
	maxSize byte
}

// NewCodeTable derives the CodeTable for the given Tree.
func NewCodeTable(t *Tree) CodeTable {
	var ct CodeTable
	ct.order = make([]Symbol, 0, t.NumLeaves())
	t.Walk(func(leaf *Node, hc Code) {
		ct.codes[leaf.Symbol] = hc
		ct.weights[leaf.Symbol] = leaf.Weight
		ct.order = append(ct.order, leaf.Symbol)
		if len(ct.order) == 1 {
			ct.minSize = hc.Size
			ct.maxSize = hc.Size
		} else if ct.minSize > hc.Size {
			ct.minSize = hc.Size
		} else if ct.maxSize < hc.Size {
			ct.maxSize = hc.Size
		}
	})
	return ct
}

// Encode returns the Code for symbol.  The second result is false if symbol
// is not part of the table.
func (ct *CodeTable) Encode(symbol Symbol) (Code, bool) {
	hc := ct.codes[symbol]
	return hc, hc.Size != 0
}

// Len returns the number of Symbols in the table.
func (ct *CodeTable) Len() int {
	return len(ct.order)
}

// MinSize is the bit length of the shortest legal code.
func (ct *CodeTable) MinSize() byte {
	return ct.minSize
}

// MaxSize is the bit length of the longest legal code.
func (ct *CodeTable) MaxSize() byte {
	return ct.maxSize
}

// Visit calls fn once per Symbol with its weight and Code, in tree order.
// It is intended as a diagnostic hook.
func (ct *CodeTable) Visit(fn func(symbol Symbol, weight uint64, hc Code)) {
	for _, symbol := range ct.order {
		fn(symbol, ct.weights[symbol], ct.codes[symbol])
	}
}

// Dump writes a programmer-readable debugging dump of the CodeTable's current
// state to the given writer.
func (ct *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.maxSize)
	for symbol := 0; symbol < NumSymbols; symbol++ {
		hc := ct.codes[symbol]
		if hc.Size == 0 {
			continue
		}
		fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, hc)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
