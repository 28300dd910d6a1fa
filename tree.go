package huffman

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
)

// Tree is a Huffman code tree.  Every Symbol of the FrequencyTable it was
// built from appears at exactly one leaf, and every internal node has exactly
// two children.
//
// A Tree is immutable once built.
type Tree struct {
	root        *Node
	numLeaves   int
	payloadBits uint64
}

// BuildTree constructs the Huffman tree for a non-empty FrequencyTable.
//
// Construction is fully deterministic, since the decoder must arrive at the
// same tree from the same table with no further side information:
//
//   - Leaves enter the forest in table order, numbered 0, 1, 2, ...
//   - Each merged node is numbered after every node that entered before it.
//   - The two lightest nodes are merged next; equal weights are broken by
//     the lower number.
//   - The first node removed becomes the left child (bit 0), the second the
//     right child (bit 1).
//
func BuildTree(ft FrequencyTable) *Tree {
	numLeaves := ft.Len()
	assert.Assertf(numLeaves > 0, "BuildTree called with an empty FrequencyTable")

	// Step 1: seed a minheap with one leaf per entry.

	h := nodeHeap{list: make([]queuedNode, 0, numLeaves)}
	for index, entry := range ft.entries {
		h.list = append(h.list, queuedNode{newLeaf(entry.Symbol, uint64(entry.Count)), uint32(index)})
	}
	h.Init()

	// Step 2: repeatedly pop the two lightest nodes and push their merger.
	//
	// Each merge adds one bit to the code of every leaf beneath it, so the
	// sum of the merged weights is the total payload length in bits.

	var payloadBits uint64
	nextSeq := uint32(numLeaves)
	for h.Len() > 1 {
		a := heap.Pop(&h).(queuedNode)
		b := heap.Pop(&h).(queuedNode)
		merged := newInternal(a.node, b.node)
		payloadBits += merged.Weight
		heap.Push(&h, queuedNode{merged, nextSeq})
		nextSeq++
	}

	root := heap.Pop(&h).(queuedNode).node

	// A lone leaf still costs one bit per occurrence.
	if root.IsLeaf() {
		payloadBits = root.Weight
	}

	return &Tree{root: root, numLeaves: numLeaves, payloadBits: payloadBits}
}

// Root returns the root Node of the tree.  The returned Node must not be
// modified.
func (t *Tree) Root() *Node {
	return t.root
}

// NumLeaves returns the number of leaves, i.e. the number of distinct
// Symbols.
func (t *Tree) NumLeaves() int {
	return t.numLeaves
}

// PayloadBits returns the exact number of payload bits needed to encode the
// source data this tree was built for.
func (t *Tree) PayloadBits() uint64 {
	return t.payloadBits
}

// Walk calls fn for each leaf of the tree with the Code that leads to it,
// in depth-first order, left before right.
//
// A tree that consists of a single leaf assigns that leaf the one-bit code
// "0", since an empty code could never be consumed by a bit-walking decoder.
//
func (t *Tree) Walk(fn func(leaf *Node, hc Code)) {
	if t.root.IsLeaf() {
		fn(t.root, MakeCode(1, 0))
		return
	}

	// The walk uses an explicit stack rather than recursion, since a
	// badly skewed tree can be as deep as it has leaves.

	type stackItem struct {
		node *Node
		hc   Code
	}

	stack := make([]stackItem, 0, t.numLeaves)
	stack = append(stack, stackItem{t.root, Code{}})
	for len(stack) != 0 {
		last := len(stack) - 1
		top := stack[last]
		stack[last] = stackItem{}
		stack = stack[:last]

		if top.node.IsLeaf() {
			fn(top.node, top.hc)
			continue
		}

		// Push right first so that left is visited first.
		stack = append(stack, stackItem{top.node.Right, top.hc.Append(1)})
		stack = append(stack, stackItem{top.node.Left, top.hc.Append(0)})
	}
}
