package huffman

// NodeKind distinguishes the two variants of Node.
type NodeKind byte

const (
	// LeafNode is a Node that carries a Symbol.
	LeafNode NodeKind = iota

	// InternalNode is a Node that carries exactly two children.
	InternalNode
)

// Node is one node of a Huffman tree.  Leaf nodes use Symbol; internal nodes
// use Left and Right, and their Weight is the sum of their children's
// weights, fixed when the node is constructed.
//
// Each internal node exclusively owns its children.
type Node struct {
	Kind   NodeKind
	Symbol Symbol
	Weight uint64
	Left   *Node
	Right  *Node
}

func newLeaf(symbol Symbol, weight uint64) *Node {
	return &Node{Kind: LeafNode, Symbol: symbol, Weight: weight}
}

func newInternal(left *Node, right *Node) *Node {
	return &Node{Kind: InternalNode, Weight: left.Weight + right.Weight, Left: left, Right: right}
}

// IsLeaf returns true iff this is a LeafNode.
func (n *Node) IsLeaf() bool {
	return n.Kind == LeafNode
}
