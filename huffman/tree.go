package huffman

import "sort"

// Node is a Huffman tree node: either a leaf carrying a byte value,
// or an internal node with two children.
//
// The root built for single-symbol input is an internal node whose
// Left and Right point to the same leaf.
type Node struct {
	Value byte // leaves only
	Freq  int
	Left  *Node // internal nodes only
	Right *Node // internal nodes only
	leaf  bool
}

func newLeaf(value byte, freq int) *Node {
	return &Node{Value: value, Freq: freq, leaf: true}
}

func newInternal(left, right *Node) *Node {
	return &Node{
		Freq:  left.Freq + right.Freq,
		Left:  left,
		Right: right,
	}
}

// IsLeaf reports whether the node carries a byte value
func (n *Node) IsLeaf() bool {
	return n.leaf
}

// BuildTree builds the Huffman tree for freq. It returns nil when no byte
// value has a non-zero count.
//
// Leaves are seeded in byte-value order. Each round stable-sorts the pending
// nodes by frequency and merges the first two (first becomes the left child);
// the merged node is appended after the remaining ones, so ties keep their
// seeding/merge order.
func BuildTree(freq FrequencyTable) *Node {
	nodes := make([]*Node, 0, len(freq))
	for value, count := range freq {
		if count == 0 {
			continue
		}
		nodes = append(nodes, newLeaf(byte(value), count))
	}

	if len(nodes) == 0 {
		return nil
	}

	for len(nodes) > 1 {
		sort.SliceStable(nodes, func(i, j int) bool {
			return nodes[i].Freq < nodes[j].Freq
		})

		left, right := nodes[0], nodes[1]
		nodes = append(nodes[2:], newInternal(left, right))
	}

	root := nodes[0]
	if root.IsLeaf() {
		// every code must be at least one bit long
		return newInternal(root, root)
	}
	return root
}
