package huffman

import (
	"github.com/cocosip/go-byte-codec/bitstream"
	"github.com/cocosip/go-byte-codec/codec"

	"github.com/nuclio/errors"
)

const (
	maxLeaves        = 256
	maxInternalNodes = maxLeaves - 1
)

// SerializeTree flattens the tree in pre-order: an internal node emits 0,
// a leaf emits 1 followed by its 8-bit value, most-significant bit first.
func SerializeTree(root *Node) []bool {
	var bits []bool
	if root == nil {
		return bits
	}

	stack := []*Node{root}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if node.IsLeaf() {
			bits = append(bits, true)
			for i := 7; i >= 0; i-- {
				bits = append(bits, (node.Value>>uint(i))&1 == 1)
			}
			continue
		}

		// right goes on the stack first so the left subtree is emitted first
		bits = append(bits, false)
		stack = append(stack, node.Right, node.Left)
	}
	return bits
}

// treeReader rebuilds a serialized tree from a shared bit cursor.
type treeReader struct {
	r         *bitstream.Reader
	leaves    int
	internals int
}

func readTree(r *bitstream.Reader) (*Node, int, int, error) {
	tr := &treeReader{r: r}
	root, err := tr.readNode()
	if err != nil {
		return nil, 0, 0, err
	}
	return root, tr.leaves, tr.internals, nil
}

func (tr *treeReader) readNode() (*Node, error) {
	isLeaf, err := tr.r.ReadBool()
	if err != nil {
		return nil, errors.Wrapf(codec.ErrMalformedTree, "Tree truncated at bit %d", tr.r.Position())
	}

	if isLeaf {
		tr.leaves++
		if tr.leaves > maxLeaves {
			return nil, errors.Wrapf(codec.ErrMalformedTree, "Tree has more than %d leaves", maxLeaves)
		}

		value, err := tr.r.ReadByte()
		if err != nil {
			return nil, errors.Wrapf(codec.ErrMalformedTree, "Leaf value truncated at bit %d", tr.r.Position())
		}
		return newLeaf(value, 0), nil
	}

	tr.internals++
	if tr.internals > maxInternalNodes {
		return nil, errors.Wrapf(codec.ErrMalformedTree, "Tree has more than %d internal nodes", maxInternalNodes)
	}

	left, err := tr.readNode()
	if err != nil {
		return nil, err
	}

	right, err := tr.readNode()
	if err != nil {
		return nil, err
	}

	return newInternal(left, right), nil
}
