package huffman

// Code is the path from the root to a leaf: false is left, true is right
type Code []bool

// CodeTable holds the code of every byte value present in the input.
// Absent values have a nil code.
type CodeTable [256]Code

// BuildCodeTable derives codes for every value with a non-zero count in freq
// by searching the tree depth-first, left before right.
func BuildCodeTable(root *Node, freq FrequencyTable) CodeTable {
	var table CodeTable
	if root == nil {
		return table
	}

	path := make([]bool, 0, 32)
	for value, count := range freq {
		if count == 0 {
			continue
		}
		table[value] = findCode(root, byte(value), path)
	}
	return table
}

func findCode(node *Node, target byte, path []bool) Code {
	if node.IsLeaf() {
		if node.Value != target {
			return nil
		}
		code := make(Code, len(path))
		copy(code, path)
		return code
	}

	if code := findCode(node.Left, target, append(path, false)); code != nil {
		return code
	}
	return findCode(node.Right, target, append(path, true))
}
