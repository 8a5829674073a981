package huffman

import (
	"github.com/cocosip/go-byte-codec/bitstream"
)

// BlockInfo describes a Huffman block without decoding its payload
type BlockInfo struct {
	OriginalLength int
	Leaves         int
	InternalNodes  int
	TreeBits       int
	StreamBits     int // code bits plus trailing padding
}

// Inspect reads the header and tree of a block
func Inspect(block []byte) (*BlockInfo, error) {
	length, err := readHeader(block)
	if err != nil {
		return nil, err
	}

	info := &BlockInfo{OriginalLength: length}
	if length == 0 {
		return info, nil
	}

	r := bitstream.NewReader(block[HeaderSize:])
	_, leaves, internals, err := readTree(r)
	if err != nil {
		return nil, err
	}

	info.Leaves = leaves
	info.InternalNodes = internals
	info.TreeBits = r.Position()
	info.StreamBits = r.Remaining()

	return info, nil
}
