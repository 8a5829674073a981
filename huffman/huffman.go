// Package huffman implements a byte-oriented Huffman codec.
//
// A block is laid out as
//
//	int32 little-endian original length | bit-packed tree | bit-packed codes
//
// where the tree follows the grammar Node := '0' Node Node | '1' byte8 and
// the codes of the input bytes follow in their original order. Bits are
// packed most-significant first; the last byte is zero-padded.
//
// Empty input encodes to a 4-byte block holding length 0 and no tree.
package huffman

import (
	"encoding/binary"
	"math"

	"github.com/cocosip/go-byte-codec/bitstream"
	"github.com/cocosip/go-byte-codec/codec"

	"github.com/nuclio/errors"
)

// HeaderSize is the size of the original-length prefix
const HeaderSize = 4

// Encode compresses data into a Huffman block
func Encode(data []byte) ([]byte, error) {
	if len(data) > math.MaxInt32 {
		return nil, errors.Wrapf(codec.ErrInvalidInput, "Input of %d bytes does not fit the length header", len(data))
	}

	header := make([]byte, HeaderSize)
	binary.LittleEndian.PutUint32(header, uint32(int32(len(data))))
	if len(data) == 0 {
		return header, nil
	}

	freq := BuildFrequencyTable(data)
	root := BuildTree(freq)
	table := BuildCodeTable(root, freq)

	w := bitstream.NewWriter()
	w.WriteBools(SerializeTree(root))
	for _, b := range data {
		w.WriteBools(table[b])
	}

	if err := w.Close(); err != nil {
		return nil, errors.Wrap(err, "Failed to flush bit stream")
	}

	return append(header, w.Bytes()...), nil
}

// Decode restores the original bytes from a Huffman block
func Decode(block []byte) ([]byte, error) {
	length, err := readHeader(block)
	if err != nil {
		return nil, err
	}

	if length == 0 {
		return []byte{}, nil
	}

	r := bitstream.NewReader(block[HeaderSize:])

	// every symbol costs at least one bit
	if length > r.Remaining() {
		return nil, errors.Wrapf(codec.ErrCorruptStream,
			"Block declares %d bytes but carries only %d bits", length, r.Remaining())
	}

	root, _, _, err := readTree(r)
	if err != nil {
		return nil, err
	}

	if root.IsLeaf() {
		return nil, errors.Wrap(codec.ErrMalformedTree, "Tree root must be an internal node")
	}

	output := make([]byte, 0, length)
	node := root
	for len(output) < length {
		bit, err := r.ReadBool()
		if err != nil {
			return nil, errors.Wrapf(codec.ErrCorruptStream,
				"Stream exhausted after %d of %d bytes", len(output), length)
		}

		if bit {
			node = node.Right
		} else {
			node = node.Left
		}

		if node.IsLeaf() {
			output = append(output, node.Value)
			node = root
		}
	}

	return output, nil
}

func readHeader(block []byte) (int, error) {
	if len(block) < HeaderSize {
		return 0, errors.Wrapf(codec.ErrInvalidInput,
			"Huffman block needs a %d-byte header, got %d bytes", HeaderSize, len(block))
	}

	length := int32(binary.LittleEndian.Uint32(block[:HeaderSize]))
	if length < 0 {
		return 0, errors.Wrapf(codec.ErrCorruptStream, "Negative original length %d", length)
	}

	return int(length), nil
}
