package huffman

import (
	"github.com/cocosip/go-byte-codec/codec"
)

var _ codec.Codec = (*Codec)(nil)
var _ codec.Inspector = (*Codec)(nil)

// Codec exposes the Huffman codec through the codec.Codec interface
type Codec struct{}

// NewCodec creates a new Huffman codec
func NewCodec() *Codec {
	return &Codec{}
}

// Encode compresses data
func (c *Codec) Encode(data []byte) ([]byte, error) {
	return Encode(data)
}

// Decode decompresses a Huffman block
func (c *Codec) Decode(data []byte) ([]byte, error) {
	return Decode(data)
}

// Inspect describes a Huffman block
func (c *Codec) Inspect(data []byte) ([]codec.Field, error) {
	info, err := Inspect(data)
	if err != nil {
		return nil, err
	}

	return []codec.Field{
		{Name: "original length", Value: info.OriginalLength},
		{Name: "leaves", Value: info.Leaves},
		{Name: "internal nodes", Value: info.InternalNodes},
		{Name: "tree bits", Value: info.TreeBits},
		{Name: "stream bits", Value: info.StreamBits},
	}, nil
}

// Name returns the codec name
func (c *Codec) Name() string {
	return "huffman"
}

// Extension returns the suffix for Huffman blocks
func (c *Codec) Extension() string {
	return ".huf"
}

func init() {
	codec.Register(NewCodec())
}
