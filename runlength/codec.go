package runlength

import (
	"fmt"

	"github.com/cocosip/go-byte-codec/codec"
)

var _ codec.Codec = (*Codec)(nil)
var _ codec.Inspector = (*Codec)(nil)

// Codec exposes the run-length codec through the codec.Codec interface
type Codec struct{}

// NewCodec creates a new run-length codec
func NewCodec() *Codec {
	return &Codec{}
}

// Encode run-length encodes data, falling back to raw
func (c *Codec) Encode(data []byte) ([]byte, error) {
	return Encode(data), nil
}

// Decode expands a run-length block
func (c *Codec) Decode(data []byte) ([]byte, error) {
	return Decode(data)
}

// Inspect describes a run-length block
func (c *Codec) Inspect(data []byte) ([]codec.Field, error) {
	info, err := Inspect(data)
	if err != nil {
		return nil, err
	}

	form := "raw"
	if info.Runs {
		form = "runs"
	}

	return []codec.Field{
		{Name: "selector", Value: fmt.Sprintf("0x%04X", info.Selector)},
		{Name: "form", Value: form},
		{Name: "pairs", Value: info.PairCount},
		{Name: "payload length", Value: info.PayloadLength},
		{Name: "decoded length", Value: info.DecodedLength},
	}, nil
}

// Name returns the codec name
func (c *Codec) Name() string {
	return "runlength"
}

// Extension returns the suffix for run-length blocks
func (c *Codec) Extension() string {
	return ".rle"
}

func init() {
	codec.Register(NewCodec())
}
