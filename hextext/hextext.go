// Package hextext converts between raw bytes and a hex-text rendering:
// upper-case two-digit values separated by spaces, 16 per line.
package hextext

import (
	"bytes"
	"encoding/hex"
	"strings"
	"unicode"

	"github.com/cocosip/go-byte-codec/codec"

	"github.com/nuclio/errors"
)

// BytesPerLine is the number of values written on each text line
const BytesPerLine = 16

// Encode renders data as hex text. Every line, including the last, ends
// with a newline. Empty input renders as empty text.
func Encode(data []byte) []byte {
	if len(data) == 0 {
		return []byte{}
	}

	var buf bytes.Buffer
	buf.Grow(len(data) * 3)

	digits := make([]byte, 2)
	for i := range data {
		if i%BytesPerLine != 0 {
			buf.WriteByte(' ')
		}
		hex.Encode(digits, data[i:i+1])
		buf.Write(digits)
		if i%BytesPerLine == BytesPerLine-1 || i == len(data)-1 {
			buf.WriteByte('\n')
		}
	}

	return bytes.ToUpper(buf.Bytes())
}

// Decode parses hex text back into bytes. Whitespace is ignored and digits
// are case-insensitive.
func Decode(text []byte) ([]byte, error) {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, string(text))

	if len(digits)%2 != 0 {
		return nil, errors.Wrapf(codec.ErrInvalidInput, "Hex text has an odd number of digits (%d)", len(digits))
	}

	data, err := hex.DecodeString(digits)
	if err != nil {
		return nil, errors.Wrap(codec.ErrInvalidInput, err.Error())
	}

	return data, nil
}

var _ codec.Codec = (*Codec)(nil)

// Codec exposes hex text through the codec.Codec interface
type Codec struct{}

// NewCodec creates a new hex-text codec
func NewCodec() *Codec {
	return &Codec{}
}

// Encode renders data as hex text
func (c *Codec) Encode(data []byte) ([]byte, error) {
	return Encode(data), nil
}

// Decode parses hex text
func (c *Codec) Decode(data []byte) ([]byte, error) {
	return Decode(data)
}

// Name returns the codec name
func (c *Codec) Name() string {
	return "hex"
}

// Extension returns the suffix for hex text files
func (c *Codec) Extension() string {
	return ".hex"
}

func init() {
	codec.Register(NewCodec())
}
