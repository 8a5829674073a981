// Package runlength implements a run-length codec that falls back to the
// raw bytes whenever the run-length form would not be smaller.
//
// A block is a 2-byte little-endian selector followed by the payload.
// Selector 0x0000 marks a raw payload; any other value (0xFFFF when
// encoding) marks a sequence of (value, count) pairs with count in [1,255].
package runlength

import (
	"encoding/binary"

	"github.com/cocosip/go-byte-codec/codec"

	"github.com/nuclio/errors"
)

const (
	// HeaderSize is the size of the selector prefix
	HeaderSize = 2

	// SelectorRaw marks a raw passthrough payload
	SelectorRaw uint16 = 0x0000

	// SelectorRuns marks a run-length payload
	SelectorRuns uint16 = 0xFFFF

	// MaxRun is the largest count a single pair can carry
	MaxRun = 255
)

// Pair is one run: Count repetitions of Value
type Pair struct {
	Value byte
	Count byte
}

// Pairs splits data into runs of identical bytes. Runs longer than MaxRun
// are emitted as consecutive pairs of the same value.
func Pairs(data []byte) []Pair {
	var pairs []Pair
	if len(data) == 0 {
		return pairs
	}

	current := data[0]
	length := 1
	for _, b := range data[1:] {
		if b == current {
			length++
			continue
		}
		pairs = appendRun(pairs, current, length)
		current = b
		length = 1
	}

	return appendRun(pairs, current, length)
}

func appendRun(pairs []Pair, value byte, length int) []Pair {
	for length > MaxRun {
		pairs = append(pairs, Pair{Value: value, Count: MaxRun})
		length -= MaxRun
	}
	return append(pairs, Pair{Value: value, Count: byte(length)})
}

// Encode produces whichever of the run-length and raw forms is smaller,
// preferring raw on a tie. The output is at most 2 bytes longer than data.
func Encode(data []byte) []byte {
	pairs := Pairs(data)

	if 2*len(pairs) < len(data) {
		block := make([]byte, HeaderSize, HeaderSize+2*len(pairs))
		binary.LittleEndian.PutUint16(block, SelectorRuns)
		for _, pair := range pairs {
			block = append(block, pair.Value, pair.Count)
		}
		return block
	}

	block := make([]byte, HeaderSize, HeaderSize+len(data))
	binary.LittleEndian.PutUint16(block, SelectorRaw)
	return append(block, data...)
}

// Decode restores the original bytes from a run-length block
func Decode(block []byte) ([]byte, error) {
	selector, payload, err := split(block)
	if err != nil {
		return nil, err
	}

	if selector == SelectorRaw {
		return append([]byte{}, payload...), nil
	}

	total, err := decodedLength(payload)
	if err != nil {
		return nil, err
	}

	output := make([]byte, 0, total)
	for i := 0; i < len(payload); i += 2 {
		value, count := payload[i], int(payload[i+1])
		for j := 0; j < count; j++ {
			output = append(output, value)
		}
	}

	return output, nil
}

func split(block []byte) (uint16, []byte, error) {
	if len(block) < HeaderSize {
		return 0, nil, errors.Wrapf(codec.ErrInvalidInput,
			"Run-length block needs a %d-byte selector, got %d bytes", HeaderSize, len(block))
	}
	return binary.LittleEndian.Uint16(block[:HeaderSize]), block[HeaderSize:], nil
}

// decodedLength validates a pair payload and returns its expanded size
func decodedLength(payload []byte) (int, error) {
	if len(payload)%2 != 0 {
		return 0, errors.Wrapf(codec.ErrCorruptStream,
			"Run-length payload has odd length %d", len(payload))
	}

	total := 0
	for i := 1; i < len(payload); i += 2 {
		if payload[i] == 0 {
			return 0, errors.Wrapf(codec.ErrCorruptStream, "Pair %d has a zero count", i/2)
		}
		total += int(payload[i])
	}
	return total, nil
}
