package codec

import "github.com/nuclio/errors"

var (
	// ErrCodecNotFound is returned when a codec is not found in the registry
	ErrCodecNotFound = errors.New("codec not found")

	// ErrInvalidParameter is returned when caller-supplied parameters are invalid
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInvalidInput is returned when a block is too short to hold its header
	ErrInvalidInput = errors.New("invalid input")

	// ErrCorruptStream is returned when a block's payload disagrees with its header
	ErrCorruptStream = errors.New("corrupt stream")

	// ErrMalformedTree is returned when a serialized Huffman tree cannot be rebuilt
	ErrMalformedTree = errors.New("malformed tree")
)

// IsInvalidInput reports whether err was caused by ErrInvalidInput
func IsInvalidInput(err error) bool {
	return err != nil && errors.RootCause(err) == ErrInvalidInput
}

// IsCorruptStream reports whether err was caused by ErrCorruptStream
func IsCorruptStream(err error) bool {
	return err != nil && errors.RootCause(err) == ErrCorruptStream
}

// IsMalformedTree reports whether err was caused by ErrMalformedTree
func IsMalformedTree(err error) bool {
	return err != nil && errors.RootCause(err) == ErrMalformedTree
}

// IsNotFound reports whether err was caused by ErrCodecNotFound
func IsNotFound(err error) bool {
	return err != nil && errors.RootCause(err) == ErrCodecNotFound
}
