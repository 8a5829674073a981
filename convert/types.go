package convert

import "github.com/nuclio/errors"

// Direction tells a job whether to encode or decode its source
type Direction string

const (
	DirectionEncode Direction = "encode"
	DirectionDecode Direction = "decode"
)

// ParseDirection validates a direction name
func ParseDirection(name string) (Direction, error) {
	switch Direction(name) {
	case DirectionEncode, DirectionDecode:
		return Direction(name), nil
	default:
		return "", errors.Errorf("Invalid direction %q - must be encode / decode", name)
	}
}

// Job describes converting one file
type Job struct {
	SourcePath      string
	DestinationPath string
	CodecName       string
	Direction       Direction
	Overwrite       bool
}

// Result describes a completed conversion
type Result struct {
	Job          *Job
	InputSize    int
	OutputSize   int
	InputDigest  uint64
	OutputDigest uint64
}

// VerifyResult describes an encode/decode round trip
type VerifyResult struct {
	CodecName     string
	InputSize     int
	EncodedSize   int
	InputDigest   uint64
	DecodedDigest uint64
}

// Conversion failures. Codec failures keep their codec package error kinds.
var (
	ErrModeNotSelected   = errors.New("conversion mode not selected")
	ErrSourceNotFound    = errors.New("source file does not exist")
	ErrDestinationEmpty  = errors.New("destination path is empty")
	ErrDestinationExists = errors.New("destination file already exists")
	ErrRoundTripMismatch = errors.New("decoded data differs from input")
)
