package codec

// Codec is the universal interface for all byte codecs
type Codec interface {
	// Encode converts a raw buffer into the codec's representation
	Encode(data []byte) ([]byte, error)

	// Decode converts a codec block back into the raw buffer
	Decode(data []byte) ([]byte, error)

	// Name returns the identifier used to select the codec (the conversion mode)
	Name() string

	// Extension returns the file suffix for encoded output, including the dot
	Extension() string
}

// Inspector is implemented by codecs that can describe an encoded block
// without fully decoding it
type Inspector interface {
	// Inspect returns ordered key/value pairs describing the block header
	Inspect(data []byte) ([]Field, error)
}

// Field is a single named property of an encoded block
type Field struct {
	Name  string
	Value interface{}
}
