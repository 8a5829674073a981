package codec

// Raw copies buffers unchanged in both directions
type Raw struct{}

// NewRaw creates the identity codec
func NewRaw() *Raw {
	return &Raw{}
}

// Encode returns a copy of data
func (c *Raw) Encode(data []byte) ([]byte, error) {
	return append([]byte{}, data...), nil
}

// Decode returns a copy of data
func (c *Raw) Decode(data []byte) ([]byte, error) {
	return append([]byte{}, data...), nil
}

// Name returns the codec name
func (c *Raw) Name() string {
	return "raw"
}

// Extension returns the suffix for raw copies
func (c *Raw) Extension() string {
	return ".bin"
}

func init() {
	Register(NewRaw())
}
