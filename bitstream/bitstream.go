// Package bitstream packs boolean bit sequences into bytes and back.
//
// Bits are ordered most-significant first inside each byte. A trailing
// partial byte is padded with zero bits on its low-order side.
package bitstream

import (
	"bytes"
	"io"

	"github.com/icza/bitio"
)

// Pack groups bits into bytes, most-significant bit first.
// A final group shorter than 8 bits is still emitted as one byte.
func Pack(bits []bool) []byte {
	w := NewWriter()
	w.WriteBools(bits)
	if err := w.Close(); err != nil {
		// bytes.Buffer writes do not return errors
		panic(err)
	}
	return w.Bytes()
}

// Unpack expands every byte into exactly 8 bits, most-significant first.
func Unpack(data []byte) []bool {
	bits := make([]bool, 0, len(data)*8)
	r := NewReader(data)
	for {
		bit, err := r.ReadBool()
		if err != nil {
			return bits
		}
		bits = append(bits, bit)
	}
}

// Writer accumulates bits and hands them out as packed bytes.
type Writer struct {
	buf   bytes.Buffer
	w     *bitio.Writer
	nbits int
}

// NewWriter creates an empty bit writer.
func NewWriter() *Writer {
	w := &Writer{}
	w.w = bitio.NewWriter(&w.buf)
	return w
}

// WriteBool appends a single bit.
func (w *Writer) WriteBool(bit bool) {
	w.w.TryWriteBool(bit)
	w.nbits++
}

// WriteBools appends bits in order.
func (w *Writer) WriteBools(bits []bool) {
	for _, bit := range bits {
		w.WriteBool(bit)
	}
}

// WriteUint8 appends the 8 bits of v, most-significant first.
func (w *Writer) WriteUint8(v byte) {
	w.w.TryWriteBits(uint64(v), 8)
	w.nbits += 8
}

// Len returns the number of bits written so far.
func (w *Writer) Len() int {
	return w.nbits
}

// Close flushes the pending partial byte, padding it with zero bits.
// It reports the first error hit by any earlier write.
// The writer must not be written to afterwards.
func (w *Writer) Close() error {
	if w.w.TryError != nil {
		return w.w.TryError
	}
	return w.w.Close()
}

// Bytes returns the packed output. Call Close first to include a trailing
// partial byte.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Reader is a monotonically advancing cursor over the bits of a byte slice.
// It never copies the underlying data.
type Reader struct {
	r     *bitio.Reader
	total int
	pos   int
}

// NewReader creates a cursor positioned at the first bit of data.
func NewReader(data []byte) *Reader {
	return &Reader{
		r:     bitio.NewReader(bytes.NewReader(data)),
		total: len(data) * 8,
	}
}

// ReadBool consumes one bit. It returns io.EOF once all bits are consumed.
func (r *Reader) ReadBool() (bool, error) {
	if r.pos >= r.total {
		return false, io.EOF
	}

	bit, err := r.r.ReadBool()
	if err != nil {
		return false, err
	}

	r.pos++
	return bit, nil
}

// ReadByte consumes 8 bits, most-significant first.
// It returns io.EOF without consuming anything if fewer than 8 bits remain.
func (r *Reader) ReadByte() (byte, error) {
	if r.Remaining() < 8 {
		return 0, io.EOF
	}

	v, err := r.r.ReadBits(8)
	if err != nil {
		return 0, err
	}

	r.pos += 8
	return byte(v), nil
}

// Position returns the number of bits consumed so far.
func (r *Reader) Position() int {
	return r.pos
}

// Remaining returns the number of bits not yet consumed.
func (r *Reader) Remaining() int {
	return r.total - r.pos
}
