// Package binary provides the fixed-width byte writer shared by the PNG and
// ICO encoders.
package binary

import (
	"bytes"
	"encoding/binary"
)

// Writer provides buffered writing of fixed-width integers in either byte
// order.
type Writer struct {
	buf *bytes.Buffer
}

// NewWriter creates a new Writer with room for capacity bytes.
func NewWriter(capacity int) *Writer {
	return &Writer{buf: bytes.NewBuffer(make([]byte, 0, capacity))}
}

// Bytes returns the written bytes.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Len returns the number of bytes written.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// Byte writes a single byte.
func (w *Writer) Byte(b byte) {
	w.buf.WriteByte(b)
}

// WriteBytes writes a byte slice.
func (w *Writer) WriteBytes(data []byte) {
	w.buf.Write(data)
}

// WriteU16LE writes a little-endian uint16.
func (w *Writer) WriteU16LE(v uint16) {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	w.buf.Write(buf[:])
}

// WriteU32LE writes a little-endian uint32.
func (w *Writer) WriteU32LE(v uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	w.buf.Write(buf[:])
}

// WriteU32BE writes a big-endian uint32.
func (w *Writer) WriteU32BE(v uint32) {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	w.buf.Write(buf[:])
}
