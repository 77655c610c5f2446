package png

import (
	"hash/crc32"

	"github.com/krobbi/pico/errors"
	"github.com/krobbi/pico/internal/binary"
)

// Writer assembles a PNG file chunk by chunk.
type Writer struct {
	w *binary.Writer
}

// NewWriter creates a Writer with the signature already written.
func NewWriter(capacity int) *Writer {
	w := binary.NewWriter(capacity)
	w.WriteBytes(Signature[:])
	return &Writer{w: w}
}

// WriteChunk appends a chunk with a CRC computed over its type and data.
func (pw *Writer) WriteChunk(t ChunkType, data []byte) error {
	if uint64(len(data)) > MaxChunkLength {
		return errors.Unrepresentable(t.String()+".length", len(data), "chunk data exceeds 2^31-1 bytes")
	}

	crc := crc32.NewIEEE()
	crc.Write(t[:])
	crc.Write(data)

	pw.w.WriteU32BE(uint32(len(data)))
	pw.w.WriteBytes(t[:])
	pw.w.WriteBytes(data)
	pw.w.WriteU32BE(crc.Sum32())
	return nil
}

// Bytes returns the file written so far.
func (pw *Writer) Bytes() []byte {
	return pw.w.Bytes()
}
