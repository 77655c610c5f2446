package png

import (
	"bytes"
	"encoding/binary"

	"github.com/krobbi/pico/errors"
)

// Cursor walks the chunks of a PNG buffer in file order. It tracks the
// current chunk's length, type and body offset so that several chunk types
// can be located in one forward pass.
type Cursor struct {
	data   []byte
	typ    ChunkType
	length uint32
	body   int // offset of the current chunk's data field
	field  int // next unread offset inside the current chunk's data
}

// NewCursor verifies the signature and positions the cursor on the first
// chunk.
func NewCursor(data []byte) (*Cursor, error) {
	if len(data) < SignatureSize {
		return nil, errors.Truncated("signature", 0, SignatureSize, len(data))
	}
	if !bytes.Equal(data[:SignatureSize], Signature[:]) {
		return nil, errors.SignatureInvalid(data[:SignatureSize])
	}

	c := &Cursor{data: data}
	if err := c.begin(SignatureSize); err != nil {
		return nil, err
	}
	return c, nil
}

// Type returns the current chunk's type.
func (c *Cursor) Type() ChunkType {
	return c.typ
}

// Len returns the current chunk's declared data length.
func (c *Cursor) Len() uint32 {
	return c.length
}

// Offset returns the byte offset of the current chunk's data field.
func (c *Cursor) Offset() int {
	return c.body
}

// Next skips the rest of the current chunk, including its CRC, and begins
// the following one.
func (c *Cursor) Next() error {
	return c.begin(c.body + int(c.length) + CRCSize)
}

// Find advances until the current chunk has type t. If the current chunk
// already matches, the cursor does not move.
func (c *Cursor) Find(t ChunkType) error {
	for c.typ != t {
		if err := c.Next(); err != nil {
			return err
		}
	}
	return nil
}

// Body returns the current chunk's data as a sub-slice of the buffer.
func (c *Cursor) Body() ([]byte, error) {
	end := c.body + int(c.length)
	if end > len(c.data) {
		return nil, errors.Truncated(c.typ.String()+".data", c.body, int(c.length), len(c.data)-c.body)
	}
	return c.data[c.body:end], nil
}

// ReadU8 reads the next byte of the current chunk's data.
func (c *Cursor) ReadU8(field string) (uint8, error) {
	b, err := c.take(field, 1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadU32 reads the next big-endian uint32 of the current chunk's data.
func (c *Cursor) ReadU32(field string) (uint32, error) {
	b, err := c.take(field, 4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// ReadDimension reads a width or height, rejecting zero.
func (c *Cursor) ReadDimension(field string) (uint32, error) {
	v, err := c.ReadU32(field)
	if err != nil {
		return 0, err
	}
	if v == 0 {
		return 0, errors.ZeroDimension(field)
	}
	return v, nil
}

// begin reads the chunk header at pos and makes that chunk current.
func (c *Cursor) begin(pos int) error {
	if pos < 0 || pos > len(c.data) || len(c.data)-pos < ChunkHeaderSize {
		have := 0
		if pos >= 0 && pos < len(c.data) {
			have = len(c.data) - pos
		}
		return errors.Truncated("chunk header", pos, ChunkHeaderSize, have)
	}
	c.length = binary.BigEndian.Uint32(c.data[pos : pos+4])
	copy(c.typ[:], c.data[pos+4:pos+8])
	c.body = pos + ChunkHeaderSize
	c.field = c.body
	return nil
}

// take returns the next n bytes of the current chunk's data.
func (c *Cursor) take(field string, n int) ([]byte, error) {
	end := c.field + n
	limit := c.body + int(c.length)
	if end > limit || end > len(c.data) {
		have := min(limit, len(c.data)) - c.field
		if have < 0 {
			have = 0
		}
		return nil, errors.Truncated(field, c.field, n, have)
	}
	b := c.data[c.field:end]
	c.field = end
	return b, nil
}
