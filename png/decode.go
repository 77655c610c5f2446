package png

import "github.com/krobbi/pico/errors"

// Parse reads the structural metadata of a PNG file without decompressing
// any image data. The returned Image keeps data as-is.
func Parse(data []byte) (*Image, error) {
	c, err := NewCursor(data)
	if err != nil {
		return nil, err
	}

	if err := c.Find(ChunkIHDR); err != nil {
		return nil, err
	}

	width, err := c.ReadDimension("IHDR.width")
	if err != nil {
		return nil, err
	}
	height, err := c.ReadDimension("IHDR.height")
	if err != nil {
		return nil, err
	}

	depthByte, err := c.ReadU8("IHDR.bit_depth")
	if err != nil {
		return nil, err
	}
	depth, ok := ParseBitDepth(depthByte)
	if !ok {
		return nil, errors.InvalidBitDepth(depthByte)
	}

	colorByte, err := c.ReadU8("IHDR.color_type")
	if err != nil {
		return nil, err
	}
	color, ok := ParseColorType(colorByte)
	if !ok {
		return nil, errors.InvalidColorLayout(colorByte)
	}

	img := &Image{
		Width:     width,
		Height:    height,
		BitDepth:  depth,
		ColorType: color,
		Data:      data,
	}

	if color == ColorIndexed {
		if err := c.Find(ChunkPLTE); err != nil {
			return nil, err
		}
		body, err := c.Body()
		if err != nil {
			return nil, err
		}
		size := uint32(len(body) / 3)
		img.PaletteSize = &size
	}

	return img, nil
}

// Animated reports whether an animation control chunk appears before the
// first image data chunk.
func Animated(data []byte) (bool, error) {
	c, err := NewCursor(data)
	if err != nil {
		return false, err
	}
	for {
		switch c.Type() {
		case ChunkACTL:
			return true, nil
		case ChunkIDAT, ChunkIEND:
			return false, nil
		}
		if err := c.Next(); err != nil {
			return false, err
		}
	}
}

// Chunk is one chunk of a PNG file. Data aliases the parsed buffer.
type Chunk struct {
	Data []byte
	Type ChunkType
}

// Chunks returns every chunk up to and including IEND.
func Chunks(data []byte) ([]Chunk, error) {
	c, err := NewCursor(data)
	if err != nil {
		return nil, err
	}

	var chunks []Chunk
	for {
		body, err := c.Body()
		if err != nil {
			return nil, err
		}
		chunks = append(chunks, Chunk{Type: c.Type(), Data: body})
		if c.Type() == ChunkIEND {
			return chunks, nil
		}
		if err := c.Next(); err != nil {
			return nil, err
		}
	}
}
