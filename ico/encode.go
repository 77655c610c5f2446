package ico

import (
	"fmt"
	"io"
	"math"

	"github.com/krobbi/pico/errors"
	"github.com/krobbi/pico/internal/binary"
	"github.com/krobbi/pico/png"
)

// entry is a directory entry after every field has been narrowed.
type entry struct {
	width   uint8
	height  uint8
	palette uint8
	bpp     uint16
	size    uint32
	offset  uint32
}

// Encode serializes images, in order, into an ICO file with each PNG
// embedded unchanged. Nothing is produced unless every entry fits its
// fixed-width fields.
func Encode(images []*png.Image) ([]byte, error) {
	if len(images) > MaxEntries {
		return nil, errors.TooManyEntries(len(images), MaxEntries)
	}

	entries := make([]entry, len(images))
	offset := uint64(HeaderSize + len(images)*EntrySize)
	for i, img := range images {
		e, err := makeEntry(i, img, offset)
		if err != nil {
			return nil, err
		}
		entries[i] = e
		offset += uint64(len(img.Data))
	}

	w := binary.NewWriter(int(offset))

	// Header
	w.WriteU16LE(0) // reserved
	w.WriteU16LE(TypeIcon)
	w.WriteU16LE(uint16(len(images)))

	for _, e := range entries {
		w.Byte(e.width)
		w.Byte(e.height)
		w.Byte(e.palette)
		w.Byte(0) // reserved
		w.WriteU16LE(ColorPlanes)
		w.WriteU16LE(e.bpp)
		w.WriteU32LE(e.size)
		w.WriteU32LE(e.offset)
	}

	for _, img := range images {
		w.WriteBytes(img.Data)
	}

	return w.Bytes(), nil
}

// EncodeTo encodes images and writes the result to w.
func EncodeTo(w io.Writer, images []*png.Image) (int64, error) {
	data, err := Encode(images)
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	return int64(n), err
}

func makeEntry(i int, img *png.Image, offset uint64) (entry, error) {
	var e entry
	var err error

	if e.width, err = dimension(fieldName(i, "width"), img.Width); err != nil {
		return e, err
	}
	if e.height, err = dimension(fieldName(i, "height"), img.Height); err != nil {
		return e, err
	}
	if e.palette, err = paletteSize(fieldName(i, "palette"), img.PaletteSize); err != nil {
		return e, err
	}
	e.bpp = img.BitsPerPixel()

	size := uint64(len(img.Data))
	if size > math.MaxUint32 {
		return e, errors.Unrepresentable(fieldName(i, "size"), size, "payload exceeds 4 GiB")
	}
	e.size = uint32(size)

	if offset > math.MaxUint32 {
		return e, errors.Unrepresentable(fieldName(i, "offset"), offset, "payload starts beyond 4 GiB")
	}
	e.offset = uint32(offset)

	return e, nil
}

// dimension narrows a width or height. 256 is stored as 0.
func dimension(field string, v uint32) (uint8, error) {
	switch {
	case v >= 1 && v < MaxDimension:
		return uint8(v), nil
	case v == MaxDimension:
		return 0, nil
	default:
		return 0, errors.Unrepresentable(field, v, "dimension must be between 1 and 256")
	}
}

// paletteSize narrows an optional palette size. Absent is stored as 0.
func paletteSize(field string, v *uint32) (uint8, error) {
	if v == nil {
		return 0, nil
	}
	if *v == 0 || *v > MaxPaletteSize {
		return 0, errors.Unrepresentable(field, *v, "palette size must be between 1 and 255")
	}
	return uint8(*v), nil
}

func fieldName(i int, name string) string {
	return fmt.Sprintf("entry[%d].%s", i, name)
}
