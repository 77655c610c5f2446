package png

// Image is the structural metadata of a PNG file together with its
// unmodified bytes.
type Image struct {
	// Data is the complete original file, signature and all chunks.
	Data []byte

	// PaletteSize is the number of PLTE entries. It is nil unless the image
	// uses indexed color.
	PaletteSize *uint32

	Width     uint32
	Height    uint32
	BitDepth  BitDepth
	ColorType ColorType
}

// BitsPerPixel returns the bit depth multiplied by the samples per pixel.
func (img *Image) BitsPerPixel() uint16 {
	return uint16(img.BitDepth) * uint16(img.ColorType.Samples())
}

// Resolution returns the number of pixels in the image.
func (img *Image) Resolution() uint64 {
	return uint64(img.Width) * uint64(img.Height)
}
