package png

// Signature is the fixed 8-byte prefix of every PNG file.
var Signature = [SignatureSize]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// Binary layout sizes.
const (
	SignatureSize   = 8  // bytes before the first chunk
	ChunkHeaderSize = 8  // 4-byte big-endian length + 4-byte type
	CRCSize         = 4  // trailing checksum after each chunk body
	IHDRSize        = 13 // width, height, depth, color, compression, filter, interlace

	// MaxChunkLength is the largest data length a chunk may declare.
	MaxChunkLength = 1<<31 - 1
)

// ChunkType is the 4-byte ASCII tag of a chunk.
type ChunkType [4]byte

// String returns the tag as text.
func (t ChunkType) String() string {
	return string(t[:])
}

// Ancillary reports whether the chunk is safe to drop (lowercase first letter).
func (t ChunkType) Ancillary() bool {
	return t[0]&0x20 != 0
}

// Chunk types read or written by pico.
var (
	ChunkIHDR = ChunkType{'I', 'H', 'D', 'R'} // image header
	ChunkPLTE = ChunkType{'P', 'L', 'T', 'E'} // palette
	ChunkIDAT = ChunkType{'I', 'D', 'A', 'T'} // compressed image data
	ChunkIEND = ChunkType{'I', 'E', 'N', 'D'} // image trailer
	ChunkTRNS = ChunkType{'t', 'R', 'N', 'S'} // transparency
	ChunkACTL = ChunkType{'a', 'c', 'T', 'L'} // animation control
)

// BitDepth is the number of bits per sample or per palette index.
type BitDepth uint8

// Bit depths defined by the PNG format.
const (
	BitDepth1  BitDepth = 1
	BitDepth2  BitDepth = 2
	BitDepth4  BitDepth = 4
	BitDepth8  BitDepth = 8
	BitDepth16 BitDepth = 16
)

// ParseBitDepth maps a raw header byte to a BitDepth.
func ParseBitDepth(b byte) (BitDepth, bool) {
	switch BitDepth(b) {
	case BitDepth1, BitDepth2, BitDepth4, BitDepth8, BitDepth16:
		return BitDepth(b), true
	default:
		return 0, false
	}
}

// ColorType is the color-sample layout of an image.
type ColorType uint8

// Color types defined by the PNG format.
const (
	ColorGrayscale      ColorType = 0
	ColorTruecolor      ColorType = 2
	ColorIndexed        ColorType = 3
	ColorGrayscaleAlpha ColorType = 4
	ColorTruecolorAlpha ColorType = 6
)

// ParseColorType maps a raw header byte to a ColorType.
func ParseColorType(b byte) (ColorType, bool) {
	switch ColorType(b) {
	case ColorGrayscale, ColorTruecolor, ColorIndexed, ColorGrayscaleAlpha, ColorTruecolorAlpha:
		return ColorType(b), true
	default:
		return 0, false
	}
}

// Samples returns the number of samples per pixel.
func (c ColorType) Samples() uint8 {
	switch c {
	case ColorGrayscale, ColorIndexed:
		return 1
	case ColorGrayscaleAlpha:
		return 2
	case ColorTruecolor:
		return 3
	case ColorTruecolorAlpha:
		return 4
	default:
		return 0
	}
}

func (c ColorType) String() string {
	switch c {
	case ColorGrayscale:
		return "grayscale"
	case ColorTruecolor:
		return "truecolor"
	case ColorIndexed:
		return "indexed"
	case ColorGrayscaleAlpha:
		return "grayscale+alpha"
	case ColorTruecolorAlpha:
		return "truecolor+alpha"
	default:
		return "unknown"
	}
}
