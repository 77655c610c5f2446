package ico

// ICO binary layout.
const (
	HeaderSize = 6  // reserved, type, count
	EntrySize  = 16 // one directory entry per image

	// TypeIcon is the header resource type of an icon. Cursors use 2.
	TypeIcon uint16 = 1

	// ColorPlanes is written to every entry. The format allows 0 or 1.
	ColorPlanes uint16 = 1

	// MaxEntries is the largest count the 16-bit header field holds.
	MaxEntries = 0xFFFF

	// MaxDimension is the largest width or height an entry can describe.
	// It is stored as 0.
	MaxDimension = 256

	// MaxPaletteSize is the largest palette an entry can describe. Zero
	// means no palette.
	MaxPaletteSize = 0xFF
)
