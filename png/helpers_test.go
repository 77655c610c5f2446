package png_test

import (
	"encoding/binary"
	"hash/crc32"

	"github.com/krobbi/pico/png"
)

// chunk frames data as a PNG chunk with a valid CRC.
func chunk(tag string, data []byte) []byte {
	out := binary.BigEndian.AppendUint32(nil, uint32(len(data)))
	out = append(out, tag...)
	out = append(out, data...)
	crc := crc32.ChecksumIEEE(append([]byte(tag), data...))
	return binary.BigEndian.AppendUint32(out, crc)
}

func ihdr(width, height uint32, depth, color byte) []byte {
	data := binary.BigEndian.AppendUint32(nil, width)
	data = binary.BigEndian.AppendUint32(data, height)
	data = append(data, depth, color, 0, 0, 0)
	return chunk("IHDR", data)
}

func file(chunks ...[]byte) []byte {
	out := append([]byte(nil), png.Signature[:]...)
	for _, c := range chunks {
		out = append(out, c...)
	}
	return out
}

// minimal builds a structurally valid PNG. A PLTE chunk with paletteSize
// entries is included when paletteSize >= 0.
func minimal(width, height uint32, depth, color byte, paletteSize int) []byte {
	chunks := [][]byte{ihdr(width, height, depth, color)}
	if paletteSize >= 0 {
		chunks = append(chunks, chunk("PLTE", make([]byte, paletteSize*3)))
	}
	chunks = append(chunks,
		chunk("IDAT", []byte{0x78, 0x9c, 0x03, 0x00, 0x00, 0x00, 0x00, 0x01}),
		chunk("IEND", nil),
	)
	return file(chunks...)
}
