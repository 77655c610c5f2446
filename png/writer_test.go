package png_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/krobbi/pico/png"
)

func TestWriterIEND(t *testing.T) {
	w := png.NewWriter(0)
	if err := w.WriteChunk(png.ChunkIEND, nil); err != nil {
		t.Fatalf("WriteChunk: %v", err)
	}

	want := append(append([]byte(nil), png.Signature[:]...),
		0, 0, 0, 0, 'I', 'E', 'N', 'D', 0xAE, 0x42, 0x60, 0x82)
	if !bytes.Equal(w.Bytes(), want) {
		t.Errorf("got % x, want % x", w.Bytes(), want)
	}
}

func TestWriterRoundTrip(t *testing.T) {
	header := binary.BigEndian.AppendUint32(nil, 48)
	header = binary.BigEndian.AppendUint32(header, 24)
	header = append(header, 8, 3, 0, 0, 0)

	w := png.NewWriter(128)
	for _, c := range []png.Chunk{
		{Type: png.ChunkIHDR, Data: header},
		{Type: png.ChunkPLTE, Data: make([]byte, 12*3)},
		{Type: png.ChunkIDAT, Data: []byte{0x78, 0x9c, 0x03, 0x00}},
		{Type: png.ChunkIEND},
	} {
		if err := w.WriteChunk(c.Type, c.Data); err != nil {
			t.Fatalf("WriteChunk %s: %v", c.Type, err)
		}
	}

	// The writer must agree byte for byte with an independently framed file.
	expected := file(
		chunk("IHDR", header),
		chunk("PLTE", make([]byte, 12*3)),
		chunk("IDAT", []byte{0x78, 0x9c, 0x03, 0x00}),
		chunk("IEND", nil),
	)
	if !bytes.Equal(w.Bytes(), expected) {
		t.Fatal("writer output differs from reference framing")
	}

	img, err := png.Parse(w.Bytes())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if img.Width != 48 || img.Height != 24 || img.BitsPerPixel() != 8 {
		t.Errorf("got %dx%d %dbpp, want 48x24 8bpp", img.Width, img.Height, img.BitsPerPixel())
	}
	if img.PaletteSize == nil || *img.PaletteSize != 12 {
		t.Errorf("PaletteSize = %v, want 12", img.PaletteSize)
	}
}
