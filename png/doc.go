// Package png reads the structure of PNG files without decoding pixels.
//
// A PNG file is an 8-byte signature followed by chunks, each framed as a
// 4-byte big-endian data length, a 4-byte ASCII type, the data, and a
// 4-byte CRC. Parse walks the chunks with a Cursor and extracts only what an
// ICO directory entry needs:
//
//	data, _ := os.ReadFile("icon-32.png")
//	img, err := png.Parse(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(img.Width, img.Height, img.BitsPerPixel())
//
// CRCs are skipped, never validated, and IDAT contents are never touched.
//
// # Errors
//
// Failures are *errors.Error values in the decode phase with one of the
// kinds signature_invalid, truncated_data, zero_dimension,
// invalid_bit_depth or invalid_color_layout.
//
// # Writing
//
// Writer emits a signature and CRC-checked chunks. It is used by the
// optimizer to rebuild a file from the chunks returned by Chunks.
package png
