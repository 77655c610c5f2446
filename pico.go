package pico

import (
	"fmt"

	"github.com/krobbi/pico/errors"
	"github.com/krobbi/pico/packer"
	"github.com/krobbi/pico/png"
)

// Version is the pico release version.
const Version = "0.4.0"

// Pack parses every buffer as a PNG file and encodes them, in order, as one
// ICO file. When sort is set, images are ordered by descending resolution.
// A parse failure names the offending buffer by index.
func Pack(files [][]byte, sort bool) ([]byte, error) {
	images := make([]*png.Image, len(files))
	for i, data := range files {
		img, err := png.Parse(data)
		if err != nil {
			return nil, errors.WithPath(errors.PhaseLoad, fmt.Sprintf("#%d", i), err)
		}
		images[i] = img
	}
	return packer.Pack(images, sort)
}
