package ico

import "github.com/krobbi/pico/png"

// SortByResolution returns images ordered by descending pixel count.
// Images with equal resolution keep their relative order.
func SortByResolution(images []*png.Image) []*png.Image {
	sorted := make([]*png.Image, 0, len(images))
	for _, img := range images {
		res := img.Resolution()

		// Walk back past strictly smaller images only.
		i := len(sorted)
		for i > 0 && sorted[i-1].Resolution() < res {
			i--
		}

		sorted = append(sorted, nil)
		copy(sorted[i+1:], sorted[i:])
		sorted[i] = img
	}
	return sorted
}
