package packer

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/krobbi/pico/errors"
)

// Collect expands sources into PNG file paths. Files are kept as given.
// Directories contribute their direct *.png entries in name order.
func Collect(sources []string) ([]string, error) {
	var paths []string
	for _, src := range sources {
		info, err := os.Stat(src)
		if err != nil {
			if stderrors.Is(err, fs.ErrNotExist) {
				return nil, errors.InputMissing(src)
			}
			return nil, errors.IO(errors.PhaseLoad, src, err)
		}

		if !info.IsDir() {
			paths = append(paths, src)
			continue
		}

		entries, err := os.ReadDir(src)
		if err != nil {
			return nil, errors.IO(errors.PhaseLoad, src, err)
		}
		for _, e := range entries {
			if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".png") {
				continue
			}
			paths = append(paths, filepath.Join(src, e.Name()))
		}
	}

	if len(paths) == 0 {
		return nil, errors.NoInputs()
	}
	return paths, nil
}
