package packer

import (
	stderrors "errors"
	"io/fs"
	"os"

	"go.uber.org/zap"

	"github.com/krobbi/pico/config"
	"github.com/krobbi/pico/errors"
	"github.com/krobbi/pico/ico"
	"github.com/krobbi/pico/optimize"
	"github.com/krobbi/pico/png"
)

// Optimizer rewrites a PNG file into a smaller equivalent.
type Optimizer interface {
	Optimize(data []byte) ([]byte, error)
}

// Entry describes one image packed into the icon.
type Entry struct {
	PaletteSize  *uint32
	Path         string
	OriginalSize int // bytes read from disk
	Size         int // bytes embedded in the icon
	Width        uint32
	Height       uint32
	BitsPerPixel uint16
}

// Result summarizes a completed run.
type Result struct {
	Output  string
	Entries []Entry // in icon order
	Size    int
}

// Packer runs one packing job.
type Packer struct {
	optimizer Optimizer
	cfg       config.Config
}

// New creates a Packer for cfg. When cfg.Optimize is set, inputs are
// recompressed at cfg.Level.
func New(cfg config.Config) *Packer {
	p := &Packer{cfg: cfg}
	if cfg.Optimize {
		p.optimizer = optimize.New(optimize.Level(cfg.Level))
	}
	return p
}

// WithOptimizer replaces the optimizer used when cfg.Optimize is set.
func (p *Packer) WithOptimizer(o Optimizer) *Packer {
	if p.cfg.Optimize {
		p.optimizer = o
	}
	return p
}

// Run packs every input into the output file.
func (p *Packer) Run() (*Result, error) {
	paths, err := Collect(p.cfg.Sources)
	if err != nil {
		return nil, err
	}

	if err := p.checkOutput(); err != nil {
		return nil, err
	}

	images := make([]*png.Image, 0, len(paths))
	entries := make(map[*png.Image]Entry, len(paths))
	for _, path := range paths {
		img, entry, err := p.load(path)
		if err != nil {
			return nil, err
		}
		images = append(images, img)
		entries[img] = entry
	}

	images = order(images, p.cfg.Sort)
	data, err := ico.Encode(images)
	if err != nil {
		return nil, err
	}

	if err := p.write(data); err != nil {
		return nil, err
	}

	res := &Result{
		Output:  p.cfg.Output,
		Entries: make([]Entry, len(images)),
		Size:    len(data),
	}
	for i, img := range images {
		res.Entries[i] = entries[img]
	}

	Logger().Info("wrote icon",
		zap.String("path", res.Output),
		zap.Int("images", len(res.Entries)),
		zap.Int("size", res.Size))
	return res, nil
}

// Pack encodes images as an ICO file, sorting them by descending
// resolution first when sort is set.
func Pack(images []*png.Image, sort bool) ([]byte, error) {
	return ico.Encode(order(images, sort))
}

func order(images []*png.Image, sort bool) []*png.Image {
	if sort {
		return ico.SortByResolution(images)
	}
	return images
}

func (p *Packer) checkOutput() error {
	if p.cfg.Force {
		return nil
	}
	_, err := os.Stat(p.cfg.Output)
	switch {
	case err == nil:
		return errors.OutputExists(p.cfg.Output)
	case stderrors.Is(err, fs.ErrNotExist):
		return nil
	default:
		return errors.IO(errors.PhaseWrite, p.cfg.Output, err)
	}
}

func (p *Packer) load(path string) (*png.Image, Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, Entry{}, errors.IO(errors.PhaseLoad, path, err)
	}

	img, err := png.Parse(data)
	if err != nil {
		return nil, Entry{}, errors.WithPath(errors.PhaseLoad, path, err)
	}

	animated, err := png.Animated(data)
	if err != nil {
		return nil, Entry{}, errors.WithPath(errors.PhaseLoad, path, err)
	}
	if animated {
		return nil, Entry{}, errors.InputAnimated(path)
	}

	if p.optimizer != nil {
		out, err := p.optimizer.Optimize(data)
		if err != nil {
			return nil, Entry{}, optimizeError(path, err)
		}
		if img, err = png.Parse(out); err != nil {
			return nil, Entry{}, errors.WithPath(errors.PhaseOptimize, path, err)
		}
		Logger().Debug("optimized image",
			zap.String("path", path),
			zap.Int("before", len(data)),
			zap.Int("after", len(out)))
	}

	entry := Entry{
		Path:         path,
		Width:        img.Width,
		Height:       img.Height,
		BitsPerPixel: img.BitsPerPixel(),
		PaletteSize:  img.PaletteSize,
		OriginalSize: len(data),
		Size:         len(img.Data),
	}
	Logger().Info("read image",
		zap.String("path", path),
		zap.Uint32("width", entry.Width),
		zap.Uint32("height", entry.Height),
		zap.Uint16("bpp", entry.BitsPerPixel))
	return img, entry, nil
}

// optimizeError annotates an optimizer failure with path. Errors that are
// not *errors.Error are reported as optimize_failed.
func optimizeError(path string, err error) error {
	var e *errors.Error
	if !stderrors.As(err, &e) {
		err = errors.OptimizeFailed("optimizer failed", err)
	}
	return errors.WithPath(errors.PhaseOptimize, path, err)
}

// write creates the output file. Without Force the file must not exist,
// so a file created after checkOutput is still not overwritten.
func (p *Packer) write(data []byte) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !p.cfg.Force {
		flags |= os.O_EXCL
	}

	f, err := os.OpenFile(p.cfg.Output, flags, 0o644)
	if err != nil {
		if stderrors.Is(err, fs.ErrExist) {
			return errors.OutputExists(p.cfg.Output)
		}
		return errors.IO(errors.PhaseWrite, p.cfg.Output, err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		return errors.IO(errors.PhaseWrite, p.cfg.Output, err)
	}
	if err := f.Close(); err != nil {
		return errors.IO(errors.PhaseWrite, p.cfg.Output, err)
	}
	return nil
}
