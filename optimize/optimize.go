package optimize

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zlib"
	"go.uber.org/zap"

	"github.com/krobbi/pico/errors"
	"github.com/krobbi/pico/png"
)

// Optimizer losslessly shrinks PNG files. It strips ancillary chunks other
// than tRNS and recompresses the image data into a single zlib stream.
// Scanlines are carried through as opaque inflated bytes.
type Optimizer struct {
	level Level
}

// New creates an Optimizer using the given level.
func New(level Level) *Optimizer {
	return &Optimizer{level: level}
}

// Level returns the optimizer's level.
func (o *Optimizer) Level() Level {
	return o.level
}

// Optimize returns a smaller equivalent of data, or data itself when the
// rewrite is not smaller.
func (o *Optimizer) Optimize(data []byte) ([]byte, error) {
	chunks, err := png.Chunks(data)
	if err != nil {
		return nil, err
	}

	var (
		compressed bytes.Buffer
		before     []png.Chunk
		after      []png.Chunk
		seenData   bool
		stripped   int
	)
	for _, c := range chunks {
		switch {
		case c.Type == png.ChunkIDAT:
			compressed.Write(c.Data)
			seenData = true
		case keep(c.Type):
			if seenData {
				after = append(after, c)
			} else {
				before = append(before, c)
			}
		default:
			stripped++
		}
	}
	if !seenData {
		return nil, errors.OptimizeFailed("no IDAT chunk", nil)
	}

	raw, err := inflate(compressed.Bytes())
	if err != nil {
		return nil, err
	}
	recompressed, err := deflate(raw, o.level.zlibLevel())
	if err != nil {
		return nil, err
	}

	w := png.NewWriter(len(data))
	for _, c := range before {
		if err := w.WriteChunk(c.Type, c.Data); err != nil {
			return nil, err
		}
	}
	for rest := recompressed; len(rest) > 0; {
		n := min(len(rest), png.MaxChunkLength)
		if err := w.WriteChunk(png.ChunkIDAT, rest[:n]); err != nil {
			return nil, err
		}
		rest = rest[n:]
	}
	for _, c := range after {
		if err := w.WriteChunk(c.Type, c.Data); err != nil {
			return nil, err
		}
	}

	out := w.Bytes()
	Logger().Debug("recompressed PNG",
		zap.String("level", string(o.level)),
		zap.Int("before", len(data)),
		zap.Int("after", len(out)),
		zap.Int("stripped_chunks", stripped))

	if len(out) >= len(data) {
		return data, nil
	}
	return out, nil
}

// keep reports whether a non-IDAT chunk survives optimization.
func keep(t png.ChunkType) bool {
	return !t.Ancillary() || t == png.ChunkTRNS
}

func inflate(data []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.OptimizeFailed("open image data stream", err)
	}
	defer zr.Close()

	raw, err := io.ReadAll(zr)
	if err != nil {
		return nil, errors.OptimizeFailed("inflate image data", err)
	}
	return raw, nil
}

func deflate(raw []byte, level int) ([]byte, error) {
	var buf bytes.Buffer
	zw, err := zlib.NewWriterLevel(&buf, level)
	if err != nil {
		return nil, errors.OptimizeFailed("create compressor", err)
	}
	if _, err := zw.Write(raw); err != nil {
		return nil, errors.OptimizeFailed("deflate image data", err)
	}
	if err := zw.Close(); err != nil {
		return nil, errors.OptimizeFailed("finish image data stream", err)
	}
	return buf.Bytes(), nil
}
