package optimize

import (
	"github.com/klauspost/compress/zlib"

	"github.com/krobbi/pico/errors"
)

// Level selects how hard the optimizer compresses image data.
type Level string

const (
	LevelFast    Level = "fast"
	LevelDefault Level = "default"
	LevelBest    Level = "best"
)

// ParseLevel validates a level name.
func ParseLevel(s string) (Level, error) {
	switch Level(s) {
	case LevelFast, LevelDefault, LevelBest:
		return Level(s), nil
	default:
		return "", errors.InvalidConfig("level", s, "optimization level must be fast, default or best")
	}
}

// zlibLevel maps a Level to a compression level.
func (l Level) zlibLevel() int {
	switch l {
	case LevelFast:
		return zlib.BestSpeed
	case LevelDefault:
		return zlib.DefaultCompression
	default:
		return zlib.BestCompression
	}
}
