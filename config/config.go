// Package config holds pico's run options and loads them from TOML files.
package config

import (
	stderrors "errors"
	"io/fs"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/krobbi/pico/errors"
	"github.com/krobbi/pico/optimize"
)

// Summary styling modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// DefaultOutput is the output path used when none is given.
const DefaultOutput = "icon.ico"

// Config describes one packing run.
type Config struct {
	Output   string   `toml:"output"`
	Level    string   `toml:"level"`
	Color    string   `toml:"color"`
	Sources  []string `toml:"sources"`
	Force    bool     `toml:"force"`
	Sort     bool     `toml:"sort"`
	Optimize bool     `toml:"optimize"`
	Verbose  bool     `toml:"verbose"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Output: DefaultOutput,
		Level:  string(optimize.LevelBest),
		Color:  ColorAuto,
	}
}

// Load decodes a TOML file on top of Default. Keys the file sets override
// the defaults; unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return Config{}, errors.IO(errors.PhaseConfig, path, err)
		}
		return Config{}, errors.New(errors.PhaseConfig, errors.KindInvalidConfig).
			Path(path).
			Cause(err).
			Detail("malformed TOML").
			Build()
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.PhaseConfig, errors.KindInvalidConfig).
			Path(path).
			Field(keys[0]).
			Value(keys).
			Detail("unknown keys: %s", strings.Join(keys, ", ")).
			Build()
	}

	return cfg, nil
}

// Validate checks that every enumerated option holds a known value.
func (c Config) Validate() error {
	if c.Output == "" {
		return errors.InvalidConfig("output", c.Output, "output path must not be empty")
	}

	if _, err := optimize.ParseLevel(c.Level); err != nil {
		return err
	}

	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return errors.InvalidConfig("color", c.Color, "color must be auto, always or never")
	}

	return nil
}
