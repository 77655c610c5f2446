package main

import (
	stderrors "errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/krobbi/pico"
	"github.com/krobbi/pico/config"
	"github.com/krobbi/pico/optimize"
	"github.com/krobbi/pico/packer"
)

const usage = `Usage: pico [flags] <source>...

Pack PNG files, or directories of PNG files, into one ICO file.

Flags:
  -o, -output string   output ICO path (default icon.ico)
  -f, -force           overwrite an existing output file
  -s, -sort            sort images by descending resolution
  -z, -optimize        losslessly recompress PNG payloads
  -level string        optimization level: fast, default, best (default best)
  -config string       TOML configuration file
  -color string        summary styling: auto, always, never (default auto)
  -v, -verbose         debug logging to stderr
  -version             print version and exit
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// flags holds raw flag values before they are merged into a config.Config.
type flags struct {
	output     string
	level      string
	color      string
	configPath string
	force      bool
	sort       bool
	optimize   bool
	verbose    bool
	version    bool
}

func newFlagSet(f *flags, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("pico", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage) }

	def := config.Default()
	for _, name := range []string{"o", "output"} {
		fs.StringVar(&f.output, name, def.Output, "output ICO path")
	}
	for _, name := range []string{"f", "force"} {
		fs.BoolVar(&f.force, name, false, "overwrite an existing output file")
	}
	for _, name := range []string{"s", "sort"} {
		fs.BoolVar(&f.sort, name, false, "sort images by descending resolution")
	}
	for _, name := range []string{"z", "optimize"} {
		fs.BoolVar(&f.optimize, name, false, "losslessly recompress PNG payloads")
	}
	for _, name := range []string{"v", "verbose"} {
		fs.BoolVar(&f.verbose, name, false, "debug logging to stderr")
	}
	fs.StringVar(&f.level, "level", def.Level, "optimization level")
	fs.StringVar(&f.color, "color", def.Color, "summary styling")
	fs.StringVar(&f.configPath, "config", "", "TOML configuration file")
	fs.BoolVar(&f.version, "version", false, "print version and exit")
	return fs
}

func run(args []string, stdout, stderr io.Writer) int {
	var f flags
	fs := newFlagSet(&f, stderr)
	if err := fs.Parse(args); err != nil {
		if stderrors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if f.version {
		fmt.Fprintf(stdout, "pico %s\n", pico.Version)
		return 0
	}

	cfg, err := buildConfig(fs, &f)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	log, err := newLogger(cfg.Verbose)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	defer log.Sync()
	packer.SetLogger(log)
	optimize.SetLogger(log.Named("optimize"))

	res, err := packer.New(cfg).Run()
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	fmt.Fprint(stdout, renderSummary(newRenderer(stdout, cfg.Color), res))
	return 0
}

// buildConfig layers defaults, the config file and explicitly set flags.
// Positional arguments replace any sources from the config file.
func buildConfig(fs *flag.FlagSet, f *flags) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "o", "output":
			cfg.Output = f.output
		case "f", "force":
			cfg.Force = f.force
		case "s", "sort":
			cfg.Sort = f.sort
		case "z", "optimize":
			cfg.Optimize = f.optimize
		case "v", "verbose":
			cfg.Verbose = f.verbose
		case "level":
			cfg.Level = f.level
		case "color":
			cfg.Color = f.color
		}
	})

	if fs.NArg() > 0 {
		cfg.Sources = fs.Args()
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return log, nil
}
