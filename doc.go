// Package pico packs PNG images into Windows ICO icon files.
//
// Every image is embedded in the icon as-is (PNG-in-ICO), so no pixel data is
// ever decoded. Only the PNG header fields an ICO directory entry needs are
// read.
//
// # Architecture Overview
//
//	pico/              Root package with the in-memory Pack entry point
//	├── png/           PNG chunk cursor, header reader and chunk writer
//	├── ico/           ICO directory encoder and resolution ordering
//	├── optimize/      Lossless PNG recompression
//	├── packer/        File collection, validation and output handling
//	├── config/        Run options and TOML config files
//	├── errors/        Structured error types
//	└── cmd/pico/      Command line interface
//
// # Quick Start
//
// Pack PNG files already in memory:
//
//	data, err := pico.Pack([][]byte{png16, png32, png256}, true)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("icon.ico", data, 0o644)
//
// Or run a full job against the filesystem:
//
//	cfg := config.Default()
//	cfg.Sources = []string{"icons"}
//	res, err := packer.New(cfg).Run()
//
// # Errors
//
// Failures are *errors.Error values carrying a Phase and a Kind:
//
//	if errors.Is(err, &errors.Error{Kind: errors.KindOutputExists}) {
//	    // rerun with Force
//	}
package pico
