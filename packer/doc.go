// Package packer turns a set of PNG files into one ICO file.
//
// A run collects input paths, refuses to overwrite an existing output unless
// forced, reads and validates every input, optionally recompresses it, then
// encodes and writes the icon:
//
//	res, err := packer.New(cfg).Run()
//
// Pack is the in-memory half of a run and touches no files.
package packer
