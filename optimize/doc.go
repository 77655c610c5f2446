// Package optimize rewrites PNG files into smaller equivalents before they
// are embedded in an icon.
//
// The rewrite keeps IHDR, PLTE, tRNS, IEND and any unknown critical chunk,
// drops every other ancillary chunk, and replaces the IDAT sequence with the
// same inflated bytes recompressed by github.com/klauspost/compress/zlib.
// The result always needs to be parsed again, since chunk offsets change.
package optimize
