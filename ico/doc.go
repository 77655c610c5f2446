// Package ico writes multi-resolution ICO files with PNG payloads.
//
// The file is a 6-byte header, one 16-byte directory entry per image, and
// the PNG files concatenated in directory order. All header and entry
// integers are little-endian:
//
//	header   reserved u16 = 0, type u16 = 1, count u16
//	entry    width u8, height u8, palette u8, reserved u8,
//	         planes u16 = 1, bits per pixel u16,
//	         size u32, offset u32
//
// A width or height of 256 is stored as 0. Any value that does not fit its
// field fails the whole encode with an encode_failed error; more than 65535
// images fail with too_many_entries. Nothing is clamped.
//
//	images = ico.SortByResolution(images)
//	data, err := ico.Encode(images)
package ico
