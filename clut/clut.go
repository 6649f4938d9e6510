/*
Package clut implements the binary color look-up table format consumed by
the runtime loader.

The file is a single byte holding the number of entries, modulo 256, followed
by 4 bytes per entry in blue, green, red order with a zero pad byte so every
entry sits on a 4 byte boundary. A table of 256 entries therefore starts with
a count of zero.

Encode and Decode read and write whole files on their own. A converter that
also writes a listing builds the same bytes one entry at a time with Size
and Entry so both outputs are written in the same pass.
*/
package clut

import "image/color"

// Extension is the file suffix used for the palette file
const Extension = ".clut"

const (
	entrySize  = 4
	maxEntries = 256
)

// Size returns the count byte for a palette of n entries.
func Size(n int) byte {
	return byte(n % maxEntries)
}

// Entry packs c as blue, green, red and a zero pad byte.
func Entry(c color.Color) [entrySize]byte {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	return [entrySize]byte{rgba.B, rgba.G, rgba.R, 0x00}
}
