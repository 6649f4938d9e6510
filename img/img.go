/*
Package img implements the raw indexed image format consumed by the runtime
loader.

Each frame is written as a 4 byte header holding the width and height as
little-endian 16-bit values, followed by width * height bytes of palette
indices in row-major order. Frames are concatenated with no separators so
the only framing is the fixed size header in front of each block of pixels.
There is no palette; that lives in the companion CLUT file.

Encode writes a single frame and Decode reads back every frame of a file,
for use on their own. A converter that also writes a listing uses Header and
Frame.Row directly so both outputs are written in the same pass.
*/
package img

// Extension is the file suffix used for the image file
const Extension = ".img"

const headerSize = 4

// Frame is a single indexed image. Pix holds Width * Height palette
// indices, one per pixel, row-major.
type Frame struct {
	Width  uint16
	Height uint16
	Pix    []byte
}

// Row returns the pixels of row y.
func (f *Frame) Row(y int) []byte {
	start := y * int(f.Width)
	return f.Pix[start : start+int(f.Width)]
}

// Header returns the size header for f; width then height, each split into
// low byte and high byte.
func Header(f *Frame) [headerSize]byte {
	return [headerSize]byte{
		byte(f.Width % 256),
		byte(f.Width / 256),
		byte(f.Height % 256),
		byte(f.Height / 256),
	}
}
