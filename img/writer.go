package img

import (
	"errors"
	"io"
)

var errBadLength = errors.New("img: pixel data does not match dimensions")

type encoder struct {
	w io.Writer
}

func (e *encoder) encode(f *Frame) error {
	hdr := Header(f)
	if _, err := e.w.Write(hdr[:]); err != nil {
		return err
	}

	if _, err := e.w.Write(f.Pix); err != nil {
		return err
	}

	return nil
}

// Check returns an error if the pixel buffer of f is not exactly
// Width * Height bytes.
func Check(f *Frame) error {
	if len(f.Pix) != int(f.Width)*int(f.Height) {
		return errBadLength
	}
	return nil
}

// Encode writes the frame f to w.
func Encode(w io.Writer, f *Frame) error {
	if err := Check(f); err != nil {
		return err
	}

	e := encoder{w: w}

	return e.encode(f)
}
