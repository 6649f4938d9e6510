package clut

import (
	"errors"
	"image/color"
	"io"
)

var errTooMany = errors.New("clut: too many palette entries")

type encoder struct {
	w io.Writer
}

func (e *encoder) encode(p color.Palette) error {
	if _, err := e.w.Write([]byte{Size(len(p))}); err != nil {
		return err
	}

	for _, c := range p {
		b := Entry(c)
		if _, err := e.w.Write(b[:]); err != nil {
			return err
		}
	}

	return nil
}

// Encode writes the palette p to w.
func Encode(w io.Writer, p color.Palette) error {
	if len(p) > maxEntries {
		return errTooMany
	}

	e := encoder{w: w}

	return e.encode(p)
}
