package clut

import (
	"bytes"
	"errors"
	"image/color"
	"io"
	"io/ioutil"
)

var (
	errNotEnough = errors.New("clut: not enough palette data")
	errTooMuch   = errors.New("clut: too much palette data")
	errBadPad    = errors.New("clut: non-zero pad byte")
)

func readFull(r io.Reader, b []byte) error {
	_, err := io.ReadFull(r, b)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

type decoder struct {
	r io.Reader

	palette color.Palette

	tmp [entrySize]byte
}

func (d *decoder) readEntries(n int) error {
	d.palette = make(color.Palette, 0, n)
	for i := 0; i < n; i++ {
		if err := readFull(d.r, d.tmp[:]); err != nil {
			return err
		}
		if d.tmp[3] != 0x00 {
			return errBadPad
		}
		d.palette = append(d.palette, color.RGBA{d.tmp[2], d.tmp[1], d.tmp[0], 0xff})
	}
	return nil
}

func (d *decoder) decode(r io.Reader) error {
	d.r = r

	if err := readFull(d.r, d.tmp[:1]); err != nil {
		if err != io.ErrUnexpectedEOF {
			return err
		}
		return errNotEnough
	}
	size := int(d.tmp[0])

	// Read entries in one go so a wrapped count of zero can be told apart
	// from a full table by what follows it
	rest, err := ioutil.ReadAll(d.r)
	if err != nil {
		return err
	}

	switch {
	case len(rest) == size*entrySize:
	case size == 0 && len(rest) == maxEntries*entrySize:
		size = maxEntries
	case len(rest) < size*entrySize:
		return errNotEnough
	default:
		return errTooMuch
	}

	d.r = bytes.NewReader(rest)

	return d.readEntries(size)
}

// Decode reads a palette from r. The reader must be positioned at the count
// byte and hold nothing after the last entry.
func Decode(r io.Reader) (color.Palette, error) {
	var d decoder
	if err := d.decode(r); err != nil {
		return nil, err
	}
	return d.palette, nil
}
