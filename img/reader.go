package img

import (
	"errors"
	"io"
)

var errNotEnough = errors.New("img: not enough image data")

func readFull(r io.Reader, b []byte) error {
	_, err := io.ReadFull(r, b)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

type decoder struct {
	r io.Reader

	frames []*Frame

	tmp [headerSize]byte
}

func (d *decoder) readFrame() (*Frame, error) {
	// A clean EOF before the header is the end of the file
	if _, err := io.ReadFull(d.r, d.tmp[:]); err != nil {
		return nil, err
	}

	f := &Frame{
		Width:  uint16(d.tmp[0]) | uint16(d.tmp[1])<<8,
		Height: uint16(d.tmp[2]) | uint16(d.tmp[3])<<8,
	}
	f.Pix = make([]byte, int(f.Width)*int(f.Height))

	if err := readFull(d.r, f.Pix); err != nil {
		return nil, err
	}

	return f, nil
}

func (d *decoder) decode(r io.Reader) error {
	d.r = r

	for {
		f, err := d.readFrame()
		switch err {
		case nil:
			d.frames = append(d.frames, f)
		case io.EOF:
			return nil
		case io.ErrUnexpectedEOF:
			return errNotEnough
		default:
			return err
		}
	}
}

// Decode reads every frame from r until EOF.
func Decode(r io.Reader) ([]*Frame, error) {
	var d decoder
	if err := d.decode(r); err != nil {
		return nil, err
	}
	return d.frames, nil
}
