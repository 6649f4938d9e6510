package gifasm

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"io"
	"io/ioutil"

	"github.com/bodgit/gifasm/img"
)

// Frame is a single indexed image handed out by a Source.
type Frame = img.Frame

// Source provides an optional global palette and a sequence of frames.
type Source interface {
	// Palette returns the global palette and whether there is one.
	Palette() (color.Palette, bool)
	// Next returns the next frame or io.EOF once there are no more.
	Next() (*Frame, error)
}

var errTooBig = errors.New("gifasm: frame dimensions exceed 65535")

// The standard decoder only reports this as a formatted string
const errMissingImageData = "gif: missing image data"

type gifSource struct {
	palette color.Palette
	images  []*image.Paletted
	next    int
}

// NewGIFSource decodes a GIF image from r. An image with no frames is
// valid and yields only its palette.
func NewGIFSource(r io.Reader) (Source, error) {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("gifasm: reading image: %w", err)
	}

	config, err := gif.DecodeConfig(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("gifasm: decoding image: %w", err)
	}

	// Without a global color table this is a typed nil
	s := &gifSource{}
	if p, ok := config.ColorModel.(color.Palette); ok && p != nil {
		s.palette = p
	}

	g, err := gif.DecodeAll(bytes.NewReader(b))
	switch {
	case err == nil:
		s.images = g.Image
	case err.Error() == errMissingImageData:
	default:
		return nil, fmt.Errorf("gifasm: decoding image: %w", err)
	}

	return s, nil
}

func (s *gifSource) Palette() (color.Palette, bool) {
	return s.palette, s.palette != nil
}

func (s *gifSource) Next() (*Frame, error) {
	if s.next >= len(s.images) {
		return nil, io.EOF
	}

	m := s.images[s.next]
	s.images[s.next] = nil
	s.next++

	return frameFromPaletted(m)
}

// Copy rows out by stride so the frame is exactly width * height bytes
// regardless of where the frame sits on the logical screen
func frameFromPaletted(m *image.Paletted) (*Frame, error) {
	b := m.Bounds()
	w, h := b.Dx(), b.Dy()
	if w > 0xffff || h > 0xffff {
		return nil, errTooBig
	}

	pix := make([]byte, 0, w*h)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		i := m.PixOffset(b.Min.X, y)
		pix = append(pix, m.Pix[i:i+w]...)
	}

	return &Frame{
		Width:  uint16(w),
		Height: uint16(h),
		Pix:    pix,
	}, nil
}
