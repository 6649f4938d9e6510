package gifasm

import (
	"errors"
	"image/color"

	"github.com/bodgit/gifasm/clut"
)

const maxPaletteEntries = 256

var errPaletteTooBig = errors.New("gifasm: palette has more than 256 entries")

func encodePalette(s *sinks, label string, p color.Palette) error {
	if len(p) > maxPaletteEntries {
		return errPaletteTooBig
	}

	size := []byte{clut.Size(len(p))}

	if err := s.label(label + "_clut_size"); err != nil {
		return err
	}
	if err := s.text(size); err != nil {
		return err
	}
	if err := s.palette(size); err != nil {
		return err
	}

	if err := s.label(label + "_clut"); err != nil {
		return err
	}

	// One line per entry, same 4 bytes in both outputs
	for _, c := range p {
		e := clut.Entry(c)
		if err := s.text(e[:]); err != nil {
			return err
		}
		if err := s.palette(e[:]); err != nil {
			return err
		}
	}

	return nil
}
