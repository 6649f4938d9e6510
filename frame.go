package gifasm

import (
	"fmt"

	"github.com/bodgit/gifasm/img"
)

// encodeFrame writes the size header then the pixels of f. The same label is
// used for every frame.
func encodeFrame(s *sinks, label string, f *Frame) error {
	if err := img.Check(f); err != nil {
		return fmt.Errorf("gifasm: invalid frame: %w", err)
	}

	hdr := img.Header(f)

	if err := s.label(label + "_img_size"); err != nil {
		return err
	}
	if err := s.text(hdr[:]); err != nil {
		return err
	}
	if err := s.image(hdr[:]); err != nil {
		return err
	}

	if err := s.label(label + "_img"); err != nil {
		return err
	}

	if s.hasText() {
		for y := 0; y < int(f.Height); y++ {
			if err := s.text(f.Row(y)); err != nil {
				return err
			}
		}
	}

	return s.image(f.Pix)
}
