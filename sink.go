package gifasm

import (
	"fmt"
	"io"

	"github.com/bodgit/gifasm/asm"
)

// Outputs holds the writers for each output. A nil writer disables that
// output.
type Outputs struct {
	ASM  io.Writer
	CLUT io.Writer
	IMG  io.Writer
}

// sinks writes to whichever outputs are enabled. Writes to a disabled output
// are never attempted.
type sinks struct {
	asm  *asm.Writer
	clut io.Writer
	img  io.Writer
}

func newSinks(out Outputs, d asm.Dialect) *sinks {
	s := &sinks{
		clut: out.CLUT,
		img:  out.IMG,
	}
	if out.ASM != nil {
		s.asm = asm.NewWriter(out.ASM, d)
	}
	return s
}

func (s *sinks) hasText() bool {
	return s.asm != nil
}

func (s *sinks) label(name string) error {
	if s.asm == nil {
		return nil
	}
	if err := s.asm.Label(name); err != nil {
		return fmt.Errorf("gifasm: writing listing: %w", err)
	}
	return nil
}

func (s *sinks) text(b []byte) error {
	if s.asm == nil {
		return nil
	}
	if err := s.asm.Bytes(b); err != nil {
		return fmt.Errorf("gifasm: writing listing: %w", err)
	}
	return nil
}

func (s *sinks) palette(b []byte) error {
	if s.clut == nil {
		return nil
	}
	if _, err := s.clut.Write(b); err != nil {
		return fmt.Errorf("gifasm: writing palette: %w", err)
	}
	return nil
}

func (s *sinks) image(b []byte) error {
	if s.img == nil {
		return nil
	}
	if _, err := s.img.Write(b); err != nil {
		return fmt.Errorf("gifasm: writing image: %w", err)
	}
	return nil
}
