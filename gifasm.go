/*
Package gifasm converts indexed color GIF images into data for retro and
embedded graphics pipelines.

Two encodings are produced from the same pass over the image: an assembler
listing that can be included directly into a program, and a pair of raw
binary files, a CLUT (palette) and an IMG (pixel data), for a runtime loader.
The bytes in the listing and in the binary files are always the same.
*/
package gifasm

import (
	"io"
	"log"

	"github.com/bodgit/gifasm/asm"
)

// Options control the output of a Converter.
type Options struct {
	// Dialect selects the assembler syntax of the listing.
	Dialect asm.Dialect
}

// Converter encodes images read from a Source.
type Converter struct {
	dialect asm.Dialect
	logger  *log.Logger
}

// New returns a Converter. A zero Options uses the default dialect.
func New(opts Options, logger *log.Logger) *Converter {
	if opts.Dialect.Name == "" {
		opts.Dialect = asm.Default
	}
	return &Converter{
		dialect: opts.Dialect,
		logger:  logger,
	}
}

// Convert encodes the palette, if any, then every frame of src to each
// non-nil writer in out. Sections are named after label. The first error
// stops the conversion; anything already written is left as is.
func (c *Converter) Convert(src Source, label string, out Outputs) error {
	s := newSinks(out, c.dialect)

	if p, ok := src.Palette(); ok {
		if err := encodePalette(s, label, p); err != nil {
			return err
		}
		c.logger.Printf("Wrote palette with %d entries\n", len(p))
	} else {
		c.logger.Println("No global palette, skipping")
	}

	var n int
	for {
		f, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		n++

		if err := encodeFrame(s, label, f); err != nil {
			return err
		}
		c.logger.Printf("Wrote frame %d, %dx%d\n", n, f.Width, f.Height)
	}

	if n > 1 {
		c.logger.Printf("%d frames share the label \"%s\"\n", n, label)
	}

	return nil
}
