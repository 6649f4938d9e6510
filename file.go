package gifasm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

var (
	errOverwrite = errors.New("gifasm: output would overwrite input")
	errDuplicate = errors.New("gifasm: outputs share the same path")
)

type output struct {
	f *os.File
	w *bufio.Writer
}

func createOutput(path string) (*output, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("gifasm: creating output: %w", err)
	}
	return &output{
		f: f,
		w: bufio.NewWriter(f),
	}, nil
}

func (o *output) Close() error {
	if err := o.w.Flush(); err != nil {
		o.f.Close()
		return err
	}
	return o.f.Close()
}

// checkOutputs stops an output from truncating the input, or another output,
// when it is created
func checkOutputs(input os.FileInfo, paths []string) error {
	seen := make(map[string]struct{})
	for _, path := range paths {
		if path == "" {
			continue
		}

		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		if _, ok := seen[abs]; ok {
			return errDuplicate
		}
		seen[abs] = struct{}{}

		if info, err := os.Stat(path); err == nil && os.SameFile(input, info) {
			return errOverwrite
		}
	}
	return nil
}

// ConvertFile converts the GIF image at input, creating every output with a
// non-empty path in out. All outputs are created before the image is decoded.
// No output may be the input or share a path with another output.
func (c *Converter) ConvertFile(input, label string, out Files) (err error) {
	f, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("gifasm: opening input: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	paths := []string{out.ASM, out.CLUT, out.IMG}
	if err := checkOutputs(info, paths); err != nil {
		return err
	}

	var (
		outputs []*output
		writers [3]io.Writer
	)

	defer func() {
		for _, o := range outputs {
			if cerr := o.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("gifasm: closing output: %w", cerr)
			}
		}
	}()

	for i, path := range paths {
		if path == "" {
			continue
		}
		o, err := createOutput(path)
		if err != nil {
			return err
		}
		outputs = append(outputs, o)
		writers[i] = o.w
		c.logger.Printf("Writing \"%s\"\n", path)
	}

	src, err := NewGIFSource(f)
	if err != nil {
		return err
	}

	return c.Convert(src, label, Outputs{
		ASM:  writers[0],
		CLUT: writers[1],
		IMG:  writers[2],
	})
}
