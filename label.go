package gifasm

import (
	"path/filepath"
	"strings"

	"github.com/bodgit/gifasm/asm"
	"github.com/bodgit/gifasm/clut"
	"github.com/bodgit/gifasm/img"
)

// Files holds the paths of each output. An empty path disables that output.
type Files struct {
	ASM  string
	CLUT string
	IMG  string
}

func stem(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}

// Label returns the section label for the output base path; the filename
// without its directory or final extension.
func Label(path string) string {
	return stem(filepath.Base(path))
}

// Paths returns the output paths for base with its final extension replaced.
func Paths(base string) Files {
	s := stem(base)
	return Files{
		ASM:  s + asm.Extension,
		CLUT: s + clut.Extension,
		IMG:  s + img.Extension,
	}
}
