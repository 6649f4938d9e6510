package asm

import (
	"fmt"
	"io"
	"strings"
)

// Writer writes a listing in a given dialect.
type Writer struct {
	w       io.Writer
	dialect Dialect
}

// NewWriter returns a Writer writing to w.
func NewWriter(w io.Writer, d Dialect) *Writer {
	return &Writer{
		w:       w,
		dialect: d,
	}
}

// Label starts a new section called name.
func (w *Writer) Label(name string) error {
	_, err := fmt.Fprintf(w.w, "\n%s:\n", name)
	return err
}

// Bytes writes b as a single directive line. An empty b writes nothing as a
// directive with no operands will not assemble.
func (w *Writer) Bytes(b []byte) error {
	if len(b) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("\t")
	sb.WriteString(w.dialect.Directive)
	sb.WriteString(" ")
	for i, v := range b {
		if i > 0 {
			sb.WriteString(w.dialect.Separator)
		}
		sb.WriteString(w.dialect.Literal(v))
	}
	sb.WriteString("\n")

	_, err := io.WriteString(w.w, sb.String())
	return err
}
