package asm

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Enough for a row of 65535 pixels in any dialect
const maxLine = 1 << 20

// Section is a label and the bytes of every directive line that follows it
// up to the next label.
type Section struct {
	Label string
	Data  []byte
}

// Parse reads a listing written in dialect d. Comments starting with ';'
// and blank lines are ignored.
func Parse(r io.Reader, d Dialect) ([]Section, error) {
	var sections []Section

	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLine)
	for n := 1; s.Scan(); n++ {
		line := s.Text()
		if i := strings.IndexByte(line, ';'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)

		switch {
		case line == "":
			continue
		case strings.HasSuffix(line, ":"):
			sections = append(sections, Section{Label: strings.TrimSuffix(line, ":")})
			continue
		case len(sections) == 0:
			return nil, fmt.Errorf("asm: line %d: data before first label", n)
		}

		b, err := parseDirective(line, d)
		if err != nil {
			return nil, fmt.Errorf("asm: line %d: %w", n, err)
		}

		last := &sections[len(sections)-1]
		last.Data = append(last.Data, b...)
	}

	if err := s.Err(); err != nil {
		return nil, err
	}

	return sections, nil
}

func parseDirective(line string, d Dialect) ([]byte, error) {
	fields := strings.SplitN(line, " ", 2)
	if len(fields) != 2 || fields[0] != d.Directive {
		return nil, fmt.Errorf("expected %q directive", d.Directive)
	}

	var b []byte
	for _, lit := range strings.Split(fields[1], strings.TrimSpace(d.Separator)) {
		lit = strings.TrimSpace(lit)
		if !strings.HasPrefix(lit, d.Prefix) || len(lit) != len(d.Prefix)+2 {
			return nil, fmt.Errorf("bad literal %q", lit)
		}
		v, err := strconv.ParseUint(lit[len(d.Prefix):], 16, 8)
		if err != nil {
			return nil, err
		}
		b = append(b, byte(v))
	}

	return b, nil
}
