package gifasm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabel(t *testing.T) {
	tables := []struct {
		path, label string
	}{
		{"logo.img", "logo"},
		{"/tmp/gfx/logo.img", "logo"},
		{"logo.tar.img", "logo.tar"},
		{"dir.v2/sprite", "sprite"},
		{"sprite", "sprite"},
	}

	for _, table := range tables {
		t.Run(table.path, func(t *testing.T) {
			assert.Equal(t, table.label, Label(table.path))
		})
	}
}

func TestPaths(t *testing.T) {
	tables := []struct {
		base  string
		files Files
	}{
		{"logo.gif", Files{"logo.asm", "logo.clut", "logo.img"}},
		{"/tmp/gfx/Logo.GIF", Files{"/tmp/gfx/Logo.asm", "/tmp/gfx/Logo.clut", "/tmp/gfx/Logo.img"}},
		{"dir.v2/sprite", Files{"dir.v2/sprite.asm", "dir.v2/sprite.clut", "dir.v2/sprite.img"}},
	}

	for _, table := range tables {
		t.Run(table.base, func(t *testing.T) {
			assert.Equal(t, table.files, Paths(table.base))
		})
	}
}
