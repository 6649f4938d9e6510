package clut

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
)

func TestEntry(t *testing.T) {
	tables := []struct {
		name  string
		color color.Color
		entry [4]byte
	}{
		{"red", colornames.Red, [4]byte{0x00, 0x00, 0xff, 0x00}},
		{"lime", colornames.Lime, [4]byte{0x00, 0xff, 0x00, 0x00}},
		{"blue", colornames.Blue, [4]byte{0xff, 0x00, 0x00, 0x00}},
		{"mixed", color.RGBA{0x12, 0x34, 0x56, 0xff}, [4]byte{0x56, 0x34, 0x12, 0x00}},
	}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			assert.Equal(t, table.entry, Entry(table.color))
		})
	}
}

func TestSize(t *testing.T) {
	assert.Equal(t, byte(0), Size(0))
	assert.Equal(t, byte(2), Size(2))
	assert.Equal(t, byte(255), Size(255))
	assert.Equal(t, byte(0), Size(256))
}

func grey(n int) color.Palette {
	p := make(color.Palette, n)
	for i := range p {
		p[i] = color.RGBA{byte(i), byte(i), byte(i), 0xff}
	}
	return p
}

func TestEncode(t *testing.T) {
	b := new(bytes.Buffer)
	require.Nil(t, Encode(b, color.Palette{colornames.Red, colornames.Lime}))
	assert.Equal(t, []byte{0x02, 0x00, 0x00, 0xff, 0x00, 0x00, 0xff, 0x00, 0x00}, b.Bytes())

	b.Reset()
	require.Nil(t, Encode(b, color.Palette{}))
	assert.Equal(t, []byte{0x00}, b.Bytes())

	assert.Equal(t, errTooMany, Encode(b, grey(257)))
}

func TestDecode(t *testing.T) {
	for _, n := range []int{0, 1, 2, 16, 255, 256} {
		b := new(bytes.Buffer)
		require.Nil(t, Encode(b, grey(n)))

		p, err := Decode(bytes.NewReader(b.Bytes()))
		require.Nil(t, err)
		assert.Equal(t, grey(n), p)
	}
}

func TestDecodeErrors(t *testing.T) {
	tables := []struct {
		name string
		b    []byte
		err  error
	}{
		{"empty", []byte{}, errNotEnough},
		{"short", []byte{0x02, 0x00, 0x00, 0xff, 0x00}, errNotEnough},
		{"long", []byte{0x01, 0x00, 0x00, 0xff, 0x00, 0x01}, errTooMuch},
		{"pad", []byte{0x01, 0x00, 0x00, 0xff, 0x01}, errBadPad},
	}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			_, err := Decode(bytes.NewReader(table.b))
			assert.Equal(t, table.err, err)
		})
	}
}
