package gifasm

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"io"
	"strings"
	"testing"

	"github.com/bodgit/gifasm/asm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
)

var testPalette = color.Palette{colornames.Black, colornames.Red, colornames.Lime, colornames.Blue}

func paletted(r image.Rectangle, p color.Palette) *image.Paletted {
	m := image.NewPaletted(r, p)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			m.SetColorIndex(x, y, uint8((x+y)%len(p)))
		}
	}
	return m
}

func encodeGIF(t *testing.T, g *gif.GIF) []byte {
	b := new(bytes.Buffer)
	require.Nil(t, gif.EncodeAll(b, g))
	return b.Bytes()
}

func TestGIFSource(t *testing.T) {
	m1 := paletted(image.Rect(0, 0, 4, 3), testPalette)
	m2 := paletted(image.Rect(1, 1, 3, 2), testPalette)

	b := encodeGIF(t, &gif.GIF{
		Image: []*image.Paletted{m1, m2},
		Delay: []int{0, 0},
		Config: image.Config{
			ColorModel: testPalette,
			Width:      4,
			Height:     3,
		},
	})

	src, err := NewGIFSource(bytes.NewReader(b))
	require.Nil(t, err)

	p, ok := src.Palette()
	require.True(t, ok)
	assert.Equal(t, testPalette, p)

	f, err := src.Next()
	require.Nil(t, err)
	assert.Equal(t, &Frame{Width: 4, Height: 3, Pix: m1.Pix}, f)

	// Second frame is taken at its own bounds, not the logical screen
	f, err = src.Next()
	require.Nil(t, err)
	assert.Equal(t, &Frame{Width: 2, Height: 1, Pix: []byte{2, 3}}, f)

	_, err = src.Next()
	assert.Equal(t, io.EOF, err)
}

func TestGIFSourceNoPalette(t *testing.T) {
	b := encodeGIF(t, &gif.GIF{
		Image: []*image.Paletted{paletted(image.Rect(0, 0, 2, 2), testPalette)},
		Delay: []int{0},
	})

	src, err := NewGIFSource(bytes.NewReader(b))
	require.Nil(t, err)

	_, ok := src.Palette()
	assert.False(t, ok)

	f, err := src.Next()
	require.Nil(t, err)
	assert.Equal(t, []byte{0, 1, 1, 2}, f.Pix)
}

func TestGIFSourceNoFrames(t *testing.T) {
	// 1x1 screen, 2 entry global color table, then straight to the trailer
	b := []byte{
		'G', 'I', 'F', '8', '9', 'a',
		0x01, 0x00, 0x01, 0x00, 0x80, 0x00, 0x00,
		0xff, 0x00, 0x00,
		0x00, 0xff, 0x00,
		0x3b,
	}

	src, err := NewGIFSource(bytes.NewReader(b))
	require.Nil(t, err)

	p, ok := src.Palette()
	require.True(t, ok)
	assert.Equal(t, color.Palette{colornames.Red, colornames.Lime}, p)

	var listing, palette, pixels bytes.Buffer
	require.Nil(t, newTestConverter(asm.Default).Convert(src, "empty", Outputs{ASM: &listing, CLUT: &palette, IMG: &pixels}))

	sections, err := asm.Parse(&listing, asm.Default)
	require.Nil(t, err)
	require.Len(t, sections, 2)
	assert.Equal(t, "empty_clut_size", sections[0].Label)
	assert.Equal(t, "empty_clut", sections[1].Label)
	assert.Equal(t, []byte{0x02, 0x00, 0x00, 0xff, 0x00, 0x00, 0xff, 0x00, 0x00}, palette.Bytes())
	assert.Zero(t, pixels.Len())
}

func TestGIFSourceInvalid(t *testing.T) {
	_, err := NewGIFSource(strings.NewReader("GIF89a garbage"))
	require.NotNil(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "gifasm: decoding image: "))
}

func TestFrameFromPaletted(t *testing.T) {
	m := image.NewPaletted(image.Rect(0, 0, 4, 4), testPalette)
	for i := range m.Pix {
		m.Pix[i] = byte(i)
	}

	f, err := frameFromPaletted(m.SubImage(image.Rect(1, 1, 3, 3)).(*image.Paletted))
	require.Nil(t, err)
	assert.Equal(t, &Frame{Width: 2, Height: 2, Pix: []byte{5, 6, 9, 10}}, f)

	wide := &image.Paletted{Rect: image.Rect(0, 0, 0x10000, 1)}
	_, err = frameFromPaletted(wide)
	assert.Equal(t, errTooBig, err)
}
