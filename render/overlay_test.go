package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retinoscope/annotation"
	"retinoscope/geometry"
)

func solidImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestOverlayDrawsAnnotationBorder(t *testing.T) {
	vp := geometry.Viewport{Width: 800, Height: 600}
	// Image matches the viewport: identity transform, no offsets.
	src := solidImage(800, 600, color.RGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xff})
	tf := geometry.NewTransform(vp, 800, 600)

	anns := []annotation.Annotation{{
		ID:     "a1",
		X:      100,
		Y:      100,
		Width:  50,
		Height: 50,
		Color:  annotation.ColorSevere,
	}}

	out := Overlay(src, vp, tf, anns)
	require.Equal(t, image.Rect(0, 0, 800, 600), out.Bounds())

	// A pixel on the top border is the severity color.
	border := out.RGBAAt(120, 100)
	assert.Equal(t, uint8(0xf4), border.R)
	assert.Equal(t, uint8(0x43), border.G)
	assert.Equal(t, uint8(0x36), border.B)

	// The interior shows the image, not the stroke.
	inside := out.RGBAAt(125, 125)
	assert.Equal(t, uint8(0x40), inside.R)
}

func TestOverlayCentersSmallerImage(t *testing.T) {
	vp := geometry.Viewport{Width: 800, Height: 600}
	// 400x600 image at base scale 1 leaves 200px bands left and right.
	src := solidImage(400, 600, color.RGBA{R: 0xaa, G: 0xaa, B: 0xaa, A: 0xff})
	tf := geometry.NewTransform(vp, 400, 600)

	out := Overlay(src, vp, tf, nil)

	// Outside the centered image only the background remains.
	left := out.RGBAAt(10, 300)
	assert.Equal(t, background, left)

	center := out.RGBAAt(400, 300)
	assert.Equal(t, uint8(0xaa), center.R)
}

func TestOverlayClipsOutOfBoundsRect(t *testing.T) {
	vp := geometry.Viewport{Width: 800, Height: 600}
	src := solidImage(800, 600, color.RGBA{A: 0xff})
	tf := geometry.NewTransform(vp, 800, 600)

	// A rectangle hanging past the right edge must not panic.
	anns := []annotation.Annotation{{
		ID:     "a1",
		X:      700,
		Y:      500,
		Width:  400,
		Height: 400,
		Color:  annotation.ColorMild,
	}}
	out := Overlay(src, vp, tf, anns)
	assert.NotNil(t, out)
}

func TestParseHexColorFallsBackToWhite(t *testing.T) {
	white := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	assert.Equal(t, white, parseHexColor("not-a-color"))
	assert.Equal(t, white, parseHexColor(""))
	assert.Equal(t, color.RGBA{R: 0xff, G: 0xc1, B: 0x07, A: 0xff}, parseHexColor("#FFC107"))
}
