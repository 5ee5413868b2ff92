package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const epsilon = 1e-9

func TestNewTransformFitsWidestDimension(t *testing.T) {
	vp := Viewport{Width: 800, Height: 600}

	// Landscape image limited by width.
	tf := NewTransform(vp, 1600, 800)
	assert.InDelta(t, 0.5, tf.BaseScale, epsilon)
	assert.InDelta(t, 0, tf.OffsetX, epsilon)
	assert.InDelta(t, 100, tf.OffsetY, epsilon)

	// Portrait image limited by height.
	tf = NewTransform(vp, 600, 1200)
	assert.InDelta(t, 0.5, tf.BaseScale, epsilon)
	assert.InDelta(t, 250, tf.OffsetX, epsilon)
	assert.InDelta(t, 0, tf.OffsetY, epsilon)
}

func TestRoundTripAtFixedZoom(t *testing.T) {
	tf := NewTransform(Viewport{Width: 800, Height: 600}, 2400, 1800).WithZoom(1.2 * 1.2)

	points := []Point{
		{X: 0, Y: 0},
		{X: 400, Y: 300},
		{X: 13.7, Y: 591.2},
		{X: 799, Y: 1},
	}
	for _, p := range points {
		back := tf.ToDisplay(tf.ToImage(p))
		if math.Abs(back.X-p.X) > 1e-6 || math.Abs(back.Y-p.Y) > 1e-6 {
			t.Fatalf("round trip of %+v gave %+v", p, back)
		}
	}
}

func TestZoomScalesAboutViewportOrigin(t *testing.T) {
	tf := NewTransform(Viewport{Width: 800, Height: 600}, 800, 600)

	// At base scale 1 with no offsets, a display point at zoom 2 maps to half
	// the image coordinate.
	zoomed := tf.WithZoom(2)
	got := zoomed.ToImage(Point{X: 400, Y: 300})
	assert.InDelta(t, 200, got.X, epsilon)
	assert.InDelta(t, 150, got.Y, epsilon)
}

func TestWithZoomClampsToOne(t *testing.T) {
	tf := NewTransform(Viewport{Width: 800, Height: 600}, 800, 600).WithZoom(0.3)
	assert.Equal(t, 1.0, tf.Zoom)
}

func TestNormalizeFoldsNegativeDeltas(t *testing.T) {
	cases := []struct {
		in   Rect
		want Rect
	}{
		{Rect{X: 100, Y: 100, Width: -40, Height: 60}, Rect{X: 60, Y: 100, Width: 40, Height: 60}},
		{Rect{X: 100, Y: 100, Width: 40, Height: -60}, Rect{X: 100, Y: 40, Width: 40, Height: 60}},
		{Rect{X: 100, Y: 100, Width: -40, Height: -60}, Rect{X: 60, Y: 40, Width: 40, Height: 60}},
		{Rect{X: 100, Y: 100, Width: 40, Height: 60}, Rect{X: 100, Y: 100, Width: 40, Height: 60}},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.in.Normalize())
	}
}

func TestRectConversionPreservesArea(t *testing.T) {
	tf := NewTransform(Viewport{Width: 800, Height: 600}, 1600, 1200).WithZoom(1.2)

	display := Rect{X: 120, Y: 80, Width: 60, Height: 42}
	img := tf.RectToImage(display)
	back := tf.RectToDisplay(img)

	assert.InDelta(t, display.X, back.X, 1e-6)
	assert.InDelta(t, display.Y, back.Y, 1e-6)
	assert.InDelta(t, display.Width, back.Width, 1e-6)
	assert.InDelta(t, display.Height, back.Height, 1e-6)
}
