package render

import (
	"image"
	"image/color"
	stddraw "image/draw"
	"strconv"

	xdraw "golang.org/x/image/draw"

	"retinoscope/annotation"
	"retinoscope/geometry"
)

const strokeWidth = 2

var background = color.RGBA{R: 0x1f, G: 0x29, B: 0x37, A: 0xff}

// Overlay Rasterize the image and its annotation rectangles into the
// viewport. The image is scaled and centered with the forward transform; the
// rectangles are stored image-native and converted the same way, so what this
// draws is exactly what the interactive canvas shows.
func Overlay(src image.Image, vp geometry.Viewport, t geometry.Transform, annotations []annotation.Annotation) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, int(vp.Width), int(vp.Height)))
	stddraw.Draw(dst, dst.Bounds(), &image.Uniform{C: background}, image.Point{}, stddraw.Src)

	srcBounds := src.Bounds()
	target := t.RectToDisplay(geometry.Rect{
		X:      0,
		Y:      0,
		Width:  float64(srcBounds.Dx()),
		Height: float64(srcBounds.Dy()),
	})
	targetRect := image.Rect(
		int(target.X),
		int(target.Y),
		int(target.X+target.Width),
		int(target.Y+target.Height),
	)
	xdraw.ApproxBiLinear.Scale(dst, targetRect, src, srcBounds, xdraw.Over, nil)

	for _, a := range annotations {
		rect := t.RectToDisplay(geometry.Rect{X: a.X, Y: a.Y, Width: a.Width, Height: a.Height})
		strokeRect(dst, rect, parseHexColor(a.Color))
	}

	return dst
}

// strokeRect Draw a rectangle border, clipped to the image bounds.
func strokeRect(dst *image.RGBA, r geometry.Rect, c color.RGBA) {
	x0, y0 := int(r.X), int(r.Y)
	x1, y1 := int(r.X+r.Width), int(r.Y+r.Height)

	fill := func(rect image.Rectangle) {
		rect = rect.Intersect(dst.Bounds())
		if rect.Empty() {
			return
		}
		stddraw.Draw(dst, rect, &image.Uniform{C: c}, image.Point{}, stddraw.Src)
	}

	// top, bottom, left, right
	fill(image.Rect(x0, y0, x1, y0+strokeWidth))
	fill(image.Rect(x0, y1-strokeWidth, x1, y1))
	fill(image.Rect(x0, y0+strokeWidth, x0+strokeWidth, y1-strokeWidth))
	fill(image.Rect(x1-strokeWidth, y0+strokeWidth, x1, y1-strokeWidth))
}

// parseHexColor Parse a #RRGGBB display color. Anything malformed renders
// white rather than failing the whole overlay.
func parseHexColor(s string) color.RGBA {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}
}
