package geometry

import "math"

// Point A position in either display or image-native pixel space.
type Point struct {
	X float64
	Y float64
}

// Rect An axis-aligned rectangle. Normalized rects have Width > 0 and Height > 0
// with (X, Y) at the top-left corner.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Normalize Fold negative deltas into the origin so that (X, Y) is the
// top-left corner and Width/Height are positive, regardless of drag direction.
func (r Rect) Normalize() Rect {
	n := r
	if n.Width < 0 {
		n.X += n.Width
		n.Width = -n.Width
	}
	if n.Height < 0 {
		n.Y += n.Height
		n.Height = -n.Height
	}
	return n
}

// Viewport The fixed-size canvas the image is rendered into.
type Viewport struct {
	Width  float64
	Height float64
}

// Transform Maps between image-native pixel coordinates and display
// coordinates for one image inside one viewport. BaseScale fits the whole
// image in the viewport without cropping, the offsets center it, and Zoom is
// the interactive multiplier applied about the viewport origin. Annotations
// are always stored in image-native space; only rendering applies the
// transform forward.
type Transform struct {
	BaseScale float64
	OffsetX   float64
	OffsetY   float64
	Zoom      float64
}

// NewTransform Compute the fitting transform for an image of native size
// (imgWidth, imgHeight) inside vp, at zoom 1.
func NewTransform(vp Viewport, imgWidth, imgHeight float64) Transform {
	scale := math.Min(vp.Width/imgWidth, vp.Height/imgHeight)
	return Transform{
		BaseScale: scale,
		OffsetX:   (vp.Width - imgWidth*scale) / 2,
		OffsetY:   (vp.Height - imgHeight*scale) / 2,
		Zoom:      1,
	}
}

// WithZoom Return a copy of the transform at zoom z. Zoom never goes below 1;
// the base scale already fits the whole image.
func (t Transform) WithZoom(z float64) Transform {
	if z < 1 {
		z = 1
	}
	t.Zoom = z
	return t
}

// scale The effective display scale, base fit times interactive zoom.
func (t Transform) scale() float64 {
	return t.BaseScale * t.Zoom
}

// ToImage Convert a display-space point to image-native space.
func (t Transform) ToImage(p Point) Point {
	return Point{
		X: (p.X - t.OffsetX) / t.scale(),
		Y: (p.Y - t.OffsetY) / t.scale(),
	}
}

// ToDisplay Convert an image-native point to display space.
func (t Transform) ToDisplay(p Point) Point {
	return Point{
		X: p.X*t.scale() + t.OffsetX,
		Y: p.Y*t.scale() + t.OffsetY,
	}
}

// RectToImage Convert a display-space rectangle to image-native space.
func (t Transform) RectToImage(r Rect) Rect {
	origin := t.ToImage(Point{X: r.X, Y: r.Y})
	return Rect{
		X:      origin.X,
		Y:      origin.Y,
		Width:  r.Width / t.scale(),
		Height: r.Height / t.scale(),
	}
}

// RectToDisplay Convert an image-native rectangle to display space.
func (t Transform) RectToDisplay(r Rect) Rect {
	origin := t.ToDisplay(Point{X: r.X, Y: r.Y})
	return Rect{
		X:      origin.X,
		Y:      origin.Y,
		Width:  r.Width * t.scale(),
		Height: r.Height * t.scale(),
	}
}
