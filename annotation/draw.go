package annotation

import (
	"math"
	"time"

	uuid "github.com/twinj/uuid"

	"retinoscope/geometry"
)

// MinDragPixels Drags smaller than this in either display axis are discarded
// without creating an annotation.
const MinDragPixels = 5

// Attributes The semantic fields attached to a rectangle when a draw is
// finalized.
type Attributes struct {
	Type          Category
	Severity      Severity
	OtherDiseases string
	CreatedBy     string
}

// Drafter The pointer-driven draw state machine. Idle until Begin, Drawing
// until Finish. All pointer coordinates are display-space; the bound transform
// converts the final rectangle to image-native space. Not safe for concurrent
// use: a drafter belongs to a single annotation session.
type Drafter struct {
	transform geometry.Transform
	drawing   bool
	anchor    geometry.Point
	current   geometry.Point
}

// NewDrafter Create a drafter bound to the given display transform.
func NewDrafter(t geometry.Transform) *Drafter {
	return &Drafter{transform: t}
}

// SetTransform Rebind the display transform, e.g. after a zoom change. Has no
// effect on a draw already in progress; the rectangle is converted with the
// transform current at Finish time.
func (d *Drafter) SetTransform(t geometry.Transform) {
	d.transform = t
}

// Drawing Whether a draw is in progress.
func (d *Drafter) Drawing() bool {
	return d.drawing
}

// Begin Record the anchor point of a new draw. A pointer-down while already
// drawing is ignored; returns whether the draw started.
func (d *Drafter) Begin(p geometry.Point) bool {
	if d.drawing {
		return false
	}
	d.drawing = true
	d.anchor = p
	d.current = p
	return true
}

// Update Move the live rectangle candidate to the current pointer position.
// The returned rect is display-space, un-normalized, and only for visual
// feedback; ok is false when no draw is in progress.
func (d *Drafter) Update(p geometry.Point) (geometry.Rect, bool) {
	if !d.drawing {
		return geometry.Rect{}, false
	}
	d.current = p
	return d.liveRect(), true
}

// Live The current candidate rectangle, if drawing.
func (d *Drafter) Live() (geometry.Rect, bool) {
	if !d.drawing {
		return geometry.Rect{}, false
	}
	return d.liveRect(), true
}

func (d *Drafter) liveRect() geometry.Rect {
	return geometry.Rect{
		X:      d.anchor.X,
		Y:      d.anchor.Y,
		Width:  d.current.X - d.anchor.X,
		Height: d.current.Y - d.anchor.Y,
	}
}

// Finish Finalize the draw at the pointer-up position. The pending live
// rectangle is cleared whether or not finalization succeeds. Returns
// (nil, nil) for a silently discarded below-threshold drag, a ValidationError
// for bad semantic fields, or a fresh Annotation in image-native coordinates.
func (d *Drafter) Finish(p geometry.Point, attrs Attributes) (*Annotation, error) {
	if !d.drawing {
		return nil, nil
	}
	d.drawing = false
	d.current = p

	w := p.X - d.anchor.X
	h := p.Y - d.anchor.Y
	if math.Abs(w) < MinDragPixels || math.Abs(h) < MinDragPixels {
		return nil, nil
	}

	display := geometry.Rect{X: d.anchor.X, Y: d.anchor.Y, Width: w, Height: h}.Normalize()
	rect := d.transform.RectToImage(display)

	ann := Annotation{
		ID:        uuid.NewV4().String(),
		X:         rect.X,
		Y:         rect.Y,
		Width:     rect.Width,
		Height:    rect.Height,
		Type:      attrs.Type,
		Severity:  attrs.Severity,
		Color:     ColorFor(attrs.Severity),
		CreatedAt: time.Now().UTC(),
		CreatedBy: attrs.CreatedBy,
	}
	if attrs.Type == CategoryNoFinding {
		ann.OtherDiseases = attrs.OtherDiseases
	}
	if err := ann.Validate(); err != nil {
		return nil, err
	}
	return &ann, nil
}

// Cancel Abort a draw in progress without producing anything.
func (d *Drafter) Cancel() {
	d.drawing = false
}
