package annotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retinoscope/geometry"
)

// identityTransform Viewport equals image size, so display space equals
// image-native space and assertions stay readable.
func identityTransform() geometry.Transform {
	return geometry.NewTransform(geometry.Viewport{Width: 800, Height: 600}, 800, 600)
}

func drawAttrs() Attributes {
	return Attributes{
		Type:      CategoryHemorrhage,
		Severity:  SeverityMild,
		CreatedBy: "doctor@example.com",
	}
}

func TestFinishNormalizesDragDirections(t *testing.T) {
	anchor := geometry.Point{X: 100, Y: 100}
	cases := []struct {
		name string
		up   geometry.Point
	}{
		{"down-right", geometry.Point{X: 140, Y: 160}},
		{"down-left", geometry.Point{X: 60, Y: 160}},
		{"up-right", geometry.Point{X: 140, Y: 40}},
		{"up-left", geometry.Point{X: 60, Y: 40}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := NewDrafter(identityTransform())
			require.True(t, d.Begin(anchor))
			ann, err := d.Finish(c.up, drawAttrs())
			require.NoError(t, err)
			require.NotNil(t, ann)

			assert.Equal(t, 40.0, ann.Width)
			assert.Equal(t, 60.0, ann.Height)
			assert.LessOrEqual(t, ann.X, 100.0)
			assert.LessOrEqual(t, ann.Y, 100.0)
		})
	}
}

func TestFinishDiagonalDragUpRightExact(t *testing.T) {
	d := NewDrafter(identityTransform())
	d.Begin(geometry.Point{X: 100, Y: 100})
	ann, err := d.Finish(geometry.Point{X: 60, Y: 160}, drawAttrs())
	require.NoError(t, err)
	require.NotNil(t, ann)

	assert.Equal(t, 60.0, ann.X)
	assert.Equal(t, 100.0, ann.Y)
	assert.Equal(t, 40.0, ann.Width)
	assert.Equal(t, 60.0, ann.Height)
}

func TestFinishDiscardsTinyDrag(t *testing.T) {
	d := NewDrafter(identityTransform())
	d.Begin(geometry.Point{X: 100, Y: 100})
	ann, err := d.Finish(geometry.Point{X: 103, Y: 103}, drawAttrs())
	assert.NoError(t, err)
	assert.Nil(t, ann)
	assert.False(t, d.Drawing())

	// One thin axis is enough to discard.
	d.Begin(geometry.Point{X: 100, Y: 100})
	ann, err = d.Finish(geometry.Point{X: 200, Y: 104}, drawAttrs())
	assert.NoError(t, err)
	assert.Nil(t, ann)
}

func TestFinishRequiresOtherDiseasesForNoFinding(t *testing.T) {
	d := NewDrafter(identityTransform())
	d.Begin(geometry.Point{X: 10, Y: 10})
	ann, err := d.Finish(geometry.Point{X: 80, Y: 80}, Attributes{
		Type:      CategoryNoFinding,
		CreatedBy: "doctor@example.com",
	})
	assert.Nil(t, ann)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "other_diseases", verr.Field)
	assert.False(t, d.Drawing())

	// Supplying the free text succeeds.
	d.Begin(geometry.Point{X: 10, Y: 10})
	ann, err = d.Finish(geometry.Point{X: 80, Y: 80}, Attributes{
		Type:          CategoryNoFinding,
		OtherDiseases: "central serous retinopathy",
		CreatedBy:     "doctor@example.com",
	})
	require.NoError(t, err)
	require.NotNil(t, ann)
	assert.Equal(t, "central serous retinopathy", ann.OtherDiseases)
}

func TestBeginIgnoredWhileDrawing(t *testing.T) {
	d := NewDrafter(identityTransform())
	require.True(t, d.Begin(geometry.Point{X: 100, Y: 100}))
	assert.False(t, d.Begin(geometry.Point{X: 500, Y: 500}))

	// The anchor from the first Begin still applies.
	ann, err := d.Finish(geometry.Point{X: 160, Y: 160}, drawAttrs())
	require.NoError(t, err)
	require.NotNil(t, ann)
	assert.Equal(t, 100.0, ann.X)
}

func TestUpdateTracksLiveRect(t *testing.T) {
	d := NewDrafter(identityTransform())

	_, ok := d.Update(geometry.Point{X: 5, Y: 5})
	assert.False(t, ok)

	d.Begin(geometry.Point{X: 100, Y: 100})
	live, ok := d.Update(geometry.Point{X: 60, Y: 160})
	require.True(t, ok)
	// Live rect is raw anchor-to-pointer, not normalized.
	assert.Equal(t, geometry.Rect{X: 100, Y: 100, Width: -40, Height: 60}, live)
}

func TestFinishConvertsThroughZoomedTransform(t *testing.T) {
	// Image twice the viewport: base scale 0.5, centered exactly, then zoomed.
	tf := geometry.NewTransform(geometry.Viewport{Width: 800, Height: 600}, 1600, 1200).WithZoom(2)
	d := NewDrafter(tf)

	d.Begin(geometry.Point{X: 100, Y: 100})
	ann, err := d.Finish(geometry.Point{X: 200, Y: 180}, drawAttrs())
	require.NoError(t, err)
	require.NotNil(t, ann)

	// scale = 0.5 * 2 = 1, offsets 0: image coordinates equal display ones.
	assert.InDelta(t, 100, ann.X, 1e-9)
	assert.InDelta(t, 100, ann.Y, 1e-9)
	assert.InDelta(t, 100, ann.Width, 1e-9)
	assert.InDelta(t, 80, ann.Height, 1e-9)
}

func TestFinishStampsIdentityAndColor(t *testing.T) {
	d := NewDrafter(identityTransform())
	d.Begin(geometry.Point{X: 0, Y: 0})
	ann, err := d.Finish(geometry.Point{X: 50, Y: 50}, Attributes{
		Type:      CategoryExudate,
		Severity:  SeveritySevere,
		CreatedBy: "doctor@example.com",
	})
	require.NoError(t, err)
	require.NotNil(t, ann)

	assert.NotEmpty(t, ann.ID)
	assert.False(t, ann.CreatedAt.IsZero())
	assert.Equal(t, "doctor@example.com", ann.CreatedBy)
	assert.Equal(t, ColorSevere, ann.Color)

	// Ids are unique across draws.
	d.Begin(geometry.Point{X: 0, Y: 0})
	other, err := d.Finish(geometry.Point{X: 50, Y: 50}, drawAttrs())
	require.NoError(t, err)
	assert.NotEqual(t, ann.ID, other.ID)
}
