package models

import (
	"time"

	"retinoscope/annotation"
)

// Annotation A persisted bounding-box record. The rectangle is in image-native
// pixel coordinates. Ids are client-generated and authoritative; the server
// assigns one only when the client sends none.
type Annotation struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	ImageID       string    `json:"imageId" gorm:"index"`
	X             float64   `json:"x"`
	Y             float64   `json:"y"`
	Width         float64   `json:"width"`
	Height        float64   `json:"height"`
	Type          string    `json:"type"`
	Severity      string    `json:"severity"`
	Color         string    `json:"color"`
	OtherDiseases string    `json:"other_diseases,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"created_by" gorm:"index"`
}

// ToDomain Convert a persisted record to the engine type.
func (a Annotation) ToDomain() annotation.Annotation {
	return annotation.Annotation{
		ID:            a.ID,
		ImageID:       a.ImageID,
		X:             a.X,
		Y:             a.Y,
		Width:         a.Width,
		Height:        a.Height,
		Type:          annotation.Category(a.Type),
		Severity:      annotation.Severity(a.Severity),
		Color:         a.Color,
		OtherDiseases: a.OtherDiseases,
		CreatedAt:     a.CreatedAt,
		CreatedBy:     a.CreatedBy,
	}
}
