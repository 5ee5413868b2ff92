package annotation

import (
	"strings"
	"time"
)

// Severity Per-annotation severity grade.
type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

// Category Closed set of anomaly types a clinician can mark.
type Category string

const (
	CategoryHemorrhage         Category = "hemorrhage"
	CategoryMicroaneurysm      Category = "microaneurysm"
	CategoryExudate            Category = "exudate"
	CategoryNeovascularization Category = "neovascularization"
	// CategoryNoFinding requires the free-text OtherDiseases field.
	CategoryNoFinding Category = "no_finding"
)

// Display colors per severity. The color on an annotation is always derived
// from its severity, never set directly.
const (
	ColorMild     = "#FFC107"
	ColorModerate = "#FF9800"
	ColorSevere   = "#F44336"
)

// ColorFor The fixed display color for a severity. Unknown severities map to
// black so a bad value is visible instead of invisible.
func ColorFor(s Severity) string {
	switch s {
	case SeverityMild:
		return ColorMild
	case SeverityModerate:
		return ColorModerate
	case SeveritySevere:
		return ColorSevere
	}
	return "#000000"
}

// KnownSeverity Whether s is one of the defined severity grades.
func KnownSeverity(s Severity) bool {
	switch s {
	case SeverityMild, SeverityModerate, SeveritySevere:
		return true
	}
	return false
}

// KnownCategory Whether c is in the closed category set.
func KnownCategory(c Category) bool {
	switch c {
	case CategoryHemorrhage, CategoryMicroaneurysm, CategoryExudate,
		CategoryNeovascularization, CategoryNoFinding:
		return true
	}
	return false
}

// Annotation A user-authored rectangular anomaly marking. The rectangle is in
// image-native pixel coordinates; display coordinates are derived through
// geometry.Transform and never stored.
type Annotation struct {
	ID            string    `json:"id"`
	ImageID       string    `json:"imageId,omitempty"`
	X             float64   `json:"x"`
	Y             float64   `json:"y"`
	Width         float64   `json:"width"`
	Height        float64   `json:"height"`
	Type          Category  `json:"type"`
	Severity      Severity  `json:"severity"`
	Color         string    `json:"color"`
	OtherDiseases string    `json:"other_diseases,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"created_by"`
}

// Validate Check the semantic fields of an annotation. Geometric validity
// (minimum size, normalization) is enforced by the Drafter before an
// Annotation is ever constructed.
func (a Annotation) Validate() error {
	if !KnownCategory(a.Type) {
		return &ValidationError{Field: "type", Reason: "unknown anomaly type"}
	}
	if a.Type == CategoryNoFinding {
		if strings.TrimSpace(a.OtherDiseases) == "" {
			return &ValidationError{Field: "other_diseases", Reason: "required when type is no_finding"}
		}
	} else if !KnownSeverity(a.Severity) {
		return &ValidationError{Field: "severity", Reason: "unknown severity"}
	}
	if a.Width <= 0 || a.Height <= 0 {
		return &ValidationError{Field: "width/height", Reason: "degenerate rectangle"}
	}
	return nil
}

// AIAnnotation A model-produced marking. Read-only to the engine and never
// merged into the persisted user set.
type AIAnnotation struct {
	ID         string   `json:"id"`
	X          float64  `json:"x"`
	Y          float64  `json:"y"`
	Width      float64  `json:"width"`
	Height     float64  `json:"height"`
	Type       Category `json:"type"`
	Severity   Severity `json:"severity"`
	Confidence float64  `json:"confidence"`
	Color      string   `json:"color"`
}

// Prediction A global image-level label from the inference service.
// Confidence is a fraction in [0,1], scaled to a percentage only for display.
type Prediction struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}
