package models

import "time"

// Classification A global per-image disease label with its stage, recorded
// next to the AI prediction and the comparison verdict between the two.
type Classification struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	ImageID      string    `json:"imageId" gorm:"index"`
	PatientID    string    `json:"patientId"`
	PatientName  string    `json:"patientName"`
	ManualLabel  string    `json:"manual_label"`
	Stage        int       `json:"stage,omitempty"`
	OtherDisease string    `json:"other_disease,omitempty"`
	AILabel      string    `json:"ai_label,omitempty"`
	AIConfidence float64   `json:"ai_confidence,omitempty"`
	Comparison   string    `json:"comparison"`
	CreatedAt    time.Time `json:"created_at"`
	CreatedBy    string    `json:"created_by"`
}
