package models

import "time"

// Image Metadata for one fundus photograph. The file itself is stored and
// served elsewhere; Path points at it and Width/Height are the native pixel
// dimensions the geometry package fits into the viewport.
type Image struct {
	ID          string       `json:"id" gorm:"primaryKey"`
	Path        string       `json:"path"`
	Identifier  string       `json:"identifier"`
	PatientID   string       `json:"patientId"`
	PatientName string       `json:"patientName"`
	Width       int          `json:"width"`
	Height      int          `json:"height"`
	UploadedAt  time.Time    `json:"uploadedAt"`
	UploadedBy  string       `json:"uploadedBy"`
	Annotations []Annotation `json:"annotations" gorm:"foreignKey:ImageID"`
}
