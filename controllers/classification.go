package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	uuid "github.com/twinj/uuid"

	"retinoscope/annotation"
	"retinoscope/models"
)

type CreateClassificationInput struct {
	ImageID      string  `json:"imageId" binding:"required"`
	PatientID    string  `json:"patientId"`
	PatientName  string  `json:"patientName"`
	ManualLabel  string  `json:"manual_label" binding:"required"`
	Stage        int     `json:"stage"`
	OtherDisease string  `json:"other_disease"`
	AILabel      string  `json:"ai_label"`
	AIConfidence float64 `json:"ai_confidence"`
	CreatedBy    string  `json:"created_by"`
}

// CreateClassification Record a global disease label for an image. The
// manual-vs-AI verdict is computed here, not trusted from the client.
func CreateClassification(c *gin.Context) {
	var input CreateClassificationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comparison := ""
	if input.AILabel != "" {
		if annotation.CompareLabels(input.ManualLabel, input.AILabel).Match {
			comparison = "identical"
		} else {
			comparison = "different"
		}
	}

	createdBy := input.CreatedBy
	if email := c.GetString("user_email"); email != "" {
		createdBy = email
	}

	record := models.Classification{
		ID:           uuid.NewV4().String(),
		ImageID:      input.ImageID,
		PatientID:    input.PatientID,
		PatientName:  input.PatientName,
		ManualLabel:  input.ManualLabel,
		Stage:        input.Stage,
		OtherDisease: input.OtherDisease,
		AILabel:      input.AILabel,
		AIConfidence: input.AIConfidence,
		Comparison:   comparison,
		CreatedAt:    time.Now().UTC(),
		CreatedBy:    createdBy,
	}
	if err := models.DB.Create(&record).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": record})
}

// FindClassifications Find classification records, optionally per image
func FindClassifications(c *gin.Context) {
	query := models.DB.Order("created_at desc")
	if imageID := c.Query("image_id"); imageID != "" {
		query = query.Where("image_id = ?", imageID)
	}

	var classifications []models.Classification
	query.Find(&classifications)

	c.JSON(http.StatusOK, gin.H{"data": classifications})
}
