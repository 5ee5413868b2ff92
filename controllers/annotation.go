package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	uuid "github.com/twinj/uuid"

	"retinoscope/models"
)

// FindAllAnnotations Find every annotation in the store
func FindAllAnnotations(c *gin.Context) {
	var annotations []models.Annotation
	models.DB.Find(&annotations)

	c.JSON(http.StatusOK, gin.H{"data": annotations})
}

// FindAnnotations Find the annotations on an image, optionally scoped to one
// author via ?created_by=. The annotation engine always passes created_by so
// each user only ever syncs their own set.
func FindAnnotations(c *gin.Context) {
	query := models.DB.Where("image_id = ?", c.Param("image_id"))
	if createdBy := c.Query("created_by"); createdBy != "" {
		query = query.Where("created_by = ?", createdBy)
	}

	var annotations []models.Annotation
	// Creates within one save run in parallel and can share a timestamp;
	// the id tie-break keeps the list order stable across reloads.
	query.Order("created_at, id").Find(&annotations)

	c.JSON(http.StatusOK, gin.H{"data": annotations})
}

type CreateAnnotationInput struct {
	ID            string  `json:"id"`
	ImageID       string  `json:"imageId" binding:"required"`
	X             float64 `json:"x"`
	Y             float64 `json:"y"`
	Width         float64 `json:"width"`
	Height        float64 `json:"height"`
	Type          string  `json:"type" binding:"required"`
	Severity      string  `json:"severity"`
	Color         string  `json:"color"`
	OtherDiseases string  `json:"other_diseases"`
	CreatedBy     string  `json:"created_by"`
}

// CreateAnnotation Create a new annotation record. The client-generated id is
// authoritative; one is assigned only when the client sends none. The
// created_by claim from the JWT middleware, when present, overrides whatever
// the body carries.
func CreateAnnotation(c *gin.Context) {
	var input CreateAnnotationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	createdBy := input.CreatedBy
	if email := c.GetString("user_email"); email != "" {
		createdBy = email
	}

	record := models.Annotation{
		ID:            input.ID,
		ImageID:       input.ImageID,
		X:             input.X,
		Y:             input.Y,
		Width:         input.Width,
		Height:        input.Height,
		Type:          input.Type,
		Severity:      input.Severity,
		Color:         input.Color,
		OtherDiseases: input.OtherDiseases,
		CreatedAt:     time.Now().UTC(),
		CreatedBy:     createdBy,
	}
	if record.ID == "" {
		record.ID = uuid.NewV4().String()
	}

	if err := record.ToDomain().Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := models.DB.Create(&record).Error; err != nil {
		log.Error(fmt.Sprintf("Cannot create annotation %s: %v", record.ID, err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": record})
}

// DeleteAnnotation Delete an annotation by id. Idempotent: deleting an id
// that never existed, or was already deleted, still reports success so the
// sync protocol can retry freely.
func DeleteAnnotation(c *gin.Context) {
	models.DB.Delete(&models.Annotation{}, "id = ?", c.Param("id"))

	c.JSON(http.StatusOK, gin.H{"data": true})
}
