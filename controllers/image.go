package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	uuid "github.com/twinj/uuid"

	"retinoscope/models"
	"retinoscope/utils"
)

// FindImages Find all images with their annotations
func FindImages(c *gin.Context) {
	var images []models.Image
	query := models.DB.Preload("Annotations")
	if uploadedBy := c.Query("uploaded_by"); uploadedBy != "" {
		query = query.Where("uploaded_by = ?", uploadedBy)
	}
	query.Find(&images)

	c.JSON(http.StatusOK, gin.H{"data": images})
}

type CreateImageInput struct {
	Path        string `json:"path" binding:"required"`
	Identifier  string `json:"identifier" binding:"required"`
	PatientID   string `json:"patientId"`
	PatientName string `json:"patientName"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	UploadedBy  string `json:"uploadedBy"`
}

// CreateImage Register a new image. The file itself is stored elsewhere; when
// the native dimensions are not supplied they are probed from the file header
// so the geometry transform has something to fit.
func CreateImage(c *gin.Context) {
	var input CreateImageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Width == 0 || input.Height == 0 {
		w, h, err := utils.ProbeImageSize(input.Path)
		if err != nil {
			log.Error(fmt.Sprintf("Cannot probe dimensions for image %s", input.Path))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		input.Width = w
		input.Height = h
	}
	log.Info(fmt.Sprintf("Importing %s with size %dx%d", input.Path, input.Width, input.Height))

	image := models.Image{
		ID:          uuid.NewV4().String(),
		Path:        input.Path,
		Identifier:  input.Identifier,
		PatientID:   input.PatientID,
		PatientName: input.PatientName,
		Width:       input.Width,
		Height:      input.Height,
		UploadedAt:  time.Now().UTC(),
		UploadedBy:  input.UploadedBy,
	}
	models.DB.Create(&image)

	c.JSON(http.StatusOK, gin.H{"data": image})
}

// FindImage Find an image
func FindImage(c *gin.Context) {
	var image models.Image

	if err := models.DB.Preload("Annotations").Where("id = ?", c.Param("id")).First(&image).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Record not found!"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": image})
}

type UpdateImageInput struct {
	Identifier  string `json:"identifier"`
	PatientID   string `json:"patientId"`
	PatientName string `json:"patientName"`
}

// UpdateImage Update an image's metadata
func UpdateImage(c *gin.Context) {
	var image models.Image
	if err := models.DB.Where("id = ?", c.Param("id")).First(&image).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Record not found!"})
		return
	}

	var input UpdateImageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Identifier != "" {
		image.Identifier = input.Identifier
	}
	if input.PatientID != "" {
		image.PatientID = input.PatientID
	}
	if input.PatientName != "" {
		image.PatientName = input.PatientName
	}
	models.DB.Save(&image)

	c.JSON(http.StatusOK, gin.H{"data": image})
}

// DeleteImage Delete an image and every annotation on it
func DeleteImage(c *gin.Context) {
	var image models.Image
	if err := models.DB.Where("id = ?", c.Param("id")).First(&image).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Record not found!"})
		return
	}

	models.DB.Delete(&models.Annotation{}, "image_id = ?", image.ID)
	models.DB.Delete(&image)

	c.JSON(http.StatusOK, gin.H{"data": true})
}
