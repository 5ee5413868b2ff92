package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"retinoscope/annotation"
	"retinoscope/geometry"
	"retinoscope/models"
	"retinoscope/render"
	"retinoscope/utils"
)

// GetOverlay Rasterize an image with its annotation rectangles into the
// configured viewport. ?created_by= scopes the rectangles to one author and
// ?zoom= applies the interactive multiplier the canvas would.
func GetOverlay(cache *render.Cache, config *utils.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var image models.Image
		if err := models.DB.Where("id = ?", c.Param("id")).First(&image).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Record not found!"})
			return
		}

		decoded, err := cache.Image(image.ID, image.Path)
		if err != nil {
			log.Error("Cannot load image for overlay: ", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		zoom := 1.0
		if z := c.Query("zoom"); z != "" {
			zoom, err = strconv.ParseFloat(z, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid zoom"})
				return
			}
		}

		query := models.DB.Where("image_id = ?", image.ID)
		if createdBy := c.Query("created_by"); createdBy != "" {
			query = query.Where("created_by = ?", createdBy)
		}
		var records []models.Annotation
		query.Order("created_at, id").Find(&records)
		annotations := make([]annotation.Annotation, 0, len(records))
		for _, r := range records {
			annotations = append(annotations, r.ToDomain())
		}

		viewport := geometry.Viewport{
			Width:  config.Viewport.Width,
			Height: config.Viewport.Height,
		}
		transform := geometry.NewTransform(viewport, float64(image.Width), float64(image.Height)).WithZoom(zoom)

		rendered := render.Overlay(decoded, viewport, transform, annotations)
		buffer, err := utils.ImageToPngBuffer(rendered)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.Data(http.StatusOK, "image/png", buffer)
	}
}
