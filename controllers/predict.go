package controllers

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"retinoscope/annotation"
)

// Predictor The external inference service, consumed as an opaque
// prediction endpoint.
type Predictor interface {
	Predict(ctx context.Context, image []byte) (annotation.Prediction, error)
}

// Predict Forward uploaded image bytes to the inference service and return
// its global prediction. Confidence stays a fraction in [0,1]; scaling to a
// percentage is a display concern.
func Predict(predictor Predictor) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, _, err := c.Request.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		prediction, err := predictor.Predict(c.Request.Context(), data)
		if err != nil {
			log.Error("Prediction failed: ", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, prediction)
	}
}
