package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	uuid "github.com/twinj/uuid"

	"retinoscope/controllers"
	"retinoscope/inference"
	"retinoscope/middlewares"
	"retinoscope/models"
	"retinoscope/render"
	"retinoscope/utils"
)

// CorsMiddleware Use middleware for CORS (Cross-Origin Resource Sharing)
// TODO: This is too broad, cannot expose to the internet!
func corsMiddleware() gin.HandlerFunc {
	_corsMiddleware := cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"PUT", "GET", "POST", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"X-Requested-With, Content-Type, Origin, Authorization, Accept, Client-Security-Token, Accept-Encoding, x-access-token"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
	return _corsMiddleware
}

// RequestIDMiddleware Generate a UUID and attach it to each request
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		_uuid := uuid.NewV4()
		c.Writer.Header().Set("X-Request-Id", _uuid.String())
		c.Next()
	}
}

func main() {
	log.Info("Starting Retinoscope...")

	// Generate our config based on the config supplied
	// by the user in the flags
	configPath, debugMode, err := utils.ParseFlags()
	if err != nil {
		log.Fatal(err)
	}
	config, err := utils.NewConfig(configPath)
	if err != nil {
		log.Fatal(err)
	}

	// Debug mode enables gin-gonic debug mode
	if debugMode == false {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to the database
	models.ConnectDataBase(config.Database.Driver, config.Database.Dsn)

	r := gin.Default()

	r.Use(corsMiddleware())
	r.Use(requestIDMiddleware())
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// Version tag to test against
	r.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "v0.1.0",
		})
	})

	// Cache of decoded images backing the overlay renderer
	cache := render.NewCache(10*time.Minute, time.Minute)

	// Adapter for the external inference service
	predictor := inference.New(config.Inference.URL)

	// REST API consumed by the annotation engine. With a configured JWT
	// secret each request must carry a bearer token and the claimed email
	// becomes the authoritative created_by; without one, identity comes
	// from the request itself.
	api := r.Group("/api")
	v1 := api.Group("/v1")
	v1.Use(middlewares.JwtAuthMiddleware(config.Server.JwtSecret))
	{
		v1.GET("/images", controllers.FindImages)
		v1.POST("/images", controllers.CreateImage)
		v1.GET("/images/:id", controllers.FindImage)
		v1.PATCH("/images/:id", controllers.UpdateImage)
		v1.DELETE("/images/:id", controllers.DeleteImage)
		v1.GET("/images/:id/overlay.png", controllers.GetOverlay(cache, config))

		v1.GET("/annotations", controllers.FindAllAnnotations)
		v1.GET("/annotations/:image_id", controllers.FindAnnotations)
		v1.POST("/annotations", controllers.CreateAnnotation)
		v1.DELETE("/annotations/:id", controllers.DeleteAnnotation)

		v1.POST("/predict", controllers.Predict(predictor))

		v1.GET("/classifications", controllers.FindClassifications)
		v1.POST("/classifications", controllers.CreateClassification)
	}

	addr := fmt.Sprintf(":%s", config.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		// service connections
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with
	// a timeout of 5 seconds.
	quit := make(chan os.Signal, 1)
	// kill (no param) default send syscanll.SIGTERM
	// kill -2 is syscall.SIGINT
	// kill -9 is syscall. SIGKILL but can"t be catch, so don't need add it
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutdown Server ...")

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}
	// catching ctx.Done(). timeout of 1 seconds.
	select {
	case <-ctx.Done():
		log.Info("Timeout of 1 seconds.")
	}

	cache.Stop()

	log.Info("Server exiting")
}
