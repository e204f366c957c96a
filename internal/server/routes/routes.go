package routes

import (
	"thoughtaken/internal/logging"

	"github.com/gin-gonic/gin"
)

// Setup configures all route groups
func Setup(router *gin.Engine, h *Handlers) {
	logger := logging.GetLogger()

	// Health check endpoint - no rate limiting beyond the global one
	router.GET("/health", h.Health.Check)

	v1 := router.Group("/api/v1")

	SetupContactRoutes(v1, h.Contact)
	SetupVideoRoutes(v1, h.Video)
	SetupGalleryRoutes(v1, h.Gallery)

	logger.Info("All routes have been set up successfully")
}
