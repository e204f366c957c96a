package routes

import (
	"thoughtaken/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// SetupVideoRoutes configures the latest-video route
func SetupVideoRoutes(router *gin.RouterGroup, video *handlers.VideoHandler) {
	router.GET("/video/latest", video.Latest)
}
