package routes

import (
	"thoughtaken/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// SetupGalleryRoutes configures the gallery listing route
func SetupGalleryRoutes(router *gin.RouterGroup, gallery *handlers.GalleryHandler) {
	router.GET("/gallery/images", gallery.List)
}
