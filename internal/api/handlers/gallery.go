package handlers

import (
	"thoughtaken/internal/gallery"
	"thoughtaken/internal/utils"

	"github.com/gin-gonic/gin"
)

// GalleryHandler serves the gallery page's image listing.
type GalleryHandler struct {
	lister *gallery.Lister
}

// NewGalleryHandler creates a gallery handler.
func NewGalleryHandler(lister *gallery.Lister) *GalleryHandler {
	return &GalleryHandler{lister: lister}
}

// List handles GET /api/v1/gallery/images
func (h *GalleryHandler) List(c *gin.Context) {
	utils.HandleData(c, gin.H{"images": h.lister.Images()})
}
