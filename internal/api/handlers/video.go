package handlers

import (
	"thoughtaken/internal/utils"
	"thoughtaken/internal/youtube"

	"github.com/gin-gonic/gin"
)

// VideoHandler serves the channel's latest video for the homepage embed.
type VideoHandler struct {
	service *youtube.Service
}

// NewVideoHandler creates a video handler.
func NewVideoHandler(service *youtube.Service) *VideoHandler {
	return &VideoHandler{service: service}
}

// Latest handles GET /api/v1/video/latest. Resolution is best effort and
// never fails: worst case the response carries the configured fallback video.
func (h *VideoHandler) Latest(c *gin.Context) {
	utils.HandleData(c, h.service.Latest(c.Request.Context()))
}
