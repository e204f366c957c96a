package utils

import (
	"net/http"

	"thoughtaken/internal/api/dto/common"

	"github.com/gin-gonic/gin"
)

// HandleSuccess sends the plain {"ok":true} success response
func HandleSuccess(c *gin.Context) {
	c.JSON(http.StatusOK, common.NewOKResponse())
}

// HandleData sends a success response with data
func HandleData(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}
