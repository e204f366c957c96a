package utils

import (
	"fmt"

	"thoughtaken/internal/api/dto/common"
	"thoughtaken/internal/logging"

	"github.com/gin-gonic/gin"
)

// LogError logs an error with a message using the singleton logger
func LogError(err error, message string) {
	logger := logging.GetLogger()
	logger.Error("%s: %v", message, err)
}

// HandleAPIError is a utility function for consistent error handling across the API.
// It ensures sensitive error details are only exposed in non-production environments.
func HandleAPIError(c *gin.Context, err error, status int, message string) {
	logger := logging.GetLogger()
	logger.LogHTTPError(
		c.Request.Method,
		c.Request.URL.Path,
		ClientKey(c),
		status,
		message,
		err,
	)

	// In production, don't expose error details
	if err != nil && gin.Mode() != gin.ReleaseMode {
		message = fmt.Sprintf("%s (%v)", message, err)
	}

	c.JSON(status, common.NewErrorResponse(message))
}
