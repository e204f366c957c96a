package middleware

import (
	"net/http"
	"runtime/debug"

	"thoughtaken/internal/api/dto/common"
	"thoughtaken/internal/logging"

	"github.com/gin-gonic/gin"
)

// Recovery catches panics at the outer boundary and normalizes them to a
// generic error response, so a caller never sees a raw internal error.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger := logging.GetLogger()
				logger.Error("[PANIC] %s %s from %s: %v\n%s",
					c.Request.Method,
					c.Request.URL.Path,
					c.ClientIP(),
					r,
					debug.Stack(),
				)

				c.AbortWithStatusJSON(http.StatusInternalServerError,
					common.NewErrorResponse("Internal server error"))
			}
		}()

		c.Next()
	}
}
