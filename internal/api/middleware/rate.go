package middleware

import (
	"net/http"
	"strconv"
	"time"

	"thoughtaken/internal/api/dto/common"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimitConfig defines configuration for the burst rate limiter
type RateLimitConfig struct {
	// Requests per second
	RPS int
	// Burst size (number of requests that can be made in a single burst)
	Burst int
}

// RateLimitMiddleware applies a process-wide token-bucket limit. It caps the
// overall request rate of an endpoint (or the whole router); the per-client
// sliding-window quota of the contact pipeline lives in the submission guard,
// not here.
func RateLimitMiddleware(config RateLimitConfig) gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Limit(config.RPS), config.Burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.JSON(http.StatusTooManyRequests,
				common.NewErrorResponse("Too many submissions. Please try again later."))
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(config.RPS))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(int(limiter.Tokens())))

		waitTime := limiter.Reserve().Delay()
		c.Header("X-RateLimit-Reset", time.Now().Add(waitTime).Format(time.RFC1123))

		c.Next()
	}
}
