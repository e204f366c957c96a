package utils

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// ClientKey derives the rate-limit key for a request from proxy headers.
//
// Precedence: the first (leftmost) entry of X-Forwarded-For, then X-Real-IP,
// then the literal "unknown". Unidentifiable clients therefore share a single
// rate-limit bucket rather than bypassing the limiter.
func ClientKey(c *gin.Context) string {
	forwardedFor := c.GetHeader("X-Forwarded-For")
	if forwardedFor != "" {
		// X-Forwarded-For can be a comma-separated list
		// Format: client, proxy1, proxy2, ...
		ips := strings.Split(forwardedFor, ",")
		if clientIP := strings.TrimSpace(ips[0]); clientIP != "" {
			return clientIP
		}
	}

	if ip := c.GetHeader("X-Real-IP"); ip != "" {
		return ip
	}

	return "unknown"
}
