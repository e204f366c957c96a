package routes

import (
	"thoughtaken/internal/api/handlers"
	"thoughtaken/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// SetupContactRoutes configures contact form routes
func SetupContactRoutes(router *gin.RouterGroup, contact *handlers.ContactHandler) {
	public := router.Group("/contact")
	{
		// Public endpoint. The burst limiter in front absorbs scripted
		// hammering; the per-client sliding-window quota is enforced inside
		// the handler's guard chain.
		public.POST("/submit",
			middleware.RateLimitMiddleware(middleware.RateLimitConfig{
				RPS:   1,
				Burst: 5,
			}),
			contact.Submit,
		)
	}
}
