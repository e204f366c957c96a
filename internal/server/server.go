package server

import (
	"io"

	"thoughtaken/internal/api/handlers"
	"thoughtaken/internal/api/middleware"
	"thoughtaken/internal/config"
	"thoughtaken/internal/contact"
	"thoughtaken/internal/gallery"
	"thoughtaken/internal/mail"
	"thoughtaken/internal/server/routes"
	"thoughtaken/internal/youtube"

	"github.com/gin-gonic/gin"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	cfg    *config.Config
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config) *Server {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Disable Gin's default logger entirely because we're using our custom logger
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	// Create a new engine without default middleware
	router := gin.New()

	return &Server{
		router: router,
		cfg:    cfg,
	}
}

// Start wires dependencies, middleware and routes, then serves
func (s *Server) Start() error {
	// Add global middleware
	s.router.Use(middleware.Recovery())
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.CORS(s.cfg.AllowedOrigins, s.cfg.IsProduction()))
	s.router.Use(middleware.SecurityHeaders())
	s.router.Use(middleware.RequestLogger())
	s.router.Use(middleware.RateLimitMiddleware(middleware.RateLimitConfig{
		RPS:   10,
		Burst: 20,
	}))

	// Submission guard with its per-client sliding-window limiter
	guardCfg := contact.DefaultConfig()
	limiter := contact.NewSlidingWindowLimiter(guardCfg.RateLimitWindow, guardCfg.RateLimitMax)
	guard := contact.NewGuard(guardCfg, limiter)

	// Delivery backend bound by configuration, not by branching in the guard
	creds := mail.Credentials{
		Provider:         s.cfg.MailProvider,
		MailjetAPIKey:    s.cfg.MailjetAPIKey,
		MailjetAPISecret: s.cfg.MailjetAPISecret,
		SMTPHost:         s.cfg.SMTPHost,
		SMTPPort:         s.cfg.SMTPPort,
		SMTPUsername:     s.cfg.SMTPUsername,
		SMTPPassword:     s.cfg.SMTPPassword,
		FromEmail:        s.cfg.MailFromEmail,
		FromName:         s.cfg.MailFromName,
		To:               s.cfg.ContactTo,
	}

	videoService := youtube.NewService(youtube.Options{
		ChannelURL:         s.cfg.YouTubeChannelURL,
		ChannelID:          s.cfg.YouTubeChannelID,
		FallbackVideoID:    s.cfg.YouTubeFallbackID,
		MinLongformSeconds: s.cfg.MinLongformSeconds,
	})

	h := &routes.Handlers{
		Contact: handlers.NewContactHandler(guard, creds, creds.NewSender()),
		Video:   handlers.NewVideoHandler(videoService),
		Gallery: handlers.NewGalleryHandler(gallery.NewLister(s.cfg.GalleryDir)),
		Health:  handlers.NewHealthHandler(),
	}

	routes.Setup(s.router, h)

	return s.router.Run(":" + s.cfg.Port)
}
