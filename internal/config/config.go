package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server Configuration
	Environment    string `env:"ENV" envDefault:"development"`
	Port           string `env:"PORT" envDefault:"8080"`
	AllowedOrigins string `env:"ALLOWED_ORIGINS"`
	LogFile        string `env:"LOG_FILE"`

	// Mail Configuration
	MailProvider     string `env:"MAIL_PROVIDER" envDefault:"mailjet"`
	MailjetAPIKey    string `env:"MAILJET_API_KEY"`
	MailjetAPISecret string `env:"MAILJET_API_SECRET"`
	SMTPHost         string `env:"SMTP_HOST"`
	SMTPPort         string `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername     string `env:"SMTP_USERNAME"`
	SMTPPassword     string `env:"SMTP_PASSWORD"`
	MailFromEmail    string `env:"MAILJET_FROM_EMAIL" validate:"omitempty,email"`
	MailFromName     string `env:"MAILJET_FROM_NAME" envDefault:"ThoughtTaken"`
	ContactTo        string `env:"CONTACT_TO" validate:"omitempty,email"`

	// YouTube Configuration
	YouTubeChannelURL  string `env:"YOUTUBE_CHANNEL_URL" envDefault:"https://www.youtube.com/@thoughtaken" validate:"omitempty,url"`
	YouTubeChannelID   string `env:"YOUTUBE_CHANNEL_ID"`
	YouTubeFallbackID  string `env:"YOUTUBE_FALLBACK_VIDEO_ID"`
	MinLongformSeconds int    `env:"YOUTUBE_MIN_LONGFORM_SECONDS" envDefault:"180"`

	// Gallery Configuration
	GalleryDir string `env:"GALLERY_DIR" envDefault:"public/gallary"`
}

// Load loads the configuration from environment variables and .env files
func Load() (*Config, error) {
	// Load .env file if it exists. Try the environment-specific file first,
	// then fall back to a plain .env. godotenv never overwrites variables
	// that are already set.
	envLocations := []string{".env"}
	if envName := os.Getenv("ENV"); envName != "" {
		envLocations = append([]string{fmt.Sprintf(".env.%s", envName)}, envLocations...)
	}

	for _, loc := range envLocations {
		if err := godotenv.Load(loc); err == nil {
			break
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Catch malformed addresses at startup instead of on the first submission.
	// Absence of mail credentials is NOT a startup error: it is reported per
	// request by the delivery layer so the rest of the site keeps working.
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	// Set default log file if not set
	if cfg.LogFile == "" {
		if cfg.Environment == "production" {
			cfg.LogFile = "/app/logs/api.log"
		} else {
			cfg.LogFile = "./logs/api.log"
		}
	}

	// Ensure log directory exists
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	return cfg, nil
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
