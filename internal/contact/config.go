package contact

import (
	"fmt"
	"time"
)

// Messages holds the user-facing error text for each failure kind. The
// anti-abuse messages stay deliberately generic so probing bots learn nothing
// about which heuristic fired; the field-level messages are specific so
// legitimate users can fix their input.
type Messages struct {
	BotBlocked           string
	SubmissionValidation string
	TooManySubmissions   string
	AllFieldsRequired    string
	InvalidNameLength    string
	InvalidMessageLength string
	SpamBlocked          string
	InvalidEmail         string
}

// Config holds the guard thresholds and error messages. Read-only after
// construction.
type Config struct {
	NameMinLength     int
	NameMaxLength     int
	MessageMinLength  int
	MessageMaxLength  int
	MinSubmitDelay    time.Duration
	MaxLinksInMessage int
	RateLimitWindow   time.Duration
	RateLimitMax      int
	Messages          Messages
}

// DefaultConfig returns the production guard configuration
func DefaultConfig() Config {
	cfg := Config{
		NameMinLength:     2,
		NameMaxLength:     80,
		MessageMinLength:  15,
		MessageMaxLength:  2000,
		MinSubmitDelay:    2500 * time.Millisecond,
		MaxLinksInMessage: 2,
		RateLimitWindow:   10 * time.Minute,
		RateLimitMax:      5,
	}
	cfg.Messages = Messages{
		BotBlocked:           "Bot traffic is blocked.",
		SubmissionValidation: "Submission validation failed.",
		TooManySubmissions:   "Too many submissions. Please try again later.",
		AllFieldsRequired:    "All fields are required.",
		InvalidNameLength:    fmt.Sprintf("Name must be between %d and %d characters.", cfg.NameMinLength, cfg.NameMaxLength),
		InvalidMessageLength: fmt.Sprintf("Message must be between %d and %d characters.", cfg.MessageMinLength, cfg.MessageMaxLength),
		SpamBlocked:          "Message looks like spam and was blocked.",
		InvalidEmail:         "Please enter a valid email.",
	}
	return cfg
}
