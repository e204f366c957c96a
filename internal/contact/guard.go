// Package contact implements the submission guard for the contact form: an
// ordered chain of anti-abuse and validation checks that decides whether a
// submission may proceed to mail delivery, and if not, which single reason to
// report.
package contact

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Input is the raw inbound submission together with the request attributes
// the guard needs.
type Input struct {
	Name          string
	Email         string
	Message       string
	Company       string // honeypot field, expected empty
	FormStartedAt *int64 // client-reported epoch ms, nil if absent
	UserAgent     string
	ClientKey     string // rate-limit key derived from the source address
}

// Validated is a submission that passed every check: trimmed, non-empty,
// within the configured bounds. It exists only for the duration of one
// request.
type Validated struct {
	Name    string
	Email   string
	Message string
}

// Outcome is the guard's verdict on a submission.
type Outcome int

const (
	// Rejected means a check failed; the accompanying Failure says which.
	Rejected Outcome = iota
	// Accepted means every check passed and the submission may be delivered.
	Accepted
	// SilentAccept means the honeypot fired: the caller must report success
	// without delivering anything, so the bot learns nothing.
	SilentAccept
)

// Guard runs the check chain. The checks run in a fixed order and the first
// failure short-circuits: each check is cheaper or more security-relevant
// than the next, and only one failure message may reach the caller.
type Guard struct {
	cfg     Config
	limiter RateLimiter
}

// NewGuard creates a guard with the given configuration and rate limiter.
func NewGuard(cfg Config, limiter RateLimiter) *Guard {
	return &Guard{cfg: cfg, limiter: limiter}
}

// Check applies the chain to one submission. On full pass it returns the
// validated submission with Accepted. A honeypot hit returns SilentAccept
// with neither a validated submission nor a failure.
//
// The rate-limit slot is consumed at the rate-limit check, before field
// validation: a request that later fails validation has still used a slot.
// Only bot-signature, honeypot and fill-time outcomes leave the ledger
// untouched.
func (g *Guard) Check(in Input, now time.Time) (*Validated, Outcome, *Failure) {
	if IsBotAgent(in.UserAgent) {
		return nil, Rejected, g.fail(KindBotBlocked, g.cfg.Messages.BotBlocked)
	}

	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	message := strings.TrimSpace(in.Message)

	if strings.TrimSpace(in.Company) != "" {
		return nil, SilentAccept, nil
	}

	if in.FormStartedAt == nil || now.UnixMilli()-*in.FormStartedAt < g.cfg.MinSubmitDelay.Milliseconds() {
		return nil, Rejected, g.fail(KindSubmissionValidation, g.cfg.Messages.SubmissionValidation)
	}

	if !g.limiter.Allow(in.ClientKey, now) {
		return nil, Rejected, g.fail(KindTooManySubmissions, g.cfg.Messages.TooManySubmissions)
	}

	if name == "" || email == "" || message == "" {
		return nil, Rejected, g.fail(KindAllFieldsRequired, g.cfg.Messages.AllFieldsRequired)
	}

	if n := utf8.RuneCountInString(name); n < g.cfg.NameMinLength || n > g.cfg.NameMaxLength {
		return nil, Rejected, g.fail(KindInvalidNameLength, g.cfg.Messages.InvalidNameLength)
	}

	if n := utf8.RuneCountInString(message); n < g.cfg.MessageMinLength || n > g.cfg.MessageMaxLength {
		return nil, Rejected, g.fail(KindInvalidMessageLength, g.cfg.Messages.InvalidMessageLength)
	}

	if looksLikeSpam(message, g.cfg.MaxLinksInMessage) {
		return nil, Rejected, g.fail(KindSpamBlocked, g.cfg.Messages.SpamBlocked)
	}

	if !isValidEmail(email) {
		return nil, Rejected, g.fail(KindInvalidEmail, g.cfg.Messages.InvalidEmail)
	}

	return &Validated{Name: name, Email: email, Message: message}, Accepted, nil
}

func (g *Guard) fail(kind FailureKind, message string) *Failure {
	return &Failure{
		Kind:    kind,
		Message: message,
		Status:  statusFor(kind),
	}
}
