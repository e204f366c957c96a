// Package mail implements outbound delivery of validated contact submissions.
// Delivery is modeled as a single capability interface with concrete backends
// (Mailjet API, SMTP) bound via configuration. No backend retries: a failed
// send fails the request once and the user is expected to resubmit.
package mail

import "context"

// Message is a composed email ready for delivery.
type Message struct {
	FromEmail string
	FromName  string
	To        string
	ReplyTo   string
	Subject   string
	TextBody  string
	HTMLBody  string
}

// Sender is the interface that delivery backends must implement.
type Sender interface {
	// Send delivers the message. It issues exactly one outbound call and
	// returns an error if the provider reports failure.
	Send(ctx context.Context, msg *Message) error

	// Name returns the human-readable name of this backend.
	Name() string
}
