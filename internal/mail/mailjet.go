package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultMailjetBaseURL = "https://api.mailjet.com"

// MailjetSender delivers messages through the Mailjet v3.1 send API.
type MailjetSender struct {
	apiKey    string
	apiSecret string
	baseURL   string
	client    *http.Client
}

// NewMailjetSender creates a Mailjet delivery backend.
func NewMailjetSender(apiKey, apiSecret string) *MailjetSender {
	return &MailjetSender{
		apiKey:    apiKey,
		apiSecret: apiSecret,
		baseURL:   defaultMailjetBaseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NewMailjetSenderWithBaseURL creates a sender against a custom API endpoint,
// used for testing.
func NewMailjetSenderWithBaseURL(apiKey, apiSecret, baseURL string) *MailjetSender {
	s := NewMailjetSender(apiKey, apiSecret)
	s.baseURL = baseURL
	return s
}

// mailjetAddress is a Mailjet API address object
type mailjetAddress struct {
	Email string `json:"Email"`
	Name  string `json:"Name,omitempty"`
}

// mailjetMessage is one entry of a Mailjet v3.1 send payload
type mailjetMessage struct {
	From     mailjetAddress   `json:"From"`
	To       []mailjetAddress `json:"To"`
	ReplyTo  mailjetAddress   `json:"ReplyTo"`
	Subject  string           `json:"Subject"`
	TextPart string           `json:"TextPart"`
	HTMLPart string           `json:"HTMLPart"`
	CustomID string           `json:"CustomID,omitempty"`
}

type mailjetPayload struct {
	Messages []mailjetMessage `json:"Messages"`
}

// Name implements Sender
func (s *MailjetSender) Name() string {
	return "mailjet"
}

// Send implements Sender. It issues a single authenticated call to the
// Mailjet send API; a non-success status is surfaced as an error with the
// response body attached, and no retry is attempted.
func (s *MailjetSender) Send(ctx context.Context, msg *Message) error {
	payload := mailjetPayload{
		Messages: []mailjetMessage{
			{
				From: mailjetAddress{
					Email: msg.FromEmail,
					Name:  msg.FromName,
				},
				To:       []mailjetAddress{{Email: msg.To}},
				ReplyTo:  mailjetAddress{Email: msg.ReplyTo},
				Subject:  msg.Subject,
				TextPart: msg.TextBody,
				HTMLPart: msg.HTMLBody,
				CustomID: "ThoughtTaken-Contact-Form",
			},
		},
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal mailjet payload: %w", err)
	}

	url := s.baseURL + "/v3.1/send"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create mailjet request: %w", err)
	}

	req.SetBasicAuth(s.apiKey, s.apiSecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send mailjet request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("mailjet API error (%d): %s", resp.StatusCode, string(body))
	}

	return nil
}
