package mail

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"mime/multipart"
	"net"
	"net/textproto"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
)

// SMTPSender delivers messages through an authenticated SMTP submission
// endpoint (STARTTLS, PLAIN auth).
type SMTPSender struct {
	host     string
	port     string
	username string
	password string
}

// NewSMTPSender creates an SMTP delivery backend.
func NewSMTPSender(host, port, username, password string) *SMTPSender {
	return &SMTPSender{
		host:     host,
		port:     port,
		username: username,
		password: password,
	}
}

// Name implements Sender
func (s *SMTPSender) Name() string {
	return "smtp"
}

// Send implements Sender. One SMTP transaction per message, no retry.
func (s *SMTPSender) Send(ctx context.Context, msg *Message) error {
	raw, err := buildMIMEMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to build mime message: %w", err)
	}

	addr := net.JoinHostPort(s.host, s.port)
	auth := sasl.NewPlainClient("", s.username, s.password)

	if err := smtp.SendMail(addr, auth, msg.FromEmail, []string{msg.To}, bytes.NewReader(raw)); err != nil {
		return fmt.Errorf("smtp delivery failed: %w", err)
	}

	return nil
}

// buildMIMEMessage renders a multipart/alternative message carrying the text
// and HTML bodies, with Reply-To pointing at the submitter.
func buildMIMEMessage(msg *Message) ([]byte, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	fmt.Fprintf(&buf, "From: %s <%s>\r\n", mime.QEncoding.Encode("utf-8", msg.FromName), msg.FromEmail)
	fmt.Fprintf(&buf, "To: %s\r\n", msg.To)
	fmt.Fprintf(&buf, "Reply-To: %s\r\n", msg.ReplyTo)
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", msg.Subject))
	fmt.Fprintf(&buf, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/alternative; boundary=%q\r\n", writer.Boundary())
	fmt.Fprintf(&buf, "\r\n")

	textPart, err := writer.CreatePart(textproto.MIMEHeader{
		"Content-Type": {"text/plain; charset=utf-8"},
	})
	if err != nil {
		return nil, err
	}
	if _, err := textPart.Write([]byte(msg.TextBody)); err != nil {
		return nil, err
	}

	htmlPart, err := writer.CreatePart(textproto.MIMEHeader{
		"Content-Type": {"text/html; charset=utf-8"},
	})
	if err != nil {
		return nil, err
	}
	if _, err := htmlPart.Write([]byte(msg.HTMLBody)); err != nil {
		return nil, err
	}

	if err := writer.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
