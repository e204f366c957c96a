package mail

import (
	"strings"
	"testing"
	"time"
)

var testCreds = Credentials{
	Provider:         ProviderMailjet,
	MailjetAPIKey:    "key",
	MailjetAPISecret: "secret",
	FromEmail:        "noreply@thoughtaken.com",
	FromName:         "ThoughtTaken",
	To:               "inbox@thoughtaken.com",
}

func TestComposeAddressing(t *testing.T) {
	msg := Compose(testCreds, "Jane Doe", "jane@example.com", "Hello there, nice bike!", time.Now())

	if msg.FromEmail != "noreply@thoughtaken.com" {
		t.Errorf("FromEmail = %q, want the configured outbound identity", msg.FromEmail)
	}
	if msg.To != "inbox@thoughtaken.com" {
		t.Errorf("To = %q", msg.To)
	}
	if msg.ReplyTo != "jane@example.com" {
		t.Errorf("ReplyTo = %q, want the submitter's address", msg.ReplyTo)
	}
	if msg.Subject != "THOUGHTAKEN Contact | Jane Doe" {
		t.Errorf("Subject = %q", msg.Subject)
	}
}

func TestComposeHTMLEscaping(t *testing.T) {
	message := `<b>hi</b> & "quotes"`
	msg := Compose(testCreds, "Jane Doe", "jane@example.com", message, time.Now())

	want := "&lt;b&gt;hi&lt;/b&gt; &amp; &quot;quotes&quot;"
	if !strings.Contains(msg.HTMLBody, want) {
		t.Errorf("HTML body missing escaped message %q:\n%s", want, msg.HTMLBody)
	}
	if strings.Contains(msg.HTMLBody, "<b>hi</b>") {
		t.Error("HTML body contains unescaped submitter markup")
	}

	// The text body carries the message verbatim
	if !strings.Contains(msg.TextBody, message) {
		t.Errorf("text body should contain the raw message:\n%s", msg.TextBody)
	}
}

func TestComposeEscapesNameAndEmail(t *testing.T) {
	msg := Compose(testCreds, `<img src=x>`, `"jane"@example.com`, "A perfectly normal message.", time.Now())

	if strings.Contains(msg.HTMLBody, "<img") {
		t.Error("HTML body contains unescaped submitter name")
	}
	if !strings.Contains(msg.HTMLBody, "&lt;img src=x&gt;") {
		t.Error("HTML body missing escaped name")
	}
	if !strings.Contains(msg.HTMLBody, "&quot;jane&quot;@example.com") {
		t.Error("HTML body missing escaped email")
	}
}

func TestComposeNewlinesBecomeLineBreaks(t *testing.T) {
	msg := Compose(testCreds, "Jane Doe", "jane@example.com", "line one\nline two", time.Now())

	if !strings.Contains(msg.HTMLBody, "line one<br />line two") {
		t.Errorf("HTML body should render newlines as <br />:\n%s", msg.HTMLBody)
	}
	if !strings.Contains(msg.TextBody, "line one\nline two") {
		t.Error("text body should keep raw newlines")
	}
}

func TestComposeTextBodyContents(t *testing.T) {
	msg := Compose(testCreds, "Jane Doe", "jane@example.com", "Hello!", time.Now())

	for _, want := range []string{
		"Name: Jane Doe",
		"Email: jane@example.com",
		"email the sender directly at: jane@example.com",
		"Message:\nHello!",
	} {
		if !strings.Contains(msg.TextBody, want) {
			t.Errorf("text body missing %q:\n%s", want, msg.TextBody)
		}
	}
}
