package mail

import (
	"fmt"
	"strings"
	"time"
)

// SubjectPrefix is the fixed prefix of every contact notification subject.
const SubjectPrefix = "THOUGHTAKEN Contact"

const textBodyTemplate = "Name: %s\nEmail: %s\n\n" +
	"Please do not reply to this email. Replies here are not monitored.\n" +
	"To respond, email the sender directly at: %s\n\n" +
	"Message:\n%s"

const htmlBodyTemplate = `<div style="margin:0;padding:24px;background:#0b0b0b;font-family:Arial,Helvetica,sans-serif;color:#e5e7eb;">
  <table role="presentation" width="100%%" cellspacing="0" cellpadding="0" style="max-width:640px;margin:0 auto;background:#121212;border:1px solid #262626;border-radius:14px;overflow:hidden;">
    <tr>
      <td style="padding:18px 22px;background:#111111;border-bottom:1px solid #262626;">
        <h2 style="margin:0;font-size:18px;letter-spacing:0.08em;text-transform:uppercase;color:#ffffff;">THOUGHTAKEN Contact</h2>
        <p style="margin:6px 0 0 0;font-size:12px;color:#a3a3a3;">Submitted %s</p>
      </td>
    </tr>
    <tr>
      <td style="padding:18px 22px;">
        <p style="margin:0 0 10px 0;font-size:13px;color:#a3a3a3;text-transform:uppercase;letter-spacing:0.07em;">Sender</p>
        <p style="margin:0 0 4px 0;font-size:16px;color:#ffffff;font-weight:700;">%s</p>
        <p style="margin:0 0 14px 0;font-size:14px;color:#d1d5db;">%s</p>

        <div style="margin:0 0 14px 0;padding:10px 12px;background:#0c0c0c;border:1px solid #2f2f2f;border-radius:10px;color:#d1d5db;font-size:13px;line-height:1.5;">
          Please do not reply to this email. Replies here are not monitored.<br />
          To respond, email the sender directly at <strong style="color:#ffffff;">%s</strong>.
        </div>

        <p style="margin:0 0 10px 0;font-size:13px;color:#a3a3a3;text-transform:uppercase;letter-spacing:0.07em;">Message</p>
        <div style="margin:0;padding:14px;background:#0c0c0c;border:1px solid #262626;border-radius:10px;font-size:15px;line-height:1.6;color:#f5f5f5;">
          %s
        </div>
      </td>
    </tr>
  </table>
</div>`

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// escapeHTML escapes the characters that would otherwise let submitter input
// inject markup into the HTML body.
func escapeHTML(value string) string {
	return htmlEscaper.Replace(value)
}

// toHTMLParagraph escapes a value and renders its newlines as line breaks.
func toHTMLParagraph(value string) string {
	return strings.ReplaceAll(escapeHTML(value), "\n", "<br />")
}

// Compose builds the notification message for a validated submission. The
// sender identity is fixed to the configured outbound address so recipients
// never see the form as "from" the submitter; Reply-To points at the
// submitter so the operator can respond directly. The text body carries the
// submitter's input verbatim, the HTML body carries it escaped.
func Compose(creds Credentials, name, email, message string, now time.Time) *Message {
	submittedAt := now.Format("Jan 2, 2006, 3:04 PM")

	return &Message{
		FromEmail: creds.FromEmail,
		FromName:  creds.FromName,
		To:        creds.To,
		ReplyTo:   email,
		Subject:   fmt.Sprintf("%s | %s", SubjectPrefix, name),
		TextBody:  fmt.Sprintf(textBodyTemplate, name, email, email, message),
		HTMLBody: fmt.Sprintf(htmlBodyTemplate,
			escapeHTML(submittedAt),
			escapeHTML(name),
			escapeHTML(email),
			escapeHTML(email),
			toHTMLParagraph(message),
		),
	}
}
