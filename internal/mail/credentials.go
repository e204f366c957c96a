package mail

// Supported delivery providers.
const (
	ProviderMailjet = "mailjet"
	ProviderSMTP    = "smtp"
)

// Credentials holds the operator-supplied delivery configuration. Absence of
// any required value is a configuration error reported per request (after the
// guard passes), never a startup failure: the rest of the site keeps serving.
type Credentials struct {
	Provider string

	MailjetAPIKey    string
	MailjetAPISecret string

	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string

	FromEmail string
	FromName  string
	To        string
}

// Missing returns the names of the required environment variables that are
// not set for the selected provider. An empty result means mail can be sent.
func (c Credentials) Missing() []string {
	var missing []string

	switch c.Provider {
	case ProviderSMTP:
		if c.SMTPHost == "" {
			missing = append(missing, "SMTP_HOST")
		}
		if c.SMTPPort == "" {
			missing = append(missing, "SMTP_PORT")
		}
		if c.SMTPUsername == "" {
			missing = append(missing, "SMTP_USERNAME")
		}
		if c.SMTPPassword == "" {
			missing = append(missing, "SMTP_PASSWORD")
		}
	default:
		if c.MailjetAPIKey == "" {
			missing = append(missing, "MAILJET_API_KEY")
		}
		if c.MailjetAPISecret == "" {
			missing = append(missing, "MAILJET_API_SECRET")
		}
	}

	if c.FromEmail == "" {
		missing = append(missing, "MAILJET_FROM_EMAIL")
	}
	if c.To == "" {
		missing = append(missing, "CONTACT_TO")
	}

	return missing
}

// NewSender builds the delivery backend for the selected provider. The
// credentials must be complete; call Missing first.
func (c Credentials) NewSender() Sender {
	if c.Provider == ProviderSMTP {
		return NewSMTPSender(c.SMTPHost, c.SMTPPort, c.SMTPUsername, c.SMTPPassword)
	}
	return NewMailjetSender(c.MailjetAPIKey, c.MailjetAPISecret)
}
