package mail

import (
	"reflect"
	"testing"
)

func TestCredentialsMissing(t *testing.T) {
	tests := []struct {
		name  string
		creds Credentials
		want  []string
	}{
		{
			name:  "mailjet complete",
			creds: testCreds,
			want:  nil,
		},
		{
			name: "mailjet missing everything",
			creds: Credentials{
				Provider: ProviderMailjet,
			},
			want: []string{"MAILJET_API_KEY", "MAILJET_API_SECRET", "MAILJET_FROM_EMAIL", "CONTACT_TO"},
		},
		{
			name: "mailjet missing secret only",
			creds: Credentials{
				Provider:      ProviderMailjet,
				MailjetAPIKey: "key",
				FromEmail:     "noreply@thoughtaken.com",
				To:            "inbox@thoughtaken.com",
			},
			want: []string{"MAILJET_API_SECRET"},
		},
		{
			name: "smtp complete",
			creds: Credentials{
				Provider:     ProviderSMTP,
				SMTPHost:     "smtp.example.com",
				SMTPPort:     "587",
				SMTPUsername: "user",
				SMTPPassword: "pass",
				FromEmail:    "noreply@thoughtaken.com",
				To:           "inbox@thoughtaken.com",
			},
			want: nil,
		},
		{
			name: "smtp missing host and password",
			creds: Credentials{
				Provider:     ProviderSMTP,
				SMTPPort:     "587",
				SMTPUsername: "user",
				FromEmail:    "noreply@thoughtaken.com",
				To:           "inbox@thoughtaken.com",
			},
			want: []string{"SMTP_HOST", "SMTP_PASSWORD"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.creds.Missing()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Missing() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewSenderSelectsProvider(t *testing.T) {
	if name := testCreds.NewSender().Name(); name != "mailjet" {
		t.Errorf("Name() = %q, want mailjet", name)
	}

	smtpCreds := testCreds
	smtpCreds.Provider = ProviderSMTP
	if name := smtpCreds.NewSender().Name(); name != "smtp" {
		t.Errorf("Name() = %q, want smtp", name)
	}
}
