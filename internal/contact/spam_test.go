package contact

import "testing"

func TestLooksLikeSpam(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    bool
	}{
		{"plain message", "Loved the last ride video, when's the next meetup?", false},
		{"two links ok", "See http://a.example and https://b.example", false},
		{"three links", "http://a.example https://b.example www.c.example", true},
		{"case insensitive links", "HTTP://a.example HTTPS://b.example WWW.c.example", true},
		{"script tag", "hello <script>alert(1)</script>", true},
		{"script tag upper", "hello <SCRIPT src=x>", true},
		{"iframe", "<iframe src=x>", true},
		{"bb url token", "click [url]here[/url]", true},
		{"bb link token", "[link]spam[/link]", true},
		{"href attribute", `<a href="x">y</a>`, true},
		{"viagra word", "cheap Viagra now", true},
		{"casino word", "best CASINO bonuses", true},
		{"casino inside word", "he visited the supercasinos on the strip", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := looksLikeSpam(tt.message, 2); got != tt.want {
				t.Errorf("looksLikeSpam(%q) = %v, want %v", tt.message, got, tt.want)
			}
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"jane@example.com", true},
		{"jane.doe+tag@sub.example.co.uk", true},
		{"jane@example", false},
		{"jane@@example.com", false},
		{"@example.com", false},
		{"jane@.com", true}, // structural check only, domain dot present
		{"jane doe@example.com", false},
		{"jane@exam ple.com", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			if got := isValidEmail(tt.email); got != tt.want {
				t.Errorf("isValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}

func TestIsBotAgent(t *testing.T) {
	tests := []struct {
		agent string
		want  bool
	}{
		{humanAgent, false},
		{"", false},
		{"Googlebot/2.1 (+http://www.google.com/bot.html)", true},
		{"Mozilla/5.0 (compatible; bingbot/2.0)", true},
		{"curl/8.4.0", true},
		{"Wget/1.21", true},
		{"python-requests/2.31.0", true},
		{"Mozilla/5.0 (X11; Linux x86_64) HeadlessChrome/120.0", true},
		{"facebookexternalhit/1.1", true},
	}

	for _, tt := range tests {
		t.Run(tt.agent, func(t *testing.T) {
			if got := IsBotAgent(tt.agent); got != tt.want {
				t.Errorf("IsBotAgent(%q) = %v, want %v", tt.agent, got, tt.want)
			}
		})
	}
}
