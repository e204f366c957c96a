package contact

import "regexp"

var (
	urlPattern        = regexp.MustCompile(`(?i)(https?://|www\.)`)
	suspiciousPattern = regexp.MustCompile(`(?i)<script|<iframe|\[url\]|\[link\]|href=|\bviagra\b|\bcasino\b`)
	emailPattern      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// looksLikeSpam applies the content heuristic: too many URL-like substrings,
// or a match against the suspicious-pattern set.
func looksLikeSpam(message string, maxLinks int) bool {
	if len(urlPattern.FindAllStringIndex(message, -1)) > maxLinks {
		return true
	}
	return suspiciousPattern.MatchString(message)
}

// isValidEmail performs the structural email check: non-whitespace local
// part, "@", non-whitespace domain containing a dot.
func isValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
