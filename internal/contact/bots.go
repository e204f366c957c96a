package contact

import "strings"

// botSignatures are case-insensitive substrings that identify automated
// clients by their declared User-Agent. Classification is purely local, no
// remote lookup is involved.
var botSignatures = []string{
	"bot",
	"crawl",
	"spider",
	"slurp",
	"scrapy",
	"curl/",
	"wget/",
	"python-requests",
	"python-urllib",
	"go-http-client",
	"headlesschrome",
	"phantomjs",
	"lighthouse",
	"facebookexternalhit",
	"bingpreview",
}

// IsBotAgent reports whether the User-Agent string matches a known bot
// signature. An empty User-Agent is not classified as a bot; plenty of
// privacy tooling strips the header.
func IsBotAgent(userAgent string) bool {
	if userAgent == "" {
		return false
	}

	ua := strings.ToLower(userAgent)
	for _, signature := range botSignatures {
		if strings.Contains(ua, signature) {
			return true
		}
	}
	return false
}
