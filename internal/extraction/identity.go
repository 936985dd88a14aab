package extraction

import (
	"regexp"
	"strings"
)

// IdentityExtractor extracts contact and identity fields.
type IdentityExtractor struct{}

// Extract implements Extractor.
func (IdentityExtractor) Extract(text string) Identity {
	urls := ExtractURLs(text)
	return Identity{
		Name:         ExtractName(text),
		Email:        ExtractEmail(text),
		Phone:        ExtractPhone(text),
		Location:     ExtractLocation(text),
		LinkedInURL:  urls.LinkedIn,
		GitHubURL:    urls.GitHub,
		PortfolioURL: urls.Portfolio,
	}
}

var emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)

// placeholderEmailWords mark template addresses that must not be reported.
var placeholderEmailWords = []string{"example", "test"}

// ExtractEmail returns the first e-mail address that is not a placeholder, lower-cased.
func ExtractEmail(text string) string {
	for _, m := range emailPattern.FindAllString(text, -1) {
		email := strings.ToLower(strings.Trim(m, "."))
		if isPlaceholderEmail(email) {
			continue
		}
		return email
	}
	return ""
}

func isPlaceholderEmail(email string) bool {
	for _, w := range placeholderEmailWords {
		if strings.Contains(email, w) {
			return true
		}
	}
	return false
}

// phonePatterns are tried in order; the first pattern with a plausible match wins.
var phonePatterns = []*regexp.Regexp{
	// international: +234 803 123 4567, +1 (555) 123-4567, +44 20 7946 0958
	regexp.MustCompile(`\+\d{1,3}[ .\-]?\(?\d{1,4}\)?(?:[ .\-]?\d{2,4}){2,4}`),
	// US with separators: (555) 123-4567, 555-123-4567, 555.123.4567
	regexp.MustCompile(`(?:\(\d{3}\) ?|\b\d{3}[ .\-])\d{3}[ .\-]\d{4}\b`),
	// bare digits: 5551234567, 08031234567
	regexp.MustCompile(`\b\d{10,11}\b`),
}

// ExtractPhone returns the first phone number found, as written.
func ExtractPhone(text string) string {
	for _, re := range phonePatterns {
		for _, m := range re.FindAllString(text, -1) {
			if n := countDigits(m); n >= 7 && n <= 15 {
				return strings.TrimSpace(m)
			}
		}
	}
	return ""
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
