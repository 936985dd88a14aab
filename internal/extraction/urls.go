package extraction

import (
	"regexp"
	"strings"
)

// ProfileURLs holds the profile links found in a résumé.
type ProfileURLs struct {
	LinkedIn  string
	GitHub    string
	Portfolio string
}

// Normalization turns "https://" into "https //", so patterns start at the host.
var (
	linkedInPattern  = regexp.MustCompile(`(?i)\b(?:www\.)?linkedin\.com/in/[A-Za-z0-9_\-]+`)
	gitHubPattern    = regexp.MustCompile(`(?i)\b(?:www\.)?github\.com/[A-Za-z0-9_\-]+`)
	portfolioPattern = regexp.MustCompile(`\b(?:www\.)?[a-z0-9][a-z0-9\-]*(?:\.[a-z0-9\-]+)*\.(?:com|net|org|io|dev|me|co|app|tech|site|xyz)(?:/[A-Za-z0-9_\-./]*)?`)
)

// socialHosts are never reported as a portfolio.
var socialHosts = []string{
	"linkedin.", "github.", "facebook.", "twitter.", "x.com", "instagram.", "youtube.",
	"tiktok.", "gmail.", "yahoo.", "outlook.", "hotmail.", "icloud.",
}

// ExtractURLs finds LinkedIn, GitHub and portfolio links. Results carry an https:// scheme.
func ExtractURLs(text string) ProfileURLs {
	var u ProfileURLs
	if m := linkedInPattern.FindString(text); m != "" {
		u.LinkedIn = "https://" + m
	}
	if m := gitHubPattern.FindString(text); m != "" {
		u.GitHub = "https://" + m
	}
	u.Portfolio = findPortfolio(text)
	return u
}

func findPortfolio(text string) string {
	for _, loc := range portfolioPattern.FindAllStringIndex(text, -1) {
		start, end := loc[0], loc[1]
		// part of an e-mail address on either side
		if start > 0 && strings.ContainsRune("@.", rune(text[start-1])) {
			continue
		}
		if end < len(text) && text[end] == '@' {
			continue
		}
		m := strings.TrimRight(text[start:end], "./")
		if isSocialHost(m) {
			continue
		}
		return "https://" + m
	}
	return ""
}

func isSocialHost(url string) bool {
	lower := strings.ToLower(url)
	for _, h := range socialHosts {
		if strings.HasPrefix(lower, h) || strings.HasPrefix(lower, "www."+h) || strings.Contains(lower, "."+h) {
			return true
		}
	}
	return false
}
