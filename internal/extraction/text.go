package extraction

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// appendUnique appends s to list unless an equal value (case-insensitive) is
// already present or the list is at max. It reports whether s was added.
func appendUnique(list []string, s string, max int) ([]string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(list) >= max {
		return list, false
	}
	for _, existing := range list {
		if strings.EqualFold(existing, s) {
			return list, false
		}
	}
	return append(list, s), true
}

// inLength reports whether s has between min and max characters inclusive.
func inLength(s string, min, max int) bool {
	n := utf8.RuneCountInString(s)
	return n >= min && n <= max
}

// wordUpper lists words kept upper-case when title-casing.
var wordUpper = map[string]string{
	"ai": "AI", "ml": "ML", "qa": "QA", "ui": "UI", "ux": "UX", "ui/ux": "UI/UX", "it": "IT",
	"hr": "HR", "vp": "VP", "ceo": "CEO", "cto": "CTO", "cfo": "CFO", "coo": "COO", "sre": "SRE",
	"ios": "iOS", "devops": "DevOps", ".net": ".NET", "nlp": "NLP", "seo": "SEO", "api": "API",
	"javascript": "JavaScript", "node.js": "Node.js", "php": "PHP", "sql": "SQL", "aws": "AWS", "gcp": "GCP",
}

// wordLower lists connecting words kept lower-case inside a title.
var wordLower = map[string]bool{"of": true, "and": true, "in": true, "for": true, "the": true, "to": true}

// titleCase capitalizes each word of s, preserving known acronyms and
// lower-casing connecting words after the first.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = titleWord(w, i == 0)
	}
	return strings.Join(words, " ")
}

func titleWord(w string, first bool) string {
	lower := strings.ToLower(w)
	if v, ok := wordUpper[lower]; ok {
		return v
	}
	if !first && wordLower[lower] {
		return lower
	}
	parts := strings.Split(lower, "-")
	for i, p := range parts {
		if v, ok := wordUpper[p]; ok {
			parts[i] = v
			continue
		}
		r, size := utf8.DecodeRuneInString(p)
		if size > 0 {
			parts[i] = string(unicode.ToUpper(r)) + p[size:]
		}
	}
	return strings.Join(parts, "-")
}

// isCapitalized reports whether w starts with an upper-case letter.
func isCapitalized(w string) bool {
	r, _ := utf8.DecodeRuneInString(w)
	return unicode.IsUpper(r)
}

// countLetters returns the number of letters in s.
func countLetters(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsLetter(r) {
			n++
		}
	}
	return n
}

// truncateRunes shortens s to at most n characters without splitting a rune.
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return strings.TrimSpace(string([]rune(s)[:n]))
}
