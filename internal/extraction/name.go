package extraction

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/jonathan/resume-matcher/internal/geo"
	"github.com/jonathan/resume-matcher/internal/parsing"
)

// nameScanLines is how many non-empty lines from the top are searched for a name.
const nameScanLines = 10

var (
	threeDigits      = regexp.MustCompile(`\d{3}`)
	nameToken        = regexp.MustCompile(`^\p{Lu}[\p{L}\-]*\p{Ll}$`)
	initialToken     = regexp.MustCompile(`^\p{Lu}\.?$`)
	upperNameToken   = regexp.MustCompile(`^\p{Lu}[\p{Lu}\-]+$`)
	labeledNameLine  = regexp.MustCompile(`(?i)^(?:full )?name ([\p{L}][\p{L}\-]*(?: [\p{L}][\p{L}\-]*){1,3})$`)
	documentWords    = []string{"resume", "curriculum", "vitae", "phone", "email", "e-mail", "address", "mobile", "http", "www"}
	documentTokenSet = map[string]bool{"cv": true, "tel": true, "contact": true, "page": true}
)

// ExtractName looks for the candidate's name in the header lines. When no line
// qualifies it falls back to an entity heuristic: a "Name ..." label or an
// all-caps header line. It returns "" rather than guess.
func ExtractName(text string) string {
	lines := parsing.Lines(text)
	if len(lines) > nameScanLines {
		lines = lines[:nameScanLines]
	}

	for _, line := range lines {
		if isNameLine(line) {
			return line
		}
	}
	return nameEntityFallback(lines)
}

// isNameLine reports whether line looks like a personal name: 2 to 4
// capitalized tokens, no contact details and no résumé vocabulary.
func isNameLine(line string) bool {
	line = strings.TrimSpace(line)
	if rejectNameLine(line) {
		return false
	}

	tokens := strings.Fields(line)
	if len(tokens) < 2 || len(tokens) > 4 {
		return false
	}
	full := 0
	for _, tok := range tokens {
		switch {
		case nameToken.MatchString(tok):
			full++
		case initialToken.MatchString(tok):
		default:
			return false
		}
	}
	return full >= 2
}

func nameEntityFallback(lines []string) string {
	for _, line := range lines {
		if m := labeledNameLine.FindStringSubmatch(line); m != nil && !rejectNameLine(m[1]) {
			return titleCase(m[1])
		}
	}
	for _, line := range lines {
		if rejectNameLine(line) {
			continue
		}
		tokens := strings.Fields(line)
		if len(tokens) < 2 || len(tokens) > 4 {
			continue
		}
		ok := true
		for _, tok := range tokens {
			if !upperNameToken.MatchString(tok) {
				ok = false
				break
			}
		}
		if ok {
			return titleCase(strings.ToLower(line))
		}
	}
	return ""
}

func rejectNameLine(line string) bool {
	if line == "" || strings.ContainsAny(line, "@,/()+#") || threeDigits.MatchString(line) {
		return true
	}
	lower := strings.ToLower(line)
	for _, w := range documentWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	for _, tok := range strings.FieldsFunc(lower, func(r rune) bool { return !unicode.IsLetter(r) }) {
		if documentTokenSet[tok] || isRoleWord(tok) || isSeniorityWord(tok) {
			return true
		}
		if _, ok := geo.LookupCountry(tok); ok {
			return true
		}
	}
	if parsing.IsHeading(line) {
		return true
	}
	if _, ok := geo.LookupCity(line); ok {
		return true
	}
	if _, ok := geo.LookupCountry(line); ok {
		return true
	}
	return false
}
