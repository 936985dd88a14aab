package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/geo"
)

var (
	// Austin, TX 78701
	cityStatePattern = regexp.MustCompile(`\b([A-Z][A-Za-z.\-]*(?: [A-Z][A-Za-z.\-]*){0,4}), ([A-Z]{2})\b(?: (\d{5}(?:-\d{4})?))?`)
	// Lagos, Nigeria
	cityCountryPattern = regexp.MustCompile(`\b([A-Z][A-Za-z.\-]*(?: [A-Z][A-Za-z.\-]*){0,4}), ([A-Z][A-Za-z.\-]*(?: [A-Za-z][A-Za-z.\-]*){0,4})`)
)

// headerLines is how far from the top a bare city name is trusted as the
// candidate's own location.
const headerLines = 15

// ExtractLocation returns the candidate location. Candidates are validated
// against the gazetteer; anything that cannot be validated is discarded.
func ExtractLocation(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if loc := matchCityState(line); loc != "" {
			return loc
		}
	}
	for _, line := range strings.Split(text, "\n") {
		if loc := matchCityCountry(line); loc != "" {
			return loc
		}
	}
	return matchBareCity(text)
}

func matchCityState(line string) string {
	for _, m := range cityStatePattern.FindAllStringSubmatch(line, -1) {
		state := m[2]
		if !geo.IsRegionCode(state) {
			continue
		}
		city := trimToCity(m[1], 2)
		if city == "" {
			continue
		}
		loc := city + ", " + state
		if m[3] != "" {
			loc += " " + m[3]
		}
		return loc
	}
	return ""
}

func matchCityCountry(line string) string {
	for _, m := range cityCountryPattern.FindAllStringSubmatch(line, -1) {
		tail := leadingPlace(m[2])
		if tail == "" {
			continue
		}
		_, tailIsCountry := geo.LookupCountry(tail)
		city := trimToKnownCity(m[1])
		if city == "" && tailIsCountry {
			city = trimToCity(m[1], 2)
		}
		if city == "" {
			continue
		}
		return city + ", " + tail
	}
	return ""
}

func matchBareCity(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) > headerLines {
		lines = lines[:headerLines]
	}

	for _, line := range lines {
		// "Austin Smith" is a name, not a place
		if isNameLine(line) {
			continue
		}
		best, bestPos := "", -1
		for _, c := range geo.Cities() {
			pos := indexToken(line, c.Name)
			if pos >= 0 && (bestPos < 0 || pos < bestPos) {
				best, bestPos = c.Name, pos
			}
		}
		if best != "" {
			return best
		}
	}
	return ""
}

// trimToKnownCity drops leading words until the remainder is a known city.
func trimToKnownCity(phrase string) string {
	words := strings.Fields(phrase)
	for i := range words {
		candidate := strings.Join(words[i:], " ")
		if _, ok := geo.LookupCity(candidate); ok {
			return candidate
		}
	}
	return ""
}

// trimToCity prefers a known city suffix and otherwise keeps the last maxWords
// capitalized words, which covers towns missing from the gazetteer when the
// state or country has already been validated.
func trimToCity(phrase string, maxWords int) string {
	if c := trimToKnownCity(phrase); c != "" {
		return c
	}
	words := strings.Fields(phrase)
	if len(words) > maxWords {
		words = words[len(words)-maxWords:]
	}
	for len(words) > 0 && (isNonPlaceWord(words[0]) || !isCapitalized(words[0])) {
		words = words[1:]
	}
	return strings.Join(words, " ")
}

// leadingPlace returns the longest leading run of words that names a known
// country, region or city.
func leadingPlace(phrase string) string {
	words := strings.Fields(phrase)
	for n := len(words); n > 0; n-- {
		candidate := strings.Join(words[:n], " ")
		if _, ok := geo.LookupCountry(candidate); ok {
			return candidate
		}
		if _, _, ok := geo.LookupRegion(candidate); ok && len(candidate) > 2 {
			return candidate
		}
		if _, ok := geo.LookupCity(candidate); ok {
			return candidate
		}
	}
	return ""
}

// isNonPlaceWord reports words that commonly precede a location on a contact
// line but are never part of it.
func isNonPlaceWord(w string) bool {
	switch strings.ToLower(w) {
	case "address", "location", "based", "in", "city", "phone", "email", "mobile", "tel", "remote":
		return true
	}
	return isRoleWord(w)
}

// indexToken returns the byte offset of the first bounded occurrence of token in s, or -1.
func indexToken(s, token string) int {
	from := 0
	for {
		i := strings.Index(s[from:], token)
		if i < 0 {
			return -1
		}
		i += from
		end := i + len(token)
		if (i == 0 || !isWordByte(s[i-1])) && (end == len(s) || !isWordByte(s[end])) {
			return i
		}
		from = i + 1
	}
}

func isWordByte(b byte) bool {
	return b == '_' || b >= '0' && b <= '9' || b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}
