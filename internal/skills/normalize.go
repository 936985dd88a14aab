package skills

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// NormalizeSkillName normalizes a skill name to its canonical form using the
// default taxonomy. Unknown names get conservative capitalization.
func NormalizeSkillName(skillName string) string {
	return Default().NormalizeSkillName(skillName)
}

// NormalizeSkillName normalizes a skill name to its canonical form.
func (t *Taxonomy) NormalizeSkillName(skillName string) string {
	normalized := strings.TrimSpace(skillName)
	if normalized == "" {
		return ""
	}

	if canonical, ok := t.Canonical(normalized); ok {
		return canonical
	}
	if canonical, ok := t.CanonicalSoft(normalized); ok {
		return canonical
	}

	// For all-caps single words that aren't acronyms, capitalize first letter only
	if normalized == strings.ToUpper(normalized) && utf8.RuneCountInString(normalized) > 4 && !strings.Contains(normalized, " ") {
		return upperFirst(strings.ToLower(normalized))
	}

	// Mixed case is kept as written
	if normalized != strings.ToUpper(normalized) && normalized != strings.ToLower(normalized) {
		return normalized
	}

	// If all lowercase and single word, capitalize first letter
	if normalized == strings.ToLower(normalized) && !strings.Contains(normalized, " ") {
		return upperFirst(normalized)
	}

	return normalized
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
