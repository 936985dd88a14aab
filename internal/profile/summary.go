package profile

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

const summarySkills = 4

// Closing sentences by career stage.
const (
	closingSenior = "Seeks leadership opportunities to drive strategic initiatives and build high-performing teams."
	closingMid    = "Seeks challenging opportunities to expand technical expertise and contribute to impactful projects."
	closingEntry  = "Eager to contribute technical skills and grow within a collaborative team."
)

// SynthesizeSummary builds a deterministic narrative summary from the
// structured fields of p. The result is never empty.
func SynthesizeSummary(p types.ResumeProfile) string {
	role := "professional"
	if p.CurrentJobTitle != "" {
		role = p.CurrentJobTitle
	}

	var b strings.Builder
	if p.Name != "" {
		fmt.Fprintf(&b, "%s is %s %s", p.Name, article(role), role)
	} else {
		fmt.Fprintf(&b, "%s %s", capitalize(article(role)), role)
	}
	if p.YearsOfExperience > 0 {
		fmt.Fprintf(&b, " with %d+ years of experience", p.YearsOfExperience)
	}
	if len(p.Skills) > 0 {
		top := p.Skills[:min(len(p.Skills), summarySkills)]
		fmt.Fprintf(&b, " specializing in %s", strings.Join(top, ", "))
	}
	if len(p.Education) > 0 {
		fmt.Fprintf(&b, " with educational background in %s", strings.TrimRight(p.Education[0], "."))
	}
	b.WriteString(". ")
	b.WriteString(closingSentence(p.YearsOfExperience))
	return b.String()
}

func closingSentence(years int) string {
	switch {
	case years > 8:
		return closingSenior
	case years >= 3:
		return closingMid
	default:
		return closingEntry
	}
}

// article picks "a" or "an" from the first letter of word. Acronyms such as
// "SRE" are read letter by letter.
func article(word string) string {
	if word == "" {
		return "a"
	}
	first := strings.Fields(word)[0]
	if len(first) > 1 && strings.ToUpper(first) == first {
		if strings.ContainsRune("AEFHILMNORSX", rune(first[0])) {
			return "an"
		}
		return "a"
	}
	if strings.ContainsRune("aeiouAEIOU", rune(word[0])) {
		return "an"
	}
	return "a"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
