package extraction

import (
	"strings"

	"github.com/jonathan/resume-matcher/internal/parsing"
	"github.com/jonathan/resume-matcher/internal/skills"
)

const (
	maxTechnicalSkills = 25
	maxSoftSkills      = 10
)

// technicalHeadings introduce a skills section, longest first.
var technicalHeadings = []string{
	"technical skills", "skills and abilities", "tools and technologies", "areas of expertise",
	"core competencies", "core skills", "key skills", "technologies", "proficiencies", "competencies",
	"tech stack", "expertise", "skills",
}

var softHeadings = []string{
	"interpersonal skills", "personal skills", "soft skills", "core competencies", "strengths",
	"key skills", "skills",
}

// SkillsExtractor finds technical and soft skills using the taxonomy. A
// detected skills section is scanned first and the whole document is the
// fallback when the section is missing or yields nothing.
type SkillsExtractor struct {
	// Taxonomy defaults to skills.Default().
	Taxonomy *skills.Taxonomy
}

// Extract implements Extractor.
func (e SkillsExtractor) Extract(text string) SkillSet {
	tax := e.Taxonomy
	if tax == nil {
		tax = skills.Default()
	}
	return SkillSet{
		Technical: sectionFirst(text, technicalHeadings, tax.Find, tax.Canonical, maxTechnicalSkills),
		Soft:      sectionFirst(text, softHeadings, tax.FindSoft, tax.CanonicalSoft, maxSoftSkills),
	}
}

func sectionFirst(
	text string,
	headings []string,
	find func(string) []skills.Match,
	canonical func(string) (string, bool),
	max int,
) []string {
	scope := text
	var matches []skills.Match
	if section, ok := parsing.Section(text, headings); ok {
		if matches = find(section); len(matches) > 0 {
			scope = section
		}
	}
	if scope == text {
		matches = find(text)
	}

	out := []string{}
	for _, m := range matches {
		out, _ = appendUnique(out, m.Name, max)
	}
	for _, tok := range looseTokens(scope) {
		if name, ok := canonical(tok); ok {
			out, _ = appendUnique(out, name, max)
		}
	}
	return out
}

// looseTokens splits list-like text on commas, line breaks and parentheses.
func looseTokens(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == '\n' || r == '(' || r == ')'
	})
}
