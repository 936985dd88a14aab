package parsing

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// KnownHeadings are section headings that terminate a preceding section block.
// Entries are lower-case and compared against whole normalized lines.
var KnownHeadings = []string{
	"summary", "professional summary", "executive summary", "career summary",
	"summary of qualifications", "objective", "career objective", "profile",
	"professional profile", "about me", "about", "overview",
	"skills", "technical skills", "core skills", "key skills", "skills and abilities",
	"technologies", "tech stack", "expertise", "areas of expertise",
	"core competencies", "competencies", "proficiencies", "soft skills",
	"interpersonal skills",
	"experience", "work experience", "professional experience", "employment",
	"employment history", "work history", "career history", "relevant experience",
	"education", "education and training", "academic background", "qualifications",
	"projects", "personal projects", "key projects",
	"certifications", "certificates", "licenses and certifications", "licenses",
	"languages", "language skills",
	"awards", "honors", "achievements", "publications", "interests", "hobbies",
	"volunteer", "volunteer experience", "references", "contact", "contact information",
}

var knownHeadingSet = func() map[string]bool {
	m := make(map[string]bool, len(KnownHeadings))
	for _, h := range KnownHeadings {
		m[h] = true
	}
	return m
}()

// IsHeading reports whether a whole line is a known section heading.
func IsHeading(line string) bool {
	l := strings.ToLower(strings.TrimSpace(line))
	l = strings.TrimRight(l, " .-")
	return knownHeadingSet[l]
}

// matchHeading reports whether line starts with heading (case-insensitive) on a
// word boundary and returns the remainder of the line.
func matchHeading(line, heading string) (string, bool) {
	if len(line) < len(heading) || !strings.EqualFold(line[:len(heading)], heading) {
		return "", false
	}
	rest := line[len(heading):]
	if rest == "" {
		return "", true
	}
	r, _ := utf8.DecodeRuneInString(rest)
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return "", false
	}
	return strings.TrimLeft(rest, " -.,"), true
}

// Section finds the first line that starts with one of headings and returns the
// block that follows it: the remainder of the heading line plus the following
// lines, up to the next blank line or known heading. Blank lines directly after
// a bare heading are skipped. Headings should be listed longest first.
func Section(text string, headings []string) (string, bool) {
	blocks := Sections(text, headings)
	if len(blocks) == 0 {
		return "", false
	}
	return blocks[0], true
}

// Sections returns every non-empty block introduced by one of headings, in
// document order.
func Sections(text string, headings []string) []string {
	var blocks []string
	lines := strings.Split(text, "\n")
	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		for _, h := range headings {
			rest, ok := matchHeading(line, h)
			if !ok {
				continue
			}
			if block := collectBlock(rest, lines[i+1:]); block != "" {
				blocks = append(blocks, block)
			}
			break
		}
	}
	return blocks
}

func collectBlock(first string, following []string) string {
	var parts []string
	if first != "" {
		parts = append(parts, first)
	}
	for _, l := range following {
		l = strings.TrimSpace(l)
		if l == "" {
			if len(parts) == 0 {
				continue
			}
			break
		}
		if IsHeading(l) {
			break
		}
		parts = append(parts, l)
	}
	return strings.Join(parts, "\n")
}
