package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/parsing"
)

// CredentialsExtractor extracts education, certifications and languages
// against closed vocabularies.
type CredentialsExtractor struct{}

// Extract implements Extractor.
func (CredentialsExtractor) Extract(text string) Credentials {
	return Credentials{
		Education:      ExtractEducation(text),
		Certifications: ExtractCertifications(text),
		Languages:      ExtractLanguages(text),
	}
}

const (
	maxEducation      = 4
	maxCertifications = 6
	maxLanguages      = 6
)

var (
	degreeWordPattern = regexp.MustCompile(`(?i)\b(?:bachelors?(?: of| in| degree)|bachelors|masters?(?: of| in| degree)|masters|doctor of|doctorate|ph\.? ?d|associates? degree|associate of|mba|higher national diploma|national diploma|hnd|ond|high school diploma|ged)\b`)
	// dotted and distinctive abbreviations stand alone; "BS", "MS" and friends
	// need "in" or "of" so "MS Excel" is not a degree
	degreeAbbrPattern  = regexp.MustCompile(`\b(?:B\.Sc|M\.Sc|B\.Eng|M\.Eng|B\.Tech|M\.Tech|B\.S|M\.S|B\.A|M\.A|Ph\.D|BSc|MSc|BEng|MEng|BTech|MTech|PhD)\b|\b(?:BS|BA|MS|MA|BE)\.? (?:in|of)\b`)
	institutionPattern = regexp.MustCompile(`\b(?:University|College|Institute|Polytechnic|Academy|School of)\b`)
)

// ExtractEducation returns degree lines, each joined with the institution on
// the following line when the degree line names none, plus institution lines
// that carry no degree.
func ExtractEducation(text string) []string {
	lines := parsing.Lines(text)
	used := make([]bool, len(lines))
	education := []string{}

	for i, line := range lines {
		if !isDegreeLine(line) {
			continue
		}
		entry := line
		used[i] = true
		if !institutionPattern.MatchString(line) && i+1 < len(lines) &&
			institutionPattern.MatchString(lines[i+1]) && !isDegreeLine(lines[i+1]) {
			entry = line + ", " + lines[i+1]
			used[i+1] = true
		}
		if inLength(entry, 6, 100) {
			education, _ = appendUnique(education, entry, maxEducation)
		}
	}

	for i, line := range lines {
		if used[i] || !institutionPattern.MatchString(line) || !inLength(line, 6, 100) {
			continue
		}
		education, _ = appendUnique(education, line, maxEducation)
	}
	return education
}

func isDegreeLine(line string) bool {
	return degreeWordPattern.MatchString(line) || degreeAbbrPattern.MatchString(line)
}

var (
	certIssuerPattern  = regexp.MustCompile(`(?i)\b(?:aws|amazon web services|microsoft|azure|google|gcp|cisco|comptia|oracle|pmi|scrum alliance|scrum\.org|salesforce|red hat|linux foundation|cncf|isc2|isaca|hashicorp|kubernetes|meta|ibm|databricks|snowflake)\b`)
	certKeywordPattern = regexp.MustCompile(`(?i)\b(?:certified|certification|certificate|practitioner|specialty)\b`)
	certAcronymPattern = regexp.MustCompile(`(?:^|[^A-Za-z0-9])(PMP|CISSP|CISM|CISA|CKAD|CKA|CKS|CCNA|CCNP|CSM|PSM(?: I{1,3})?|CPA|CFA|ITIL(?: v4| Foundation)?|Security\+|Network\+|A\+|OSCP|CEH|TOGAF|PRINCE2|Six Sigma(?: Green Belt| Black Belt)?)(?:[^A-Za-z0-9+]|$)`)
)

var certHeadings = []string{"licenses and certifications", "certifications", "certificates", "licenses"}

// ExtractCertifications returns certification names. Entries come from a
// certifications section, from segments naming a known issuer together with a
// certification keyword, and from well-known certification acronyms.
func ExtractCertifications(text string) []string {
	certs := []string{}

	if section, ok := parsing.Section(text, certHeadings); ok {
		for _, seg := range segments(section) {
			if inLength(seg, 5, 80) {
				certs, _ = appendUnique(certs, seg, maxCertifications)
			}
		}
	}

	for _, seg := range segments(text) {
		if certIssuerPattern.MatchString(seg) && certKeywordPattern.MatchString(seg) && inLength(seg, 5, 80) {
			certs, _ = appendUnique(certs, seg, maxCertifications)
		}
	}

	for _, m := range certAcronymPattern.FindAllStringSubmatch(text, -1) {
		if !containsFold(certs, m[1]) {
			certs, _ = appendUnique(certs, m[1], maxCertifications)
		}
	}
	return certs
}

// segments splits text into comma- and line-separated phrases.
func segments(text string) []string {
	var out []string
	for _, s := range strings.FieldsFunc(text, func(r rune) bool { return r == '\n' || r == ',' }) {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// containsFold reports whether any element of list contains sub, case-insensitively.
func containsFold(list []string, sub string) bool {
	sub = strings.ToLower(sub)
	for _, s := range list {
		if strings.Contains(strings.ToLower(s), sub) {
			return true
		}
	}
	return false
}

// knownLanguages is the closed list of spoken languages recognised.
var knownLanguages = []string{
	"English", "Spanish", "French", "German", "Italian", "Portuguese", "Chinese", "Mandarin",
	"Cantonese", "Japanese", "Korean", "Arabic", "Hindi", "Russian", "Dutch", "Swedish", "Polish",
	"Turkish", "Yoruba", "Igbo", "Hausa", "Swahili", "Bengali",
}

var languagePattern = regexp.MustCompile(`\b(` + strings.Join(knownLanguages, "|") + `)\b`)

var languageHeadings = []string{"language skills", "languages"}

// ExtractLanguages returns spoken languages in order of appearance, preferring
// a languages section when it names any.
func ExtractLanguages(text string) []string {
	scope := text
	if section, ok := parsing.Section(text, languageHeadings); ok && languagePattern.MatchString(section) {
		scope = section
	}
	langs := []string{}
	for _, m := range languagePattern.FindAllString(scope, -1) {
		langs, _ = appendUnique(langs, m, maxLanguages)
	}
	return langs
}
