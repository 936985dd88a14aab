package extraction

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/jonathan/resume-matcher/internal/geo"
)

// HistoryExtractor extracts job titles, companies and years of experience.
type HistoryExtractor struct{}

// Extract implements Extractor.
func (HistoryExtractor) Extract(text string) History {
	return History{
		JobTitles:         ExtractJobTitles(text),
		Companies:         ExtractCompanies(text),
		YearsOfExperience: ExtractYearsOfExperience(text),
	}
}

const (
	maxTitles       = 5
	minTitleLen     = 5
	maxTitleLen     = 50
	maxCompanies    = 5
	maxYearsAllowed = 50
)

// alternation builds a regexp alternation of literal phrases, longest first.
// Spaces and hyphens inside a phrase match either separator.
func alternation(phrases []string) string {
	sorted := append([]string(nil), phrases...)
	sort.SliceStable(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })
	quoted := make([]string, len(sorted))
	for i, p := range sorted {
		parts := strings.FieldsFunc(p, func(r rune) bool { return r == ' ' || r == '-' })
		for j, part := range parts {
			parts[j] = regexp.QuoteMeta(part)
		}
		quoted[i] = strings.Join(parts, `[ \-]`)
	}
	return strings.Join(quoted, "|")
}

type titlePattern struct {
	re *regexp.Regexp
	// minWords rejects vague single-word matches such as "Engineer"
	minWords int
}

var titlePatterns = []titlePattern{
	// seniority prefix + domain words + role noun: "Senior Software Engineer", "Data Scientist"
	{regexp.MustCompile(`(?i)\b((?:(?:` + alternation(seniorityWords) + `) )?(?:(?:` + alternation(domainWords) + `)[ /]){0,3}(?:` + alternation(roleNouns) + `))\b`), 2},
	// C-level, VP and founder titles
	{regexp.MustCompile(`\b(C[ETFOIMP]O|Chief(?: [A-Z][a-z]+){1,2} Officer|(?:Senior |Executive )?Vice President(?: of(?: [A-Z][a-z]+){1,2})?|VP(?: of)?(?: [A-Z][a-z]+){1,2}|Co-?[Ff]ounder|Founder|Managing Director)\b`), 1},
}

// cLevel expands executive acronyms so they survive the length bound.
var cLevel = map[string]string{
	"CEO": "Chief Executive Officer", "CTO": "Chief Technology Officer", "CFO": "Chief Financial Officer",
	"COO": "Chief Operating Officer", "CIO": "Chief Information Officer", "CMO": "Chief Marketing Officer",
	"CPO": "Chief Product Officer",
}

var seniorityExpansions = map[string]string{"sr": "Senior", "sr.": "Senior", "jr": "Junior", "jr.": "Junior"}

// ExtractJobTitles returns normalized job titles. Titles from the first
// pattern come first, each group in text order.
func ExtractJobTitles(text string) []string {
	titles := []string{}
	for _, p := range titlePatterns {
		for _, m := range p.re.FindAllStringSubmatch(text, -1) {
			if t := normalizeTitle(m[1], p.minWords); t != "" {
				titles, _ = appendUnique(titles, t, maxTitles)
			}
		}
	}
	return titles
}

func normalizeTitle(raw string, minWords int) string {
	if full, ok := cLevel[raw]; ok {
		return full
	}
	if len(strings.Fields(raw)) < minWords {
		return ""
	}
	words := strings.Fields(strings.ReplaceAll(raw, "/", " / "))
	for i, w := range words {
		if exp, ok := seniorityExpansions[strings.ToLower(w)]; ok {
			words[i] = exp
		}
	}
	title := strings.ReplaceAll(titleCase(strings.Join(words, " ")), " / ", "/")
	if !inLength(title, minTitleLen, maxTitleLen) {
		return ""
	}
	return title
}

var yearsPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(\d{1,3})\+? ?(?:years?|yrs?)(?: of)? (?:(?:professional|industry|relevant|hands-on|work|practical|combined|total) )?experience`),
	regexp.MustCompile(`(?i)\bexperience (?:of )?(?:over |more than |nearly |about )?(\d{1,3})\+? ?(?:years?|yrs?)`),
	regexp.MustCompile(`(?i)\b(\d{1,3})\+ ?(?:years?|yrs?)\b`),
	regexp.MustCompile(`(?i)\b(\d{1,3})\+? ?(?:years?|yrs?) in\b`),
	regexp.MustCompile(`(?i)\bover (\d{1,3}) (?:years?|yrs?)\b`),
}

// ExtractYearsOfExperience returns the largest stated number of years below
// 50, or 0 when none is stated.
func ExtractYearsOfExperience(text string) int {
	best := 0
	for _, re := range yearsPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			n, err := strconv.Atoi(m[1])
			if err != nil || n >= maxYearsAllowed {
				continue
			}
			if n > best {
				best = n
			}
		}
	}
	return best
}

const companyWord = `[A-Z][A-Za-z0-9&.\-]*`

var (
	companySuffixPattern = regexp.MustCompile(`\b((?:` + companyWord + ` ){0,4}?` + companyWord + ` (?:Inc|LLC|Ltd|Limited|Corp|Corporation|Company|Technologies|Solutions|Group|Labs|Consulting|Bank|Plc|PLC|GmbH|Partners|Ventures|Studios|Holdings))\b`)
	companyAtPattern     = regexp.MustCompile(`\b(?:at|@) (` + companyWord + `(?: ` + companyWord + `){0,3})`)
)

// companyLeadWords are dropped from the front of a company candidate.
var companyLeadWords = map[string]bool{"at": true, "in": true, "for": true, "with": true, "and": true, "from": true, "joined": true, "worked": true}

// ExtractCompanies returns organization names found next to legal suffixes or
// after "at". Output is best effort.
func ExtractCompanies(text string) []string {
	companies := []string{}
	for _, line := range strings.Split(text, "\n") {
		for _, m := range companySuffixPattern.FindAllStringSubmatch(line, -1) {
			companies, _ = appendUnique(companies, cleanCompany(m[1], 2), maxCompanies)
		}
	}
	for _, line := range strings.Split(text, "\n") {
		for _, m := range companyAtPattern.FindAllStringSubmatch(line, -1) {
			companies, _ = appendUnique(companies, cleanCompany(m[1], 1), maxCompanies)
		}
	}
	return companies
}

// genericOrgWords are never a company name on their own.
var genericOrgWords = map[string]bool{
	"university": true, "college": true, "school": true, "institute": true, "home": true,
	"work": true, "present": true, "scale": true, "company": true, "startup": true,
}

// credentialWords mark a certification or degree phrase, not an employer.
var credentialWords = map[string]bool{"certified": true, "certification": true, "certificate": true, "degree": true, "bachelor": true}

// cleanCompany trims title and filler words from a candidate. Candidates with
// fewer than minWords words left are rejected.
func cleanCompany(raw string, minWords int) string {
	words := strings.Fields(strings.TrimRight(raw, ".,-"))
	for len(words) > 0 {
		w := words[0]
		if companyLeadWords[strings.ToLower(w)] || isSeniorityWord(w) || isRoleWord(w) || isDomainWord(w) {
			words = words[1:]
			continue
		}
		break
	}
	// "Google Mountain View": drop a trailing place
	for i := 1; i < len(words); i++ {
		if geo.Resolve(strings.Join(words[i:], " ")).Known() {
			words = words[:i]
			break
		}
	}
	for _, w := range words {
		if credentialWords[strings.ToLower(w)] {
			return ""
		}
	}
	name := strings.Join(words, " ")
	if len(words) == 0 || len(words) < minWords || !inLength(name, 3, 50) {
		return ""
	}
	if len(words) == 1 && genericOrgWords[strings.ToLower(name)] {
		return ""
	}
	if geo.Resolve(name).Known() {
		return ""
	}
	return name
}

var domainWordSet = lowerSet(domainWords)

func isDomainWord(w string) bool {
	return domainWordSet[strings.ToLower(w)]
}
