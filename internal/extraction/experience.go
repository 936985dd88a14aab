package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/parsing"
)

const (
	maxExperienceEntries = 10
	maxEntryLen          = 150
)

const month = `(?:jan|feb|mar|apr|may|jun|jul|aug|sep|sept|oct|nov|dec)[a-z]*\.? `

// dateRangePattern matches "2019 - 2021", "Jan 2019 - Present", "03/2018 to 05/2020".
var dateRangePattern = regexp.MustCompile(`(?i)\b(?:` + month + `|\d{1,2}/)?(?:19|20)\d{2}(?: ?- ?| to | )(?:` + month + `|\d{1,2}/)?(?:(?:19|20)\d{2}|present|current|now|date)\b`)

// ExtractExperienceEntries returns the lines that carry an employment date
// range. A line that is only a date is joined with the line above it, which
// usually holds the title and employer.
func ExtractExperienceEntries(text string) []string {
	lines := parsing.Lines(text)
	entries := []string{}
	for i, line := range lines {
		loc := dateRangePattern.FindStringIndex(line)
		if loc == nil {
			continue
		}
		entry := line
		rest := line[:loc[0]] + line[loc[1]:]
		if countLetters(rest) < 3 && i > 0 && dateRangePattern.FindStringIndex(lines[i-1]) == nil {
			entry = lines[i-1] + " " + strings.TrimSpace(line)
		}
		entry = truncateRunes(entry, maxEntryLen)
		entries, _ = appendUnique(entries, entry, maxExperienceEntries)
	}
	return entries
}
