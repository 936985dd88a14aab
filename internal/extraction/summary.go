package extraction

import (
	"github.com/jonathan/resume-matcher/internal/parsing"
)

const (
	minSummaryLen = 50
	maxSummaryLen = 1000
)

// summaryHeadings introduce a narrative summary, longest first.
var summaryHeadings = []string{
	"summary of qualifications", "professional summary", "executive summary", "career summary",
	"professional profile", "career objective", "about me", "summary", "objective", "profile",
	"overview",
}

// ExtractSummary returns the first paragraph under a summary heading whose
// length is within bounds. It never synthesizes a summary.
func ExtractSummary(text string) string {
	for _, block := range parsing.Sections(text, summaryHeadings) {
		summary := parsing.CollapseSpaces(block)
		if inLength(summary, minSummaryLen, maxSummaryLen) {
			return summary
		}
	}
	return ""
}
