// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(title))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", pad(truncate(line, boxWidth-4)))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// pad right-pads s with spaces to the inner box width, counting runes.
func pad(s string) string {
	if n := boxWidth - 4 - utf8.RuneCountInString(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

// truncate shortens s to limit runes, ending with "..." when cut.
func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	r := []rune(s)
	return string(r[:limit-3]) + "..."
}

// listWithMore joins up to n items and notes how many were left out.
func listWithMore(items []string, n int) string {
	if len(items) <= n {
		return strings.Join(items, ", ")
	}
	return fmt.Sprintf("%s (+%d more)", strings.Join(items[:n], ", "), len(items)-n)
}

// PrintProfile outputs a human-readable summary of an extracted profile.
func (p *Printer) PrintProfile(profile *types.ResumeProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	field := func(label, value string) {
		if value != "" {
			sb.WriteString(fmt.Sprintf("%-10s %s\n", label+":", value))
		}
	}

	field("Name", profile.Name)
	field("Email", profile.Email)
	field("Phone", profile.Phone)
	field("Location", profile.Location)
	field("Title", profile.CurrentJobTitle)
	if profile.YearsOfExperience > 0 {
		field("Years", fmt.Sprintf("%d", profile.YearsOfExperience))
	}
	sb.WriteString("\n")

	lists := []struct {
		label string
		items []string
	}{
		{"Skills", profile.Skills},
		{"Soft skills", profile.SoftSkills},
		{"Companies", profile.Companies},
		{"Education", profile.Education},
		{"Certifications", profile.Certifications},
		{"Languages", profile.Languages},
		{"Industry", profile.IndustryExperience},
	}
	for _, l := range lists {
		if len(l.items) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("%s:\n", l.label))
		count := min(len(l.items), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", l.items[i]))
		}
		if len(l.items) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(l.items)-maxItemsToShow))
		}
	}

	if profile.GeneratedSummary != "" {
		sb.WriteString("\nSummary:\n")
		for _, line := range wrap(profile.GeneratedSummary, boxWidth-6) {
			sb.WriteString("  " + line + "\n")
		}
	}

	p.printBox("EXTRACTED PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatches outputs the top ranked matches with their sub-scores.
func (p *Printer) PrintMatches(results []types.MatchResult, jobs []types.JobPosting) {
	if len(results) == 0 {
		return
	}

	titles := make(map[string]string, len(jobs))
	for _, j := range jobs {
		if _, ok := titles[j.ID]; !ok {
			titles[j.ID] = j.Title
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Jobs matched: %d\n\n", len(results)))

	count := min(len(results), maxItemsToShow)
	for i := 0; i < count; i++ {
		r := results[i]
		name := titles[r.JobID]
		if name == "" {
			name = r.JobID
		}
		sb.WriteString(fmt.Sprintf("#%d  %s  (%d)\n", i+1, name, r.MatchScore))
		sb.WriteString(fmt.Sprintf("    skills %d · title %d · exp %d · loc %d\n",
			r.SkillsMatch.Score, r.TitleMatch, r.ExperienceMatch, r.LocationMatch))
		if len(r.SkillsMatch.Missing) > 0 {
			sb.WriteString(fmt.Sprintf("    Missing: %s\n", listWithMore(r.SkillsMatch.Missing, 3)))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more jobs", len(results)-maxItemsToShow))
	}

	p.printBox("TOP MATCHES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSkipped lists job postings that were not scored.
func (p *Printer) PrintSkipped(skipped []types.SkippedJob) {
	if len(skipped) == 0 {
		return
	}

	var sb strings.Builder
	for _, s := range skipped {
		sb.WriteString(fmt.Sprintf("%s: %s\n", s.JobID, s.Reason))
	}
	p.printBox(fmt.Sprintf("SKIPPED POSTINGS (%d)", len(skipped)), strings.TrimSuffix(sb.String(), "\n"))
}

// wrap breaks s into lines of at most width runes on word boundaries.
func wrap(s string, width int) []string {
	var lines []string
	var line string
	for _, w := range strings.Fields(s) {
		switch {
		case line == "":
			line = w
		case utf8.RuneCountInString(line)+1+utf8.RuneCountInString(w) <= width:
			line += " " + w
		default:
			lines = append(lines, line)
			line = w
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
