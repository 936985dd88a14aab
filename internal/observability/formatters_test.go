package observability

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintProfile(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	profile := types.NewResumeProfile("id")
	profile.Name = "Jane Doe"
	profile.Email = "jane@doe.dev"
	profile.CurrentJobTitle = "Senior Software Engineer"
	profile.YearsOfExperience = 7
	profile.Skills = []string{"Go", "Python", "PostgreSQL", "Docker", "Kubernetes", "AWS", "React"}
	profile.GeneratedSummary = "Jane Doe is a Senior Software Engineer with 7+ years of experience specializing in Go, Python, PostgreSQL, Docker."

	p.PrintProfile(&profile)
	output := buf.String()

	assert.Contains(t, output, "EXTRACTED PROFILE")
	assert.Contains(t, output, "Jane Doe")
	assert.Contains(t, output, "Senior Software Engineer")
	assert.Contains(t, output, "• Kubernetes")
	assert.NotContains(t, output, "• AWS")
	assert.Contains(t, output, "... and 2 more")
	assert.Contains(t, output, "specializing in")
	assert.NotContains(t, output, "Phone:")
	assert.NotContains(t, output, "Languages:")
}

func TestPrintProfile_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintProfile(nil)
	assert.Empty(t, buf.String())
}

func TestPrintMatches(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	var results []types.MatchResult
	for i := range 7 {
		results = append(results, types.MatchResult{
			JobID:       fmt.Sprintf("job-%d", i),
			MatchScore:  90 - i,
			SkillsMatch: types.SkillsMatch{Missing: []string{"Kafka", "Rust", "Terraform", "Scala"}},
		})
	}
	jobs := []types.JobPosting{{ID: "job-0", Title: "Backend Engineer"}}

	p.PrintMatches(results, jobs)
	output := buf.String()

	assert.Contains(t, output, "TOP MATCHES")
	assert.Contains(t, output, "#1  Backend Engineer  (90)")
	assert.Contains(t, output, "#2  job-1  (89)")
	assert.Contains(t, output, "Missing: Kafka, Rust, Terraform (+1 more)")
	assert.NotContains(t, output, "job-5")
	assert.Contains(t, output, "... and 2 more jobs")
}

func TestPrintMatches_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintMatches(nil, nil)
	assert.Empty(t, buf.String())
}

func TestPrintSkipped(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintSkipped([]types.SkippedJob{{JobID: "#3", Reason: "posting is not an object"}})
	assert.Contains(t, buf.String(), "SKIPPED POSTINGS (1)")
	assert.Contains(t, buf.String(), "#3: posting is not an object")
}

func TestPrintBox_LinesHaveEqualWidth(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", "short\n"+strings.Repeat("é", 100))

	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		assert.Equal(t, boxWidth, utf8.RuneCountInString(line), line)
	}
	assert.Contains(t, buf.String(), "...")
}

func TestWrap(t *testing.T) {
	assert.Equal(t, []string{"one two", "three"}, wrap("one two three", 8))
	assert.Empty(t, wrap("", 10))
	assert.Equal(t, []string{"supercalifragilistic"}, wrap("supercalifragilistic", 5))
}
