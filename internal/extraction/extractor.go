// Package extraction provides the field extractors that turn normalized
// résumé text into typed field groups. Every extractor is pure and total: a
// miss yields the zero value of its result type, never an error.
package extraction

import (
	"fmt"

	"github.com/jonathan/resume-matcher/internal/skills"
)

// Extractor maps normalized text to one field or field group.
type Extractor[T any] interface {
	Extract(text string) T
}

// ExtractorFunc adapts a plain function to Extractor.
type ExtractorFunc[T any] func(text string) T

// Extract calls f(text).
func (f ExtractorFunc[T]) Extract(text string) T {
	return f(text)
}

// Run calls e.Extract and converts a panic into the zero value plus an error
// describing it, so one faulty extractor cannot take down the others.
func Run[T any](e Extractor[T], text string) (out T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			out = zero
			err = fmt.Errorf("extractor panicked: %v", r)
		}
	}()
	return e.Extract(text), nil
}

// Identity holds contact and identity fields. Empty strings mean not found.
type Identity struct {
	Name         string
	Email        string
	Phone        string
	Location     string
	LinkedInURL  string
	GitHubURL    string
	PortfolioURL string
}

// History holds professional history fields.
type History struct {
	// JobTitles is in discovery order; the first element is the current title.
	JobTitles         []string
	Companies         []string
	YearsOfExperience int
}

// SkillSet holds technical and soft skills as canonical names in discovery order.
type SkillSet struct {
	Technical []string
	Soft      []string
}

// Credentials holds education, certification and language fields.
type Credentials struct {
	Education      []string
	Certifications []string
	Languages      []string
}

// Set is the full collection of extractors run by the profile assembler.
// Any field may be replaced to swap a strategy.
type Set struct {
	Identity    Extractor[Identity]
	History     Extractor[History]
	Skills      Extractor[SkillSet]
	Credentials Extractor[Credentials]
	Summary     Extractor[string]
	Industry    Extractor[string]
	Experience  Extractor[[]string]
}

// DefaultSet returns the pattern- and lexicon-based extractors. A nil taxonomy
// means skills.Default().
func DefaultSet(tax *skills.Taxonomy) Set {
	return Set{
		Identity:    IdentityExtractor{},
		History:     HistoryExtractor{},
		Skills:      SkillsExtractor{Taxonomy: tax},
		Credentials: CredentialsExtractor{},
		Summary:     ExtractorFunc[string](ExtractSummary),
		Industry:    ExtractorFunc[string](ExtractIndustry),
		Experience:  ExtractorFunc[[]string](ExtractExperienceEntries),
	}
}
