package profile

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jonathan/resume-matcher/internal/extraction"
	"github.com/jonathan/resume-matcher/internal/ner"
	"github.com/jonathan/resume-matcher/internal/parsing"
	"github.com/jonathan/resume-matcher/internal/types"
)

const sampleResume = `Jane Doe
Senior Software Engineer
Lagos, Nigeria | jane.doe@gmail.com | +234 803 123 4567
linkedin.com/in/janedoe | github.com/janedoe

Professional Summary
Results-driven Senior Software Engineer with 7+ years of experience building scalable backend systems for fintech products.

Technical Skills
Go, Python, PostgreSQL, Docker, Kubernetes, AWS, React

Work Experience
Senior Software Engineer at Paystack
Jan 2020 - Present
Software Engineer, Andela Technologies
2016 - 2019

Education
B.Sc. Computer Science
University of Lagos

Languages
English, Yoruba
`

func newTestAssembler(t *testing.T) (*Assembler, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	return NewAssembler(extraction.DefaultSet(nil), zap.New(core)), logs
}

func TestAssemble_SampleResume(t *testing.T) {
	a, _ := newTestAssembler(t)

	p := a.Assemble(context.Background(), sampleResume)

	assert.Equal(t, ProfileID(parsing.Normalize(sampleResume)), p.ID)
	assert.Equal(t, "Jane Doe", p.Name)
	assert.Equal(t, "jane.doe@gmail.com", p.Email)
	assert.Equal(t, "+234 803 123 4567", p.Phone)
	assert.Equal(t, "Lagos, Nigeria", p.Location)
	assert.Equal(t, "https://linkedin.com/in/janedoe", p.LinkedInURL)
	assert.Equal(t, "https://github.com/janedoe", p.GitHubURL)
	assert.Equal(t, []string{"Go", "Python", "PostgreSQL", "Docker", "Kubernetes", "AWS", "React"}, p.Skills)
	assert.Equal(t, "Senior Software Engineer", p.CurrentJobTitle)
	assert.Equal(t, []string{"Senior Software Engineer", "Software Engineer"}, p.JobTitles)
	assert.Equal(t, []string{"Andela Technologies", "Paystack"}, p.Companies)
	assert.Equal(t, 7, p.YearsOfExperience)
	assert.Equal(t, []string{"B.Sc. Computer Science, University of Lagos"}, p.Education)
	assert.Equal(t, []string{"English", "Yoruba"}, p.Languages)
	assert.Equal(t, []string{"Technology"}, p.IndustryExperience)
	assert.Len(t, p.Experience, 2)
	assert.True(t, strings.HasPrefix(p.Summary, "Results-driven"))
	assert.True(t, strings.HasPrefix(p.GeneratedSummary, "Jane Doe is a Senior Software Engineer with 7+ years of experience"))
}

func TestAssemble_EmptyAndTinyInput(t *testing.T) {
	a, _ := newTestAssembler(t)

	for _, raw := range []string{"", "ab"} {
		t.Run(raw, func(t *testing.T) {
			p := a.Assemble(context.Background(), raw)

			assert.NotEmpty(t, p.ID)
			assert.Empty(t, p.Skills)
			assert.NotNil(t, p.Skills)
			assert.Empty(t, p.JobTitles)
			assert.Empty(t, p.Companies)
			assert.Empty(t, p.IndustryExperience)
			assert.Zero(t, p.YearsOfExperience)
			assert.Contains(t, p.GeneratedSummary, "professional")
		})
	}
}

func TestAssemble_TitleYearsAndSkills(t *testing.T) {
	a, _ := newTestAssembler(t)
	raw := "Senior Software Engineer\n5+ years experience building web platforms\nSkills: Python, React, AWS"

	p := a.Assemble(context.Background(), raw)

	assert.Equal(t, "Senior Software Engineer", p.CurrentJobTitle)
	assert.Equal(t, 5, p.YearsOfExperience)
	assert.Subset(t, p.Skills, []string{"Python", "React", "AWS"})
}

func TestAssemble_Idempotent(t *testing.T) {
	a, _ := newTestAssembler(t)

	first := a.Assemble(context.Background(), sampleResume)
	second := a.Assemble(context.Background(), sampleResume)
	renormalized := a.Assemble(context.Background(), parsing.Normalize(sampleResume))

	assert.Equal(t, first, second)
	assert.Equal(t, first, renormalized)
}

func TestAssemble_RecognizerHintsOverride(t *testing.T) {
	a, _ := newTestAssembler(t)
	a.Recognizer = ner.RecognizerFunc(func(ctx context.Context, text string) ([]ner.Entity, error) {
		return []ner.Entity{
			{Type: ner.Person, Text: "Janet Doe", Score: 0.93},
			{Type: ner.Location, Text: "Abuja", Score: 0.8},
			{Type: ner.Organization, Text: "Flutterwave", Score: 0.9},
			{Type: ner.Organization, Text: "Paystack", Score: 0.85},
			{Type: ner.Person, Text: "Low Score", Score: 0.5},
		}, nil
	})

	p := a.Assemble(context.Background(), sampleResume)

	assert.Equal(t, "Janet Doe", p.Name)
	assert.Equal(t, "Abuja", p.Location)
	assert.Equal(t, []string{"Flutterwave", "Paystack", "Andela Technologies"}, p.Companies)
}

func TestAssemble_RecognizerErrorIgnored(t *testing.T) {
	a, logs := newTestAssembler(t)
	a.Recognizer = ner.RecognizerFunc(func(context.Context, string) ([]ner.Entity, error) {
		return nil, &ner.RecognizerError{Recognizer: "test", Message: "down", Cause: errors.New("503")}
	})

	p := a.Assemble(context.Background(), sampleResume)

	assert.Equal(t, "Jane Doe", p.Name)
	assert.Equal(t, 1, logs.FilterMessage("entity recognition failed").FilterLevelExact(zapcore.WarnLevel).Len())
}

func TestAssemble_PanickingRecognizerIsolated(t *testing.T) {
	a, logs := newTestAssembler(t)
	a.Recognizer = ner.RecognizerFunc(func(context.Context, string) ([]ner.Entity, error) {
		panic("model crashed")
	})

	var p types.ResumeProfile
	require.NotPanics(t, func() { p = a.Assemble(context.Background(), sampleResume) })

	assert.Equal(t, "Jane Doe", p.Name)
	assert.Equal(t, "jane.doe@gmail.com", p.Email)
	assert.NotEmpty(t, p.Skills)
	assert.Equal(t, 1, logs.FilterMessage("entity recognizer panicked").FilterLevelExact(zapcore.WarnLevel).Len())
}

func TestAssemble_PanickingExtractorIsolated(t *testing.T) {
	a, logs := newTestAssembler(t)
	a.Extractors.Skills = extraction.ExtractorFunc[extraction.SkillSet](func(string) extraction.SkillSet {
		panic("bad pattern")
	})

	p := a.Assemble(context.Background(), sampleResume)

	assert.Empty(t, p.Skills)
	assert.NotNil(t, p.Skills)
	assert.Equal(t, "Jane Doe", p.Name)
	assert.Equal(t, 7, p.YearsOfExperience)
	require.Equal(t, 1, logs.FilterMessage("extractor failed").Len())
	assert.Equal(t, "skills", logs.FilterMessage("extractor failed").All()[0].ContextMap()["extractor"])
}

func TestAssemble_NilExtractorLeavesFieldEmpty(t *testing.T) {
	a, _ := newTestAssembler(t)
	a.Extractors.Identity = nil

	p := a.Assemble(context.Background(), sampleResume)

	assert.Equal(t, "", p.Name)
	assert.Equal(t, "", p.Email)
	assert.NotEmpty(t, p.Skills)
}

func TestAssemble_SummaryPolicy(t *testing.T) {
	a, _ := newTestAssembler(t)
	a.Options.AlwaysEnhanceSummary = false

	p := a.Assemble(context.Background(), sampleResume)
	assert.Equal(t, p.Summary, p.GeneratedSummary)

	noSummary := a.Assemble(context.Background(), "Jane Doe\nBackend Developer with 4 years of experience in Go and Python services")
	assert.Empty(t, noSummary.Summary)
	assert.Contains(t, noSummary.GeneratedSummary, "Backend Developer")
}

func TestAssemble_ListsCappedAndDeduped(t *testing.T) {
	a, _ := newTestAssembler(t)
	var titles []string
	for i := 0; i < 10; i++ {
		titles = append(titles, "Title Number "+string(rune('A'+i)))
	}
	a.Extractors.History = extraction.ExtractorFunc[extraction.History](func(string) extraction.History {
		return extraction.History{
			JobTitles: append([]string{"Data Analyst", "data analyst"}, titles...),
			Companies: []string{"Acme", " ", "ACME", "Globex"},
		}
	})

	p := a.Assemble(context.Background(), sampleResume)

	assert.Len(t, p.JobTitles, types.MaxJobTitles)
	assert.Equal(t, "Data Analyst", p.JobTitles[0])
	assert.Equal(t, "Title Number A", p.JobTitles[1])
	assert.Equal(t, []string{"Acme", "Globex"}, p.Companies)
}

func TestCapUnique(t *testing.T) {
	assert.Equal(t, []string{}, capUnique(nil, 3))
	assert.Equal(t, []string{"a", "b"}, capUnique([]string{"a", "A", " b ", "", "c"}, 2))
}
