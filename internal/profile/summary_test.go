package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-matcher/internal/types"
)

func TestSynthesizeSummary(t *testing.T) {
	tests := []struct {
		name    string
		profile types.ResumeProfile
		want    string
	}{
		{
			name: "all fields",
			profile: types.ResumeProfile{
				Name:              "Jane Doe",
				CurrentJobTitle:   "Senior Software Engineer",
				YearsOfExperience: 7,
				Skills:            []string{"Go", "Python", "PostgreSQL", "Docker", "Kubernetes"},
				Education:         []string{"B.Sc. Computer Science, University of Lagos"},
			},
			want: "Jane Doe is a Senior Software Engineer with 7+ years of experience specializing in Go, Python, PostgreSQL, Docker with educational background in B.Sc. Computer Science, University of Lagos. " + closingMid,
		},
		{
			name:    "empty profile",
			profile: types.NewResumeProfile("id"),
			want:    "A professional. " + closingEntry,
		},
		{
			name:    "no name uses article",
			profile: types.ResumeProfile{CurrentJobTitle: "Engineering Manager", YearsOfExperience: 10},
			want:    "An Engineering Manager with 10+ years of experience. " + closingSenior,
		},
		{
			name:    "acronym article",
			profile: types.ResumeProfile{Name: "Ada Obi", CurrentJobTitle: "SRE Lead", YearsOfExperience: 1},
			want:    "Ada Obi is an SRE Lead with 1+ years of experience. " + closingEntry,
		},
		{
			name:    "skills without title",
			profile: types.ResumeProfile{Skills: []string{"Python"}},
			want:    "A professional specializing in Python. " + closingEntry,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SynthesizeSummary(tt.profile))
		})
	}
}

func TestClosingSentence_Tiers(t *testing.T) {
	tests := []struct {
		years int
		want  string
	}{
		{0, closingEntry},
		{2, closingEntry},
		{3, closingMid},
		{8, closingMid},
		{9, closingSenior},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, closingSentence(tt.years), "years %d", tt.years)
	}
}

func TestSynthesizeSummary_Deterministic(t *testing.T) {
	p := types.ResumeProfile{Name: "Jane Doe", Skills: []string{"Go", "Rust"}}
	assert.Equal(t, SynthesizeSummary(p), SynthesizeSummary(p))
}
