package ranking

import (
	"testing"

	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dataEngineer() types.ResumeProfile {
	p := types.NewResumeProfile("p1")
	p.Skills = []string{"Python", "SQL"}
	p.JobTitles = []string{"Data Engineer"}
	p.YearsOfExperience = 4
	p.Location = "Lagos, Nigeria"
	return p
}

func TestScoreMatch_Breakdown(t *testing.T) {
	job := types.JobPosting{
		ID:              "j1",
		Title:           "Data Engineer",
		Skills:          []string{"Python", "SQL", "Docker"},
		Location:        "Lagos, Nigeria",
		ExperienceLevel: "mid",
	}

	got := ScoreMatch(dataEngineer(), job)

	assert.Equal(t, "p1", got.ProfileID)
	assert.Equal(t, "j1", got.JobID)
	assert.Equal(t, 67, got.SkillsMatch.Score)
	assert.Equal(t, 100, got.TitleMatch)
	assert.Equal(t, 100, got.ExperienceMatch)
	assert.Equal(t, 100, got.LocationMatch)
	// 0.35*67 + 25 + 20 + 20
	assert.Equal(t, 88, got.MatchScore)
	assert.Equal(t, []string{
		"2 matching skills: Python, SQL",
		"Strong job title match",
		"Excellent location match",
	}, got.MatchReasons)
}

func TestScoreMatch_Deterministic(t *testing.T) {
	job := types.JobPosting{ID: "j1", Title: "Backend Engineer", Skills: []string{"Go", "SQL"}, Location: "Abuja"}
	first := ScoreMatch(dataEngineer(), job)
	for range 5 {
		assert.Equal(t, first, ScoreMatch(dataEngineer(), job))
	}
}

func TestScoreMatch_Bounds(t *testing.T) {
	profiles := []types.ResumeProfile{
		{},
		dataEngineer(),
		{JobTitles: []string{"Intern"}, Location: "Austin, TX"},
		{Skills: []string{"Go", "Rust", "Kubernetes"}, JobTitles: []string{"Chief Technology Officer"}, YearsOfExperience: 20},
	}
	jobs := []types.JobPosting{
		{ID: "empty"},
		{ID: "exec", Title: "Chief Technology Officer", ExperienceLevel: "executive", Location: "Austin, TX", Skills: []string{"Go", "Rust", "Kubernetes"}},
		{ID: "entry", Title: "Junior Analyst", ExperienceLevel: "entry", Location: "London, UK", Skills: []string{"Excel"}},
	}

	for _, p := range profiles {
		for _, j := range jobs {
			got := ScoreMatch(p, j)
			assert.GreaterOrEqual(t, got.MatchScore, 1)
			assert.LessOrEqual(t, got.MatchScore, 100)
			assert.NotNil(t, got.MatchReasons)
		}
	}
}

func TestScoreMatch_PerfectMatch(t *testing.T) {
	p := types.ResumeProfile{
		Skills:    []string{"Go", "Rust", "Kubernetes"},
		JobTitles: []string{"Chief Technology Officer"},
		Location:  "Austin, TX",
	}
	job := types.JobPosting{Title: "Chief Technology Officer", ExperienceLevel: "executive", Location: "Austin, TX", Skills: []string{"Go", "Rust", "Kubernetes"}}

	got := ScoreMatch(p, job)
	assert.Equal(t, 100, got.MatchScore)
	assert.Equal(t, []string{
		"3 matching skills: Go, Rust, Kubernetes",
		"Strong job title match",
		"Excellent location match",
		"Multiple skill matches",
	}, got.MatchReasons)
}

func TestScorer_CustomTaxonomy(t *testing.T) {
	tax, err := skills.New(skills.Document{Technical: []skills.Entry{
		{Name: "Business Intelligence", Aliases: []string{"BI"}},
	}})
	require.NoError(t, err)

	p := types.ResumeProfile{Skills: []string{"BI"}}
	job := types.JobPosting{Skills: []string{"Business Intelligence"}}

	assert.Equal(t, 0, Scorer{}.Score(p, job).SkillsMatch.Score)
	assert.Equal(t, 100, Scorer{Taxonomy: tax}.Score(p, job).SkillsMatch.Score)
}

func TestGenerateReasons(t *testing.T) {
	tests := []struct {
		name     string
		matched  []string
		title    int
		location int
		want     []string
	}{
		{
			name:     "nothing notable",
			matched:  nil,
			title:    70,
			location: 80,
			want:     []string{},
		},
		{
			name:     "single skill",
			matched:  []string{"Go"},
			title:    0,
			location: 50,
			want:     []string{"1 matching skills: Go"},
		},
		{
			name:     "skill list truncated to three",
			matched:  []string{"Go", "SQL", "Docker", "AWS"},
			title:    71,
			location: 90,
			want: []string{
				"4 matching skills: Go, SQL, Docker",
				"Strong job title match",
				"Excellent location match",
				"Multiple skill matches",
			},
		},
		{
			name:     "location without title",
			matched:  nil,
			title:    53,
			location: 100,
			want:     []string{"Excellent location match"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := generateReasons(types.SkillsMatch{Matched: tt.matched}, tt.title, tt.location)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRank(t *testing.T) {
	results := []types.MatchResult{
		{JobID: "c", MatchScore: 40},
		{JobID: "b", MatchScore: 90},
		{JobID: "a", MatchScore: 40},
		{JobID: "d", MatchScore: 75},
	}

	Rank(results)

	var order []string
	for _, r := range results {
		order = append(order, r.JobID)
	}
	assert.Equal(t, []string{"b", "d", "a", "c"}, order)
}

func TestRank_Empty(t *testing.T) {
	assert.NotPanics(t, func() { Rank(nil) })
}
