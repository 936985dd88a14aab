package ranking

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Scorer computes match results. The zero value uses skills.Default().
type Scorer struct {
	Taxonomy *skills.Taxonomy
}

// ScoreMatch scores profile against job with the default taxonomy.
func ScoreMatch(profile types.ResumeProfile, job types.JobPosting) types.MatchResult {
	return Scorer{}.Score(profile, job)
}

// Score computes the weighted match of profile against job. It is pure: the
// same inputs always give the same result.
func (s Scorer) Score(profile types.ResumeProfile, job types.JobPosting) types.MatchResult {
	tax := s.Taxonomy
	if tax == nil {
		tax = skills.Default()
	}

	skillsMatch := computeSkillsMatch(profile.Skills, job.Skills, tax)
	title := computeTitleMatch(profile.JobTitles, job.Title)
	experience := computeExperienceMatch(profile, job)
	location := computeLocationMatch(profile.Location, job.Location)

	total := skillsWeight*float64(skillsMatch.Score) +
		titleWeight*float64(title) +
		experienceWeight*float64(experience) +
		locationWeight*float64(location)

	return types.MatchResult{
		ProfileID:       profile.ID,
		JobID:           job.ID,
		MatchScore:      clamp(int(math.Round(total)), 1, 100),
		MatchReasons:    generateReasons(skillsMatch, title, location),
		SkillsMatch:     skillsMatch,
		TitleMatch:      title,
		ExperienceMatch: experience,
		LocationMatch:   location,
	}
}

// generateReasons explains a result. Reasons appear in a fixed order.
func generateReasons(sm types.SkillsMatch, title, location int) []string {
	reasons := []string{}
	if n := len(sm.Matched); n > 0 {
		reasons = append(reasons, fmt.Sprintf("%d matching skills: %s", n, strings.Join(sm.Matched[:min(n, 3)], ", ")))
	}
	if title > 70 {
		reasons = append(reasons, "Strong job title match")
	}
	if location > 80 {
		reasons = append(reasons, "Excellent location match")
	}
	if len(sm.Matched) >= 3 {
		reasons = append(reasons, "Multiple skill matches")
	}
	return reasons
}

// Rank sorts results by score, highest first, breaking ties by job id.
func Rank(results []types.MatchResult) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].MatchScore != results[j].MatchScore {
			return results[i].MatchScore > results[j].MatchScore
		}
		return results[i].JobID < results[j].JobID
	})
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
