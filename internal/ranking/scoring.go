// Package ranking scores résumé profiles against job postings and orders the results.
package ranking

import (
	"math"
	"strings"

	"github.com/jonathan/resume-matcher/internal/geo"
	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Weights of the sub-scores in the total.
const (
	skillsWeight     = 0.35
	titleWeight      = 0.25
	experienceWeight = 0.20
	locationWeight   = 0.20
)

// Location sub-scores.
const (
	locationExact       = 100
	locationSameRegion  = 90
	locationSameCountry = 70
	locationUnknown     = 50
	locationDifferent   = 30
)

// computeSkillsMatch compares the job's skills against the candidate's. A job
// skill matches when either name contains the other, case-insensitively, or
// both resolve to the same taxonomy entry. Matched and missing keep the job's
// spelling.
func computeSkillsMatch(candidate, required []string, tax *skills.Taxonomy) types.SkillsMatch {
	jobSkills := uniqueTrimmed(required)
	result := types.SkillsMatch{Matched: []string{}, Missing: []string{}}

	have := uniqueTrimmed(candidate)
	if len(have) == 0 || len(jobSkills) == 0 {
		result.Missing = append(result.Missing, jobSkills...)
		return result
	}

	haveLower := make([]string, len(have))
	haveCanon := make(map[string]bool, len(have))
	for i, s := range have {
		haveLower[i] = strings.ToLower(s)
		if c, ok := tax.Canonical(s); ok {
			haveCanon[c] = true
		}
	}

	for _, js := range jobSkills {
		if skillPresent(js, haveLower, haveCanon, tax) {
			result.Matched = append(result.Matched, js)
		} else {
			result.Missing = append(result.Missing, js)
		}
	}
	result.Score = percent(len(result.Matched), len(jobSkills))
	return result
}

// skillPresent reports whether a job skill is covered by the candidate. Beyond
// the case-insensitive substring test in either direction, it also accepts two
// spellings the taxonomy resolves to the same canonical skill, so "JS" covers
// "JavaScript" although neither contains the other. That equality rule widens
// plain substring matching on purpose.
func skillPresent(jobSkill string, haveLower []string, haveCanon map[string]bool, tax *skills.Taxonomy) bool {
	if c, ok := tax.Canonical(jobSkill); ok && haveCanon[c] {
		return true
	}
	js := strings.ToLower(jobSkill)
	for _, h := range haveLower {
		if strings.Contains(h, js) || strings.Contains(js, h) {
			return true
		}
	}
	return false
}

// computeTitleMatch returns 100 for an exact title match, otherwise the best
// share of job-title words (longer than two letters) found in a candidate
// title, scaled to 80.
func computeTitleMatch(candidateTitles []string, jobTitle string) int {
	jobTitle = strings.ToLower(strings.TrimSpace(jobTitle))
	if jobTitle == "" || len(candidateTitles) == 0 {
		return 0
	}
	jobWords := strings.Fields(jobTitle)
	jobSet := make(map[string]bool, len(jobWords))
	for _, w := range jobWords {
		jobSet[w] = true
	}

	best := 0.0
	for _, title := range candidateTitles {
		title = strings.ToLower(strings.TrimSpace(title))
		if title == jobTitle {
			return 100
		}
		shared := 0
		seen := make(map[string]bool)
		for _, w := range strings.Fields(title) {
			if len(w) > 2 && jobSet[w] && !seen[w] {
				seen[w] = true
				shared++
			}
		}
		best = math.Max(best, float64(shared)/float64(len(jobWords))*80)
	}
	return int(math.Round(best))
}

var (
	executiveCues = []string{"chief", "vp", "president", "founder", "co-founder"}
	seniorCues    = []string{"senior", "sr", "lead", "manager", "principal", "staff", "head", "director"}
	entryCues     = []string{"junior", "jr", "intern", "internship", "entry", "graduate", "trainee"}
)

// CandidateLevel infers the candidate's tier from title words, then from
// years of experience, defaulting to mid.
func CandidateLevel(p types.ResumeProfile) types.ExperienceLevel {
	words := make(map[string]bool)
	for _, s := range append(append([]string{}, p.JobTitles...), p.Experience...) {
		for _, w := range strings.FieldsFunc(strings.ToLower(s), isWordSeparator) {
			words[w] = true
		}
	}
	switch {
	case containsAny(words, executiveCues):
		return types.LevelExecutive
	case containsAny(words, seniorCues):
		return types.LevelSenior
	case containsAny(words, entryCues):
		return types.LevelEntry
	}

	switch y := p.YearsOfExperience; {
	case y >= 7:
		return types.LevelSenior
	case y >= 3:
		return types.LevelMid
	case y >= 1:
		return types.LevelEntry
	}
	return types.LevelMid
}

// computeExperienceMatch loses 30 points per tier of distance.
func computeExperienceMatch(p types.ResumeProfile, job types.JobPosting) int {
	d := CandidateLevel(p).Distance(job.Level())
	return max(0, 100-30*d)
}

// computeLocationMatch grades two free-text locations using the gazetteer.
func computeLocationMatch(candidate, job string) int {
	candidate = strings.TrimSpace(candidate)
	job = strings.TrimSpace(job)
	if candidate == "" || job == "" {
		return locationUnknown
	}
	if strings.EqualFold(candidate, job) {
		return locationExact
	}

	a, b := geo.Resolve(candidate), geo.Resolve(job)
	switch {
	case geo.SameRegion(a, b):
		return locationSameRegion
	case geo.SameCountry(a, b):
		return locationSameCountry
	}
	return locationDifferent
}

func percent(n, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(n) / float64(total) * 100))
}

// uniqueTrimmed drops blanks and case-insensitive duplicates, keeping the
// first spelling.
func uniqueTrimmed(list []string) []string {
	out := make([]string, 0, len(list))
	seen := make(map[string]bool, len(list))
	for _, s := range list {
		s = strings.TrimSpace(s)
		if s == "" || seen[strings.ToLower(s)] {
			continue
		}
		seen[strings.ToLower(s)] = true
		out = append(out, s)
	}
	return out
}

func containsAny(set map[string]bool, words []string) bool {
	for _, w := range words {
		if set[w] {
			return true
		}
	}
	return false
}

func isWordSeparator(r rune) bool {
	return !(r == '-' || r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
}
