//nolint:revive // types is a standard Go package name pattern
package types

// MatchResult is the scored comparison of one profile against one job posting.
type MatchResult struct {
	ProfileID       string      `json:"profile_id"`
	JobID           string      `json:"job_id"`
	MatchScore      int         `json:"match_score"`
	MatchReasons    []string    `json:"match_reasons"`
	SkillsMatch     SkillsMatch `json:"skills_match"`
	TitleMatch      int         `json:"title_match"`
	ExperienceMatch int         `json:"experience_match"`
	LocationMatch   int         `json:"location_match"`
}

// SkillsMatch holds the skills sub-score breakdown. Matched and Missing keep
// the job posting's spelling.
type SkillsMatch struct {
	Matched []string `json:"matched"`
	Missing []string `json:"missing"`
	Score   int      `json:"score"`
}

// MatchKey identifies a (profile, job) pair for idempotent matching.
type MatchKey struct {
	ProfileID string
	JobID     string
}

// Key returns the idempotency key for the result.
func (r MatchResult) Key() MatchKey {
	return MatchKey{ProfileID: r.ProfileID, JobID: r.JobID}
}

// MatchResults is the document written by the match command.
type MatchResults struct {
	ProfileID string        `json:"profile_id"`
	Results   []MatchResult `json:"results"`
	Skipped   []SkippedJob  `json:"skipped,omitempty"`
}

// SkippedJob records a posting that was not scored and why.
type SkippedJob struct {
	JobID  string `json:"job_id"`
	Reason string `json:"reason"`
}
