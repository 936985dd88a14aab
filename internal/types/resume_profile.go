// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ResumeProfile is the structured candidate profile extracted from résumé text.
// String fields are "" when not found. List fields are never nil.
type ResumeProfile struct {
	ID string `json:"id"`

	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Location     string `json:"location"`
	LinkedInURL  string `json:"linkedin_url"`
	GitHubURL    string `json:"github_url"`
	PortfolioURL string `json:"portfolio_url"`

	Skills             []string `json:"skills"`
	SoftSkills         []string `json:"soft_skills"`
	JobTitles          []string `json:"job_titles"`
	CurrentJobTitle    string   `json:"current_job_title"`
	Companies          []string `json:"companies"`
	Experience         []string `json:"experience"`
	Education          []string `json:"education"`
	Certifications     []string `json:"certifications"`
	Languages          []string `json:"languages"`
	IndustryExperience []string `json:"industry_experience"`

	// YearsOfExperience is 0 when unknown
	YearsOfExperience int `json:"years_of_experience"`

	Summary          string `json:"summary"`
	GeneratedSummary string `json:"generated_summary"`
}

// Per-field caps applied by the profile assembler.
const (
	MaxSkills         = 25
	MaxSoftSkills     = 10
	MaxJobTitles      = 5
	MaxCompanies      = 5
	MaxExperience     = 10
	MaxEducation      = 4
	MaxCertifications = 6
	MaxLanguages      = 6
	MaxIndustries     = 1
)

// NewResumeProfile returns a profile with every list field initialised to an empty slice.
func NewResumeProfile(id string) ResumeProfile {
	return ResumeProfile{
		ID:                 id,
		Skills:             []string{},
		SoftSkills:         []string{},
		JobTitles:          []string{},
		Companies:          []string{},
		Experience:         []string{},
		Education:          []string{},
		Certifications:     []string{},
		Languages:          []string{},
		IndustryExperience: []string{},
	}
}

// EnsureLists replaces nil list fields with empty slices, e.g. after decoding
// a profile written by another tool.
func (p *ResumeProfile) EnsureLists() {
	for _, l := range []*[]string{
		&p.Skills, &p.SoftSkills, &p.JobTitles, &p.Companies, &p.Experience,
		&p.Education, &p.Certifications, &p.Languages, &p.IndustryExperience,
	} {
		if *l == nil {
			*l = []string{}
		}
	}
}
