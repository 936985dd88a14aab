//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// JobPosting is an externally supplied job opening. The core treats it as read-only.
type JobPosting struct {
	ID              string   `json:"id" validate:"required"`
	Title           string   `json:"title" validate:"required,max=200"`
	Company         string   `json:"company,omitempty"`
	Description     string   `json:"description,omitempty"`
	Requirements    []string `json:"requirements,omitempty"`
	Location        string   `json:"location,omitempty"`
	Skills          []string `json:"skills,omitempty" validate:"dive,max=100"`
	ExperienceLevel string   `json:"experience_level,omitempty" validate:"omitempty,oneof=entry mid senior executive"`
}

// Validate validates the JobPosting using the validator.
func (j *JobPosting) Validate() error {
	validate := validator.New()
	return validate.Struct(j)
}

// Level returns the posting's experience tier, defaulting to mid when the
// level is missing or unrecognised.
func (j *JobPosting) Level() ExperienceLevel {
	return ParseExperienceLevel(j.ExperienceLevel)
}

// ExperienceLevel is an ordinal experience tier.
type ExperienceLevel int

const (
	LevelEntry ExperienceLevel = iota
	LevelMid
	LevelSenior
	LevelExecutive
)

var levelNames = [...]string{"entry", "mid", "senior", "executive"}

func (l ExperienceLevel) String() string {
	if l < LevelEntry || l > LevelExecutive {
		return "mid"
	}
	return levelNames[l]
}

// ParseExperienceLevel maps a level name to its tier. Unknown values map to LevelMid.
func ParseExperienceLevel(s string) ExperienceLevel {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range levelNames {
		if s == name {
			return ExperienceLevel(i)
		}
	}
	return LevelMid
}

// Distance returns the absolute ordinal distance between two tiers.
func (l ExperienceLevel) Distance(other ExperienceLevel) int {
	d := int(l) - int(other)
	if d < 0 {
		return -d
	}
	return d
}
