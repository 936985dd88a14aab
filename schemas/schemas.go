// Package schemas embeds the JSON Schemas for the documents the CLI writes.
package schemas

import (
	"embed"
	"fmt"
)

// Schema file names.
const (
	ResumeProfile = "resume_profile.schema.json"
	MatchResult   = "match_result.schema.json"
	MatchResults  = "match_results.schema.json"
	JobPosting    = "job_posting.schema.json"
)

//go:embed *.schema.json
var files embed.FS

// Get returns the content of the named schema.
func Get(name string) (string, error) {
	data, err := files.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("unknown schema %s: %w", name, err)
	}
	return string(data), nil
}
