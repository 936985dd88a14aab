package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jonathan/resume-matcher/internal/types"
)

// execute runs the CLI in-process with every flag reset to its default.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	for _, k := range []string{"DATABASE_URL", "GEMINI_API_KEY", "HUGGINGFACE_API_KEY", "RESUME_MATCHER_NER_PROVIDER"} {
		t.Setenv(k, "")
	}
	resetFlags(rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func TestExtract(t *testing.T) {
	out := filepath.Join(t.TempDir(), "profile.json")

	_, stderr, err := execute(t, "extract", "--resume", "testdata/resume.txt", "--out", out, "--verbose")
	require.NoError(t, err)
	assert.Contains(t, stderr, "EXTRACTED PROFILE")
	assert.Contains(t, stderr, "Output: "+out)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var p types.ResumeProfile
	require.NoError(t, json.Unmarshal(data, &p))

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "Jane Doe", p.Name)
	assert.Equal(t, "jane.doe@gmail.com", p.Email)
	assert.Contains(t, p.Skills, "Python")
	assert.Contains(t, p.Skills, "SQL")
	assert.NotEmpty(t, p.GeneratedSummary)
	assert.NotNil(t, p.Certifications)
}

func TestExtract_SameTextSameProfile(t *testing.T) {
	first, _, err := execute(t, "extract", "--resume", "testdata/resume.txt")
	require.NoError(t, err)
	second, _, err := execute(t, "extract", "--resume", "testdata/resume.txt")
	require.NoError(t, err)
	assert.JSONEq(t, first, second)
}

func TestExtract_Errors(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		errorString string
	}{
		{name: "missing resume flag", args: []string{"extract"}, errorString: "required flag"},
		{name: "missing file", args: []string{"extract", "--resume", "testdata/none.txt"}, errorString: "file not found"},
		{name: "unknown recognizer", args: []string{"extract", "--resume", "testdata/resume.txt", "--ner", "spacy"}, errorString: "Provider"},
		{name: "recognizer without key", args: []string{"extract", "--resume", "testdata/resume.txt", "--ner", "gemini"}, errorString: "GEMINI_API_KEY"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorString)
		})
	}
}

func TestScore(t *testing.T) {
	stdout, _, err := execute(t, "score", "--profile", "testdata/profile.json", "--job", "testdata/job.json")
	require.NoError(t, err)

	var r types.MatchResult
	require.NoError(t, json.Unmarshal([]byte(stdout), &r))
	assert.Equal(t, "j1", r.JobID)
	assert.Equal(t, 88, r.MatchScore)
	assert.Equal(t, []string{"Python", "SQL"}, r.SkillsMatch.Matched)
	assert.Equal(t, []string{"Docker"}, r.SkillsMatch.Missing)
}

func TestScore_ManyPostings(t *testing.T) {
	_, _, err := execute(t, "score", "--profile", "testdata/profile.json", "--job", "testdata/jobs.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "use the match command")
}

func TestMatch(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "matches.json")
	report := filepath.Join(dir, "report")

	_, stderr, err := execute(t, "match", "--profile", "testdata/profile.json", "--jobs", "testdata/jobs.json",
		"--out", out, "--xlsx", report, "--workers", "2", "-v")
	require.NoError(t, err)
	assert.Contains(t, stderr, "TOP MATCHES")
	assert.Contains(t, stderr, "SKIPPED POSTINGS (1)")
	assert.Contains(t, stderr, "Report: "+report+".xlsx")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var doc types.MatchResults
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, "4f5c2a8e-1d3b-5e6f-9a0b-7c8d9e0f1a2b", doc.ProfileID)
	require.Len(t, doc.Results, 2)
	assert.Equal(t, "j1", doc.Results[0].JobID)
	assert.Equal(t, 88, doc.Results[0].MatchScore)
	assert.Equal(t, "j2", doc.Results[1].JobID)
	assert.Less(t, doc.Results[1].MatchScore, doc.Results[0].MatchScore)
	require.Len(t, doc.Skipped, 1)
	assert.Equal(t, "j4", doc.Skipped[0].JobID)

	f, err := excelize.OpenFile(report + ".xlsx")
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	v, err := f.GetCellValue("Ranked Matches", "B2")
	require.NoError(t, err)
	assert.Equal(t, "j1", v)
}

func TestMatch_StdoutIsStableAcrossRuns(t *testing.T) {
	first, _, err := execute(t, "match", "--profile", "testdata/profile.json", "--jobs", "testdata/jobs.json")
	require.NoError(t, err)
	second, _, err := execute(t, "match", "--profile", "testdata/profile.json", "--jobs", "testdata/jobs.json", "--refresh")
	require.NoError(t, err)
	assert.JSONEq(t, first, second)
}

func TestMatch_Errors(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		errorString string
	}{
		{name: "missing jobs flag", args: []string{"match", "--profile", "testdata/profile.json"}, errorString: "required flag"},
		{name: "profile is not json", args: []string{"match", "--profile", "testdata/resume.txt", "--jobs", "testdata/jobs.json"}, errorString: "failed to parse profile"},
		{name: "jobs file missing", args: []string{"match", "--profile", "testdata/profile.json", "--jobs", "testdata/none.json"}, errorString: "failed to open job postings"},
		{name: "negative workers", args: []string{"match", "--profile", "testdata/profile.json", "--jobs", "testdata/jobs.json", "--workers", "-1"}, errorString: "Workers"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorString)
		})
	}
}

func TestTaxonomy(t *testing.T) {
	stdout, _, err := execute(t, "taxonomy")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Version:")
	assert.Contains(t, stdout, "Skills:")
}

func TestTaxonomy_CustomFileAndCategory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"version": "custom-1",
		"technical": [{"name": "Business Intelligence", "aliases": ["BI"], "category": "data"}]
	}`), 0o600))

	stdout, _, err := execute(t, "taxonomy", "--file", path, "--category", "data")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Taxonomy valid: "+path)
	assert.Contains(t, stdout, "Business Intelligence\tBI")

	_, _, err = execute(t, "taxonomy", "--category", "no-such-category")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown category")
}

func TestTaxonomy_SkillLookup(t *testing.T) {
	stdout, _, err := execute(t, "taxonomy", "--skill", "js")
	require.NoError(t, err)
	assert.Equal(t, "JavaScript\tprogramming\tJS, ECMAScript, ES6\n", stdout)

	_, _, err = execute(t, "taxonomy", "--skill", "no-such-skill")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown skill")
}

func TestValidate(t *testing.T) {
	stdout, _, err := execute(t, "validate", "--schema", "match_result.schema.json", "--json", "testdata/job.json")
	require.Error(t, err)
	assert.Contains(t, stdout, "Validation failed")

	stdout, _, err = execute(t, "validate", "--schema", "job_posting.schema.json", "--json", "testdata/job.json")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Validation passed")

	_, _, err = execute(t, "validate", "--schema", "nope.schema.json", "--json", "testdata/job.json")
	require.Error(t, err)
}
