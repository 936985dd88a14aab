package ingestion

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/jonathan/resume-matcher/internal/types"
)

// jobNamespace derives ids for postings that arrive without one.
var jobNamespace = uuid.MustParse("7d4c2a91-5e3b-4f60-8a1d-2c9e0b6f3a58")

var htmlTag = regexp.MustCompile(`<[a-zA-Z][a-zA-Z0-9]*(\s[^>]*)?/?>`)

// LoadOptions tune job posting decoding.
type LoadOptions struct {
	// Taxonomy, when set, rewrites listed skills to their canonical names and
	// fills in skills for postings that list none by scanning their title,
	// description and requirements.
	Taxonomy *skills.Taxonomy
}

// JobsResult holds the postings that decoded and validated, and those that did not.
type JobsResult struct {
	Jobs    []types.JobPosting
	Skipped []types.SkippedJob
}

// LoadJobPostingsFile reads a job postings file.
func LoadJobPostingsFile(path string, opts LoadOptions) (JobsResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return JobsResult{}, &LoadError{Source: path, Message: "failed to open job postings", Cause: err}
	}
	defer func() { _ = f.Close() }()

	res, err := LoadJobPostings(f, opts)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Source = path
		}
		return JobsResult{}, err
	}
	return res, nil
}

// LoadJobPostings decodes postings from r. See ParseJobPostings.
func LoadJobPostings(r io.Reader, opts LoadOptions) (JobsResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return JobsResult{}, &LoadError{Message: "failed to read job postings", Cause: err}
	}
	return ParseJobPostings(data, opts)
}

// ParseJobPostings accepts a JSON array of postings, an object with a "jobs"
// array, or a single posting object. Field names may be snake_case or
// camelCase. Postings that fail validation are reported in Skipped rather
// than failing the whole load.
func ParseJobPostings(data []byte, opts LoadOptions) (JobsResult, error) {
	if !gjson.ValidBytes(data) {
		return JobsResult{}, &LoadError{Message: "job postings are not valid JSON"}
	}

	root := gjson.ParseBytes(data)
	var items []gjson.Result
	switch {
	case root.IsArray():
		items = root.Array()
	case root.IsObject() && root.Get("jobs").IsArray():
		items = root.Get("jobs").Array()
	case root.IsObject() && root.Get("title").Exists():
		items = []gjson.Result{root}
	default:
		return JobsResult{}, &LoadError{Message: `expected an array of postings or an object with a "jobs" array`}
	}

	res := JobsResult{Jobs: []types.JobPosting{}}
	for i, item := range items {
		ref := fmt.Sprintf("#%d", i)
		if !item.IsObject() {
			res.Skipped = append(res.Skipped, types.SkippedJob{JobID: ref, Reason: "posting is not an object"})
			continue
		}

		job, hasID := decodePosting(item)
		if hasID {
			ref = job.ID
		}
		if err := job.Validate(); err != nil {
			res.Skipped = append(res.Skipped, types.SkippedJob{JobID: ref, Reason: validationReason(err)})
			continue
		}
		if opts.Taxonomy != nil {
			if len(job.Skills) == 0 {
				text := strings.Join(append([]string{job.Title, job.Description}, job.Requirements...), "\n")
				job.Skills = skills.Names(opts.Taxonomy.Find(text))
			} else {
				job.Skills = canonicalSkills(opts.Taxonomy, job.Skills)
			}
		}
		res.Jobs = append(res.Jobs, job)
	}
	return res, nil
}

// decodePosting reads one posting. hasID reports whether the id came from the
// input rather than being derived.
func decodePosting(item gjson.Result) (job types.JobPosting, hasID bool) {
	job = types.JobPosting{
		ID:              firstString(item, "id", "job_id", "jobId"),
		Title:           CleanText(firstString(item, "title", "job_title", "jobTitle")),
		Company:         firstString(item, "company.name", "company", "company_name", "companyName"),
		Description:     flattenHTML(firstString(item, "description", "job_description", "jobDescription")),
		Requirements:    stringList(item.Get("requirements"), "\n"),
		Location:        decodeLocation(item.Get("location")),
		Skills:          stringList(firstExisting(item, "skills", "required_skills", "requiredSkills"), ","),
		ExperienceLevel: NormalizeExperienceLevel(firstString(item, "experience_level", "experienceLevel", "level", "seniority")),
	}

	if job.ID != "" {
		return job, true
	}
	key := strings.ToLower(strings.Join([]string{job.Title, job.Company, job.Location}, "|"))
	job.ID = uuid.NewSHA1(jobNamespace, []byte(key)).String()
	return job, false
}

func firstExisting(item gjson.Result, paths ...string) gjson.Result {
	for _, p := range paths {
		if v := item.Get(p); v.Exists() && v.Type != gjson.Null {
			return v
		}
	}
	return gjson.Result{}
}

func firstString(item gjson.Result, paths ...string) string {
	for _, p := range paths {
		v := item.Get(p)
		if v.IsObject() || v.IsArray() {
			continue
		}
		if s := strings.TrimSpace(v.String()); s != "" {
			return s
		}
	}
	return ""
}

// stringList reads an array of strings, or a single string split on sep.
// Bullet markers are stripped and blanks dropped.
func stringList(v gjson.Result, sep string) []string {
	var raw []string
	switch {
	case v.IsArray():
		for _, e := range v.Array() {
			raw = append(raw, e.String())
		}
	case v.Type == gjson.String:
		raw = strings.Split(flattenHTML(v.String()), sep)
	}

	out := []string{}
	for _, s := range raw {
		s = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(s), "-*•·"))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// canonicalSkills maps each listed skill to its canonical spelling and drops
// case-insensitive duplicates, keeping first-seen order.
func canonicalSkills(tax *skills.Taxonomy, listed []string) []string {
	seen := make(map[string]bool, len(listed))
	out := make([]string, 0, len(listed))
	for _, s := range listed {
		name := tax.NormalizeSkillName(s)
		k := strings.ToLower(name)
		if name == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, name)
	}
	return out
}

// decodeLocation accepts a string or an object with city, region/state and
// country fields.
func decodeLocation(v gjson.Result) string {
	if !v.IsObject() {
		return strings.TrimSpace(v.String())
	}
	var parts []string
	for _, p := range []string{"city", "region", "state", "country"} {
		if s := strings.TrimSpace(v.Get(p).String()); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}

// flattenHTML converts an HTML fragment to plain text, one block element per
// line. Text without markup is only cleaned.
func flattenHTML(s string) string {
	if !htmlTag.MatchString(s) {
		return CleanText(s)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return CleanText(htmlTag.ReplaceAllString(s, " "))
	}

	doc.Find("script, style, noscript").Remove()
	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find("li").PrependHtml("- ")
	doc.Find("p, div, li, h1, h2, h3, h4, h5, h6, tr, ul, ol").AppendHtml("\n")
	return CleanText(doc.Text())
}

// NormalizeExperienceLevel maps free-text seniority to one of entry, mid,
// senior or executive, or "" when it cannot be read.
func NormalizeExperienceLevel(s string) string {
	words := make(map[string]bool)
	for _, w := range strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !(r >= 'a' && r <= 'z')
	}) {
		words[w] = true
	}
	has := func(cues ...string) bool {
		for _, c := range cues {
			if words[c] {
				return true
			}
		}
		return false
	}

	switch {
	case has("executive", "director", "vp", "chief", "head", "cxo"):
		return "executive"
	case has("senior", "sr", "lead", "staff", "principal", "expert"):
		return "senior"
	case has("entry", "junior", "jr", "intern", "internship", "graduate", "trainee", "associate"):
		return "entry"
	case has("mid", "intermediate", "middle"):
		return "mid"
	}
	return ""
}

func validationReason(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, len(verrs))
	for i, fe := range verrs {
		msgs[i] = fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag())
	}
	return "invalid posting: " + strings.Join(msgs, "; ")
}
