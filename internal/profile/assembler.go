// Package profile assembles a ResumeProfile from raw résumé text by running
// the field extractors concurrently and merging their output.
package profile

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/extraction"
	"github.com/jonathan/resume-matcher/internal/logger"
	"github.com/jonathan/resume-matcher/internal/ner"
	"github.com/jonathan/resume-matcher/internal/parsing"
	"github.com/jonathan/resume-matcher/internal/types"
)

// profileNamespace derives content-addressed profile ids.
var profileNamespace = uuid.MustParse("0b9c5f4e-3d0a-4c8e-9f57-6a2d1e8b7c40")

// Options tune assembly.
type Options struct {
	// MinTextLength is the shortest normalized text worth extracting from.
	MinTextLength int `mapstructure:"min_text_length" validate:"gte=0"`
	// AlwaysEnhanceSummary synthesizes generated_summary even when the
	// résumé has its own summary.
	AlwaysEnhanceSummary bool           `mapstructure:"always_enhance_summary"`
	Thresholds           ner.Thresholds `mapstructure:"ner_thresholds"`
}

// DefaultOptions returns the standard assembly options.
func DefaultOptions() Options {
	return Options{
		MinTextLength:        50,
		AlwaysEnhanceSummary: true,
		Thresholds:           ner.DefaultThresholds(),
	}
}

// Assembler builds profiles. The zero value is not usable; use NewAssembler.
type Assembler struct {
	Extractors extraction.Set
	// Recognizer is optional. Its hints override the pattern-based name and
	// location and contribute organizations.
	Recognizer ner.Recognizer
	Logger     *zap.Logger
	Options    Options
}

// NewAssembler returns an assembler with default options and no recognizer.
func NewAssembler(set extraction.Set, log *zap.Logger) *Assembler {
	return &Assembler{
		Extractors: set,
		Logger:     logger.OrNop(log),
		Options:    DefaultOptions(),
	}
}

// ProfileID returns the id of the profile built from normalized text. The
// same text always yields the same id.
func ProfileID(normalized string) string {
	return uuid.NewSHA1(profileNamespace, []byte(normalized)).String()
}

// fields collects extractor output before the merge.
type fields struct {
	identity    extraction.Identity
	history     extraction.History
	skills      extraction.SkillSet
	credentials extraction.Credentials
	summary     string
	industry    string
	experience  []string
	hints       ner.Hints
}

// Assemble extracts a profile from raw text. It never fails: extractor panics
// and recognizer errors are logged and the affected fields left empty.
func (a *Assembler) Assemble(ctx context.Context, raw string) types.ResumeProfile {
	log := logger.OrNop(a.Logger)
	text := parsing.Normalize(raw)
	p := types.NewResumeProfile(ProfileID(text))
	log = log.With(zap.String(logger.FieldProfileID, p.ID))

	if utf8.RuneCountInString(text) < a.Options.MinTextLength {
		log.Debug("text too short for extraction", zap.Int("length", utf8.RuneCountInString(text)))
		p.GeneratedSummary = SynthesizeSummary(p)
		return p
	}

	var f fields
	var g errgroup.Group
	runExtractor(&g, log, "identity", a.Extractors.Identity, text, &f.identity)
	runExtractor(&g, log, "history", a.Extractors.History, text, &f.history)
	runExtractor(&g, log, "skills", a.Extractors.Skills, text, &f.skills)
	runExtractor(&g, log, "credentials", a.Extractors.Credentials, text, &f.credentials)
	runExtractor(&g, log, "summary", a.Extractors.Summary, text, &f.summary)
	runExtractor(&g, log, "industry", a.Extractors.Industry, text, &f.industry)
	runExtractor(&g, log, "experience", a.Extractors.Experience, text, &f.experience)
	if a.Recognizer != nil {
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					log.Warn("entity recognizer panicked", zap.Any("panic", r))
				}
			}()
			entities, err := a.Recognizer.Recognize(ctx, text)
			if err != nil {
				log.Warn("entity recognition failed", zap.Error(err))
				return nil
			}
			f.hints = ner.BestHints(entities, a.Options.Thresholds)
			return nil
		})
	}
	_ = g.Wait()

	merge(&p, f)
	p.GeneratedSummary = a.generatedSummary(p)

	log.Debug("profile assembled",
		zap.Int("skills", len(p.Skills)),
		zap.Int("job_titles", len(p.JobTitles)),
		zap.Int("years_of_experience", p.YearsOfExperience),
		zap.Bool("ner_hints", f.hints.Name != "" || f.hints.Location != "" || len(f.hints.Organizations) > 0),
	)
	return p
}

// runExtractor runs e in g and stores its result in dst. A nil extractor
// leaves dst at its zero value; a panic is logged.
func runExtractor[T any](g *errgroup.Group, log *zap.Logger, name string, e extraction.Extractor[T], text string, dst *T) {
	if e == nil {
		return
	}
	g.Go(func() error {
		out, err := extraction.Run(e, text)
		if err != nil {
			log.Error("extractor failed", zap.String(logger.FieldExtractor, name), zap.Error(err))
		}
		*dst = out
		return nil
	})
}

func merge(p *types.ResumeProfile, f fields) {
	p.Name = firstNonEmpty(f.hints.Name, f.identity.Name)
	p.Location = firstNonEmpty(f.hints.Location, f.identity.Location)
	p.Email = f.identity.Email
	p.Phone = f.identity.Phone
	p.LinkedInURL = f.identity.LinkedInURL
	p.GitHubURL = f.identity.GitHubURL
	p.PortfolioURL = f.identity.PortfolioURL

	p.Skills = capUnique(f.skills.Technical, types.MaxSkills)
	p.SoftSkills = capUnique(f.skills.Soft, types.MaxSoftSkills)
	p.JobTitles = capUnique(f.history.JobTitles, types.MaxJobTitles)
	p.Companies = capUnique(append(append([]string{}, f.hints.Organizations...), f.history.Companies...), types.MaxCompanies)
	p.Experience = capUnique(f.experience, types.MaxExperience)
	p.Education = capUnique(f.credentials.Education, types.MaxEducation)
	p.Certifications = capUnique(f.credentials.Certifications, types.MaxCertifications)
	p.Languages = capUnique(f.credentials.Languages, types.MaxLanguages)
	p.IndustryExperience = capUnique([]string{f.industry}, types.MaxIndustries)

	if len(p.JobTitles) > 0 {
		p.CurrentJobTitle = p.JobTitles[0]
	}
	if f.history.YearsOfExperience > 0 {
		p.YearsOfExperience = f.history.YearsOfExperience
	}
	p.Summary = f.summary
}

func (a *Assembler) generatedSummary(p types.ResumeProfile) string {
	if p.Summary != "" && !a.Options.AlwaysEnhanceSummary {
		return p.Summary
	}
	return SynthesizeSummary(p)
}

// capUnique trims, drops empty and case-insensitive duplicate entries, and
// keeps at most max. The result is never nil.
func capUnique(list []string, max int) []string {
	out := make([]string, 0, min(len(list), max))
	seen := make(map[string]bool, len(list))
	for _, s := range list {
		s = strings.TrimSpace(s)
		key := strings.ToLower(s)
		if s == "" || seen[key] {
			continue
		}
		if len(out) == max {
			break
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
