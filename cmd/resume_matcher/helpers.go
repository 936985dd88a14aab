package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/ner"
	internalschemas "github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/jonathan/resume-matcher/schemas"
)

func mustBind(key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("binding flag %s: %v", key, err))
	}
}

// loadTaxonomy returns the embedded taxonomy, extended by the configured file.
func loadTaxonomy(c *config.Config) (*skills.Taxonomy, error) {
	tax := skills.Default()
	if c.TaxonomyFile == "" {
		return tax, nil
	}
	custom, err := skills.LoadFile(c.TaxonomyFile)
	if err != nil {
		return nil, err
	}
	return tax.Extend(custom)
}

// newRecognizer builds the configured NER collaborator. The returned close
// function is never nil.
func newRecognizer(ctx context.Context, c *config.Config) (ner.Recognizer, func(), error) {
	noop := func() {}
	switch c.NER.Provider {
	case config.ProviderHuggingFace:
		r, err := ner.NewHuggingFaceRecognizer(c.NER.HuggingFaceAPIKey, c.HuggingFaceOptions()...)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to create HuggingFace recognizer: %w", err)
		}
		return r, noop, nil
	case config.ProviderGemini:
		llmCfg := llm.DefaultConfig()
		if c.Gemini.Model != "" {
			llmCfg = llmCfg.WithModel(llm.TierLite, c.Gemini.Model)
		}
		client, err := llm.NewGeminiClient(ctx, llmCfg, c.Gemini.APIKey)
		if err != nil {
			return nil, noop, err
		}
		return &ner.LLMRecognizer{Client: client}, func() { _ = client.Close() }, nil
	default:
		return nil, noop, nil
	}
}

// readProfile loads a profile written by the extract command.
func readProfile(path string) (types.ResumeProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.ResumeProfile{}, fmt.Errorf("failed to read profile file: %w", err)
	}
	var p types.ResumeProfile
	if err := json.Unmarshal(data, &p); err != nil {
		return types.ResumeProfile{}, fmt.Errorf("failed to parse profile %s: %w", path, err)
	}
	if p.ID == "" {
		return types.ResumeProfile{}, fmt.Errorf("profile %s has no id", path)
	}
	p.EnsureLists()
	return p, nil
}

// writeJSON writes v as indented JSON to path, or to stdout when path is
// empty, then checks it against the named schema. Schema problems are logged,
// not returned.
func writeJSON(path string, stdout io.Writer, value any, schema string) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if path == "" {
		if _, err := fmt.Fprintln(stdout, string(data)); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	checkSchema(schema, data)
	return nil
}

func checkSchema(name string, data []byte) {
	content, err := schemas.Get(name)
	if err != nil {
		log.Warn("could not load output schema", zap.String("schema", name), zap.Error(err))
		return
	}
	err = internalschemas.ValidateJSONString(content, string(data))
	var validationErr *internalschemas.ValidationError
	switch {
	case err == nil:
	case errors.As(err, &validationErr):
		log.Warn("output does not match schema", zap.String("schema", name), zap.String("errors", validationErr.Error()))
	default:
		log.Warn("could not validate output against schema", zap.String("schema", name), zap.Error(err))
	}
}
