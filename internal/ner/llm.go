package ner

import (
	"context"

	"github.com/tidwall/gjson"

	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/prompts"
)

// maxPromptText bounds the résumé text sent to the model.
const maxPromptText = 12000

// LLMRecognizer asks a Gemini model to list entities as JSON.
type LLMRecognizer struct {
	Client llm.Client
	// Tier defaults to llm.TierLite.
	Tier llm.ModelTier
}

// Recognize implements Recognizer.
func (r *LLMRecognizer) Recognize(ctx context.Context, text string) ([]Entity, error) {
	if r.Client == nil {
		return nil, &RecognizerError{Recognizer: "llm", Message: "no client configured"}
	}
	tier := r.Tier
	if tier == "" {
		tier = llm.TierLite
	}
	if len(text) > maxPromptText {
		text = chunkText(text, maxPromptText)[0]
	}

	tmpl, err := prompts.Get("ner.json", "extract-entities")
	if err != nil {
		return nil, &RecognizerError{Recognizer: "llm", Message: "failed to load prompt", Cause: err}
	}
	prompt := prompts.Format(tmpl, map[string]string{"Text": text})

	reply, err := r.Client.GenerateJSON(ctx, prompt, tier)
	if err != nil {
		return nil, &RecognizerError{Recognizer: "llm", Message: "generation failed", Cause: err}
	}
	return parseLLMEntities(reply)
}

func parseLLMEntities(reply string) ([]Entity, error) {
	if !gjson.Valid(reply) {
		return nil, &RecognizerError{Recognizer: "llm", Message: "reply is not valid JSON"}
	}

	list := gjson.Get(reply, "entities")
	if !list.Exists() {
		// some models return the bare array
		list = gjson.Parse(reply)
	}
	if !list.IsArray() {
		return nil, &RecognizerError{Recognizer: "llm", Message: "reply has no entity list"}
	}

	var entities []Entity
	list.ForEach(func(_, item gjson.Result) bool {
		t, ok := ParseEntityType(item.Get("type").String())
		if !ok {
			return true
		}
		score := 1.0
		if s := item.Get("score"); s.Exists() {
			score = s.Float()
		}
		entities = append(entities, Entity{Type: t, Text: CleanEntityText(item.Get("text").String()), Score: score})
		return true
	})
	return entities, nil
}
