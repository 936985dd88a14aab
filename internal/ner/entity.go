// Package ner defines the optional named-entity recognizer used to refine the
// name, location and employer fields of a résumé profile, with HuggingFace and
// Gemini backed implementations.
package ner

import (
	"context"
	"sort"
	"strings"
)

// EntityType is a coarse entity label.
type EntityType string

const (
	Person       EntityType = "PER"
	Location     EntityType = "LOC"
	Organization EntityType = "ORG"
)

// Entity is one recognized span.
type Entity struct {
	Type  EntityType `json:"type"`
	Text  string     `json:"text"`
	Score float64    `json:"score"`
}

// Recognizer finds entities in résumé text.
type Recognizer interface {
	Recognize(ctx context.Context, text string) ([]Entity, error)
}

// RecognizerFunc adapts a function to Recognizer.
type RecognizerFunc func(ctx context.Context, text string) ([]Entity, error)

// Recognize calls f.
func (f RecognizerFunc) Recognize(ctx context.Context, text string) ([]Entity, error) {
	return f(ctx, text)
}

// Thresholds are the minimum confidence for a hint to be used.
type Thresholds struct {
	Person       float64 `mapstructure:"person" validate:"gte=0,lte=1"`
	Location     float64 `mapstructure:"location" validate:"gte=0,lte=1"`
	Organization float64 `mapstructure:"organization" validate:"gte=0,lte=1"`
}

// DefaultThresholds trusts person entities only at high confidence.
func DefaultThresholds() Thresholds {
	return Thresholds{Person: 0.85, Location: 0.7, Organization: 0.7}
}

// Hints are the recognizer results that may override pattern extraction.
type Hints struct {
	Name          string
	Location      string
	Organizations []string
}

// ParseEntityType maps the labels used by common NER models ("B-PER",
// "I-ORG", "PERSON", "GPE") to an EntityType. ok is false for other labels.
func ParseEntityType(label string) (EntityType, bool) {
	l := strings.ToUpper(strings.TrimSpace(label))
	if i := strings.IndexByte(l, '-'); i == 1 {
		l = l[2:]
	}
	switch l {
	case "PER", "PERSON":
		return Person, true
	case "LOC", "LOCATION", "GPE":
		return Location, true
	case "ORG", "ORGANIZATION", "ORGANISATION":
		return Organization, true
	}
	return "", false
}

// CleanEntityText removes word-piece markers and stray punctuation.
func CleanEntityText(s string) string {
	s = strings.ReplaceAll(s, " ##", "")
	s = strings.ReplaceAll(s, "##", "")
	s = strings.Join(strings.Fields(s), " ")
	return strings.Trim(s, " .,;:-|")
}

// BestHints picks the highest-scoring person and location above their
// thresholds, and every distinct organization above its threshold in
// descending score order.
func BestHints(entities []Entity, th Thresholds) Hints {
	sorted := make([]Entity, 0, len(entities))
	for _, e := range entities {
		e.Text = CleanEntityText(e.Text)
		if e.Text != "" {
			sorted = append(sorted, e)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Score > sorted[j].Score })

	var h Hints
	seen := make(map[string]bool)
	for _, e := range sorted {
		switch e.Type {
		case Person:
			// single tokens are usually a first name split off by the tokenizer
			if h.Name == "" && e.Score >= th.Person && len(strings.Fields(e.Text)) >= 2 {
				h.Name = e.Text
			}
		case Location:
			if h.Location == "" && e.Score >= th.Location {
				h.Location = e.Text
			}
		case Organization:
			key := strings.ToLower(e.Text)
			if e.Score >= th.Organization && !seen[key] {
				seen[key] = true
				h.Organizations = append(h.Organizations, e.Text)
			}
		}
	}
	return h
}
