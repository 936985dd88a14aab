package ner

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

const (
	defaultHuggingFaceURL   = "https://api-inference.huggingface.co"
	defaultHuggingFaceModel = "dslim/bert-base-NER"
	defaultChunkSize        = 1500
)

// HuggingFaceRecognizer calls a token-classification model on the HuggingFace
// inference API. Long texts are sent in chunks and the results concatenated.
type HuggingFaceRecognizer struct {
	client    *resty.Client
	model     string
	chunkSize int
}

// HuggingFaceOption configures a HuggingFaceRecognizer.
type HuggingFaceOption func(*HuggingFaceRecognizer)

// WithBaseURL points the recognizer at another inference endpoint.
func WithBaseURL(url string) HuggingFaceOption {
	return func(r *HuggingFaceRecognizer) { r.client.SetBaseURL(url) }
}

// WithModel selects the model repository id.
func WithModel(model string) HuggingFaceOption {
	return func(r *HuggingFaceRecognizer) {
		if model != "" {
			r.model = model
		}
	}
}

// WithTimeout bounds each request.
func WithTimeout(d time.Duration) HuggingFaceOption {
	return func(r *HuggingFaceRecognizer) { r.client.SetTimeout(d) }
}

// WithChunkSize sets the maximum bytes per request.
func WithChunkSize(n int) HuggingFaceOption {
	return func(r *HuggingFaceRecognizer) {
		if n > 0 {
			r.chunkSize = n
		}
	}
}

// NewHuggingFaceRecognizer returns a recognizer authenticated with apiKey.
func NewHuggingFaceRecognizer(apiKey string, opts ...HuggingFaceOption) (*HuggingFaceRecognizer, error) {
	if apiKey == "" {
		return nil, &RecognizerError{Recognizer: "huggingface", Message: "API key is required"}
	}

	r := &HuggingFaceRecognizer{
		client: resty.New().
			SetBaseURL(defaultHuggingFaceURL).
			SetAuthToken(apiKey).
			SetHeader("Content-Type", "application/json").
			SetTimeout(30 * time.Second),
		model:     defaultHuggingFaceModel,
		chunkSize: defaultChunkSize,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Recognize implements Recognizer.
func (r *HuggingFaceRecognizer) Recognize(ctx context.Context, text string) ([]Entity, error) {
	var entities []Entity
	for _, chunk := range chunkText(text, r.chunkSize) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		found, err := r.recognizeChunk(ctx, chunk)
		if err != nil {
			return nil, err
		}
		entities = append(entities, found...)
	}
	return entities, nil
}

func (r *HuggingFaceRecognizer) recognizeChunk(ctx context.Context, chunk string) ([]Entity, error) {
	resp, err := r.client.R().
		SetContext(ctx).
		SetBody(map[string]any{
			"inputs":     chunk,
			"parameters": map[string]string{"aggregation_strategy": "simple"},
		}).
		Post("/models/" + r.model)
	if err != nil {
		return nil, &RecognizerError{Recognizer: "huggingface", Message: "request failed", Cause: err}
	}

	body := resp.String()
	if resp.IsError() {
		msg := gjson.Get(body, "error").String()
		if msg == "" {
			msg = "unexpected response"
		}
		return nil, &RecognizerError{Recognizer: "huggingface", StatusCode: resp.StatusCode(), Message: msg}
	}
	if !gjson.Valid(body) {
		return nil, &RecognizerError{Recognizer: "huggingface", Message: "response is not valid JSON"}
	}

	return parseTokenClassification(gjson.Parse(body))
}

// parseTokenClassification reads both the aggregated ("entity_group") and the
// raw per-token ("entity": "B-PER") reply shapes. Raw tokens are merged into
// spans: a B- tag or a type change starts a new span and "##" pieces join the
// previous word.
func parseTokenClassification(res gjson.Result) ([]Entity, error) {
	if !res.IsArray() {
		return nil, &RecognizerError{Recognizer: "huggingface", Message: fmt.Sprintf("expected array, got %s", res.Type)}
	}

	var (
		entities []Entity
		current  *Entity
		pieces   int
	)
	flush := func() {
		if current != nil {
			current.Score /= float64(pieces)
			current.Text = CleanEntityText(current.Text)
			entities = append(entities, *current)
			current, pieces = nil, 0
		}
	}

	res.ForEach(func(_, item gjson.Result) bool {
		if group := item.Get("entity_group"); group.Exists() {
			flush()
			if t, ok := ParseEntityType(group.String()); ok {
				entities = append(entities, Entity{
					Type:  t,
					Text:  CleanEntityText(item.Get("word").String()),
					Score: item.Get("score").Float(),
				})
			}
			return true
		}

		label := item.Get("entity").String()
		t, ok := ParseEntityType(label)
		if !ok {
			flush()
			return true
		}
		word := item.Get("word").String()
		startsSpan := len(label) > 1 && label[:2] == "B-"
		if current == nil || current.Type != t || (startsSpan && !isWordPiece(word)) {
			flush()
			current = &Entity{Type: t}
		}
		if isWordPiece(word) || current.Text == "" {
			current.Text += word
		} else {
			current.Text += " " + word
		}
		current.Score += item.Get("score").Float()
		pieces++
		return true
	})
	flush()
	return entities, nil
}

func isWordPiece(word string) bool {
	return len(word) > 2 && word[:2] == "##"
}
