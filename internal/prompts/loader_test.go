package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_EntityPrompt(t *testing.T) {
	ClearCache()

	prompt, err := Get("ner.json", "extract-entities")
	require.NoError(t, err)
	assert.Contains(t, prompt, "{{.Text}}")
	assert.Contains(t, prompt, `"entities"`)
}

func TestGet_Errors(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		key      string
		contains string
	}{
		{"missing file", "nonexistent.json", "k", "failed to read prompt file"},
		{"missing key", "ner.json", "nonexistent-key", "not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ClearCache()
			_, err := Get(tt.file, tt.key)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestMustGet(t *testing.T) {
	ClearCache()

	assert.Panics(t, func() { MustGet("nonexistent.json", "k") })
	assert.NotPanics(t, func() { _ = MustGet("ner.json", "extract-entities") })
}

func TestFormat(t *testing.T) {
	got := Format("Hello {{.Name}}, welcome to {{.Company}}! {{.Missing}}", map[string]string{
		"Name":    "Alice",
		"Company": "Acme Corp",
	})
	assert.Equal(t, "Hello Alice, welcome to Acme Corp! {{.Missing}}", got)
}

func TestFormat_ValueContainingPlaceholder(t *testing.T) {
	got := Format("{{.A}}", map[string]string{"A": "{{.B}}", "B": "x"})
	assert.Equal(t, "{{.B}}", got)
}

func TestList(t *testing.T) {
	keys, err := List("ner.json")
	require.NoError(t, err)
	assert.Equal(t, []string{"extract-entities"}, keys)
}
