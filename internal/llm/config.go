// Package llm wraps the Gemini API behind a small client interface used for
// structured JSON generation.
package llm

// ModelTier selects a model by capability rather than by name.
type ModelTier string

const (
	// TierLite is for short classification and entity extraction calls.
	TierLite ModelTier = "lite"
	// TierStandard is for longer structured output.
	TierStandard ModelTier = "standard"
)

// Config maps tiers to Gemini model names.
type Config struct {
	Models map[ModelTier]string
	// Temperature applies to every request; low values keep JSON output stable.
	Temperature float32
}

// DefaultConfig returns the Gemini models used when nothing is configured.
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
		},
		Temperature: 0.1,
	}
}

// GetModel returns the model for tier, falling back to the standard and then
// the lite model. It returns "" when no model is configured.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	for _, fallback := range []ModelTier{TierStandard, TierLite} {
		if model, ok := c.Models[fallback]; ok {
			return model
		}
	}
	return ""
}

// WithModel returns a copy of c with tier mapped to model.
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	out := &Config{
		Models:      make(map[ModelTier]string, len(c.Models)+1),
		Temperature: c.Temperature,
	}
	for k, v := range c.Models {
		out.Models[k] = v
	}
	out.Models[tier] = model
	return out
}
