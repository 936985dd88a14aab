// Package config provides configuration loading and validation for the CLI.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/jonathan/resume-matcher/internal/ner"
	"github.com/jonathan/resume-matcher/internal/profile"
)

// App names the default config file and the environment prefix.
const (
	App       = "resume-matcher"
	EnvPrefix = "RESUME_MATCHER"
)

// NER provider names.
const (
	ProviderNone        = "none"
	ProviderHuggingFace = "huggingface"
	ProviderGemini      = "gemini"
)

// Config is the CLI configuration. Values come from, in increasing priority,
// defaults, the config file, environment variables and bound flags.
type Config struct {
	DatabaseURL string `mapstructure:"database_url"`
	// Workers bounds concurrent scoring; 0 uses GOMAXPROCS.
	Workers      int    `mapstructure:"workers" validate:"gte=0,lte=256"`
	TaxonomyFile string `mapstructure:"taxonomy_file"`

	Extraction profile.Options `mapstructure:"extraction"`
	NER        NERConfig       `mapstructure:"ner"`
	Gemini     GeminiConfig    `mapstructure:"gemini"`
}

// NERConfig selects and tunes the optional entity recognizer.
type NERConfig struct {
	Provider          string        `mapstructure:"provider" validate:"oneof=none huggingface gemini"`
	HuggingFaceAPIKey string        `mapstructure:"huggingface_api_key"`
	Model             string        `mapstructure:"model"`
	BaseURL           string        `mapstructure:"base_url" validate:"omitempty,url"`
	Timeout           time.Duration `mapstructure:"timeout" validate:"gte=0"`
	ChunkSize         int           `mapstructure:"chunk_size" validate:"gte=0"`
}

// GeminiConfig holds the Gemini credentials and model override.
type GeminiConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

// SetDefaults registers every key with its default so that environment
// variables are picked up by Unmarshal.
func SetDefaults(v *viper.Viper) {
	opts := profile.DefaultOptions()

	v.SetDefault("database_url", "")
	v.SetDefault("workers", 0)
	v.SetDefault("taxonomy_file", "")
	v.SetDefault("extraction.min_text_length", opts.MinTextLength)
	v.SetDefault("extraction.always_enhance_summary", opts.AlwaysEnhanceSummary)
	v.SetDefault("extraction.ner_thresholds.person", opts.Thresholds.Person)
	v.SetDefault("extraction.ner_thresholds.location", opts.Thresholds.Location)
	v.SetDefault("extraction.ner_thresholds.organization", opts.Thresholds.Organization)
	v.SetDefault("ner.provider", ProviderNone)
	v.SetDefault("ner.huggingface_api_key", "")
	v.SetDefault("ner.model", "")
	v.SetDefault("ner.base_url", "")
	v.SetDefault("ner.timeout", 30*time.Second)
	v.SetDefault("ner.chunk_size", 0)
	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.model", "")
}

// Load reads configuration into v and returns it validated. When path is
// empty, resume-matcher.yaml in the working directory is used if present.
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range map[string]string{
		"database_url":            "DATABASE_URL",
		"gemini.api_key":          "GEMINI_API_KEY",
		"ner.huggingface_api_key": "HUGGINGFACE_API_KEY",
	} {
		if err := v.BindEnv(key, EnvPrefix+"_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(App)
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.NER.Provider = strings.ToLower(strings.TrimSpace(cfg.NER.Provider))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field ranges and that the selected recognizer has credentials.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	switch c.NER.Provider {
	case ProviderHuggingFace:
		if c.NER.HuggingFaceAPIKey == "" {
			return fmt.Errorf("config error: ner provider %q needs HUGGINGFACE_API_KEY", c.NER.Provider)
		}
	case ProviderGemini:
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("config error: ner provider %q needs GEMINI_API_KEY", c.NER.Provider)
		}
	}
	return nil
}

// HuggingFaceOptions converts the NER settings to recognizer options.
func (c *Config) HuggingFaceOptions() []ner.HuggingFaceOption {
	var opts []ner.HuggingFaceOption
	if c.NER.BaseURL != "" {
		opts = append(opts, ner.WithBaseURL(c.NER.BaseURL))
	}
	if c.NER.Model != "" {
		opts = append(opts, ner.WithModel(c.NER.Model))
	}
	if c.NER.Timeout > 0 {
		opts = append(opts, ner.WithTimeout(c.NER.Timeout))
	}
	if c.NER.ChunkSize > 0 {
		opts = append(opts, ner.WithChunkSize(c.NER.ChunkSize))
	}
	return opts
}
