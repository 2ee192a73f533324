// Package config provides configuration management for the conversion commands.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"unicode/utf8"

	"moviedata/internal/normalizer"

	"gopkg.in/yaml.v3"
)

// Built-in defaults, matching the dataset layout the commands were written for.
const (
	DefaultNormalizerInput  = "../src/data/popular_movies.json"
	DefaultNormalizerOutput = "../src/data/clean_movies.json"
	DefaultPosterBaseURL    = normalizer.DefaultPosterBaseURL
	DefaultConverterInput   = "popular_movies.csv"
	DefaultConverterOutput  = "../src/data/popular_movies.json"
	DefaultIndent           = 2
	DefaultPreviewRows      = 10

	// DefaultConfigPath is read when no config file is given and it exists.
	DefaultConfigPath = "configs/moviedata.yaml"
)

// Configuration validation errors.
var (
	ErrMissingNormalizerInput  = errors.New("normalizer.input is required")
	ErrMissingNormalizerOutput = errors.New("normalizer.output is required")
	ErrInvalidPosterBaseURL    = errors.New("normalizer.poster_base_url must be an absolute http(s) URL")
	ErrMissingConverterInput   = errors.New("converter.input is required")
	ErrMissingConverterOutput  = errors.New("converter.output is required")
	ErrInvalidDelimiter        = errors.New("converter.delimiter must be a single character other than a quote or newline")
	ErrInvalidComment          = errors.New("converter.comment must be empty or a single character different from the delimiter")
	ErrInvalidIndent           = errors.New("output.indent must be between 0 and 8")
	ErrInvalidPreviewRows      = errors.New("features.preview_rows must be at least 1")
	ErrInvalidLogLevel         = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Config represents the complete converter configuration.
type Config struct {
	Normalizer NormalizerConfig `yaml:"normalizer"`
	Converter  ConverterConfig  `yaml:"converter"`
	Output     OutputConfig     `yaml:"output"`
	Logging    LoggingConfig    `yaml:"logging"`
	Features   FeaturesConfig   `yaml:"features"`
}

// NormalizerConfig contains the raw JSON to clean JSON settings.
type NormalizerConfig struct {
	Input         string `yaml:"input"`
	Output        string `yaml:"output"`
	PosterBaseURL string `yaml:"poster_base_url"`
	StripMarkup   bool   `yaml:"strip_markup"`
}

// ConverterConfig contains the CSV to JSON settings.
type ConverterConfig struct {
	Input     string `yaml:"input"`
	Output    string `yaml:"output"`
	Delimiter string `yaml:"delimiter"`
	Comment   string `yaml:"comment"`
}

// OutputConfig defines output behavior.
type OutputConfig struct {
	Indent int `yaml:"indent"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// FeaturesConfig contains feature flags.
type FeaturesConfig struct {
	EnableNormalizationPreview bool `yaml:"enable_normalization_preview"`
	PreviewRows                int  `yaml:"preview_rows"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Normalizer: NormalizerConfig{
			Input:         DefaultNormalizerInput,
			Output:        DefaultNormalizerOutput,
			PosterBaseURL: DefaultPosterBaseURL,
		},
		Converter: ConverterConfig{
			Input:     DefaultConverterInput,
			Output:    DefaultConverterOutput,
			Delimiter: ",",
		},
		Output:   OutputConfig{Indent: DefaultIndent},
		Logging:  LoggingConfig{Level: "info"},
		Features: FeaturesConfig{PreviewRows: DefaultPreviewRows},
	}
}

// LoadConfig loads configuration from YAML file on top of the defaults.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Resolve loads the config file at path. An empty path falls back to
// DefaultConfigPath when present, and to DefaultConfig otherwise.
func Resolve(path string) (*Config, error) {
	if path != "" {
		return LoadConfig(path)
	}

	if _, err := os.Stat(DefaultConfigPath); err == nil {
		return LoadConfig(DefaultConfigPath)
	}

	return DefaultConfig(), nil
}

// SaveConfig saves configuration to YAML file.
func (c *Config) SaveConfig(filepath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filepath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Normalizer.Input == "" {
		return ErrMissingNormalizerInput
	}

	if c.Normalizer.Output == "" {
		return ErrMissingNormalizerOutput
	}

	u, err := url.Parse(c.Normalizer.PosterBaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidPosterBaseURL, c.Normalizer.PosterBaseURL)
	}

	if c.Converter.Input == "" {
		return ErrMissingConverterInput
	}

	if c.Converter.Output == "" {
		return ErrMissingConverterOutput
	}

	delim, ok := singleRune(c.Converter.Delimiter)
	if !ok || delim == '"' || delim == '\r' || delim == '\n' {
		return fmt.Errorf("%w: %q", ErrInvalidDelimiter, c.Converter.Delimiter)
	}

	if c.Converter.Comment != "" {
		comment, ok := singleRune(c.Converter.Comment)
		if !ok || comment == delim || comment == '"' || comment == '\r' || comment == '\n' {
			return fmt.Errorf("%w: %q", ErrInvalidComment, c.Converter.Comment)
		}
	}

	if c.Output.Indent < 0 || c.Output.Indent > 8 {
		return ErrInvalidIndent
	}

	if c.Features.PreviewRows < 1 {
		return ErrInvalidPreviewRows
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

// DelimiterRune returns the CSV field delimiter.
func (c *ConverterConfig) DelimiterRune() rune {
	r, _ := singleRune(c.Delimiter)
	return r
}

// CommentRune returns the CSV comment character, or 0 when comments are disabled.
func (c *ConverterConfig) CommentRune() rune {
	r, _ := singleRune(c.Comment)
	return r
}

func singleRune(s string) (rune, bool) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, false
	}

	r, _ := utf8.DecodeRuneInString(s)

	return r, r != utf8.RuneError
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Normalizer: %s -> %s, Converter: %s -> %s, Indent: %d}",
		c.Normalizer.Input,
		c.Normalizer.Output,
		c.Converter.Input,
		c.Converter.Output,
		c.Output.Indent,
	)
}
