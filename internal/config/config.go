// Package config loads the optional .textmig.yaml project file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"
)

// FileName is the project config file looked up in the working directory.
const FileName = ".textmig.yaml"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all textmig configuration.
type Config struct {
	Root             string   `yaml:"root"`
	Extension        string   `yaml:"extension"`
	ExcludeFile      string   `yaml:"exclude_file"`
	ExcludePatterns  []string `yaml:"exclude_patterns"`
	RespectGitignore bool     `yaml:"respect_gitignore"`
	LogLimit         int      `yaml:"log_limit"`
	Reports          string   `yaml:"reports"`

	Lambda  LambdaConfig  `yaml:"lambda"`
	Extract ExtractConfig `yaml:"extract"`
}

// LambdaConfig tunes the lambda scope heuristic. Zero values keep the
// built-in defaults.
type LambdaConfig struct {
	LookBehind     int      `yaml:"look_behind"`
	MarkerWindow   int      `yaml:"marker_window"`
	FallbackWindow int      `yaml:"fallback_window"`
	Markers        []string `yaml:"markers,omitempty"`
}

// ExtractConfig configures the extract command. Nil filter lists keep the
// built-in lists; an empty list disables that filter.
type ExtractConfig struct {
	Output          string   `yaml:"output"`
	LanguageTable   string   `yaml:"language_table"`
	TableName       string   `yaml:"table_name"`
	TableDir        string   `yaml:"table_dir,omitempty"`
	TargetColumns   []string `yaml:"target_columns,omitempty"`
	IncludeComments bool     `yaml:"include_comments"`
	CallFilters     []string `yaml:"call_filters,omitempty"`
	MethodFilters   []string `yaml:"method_filters,omitempty"`
	TextFilters     []string `yaml:"text_filters,omitempty"`
	ClassFilters    []string `yaml:"class_filters,omitempty"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Root:        ".",
		Extension:   ".cs",
		ExcludeFile: "Util.cs",
		LogLimit:    1000,
		Reports:     ".textmig-reports",
		Extract: ExtractConfig{
			Output:    "extracted_texts.txt",
			TableName: "language",
		},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()

			return cfg, nil
		}

		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) applyEnvOverrides() {
	if root := os.Getenv("TEXTMIG_ROOT"); root != "" {
		c.Root = root
	}

	if reports := os.Getenv("TEXTMIG_REPORTS"); reports != "" {
		c.Reports = reports
	}
}

// Validate checks values the commands cannot recover from.
func (c *Config) Validate() error {
	if c.Root == "" {
		return fmt.Errorf("%w: root is empty", ErrInvalidConfig)
	}

	if c.LogLimit < 0 {
		return fmt.Errorf("%w: log_limit must not be negative, got %d", ErrInvalidConfig, c.LogLimit)
	}

	if c.Lambda.LookBehind < 0 || c.Lambda.MarkerWindow < 0 || c.Lambda.FallbackWindow < 0 {
		return fmt.Errorf("%w: lambda windows must not be negative", ErrInvalidConfig)
	}

	for _, pattern := range c.ExcludePatterns {
		if _, err := regexp.Compile(pattern); err != nil {
			return fmt.Errorf("%w: exclude pattern %q: %v", ErrInvalidConfig, pattern, err)
		}
	}

	return nil
}
