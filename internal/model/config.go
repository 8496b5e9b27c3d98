package model

import (
	"time"

	"github.com/spf13/viper"
)

// Config is the complete loanlens configuration
type Config struct {
	Extraction  ExtractionConfig  `yaml:"extraction" mapstructure:"extraction"`
	LLM         LLMConfig         `yaml:"llm" mapstructure:"llm"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Conflict    ConflictConfig    `yaml:"conflict" mapstructure:"conflict"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
}

// ExtractionConfig controls the extraction pipeline
type ExtractionConfig struct {
	// Mode selects the pipeline: "rule" (rules only) or "smart"
	// (rules first, then one targeted collaborator call for gaps).
	Mode string `yaml:"mode" mapstructure:"mode"`
	// CatalogOverlay is an optional YAML file that adds or replaces
	// pattern rules per canonical key.
	CatalogOverlay string `yaml:"catalog_overlay" mapstructure:"catalog_overlay"`
}

// LLMConfig configures the external gap-filling collaborator
type LLMConfig struct {
	Provider          string `yaml:"provider" mapstructure:"provider"` // openai, ollama, "" (disabled)
	Model             string `yaml:"model" mapstructure:"model"`
	APIKey            string `yaml:"api_key" mapstructure:"api_key"`
	BaseURL           string `yaml:"base_url" mapstructure:"base_url"`
	Timeout           int    `yaml:"timeout" mapstructure:"timeout"` // seconds
	MaxTokens         int    `yaml:"max_tokens" mapstructure:"max_tokens"`
	RequestsPerMinute int    `yaml:"requests_per_minute" mapstructure:"requests_per_minute"`
	HTTPProxy         string `yaml:"http_proxy" mapstructure:"http_proxy"`
	HTTPSProxy        string `yaml:"https_proxy" mapstructure:"https_proxy"`
	NoProxy           string `yaml:"no_proxy" mapstructure:"no_proxy"`
}

// CacheConfig configures caching of collaborator responses
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir     string        `yaml:"dir" mapstructure:"dir"` // disk tier location ("" = memory only)
	TTL     time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

// ConflictConfig tunes conflict detection heuristics
type ConflictConfig struct {
	// MinOverlapRatio marks two full ranges contradictory when their
	// overlap is smaller than this fraction of their average size.
	MinOverlapRatio float64 `yaml:"min_overlap_ratio" mapstructure:"min_overlap_ratio"`
}

// ConcurrencyConfig controls batch processing
type ConcurrencyConfig struct {
	BatchWorkers int `yaml:"batch_workers" mapstructure:"batch_workers"`
}

// OutputConfig controls rendering
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" mapstructure:"verbose"`
	IncludeFooter bool `yaml:"include_footer" mapstructure:"include_footer"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Extraction: ExtractionConfig{
			Mode: "smart",
		},
		LLM: LLMConfig{
			Provider:          "", // disabled by default
			Timeout:           30,
			MaxTokens:         1500,
			RequestsPerMinute: 2, // free-tier friendly
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     24 * time.Hour,
		},
		Conflict: ConflictConfig{
			MinOverlapRatio: 0.3,
		},
		Concurrency: ConcurrencyConfig{
			BatchWorkers: 4,
		},
		Output: OutputConfig{
			IncludeFooter: true,
		},
	}
}

// LoadConfig merges viper-managed sources (config file, LOANLENS_* env vars)
// over the defaults. CLI flags are applied by the commands afterwards.
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
