package model

import "time"

// Config holds the complete newscrew configuration
type Config struct {
	HTTP        HTTPConfig        `yaml:"http" json:"http"`
	LLM         LLMConfig         `yaml:"llm" json:"llm"`
	Sources     SourcesConfig     `yaml:"sources" json:"sources"`
	Cache       CacheConfig       `yaml:"cache" json:"cache"`
	Output      OutputConfig      `yaml:"output" json:"output"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" json:"concurrency"`
}

// HTTPConfig controls outbound HTTP behavior for source fetching
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout" json:"timeout"`
	UserAgent    string        `yaml:"user_agent" json:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" json:"max_body_bytes"`
	HTTPProxy    string        `yaml:"http_proxy,omitempty" json:"http_proxy,omitempty"`
	HTTPSProxy   string        `yaml:"https_proxy,omitempty" json:"https_proxy,omitempty"`
	NoProxy      string        `yaml:"no_proxy,omitempty" json:"no_proxy,omitempty"`
}

// LLMConfig configures the LLM provider backing the crew agents
type LLMConfig struct {
	Provider  string `yaml:"provider" json:"provider"` // openai, anthropic, ollama
	Model     string `yaml:"model" json:"model"`
	APIKey    string `yaml:"-" json:"-"` // Never serialized; comes from env
	BaseURL   string `yaml:"base_url,omitempty" json:"base_url,omitempty"`
	Timeout   int    `yaml:"timeout" json:"timeout"` // seconds
	MaxTokens int    `yaml:"max_tokens" json:"max_tokens"`
}

// SourcesConfig configures optional source grounding for the researcher agent
type SourcesConfig struct {
	URLs              []string `yaml:"urls,omitempty" json:"urls,omitempty"`
	RequestsPerSecond float64  `yaml:"requests_per_second" json:"requests_per_second"`
	Burst             int      `yaml:"burst" json:"burst"`
	RespectRobots     bool     `yaml:"respect_robots" json:"respect_robots"`
	MaxExcerptBytes   int      `yaml:"max_excerpt_bytes" json:"max_excerpt_bytes"`
}

// CacheConfig controls report caching
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" json:"enabled"`
	Dir     string        `yaml:"dir" json:"dir"`
	TTL     time.Duration `yaml:"ttl" json:"ttl"`
}

// OutputConfig controls report output behavior
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" json:"verbose"`
	IncludeFooter bool `yaml:"include_footer" json:"include_footer"`
}

// ConcurrencyConfig controls worker counts for batch processing
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" json:"workers"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:      30 * time.Second,
			UserAgent:    "Newscrew/0.1 (+https://github.com/pmorozov/newscrew)",
			MaxBodyBytes: 2_000_000,
		},
		LLM: LLMConfig{
			Provider:  "openai",
			Model:     "gpt-4o-mini",
			Timeout:   120,
			MaxTokens: 4000,
		},
		Sources: SourcesConfig{
			RequestsPerSecond: 1.0,
			Burst:             2,
			RespectRobots:     true,
			MaxExcerptBytes:   4000,
		},
		Cache: CacheConfig{
			Enabled: true,
			Dir:     "", // Resolved to ~/.newscrew/cache at startup
			TTL:     24 * time.Hour,
		},
		Output: OutputConfig{
			Verbose:       false,
			IncludeFooter: true,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
	}
}
