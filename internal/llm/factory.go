package llm

import (
	"fmt"
	"strings"

	"github.com/pmorozov/newscrew/internal/model"
)

// NewProvider creates a new LLM provider based on configuration
func NewProvider(config Config) (Provider, error) {
	provider := strings.ToLower(config.Provider)

	switch provider {
	case "openai":
		return NewOpenAIProvider(config)

	case "anthropic", "claude":
		return NewAnthropicProvider(config)

	case "ollama":
		return NewOllamaProvider(config)

	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: openai, anthropic, ollama)", config.Provider)
	}
}

// ConfigFromModel converts model.LLMConfig to llm.Config
func ConfigFromModel(cfg model.LLMConfig, http model.HTTPConfig) Config {
	return Config{
		Provider:   cfg.Provider,
		Model:      cfg.Model,
		APIKey:     cfg.APIKey,
		BaseURL:    cfg.BaseURL,
		Timeout:    cfg.Timeout,
		MaxTokens:  cfg.MaxTokens,
		HTTPProxy:  http.HTTPProxy,
		HTTPSProxy: http.HTTPSProxy,
		NoProxy:    http.NoProxy,
	}
}
