package llm

import "context"

// Provider defines the interface for LLM providers backing crew agents
type Provider interface {
	// Name returns the provider name
	Name() string

	// Complete generates a completion for a single agent stage
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// CompletionRequest contains the input for a single agent stage
type CompletionRequest struct {
	// System is the agent role instruction (researcher, reporting analyst)
	System string

	// Prompt is the stage prompt, already parameterized with topic and year
	Prompt string

	// Model overrides the configured model (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int

	// Temperature controls sampling; crew stages run low for focused output
	Temperature float32
}

// CompletionResponse contains a provider's completion output
type CompletionResponse struct {
	// Text is the generated completion
	Text string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption across prompt and completion
	TokensUsed int
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai", "anthropic", "ollama"
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests
	Timeout int // seconds

	// MaxTokens for response generation
	MaxTokens int

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:  "openai",
		Timeout:   120,
		MaxTokens: 4000,
	}
}
