package llm

import (
	"strings"
	"testing"
)

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name     string
		config   Config
		wantName string
		wantErr  bool
	}{
		{
			name:     "openai",
			config:   Config{Provider: "openai", APIKey: "sk-test"},
			wantName: "openai",
		},
		{
			name:     "anthropic",
			config:   Config{Provider: "anthropic", APIKey: "sk-ant-test"},
			wantName: "anthropic",
		},
		{
			name:     "claude alias",
			config:   Config{Provider: "claude", APIKey: "sk-ant-test"},
			wantName: "anthropic",
		},
		{
			name:     "ollama without key",
			config:   Config{Provider: "ollama", Model: "llama3.1:8b"},
			wantName: "ollama",
		},
		{
			name:     "mixed case",
			config:   Config{Provider: "OpenAI", APIKey: "sk-test"},
			wantName: "openai",
		},
		{
			name:    "openai missing key",
			config:  Config{Provider: "openai"},
			wantErr: true,
		},
		{
			name:    "unknown provider",
			config:  Config{Provider: "bard"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProvider(tt.config)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.Name() != tt.wantName {
				t.Errorf("Name() = %q, want %q", p.Name(), tt.wantName)
			}
		})
	}
}

func TestNewProvider_UnknownMessage(t *testing.T) {
	_, err := NewProvider(Config{Provider: "bard"})
	if err == nil || !strings.Contains(err.Error(), "supported: openai, anthropic, ollama") {
		t.Errorf("expected supported-providers hint in error, got %v", err)
	}
}
