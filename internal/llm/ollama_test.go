package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOllamaProvider_Complete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}

		var req ollamaRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Model != "llama3.1:8b" {
			t.Errorf("model = %q, want llama3.1:8b", req.Model)
		}
		if req.Stream {
			t.Error("expected stream=false")
		}

		resp := ollamaResponse{
			Model:           req.Model,
			Response:        "# Report\n\nGenerated text.",
			Done:            true,
			PromptEvalCount: 10,
			EvalCount:       20,
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	provider, err := NewOllamaProvider(Config{BaseURL: server.URL, Model: "llama3.1:8b"})
	if err != nil {
		t.Fatalf("NewOllamaProvider: %v", err)
	}

	resp, err := provider.Complete(context.Background(), CompletionRequest{
		System: "You are a researcher.",
		Prompt: "Research AI LLMs.",
	})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}

	if resp.Text != "# Report\n\nGenerated text." {
		t.Errorf("Text = %q", resp.Text)
	}
	if resp.TokensUsed != 30 {
		t.Errorf("TokensUsed = %d, want 30", resp.TokensUsed)
	}
}

func TestOllamaProvider_MissingModel(t *testing.T) {
	provider, err := NewOllamaProvider(Config{BaseURL: "http://localhost:11434"})
	if err != nil {
		t.Fatalf("NewOllamaProvider: %v", err)
	}

	_, err = provider.Complete(context.Background(), CompletionRequest{Prompt: "hi"})
	if err == nil {
		t.Fatal("expected error for missing model")
	}
}

func TestOllamaProvider_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(ollamaError{Error: "model not found"})
	}))
	defer server.Close()

	provider, err := NewOllamaProvider(Config{BaseURL: server.URL, Model: "missing"})
	if err != nil {
		t.Fatalf("NewOllamaProvider: %v", err)
	}

	_, err = provider.Complete(context.Background(), CompletionRequest{Prompt: "hi"})
	if err == nil {
		t.Fatal("expected API error")
	}
}
