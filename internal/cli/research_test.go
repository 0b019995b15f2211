package cli

import (
	"errors"
	"testing"

	"github.com/pmorozov/newscrew/internal/validate"
)

func TestRunResearch_ValidationFailure(t *testing.T) {
	// With no credentials configured, reaching the dispatch path would
	// fail with a missing-key error instead of a validation message.
	t.Setenv("OPENAI_API_KEY", "")

	tests := []struct {
		name    string
		topic   string
		message string
	}{
		{
			name:    "empty topic",
			topic:   "",
			message: "Please enter a topic to research.",
		},
		{
			name:    "too short",
			topic:   "AI",
			message: "Topic must be at least 3 characters long.",
		},
		{
			name:    "invalid characters",
			topic:   "Topic<script>",
			message: "Topic contains invalid characters. Please avoid < > { } [ ].",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := runResearch(researchCmd, []string{tt.topic})
			if err == nil {
				t.Fatal("expected an error")
			}

			var verr *validate.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected a validation error, got %v", err)
			}
			if verr.Message != tt.message {
				t.Errorf("message = %q, want %q", verr.Message, tt.message)
			}
		})
	}
}
