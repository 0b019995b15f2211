package validate

import (
	"errors"
	"strings"
	"testing"
)

func TestTopic_Valid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple topic", "Quantum Computing", "Quantum Computing"},
		{"minimum length", "AI!", "AI!"},
		{"surrounding whitespace trimmed", "  Climate Change  ", "Climate Change"},
		{"maximum length", strings.Repeat("a", 200), strings.Repeat("a", 200)},
		{"unicode topic", "折り紙の歴史", "折り紙の歴史"},
		{"internal punctuation allowed", "CRISPR & gene editing: 2025 review", "CRISPR & gene editing: 2025 review"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Topic(tt.input)
			if err != nil {
				t.Fatalf("Topic(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Topic(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTopic_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantReason Reason
	}{
		{"empty string", "", ReasonEmpty},
		{"whitespace only", "   \t\n", ReasonEmpty},
		{"too short", "AI", ReasonTooShort},
		{"too short after trim", "  AI  ", ReasonTooShort},
		{"too long", strings.Repeat("A", 201), ReasonTooLong},
		{"angle brackets", "Topic<script>", ReasonInvalidChars},
		{"curly braces", "Topic {injection}", ReasonInvalidChars},
		{"square brackets", "Topic [1]", ReasonInvalidChars},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Topic(tt.input)
			if err == nil {
				t.Fatalf("Topic(%q) expected error, got nil", tt.input)
			}

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Topic(%q) error type = %T, want *ValidationError", tt.input, err)
			}
			if verr.Reason != tt.wantReason {
				t.Errorf("Topic(%q) reason = %q, want %q", tt.input, verr.Reason, tt.wantReason)
			}
			if verr.Message == "" {
				t.Error("expected non-empty user-facing message")
			}
		})
	}
}

// Length checks run before the character-set check, so an overlong
// topic with forbidden characters reports too_long.
func TestTopic_CheckOrder(t *testing.T) {
	_, err := Topic(strings.Repeat("<", 201))

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if verr.Reason != ReasonTooLong {
		t.Errorf("reason = %q, want %q (length checks short-circuit first)", verr.Reason, ReasonTooLong)
	}
}

func TestTopic_Messages(t *testing.T) {
	tests := []struct {
		input   string
		wantMsg string
	}{
		{"", "Please enter a topic to research."},
		{"AI", "Topic must be at least 3 characters long."},
		{strings.Repeat("A", 201), "Topic must be less than 200 characters."},
		{"Topic<script>", "Topic contains invalid characters. Please avoid < > { } [ ]."},
	}

	for _, tt := range tests {
		_, err := Topic(tt.input)
		if err == nil {
			t.Fatalf("Topic(%q) expected error", tt.input)
		}
		if err.Error() != tt.wantMsg {
			t.Errorf("Topic(%q) message = %q, want %q", tt.input, err.Error(), tt.wantMsg)
		}
	}
}
