// Package validate implements topic input validation.
//
// Validation is a pure function: deterministic, no side effects. Checks
// run in a fixed order and the first failure wins.
package validate

import "strings"

const (
	// MinTopicLength is the minimum trimmed topic length
	MinTopicLength = 3
	// MaxTopicLength is the maximum trimmed topic length
	MaxTopicLength = 200
)

// forbiddenChars are rejected anywhere in the trimmed topic
const forbiddenChars = "<>{}[]"

// Reason identifies which validation check failed
type Reason string

const (
	ReasonEmpty        Reason = "empty_input"
	ReasonTooShort     Reason = "too_short"
	ReasonTooLong      Reason = "too_long"
	ReasonInvalidChars Reason = "invalid_characters"
)

// ValidationError carries the failed check and its user-facing message
type ValidationError struct {
	Reason  Reason
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Topic validates a candidate research topic and returns its canonical
// (trimmed) form. No normalization is applied beyond trimming: no case
// folding, no Unicode normalization.
func Topic(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)

	if trimmed == "" {
		return "", &ValidationError{
			Reason:  ReasonEmpty,
			Message: "Please enter a topic to research.",
		}
	}

	// Length checks count runes, not bytes
	length := len([]rune(trimmed))

	if length < MinTopicLength {
		return "", &ValidationError{
			Reason:  ReasonTooShort,
			Message: "Topic must be at least 3 characters long.",
		}
	}

	if length > MaxTopicLength {
		return "", &ValidationError{
			Reason:  ReasonTooLong,
			Message: "Topic must be less than 200 characters.",
		}
	}

	if strings.ContainsAny(trimmed, forbiddenChars) {
		return "", &ValidationError{
			Reason:  ReasonInvalidChars,
			Message: "Topic contains invalid characters. Please avoid < > { } [ ].",
		}
	}

	return trimmed, nil
}
