// Package session builds per-submission session metadata and holds the
// transient interactive state.
package session

import (
	"fmt"
	"time"

	"github.com/pmorozov/newscrew/internal/model"
)

// IDPrefix is the fixed prefix of session identifiers
const IDPrefix = "session_"

// ID returns a session identifier with second-level resolution,
// e.g. session_20250106_100000.
func ID(now time.Time) string {
	return IDPrefix + now.Format("20060102_150405")
}

// Metadata builds the session metadata record attached to a research
// request. The interface tag names the submission surface ("cli" or
// "batch").
func Metadata(topic, iface string, now time.Time, telemetryEnabled bool) *model.SessionMetadata {
	return &model.SessionMetadata{
		SessionID:        ID(now),
		Topic:            topic,
		Timestamp:        now.Format(time.RFC3339),
		Interface:        iface,
		TelemetryEnabled: telemetryEnabled,
	}
}

// State is the transient per-session convenience record. It is passed
// into and out of the CLI layer explicitly; nothing global.
type State struct {
	LastTopic string
	Completed bool
}

// Complete records a finished submission
func (s *State) Complete(topic string) {
	s.LastTopic = topic
	s.Completed = true
}

// Reset clears the state for a new submission
func (s *State) Reset() {
	s.LastTopic = ""
	s.Completed = false
}

// String renders the state for verbose output
func (s *State) String() string {
	if s.LastTopic == "" {
		return "no submissions yet"
	}
	return fmt.Sprintf("last topic: %q (completed: %v)", s.LastTopic, s.Completed)
}
