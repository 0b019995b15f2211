package model

import (
	"fmt"
	"time"
)

// ResearchRequest is the input handed to the orchestration engine.
// Created fresh per submission and passed by value; never retained.
type ResearchRequest struct {
	Topic       string           `json:"topic"`
	CurrentYear string           `json:"current_year"`
	Session     *SessionMetadata `json:"session_metadata,omitempty"`
}

// SessionMetadata describes the interactive session that produced a request
type SessionMetadata struct {
	SessionID        string `json:"session_id"` // session_<YYYYMMDD_HHMMSS>
	Topic            string `json:"topic"`
	Timestamp        string `json:"timestamp"` // RFC 3339
	Interface        string `json:"interface"` // "cli" or "batch"
	TelemetryEnabled bool   `json:"telemetry_enabled"`
}

// NewResearchRequest builds a request for the given canonical topic.
// The current year is rendered as text, matching the engine contract.
func NewResearchRequest(topic string, now time.Time, session *SessionMetadata) ResearchRequest {
	return ResearchRequest{
		Topic:       topic,
		CurrentYear: fmt.Sprintf("%d", now.Year()),
		Session:     session,
	}
}
