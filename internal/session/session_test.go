package session

import (
	"strings"
	"testing"
	"time"
)

func TestID(t *testing.T) {
	now := time.Date(2025, 1, 6, 10, 0, 0, 0, time.UTC)

	id := ID(now)
	if id != "session_20250106_100000" {
		t.Errorf("ID = %q, want session_20250106_100000", id)
	}
	if len(strings.Split(id, "_")) != 3 {
		t.Errorf("ID %q should have three underscore-separated parts", id)
	}
}

func TestMetadata(t *testing.T) {
	now := time.Date(2025, 1, 6, 10, 0, 0, 0, time.UTC)

	meta := Metadata("Test Topic", "cli", now, true)

	if meta.SessionID != "session_20250106_100000" {
		t.Errorf("SessionID = %q", meta.SessionID)
	}
	if meta.Topic != "Test Topic" {
		t.Errorf("Topic = %q", meta.Topic)
	}
	if meta.Interface != "cli" {
		t.Errorf("Interface = %q, want cli", meta.Interface)
	}
	if !meta.TelemetryEnabled {
		t.Error("TelemetryEnabled = false, want true")
	}
	if _, err := time.Parse(time.RFC3339, meta.Timestamp); err != nil {
		t.Errorf("Timestamp %q is not RFC 3339: %v", meta.Timestamp, err)
	}
}

func TestMetadata_BatchInterface(t *testing.T) {
	now := time.Date(2025, 1, 6, 10, 0, 0, 0, time.UTC)

	meta := Metadata("Test Topic", "batch", now, false)

	if meta.Interface != "batch" {
		t.Errorf("Interface = %q, want batch", meta.Interface)
	}
	if meta.TelemetryEnabled {
		t.Error("TelemetryEnabled = true, want false")
	}
}

func TestState(t *testing.T) {
	var s State

	if s.Completed || s.LastTopic != "" {
		t.Error("zero state should be empty and incomplete")
	}

	s.Complete("AI LLMs")
	if !s.Completed || s.LastTopic != "AI LLMs" {
		t.Errorf("after Complete: %+v", s)
	}

	s.Reset()
	if s.Completed || s.LastTopic != "" {
		t.Errorf("after Reset: %+v", s)
	}
}
