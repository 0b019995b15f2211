package model

import (
	"fmt"
	"strings"
	"time"
)

// ResearchResult is the report returned by the orchestration engine.
// Raw holds the primary markdown payload; callers treat it as an opaque
// blob and never parse or transform it.
type ResearchResult struct {
	Topic       string    `json:"topic"`
	Raw         string    `json:"raw"` // Primary markdown report text
	Provider    string    `json:"provider,omitempty"`
	Model       string    `json:"model,omitempty"`
	Findings    []Finding `json:"findings,omitempty"`
	Sources     []Source  `json:"sources,omitempty"`
	TokensUsed  int       `json:"tokens_used,omitempty"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Finding is a single researcher-stage bullet point
type Finding struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// Source is a fetched grounding source handed to the researcher agent
type Source struct {
	URL     string `json:"url"`
	Title   string `json:"title,omitempty"`
	Excerpt string `json:"excerpt,omitempty"`
}

// String renders the generic textual form of the result. Display logic
// falls back to this when Raw is empty.
func (r *ResearchResult) String() string {
	if r == nil {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# Research Report: %s\n", r.Topic)
	for _, f := range r.Findings {
		fmt.Fprintf(&b, "\n%d. %s", f.Index, f.Text)
	}
	if len(r.Findings) > 0 {
		b.WriteString("\n")
	}
	return b.String()
}
