// Package render turns research results into display text and files.
// The markdown payload is treated as an opaque blob: no parsing, no
// transformation.
package render

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pmorozov/newscrew/internal/model"
)

// Display returns the text to show for a result: the primary markdown
// payload when present, otherwise the generic string form. Never fails.
func Display(res *model.ResearchResult) string {
	if res == nil {
		return ""
	}
	if res.Raw != "" {
		return res.Raw
	}
	return res.String()
}

// ReportFilename returns the timestamped report filename,
// e.g. report_20250106_100000.md.
func ReportFilename(t time.Time) string {
	return "report_" + t.Format("20060102_150405") + ".md"
}

// Renderer writes reports to files and prints run summaries
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a new renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderMarkdown writes the display text to path. When path is an
// existing directory, the timestamped report filename is used inside it.
// Returns the path actually written.
func (r *Renderer) RenderMarkdown(res *model.ResearchResult, path string) (string, error) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, ReportFilename(res.GeneratedAt))
	}

	text := Display(res)
	if r.includeFooter {
		text += footer(res)
	}

	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("write markdown: %w", err)
	}

	return path, nil
}

// RenderJSON writes the full result record as indented JSON
func (r *Renderer) RenderJSON(res *model.ResearchResult, path string) error {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write JSON: %w", err)
	}

	return nil
}

// RenderSummary prints a short run summary to stdout
func (r *Renderer) RenderSummary(res *model.ResearchResult) {
	fmt.Printf("\nTopic:     %s\n", res.Topic)
	if res.Provider != "" {
		fmt.Printf("Engine:    %s/%s\n", res.Provider, res.Model)
	}
	if res.TokensUsed > 0 {
		fmt.Printf("Tokens:    %d\n", res.TokensUsed)
	}
	fmt.Printf("Report:    %d characters\n", len(Display(res)))
}

func footer(res *model.ResearchResult) string {
	generated := res.GeneratedAt
	if generated.IsZero() {
		generated = time.Now()
	}
	return fmt.Sprintf("\n\n---\nGenerated by newscrew on %s\n", generated.Format("2006-01-02 15:04:05"))
}
