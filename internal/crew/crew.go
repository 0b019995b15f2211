// Package crew implements the research orchestration engine: a small
// sequential crew of LLM-backed agents that turn a topic into a
// markdown report.
package crew

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/pmorozov/newscrew/internal/llm"
	"github.com/pmorozov/newscrew/internal/model"
)

// Engine is the single entry point of the orchestration boundary. The
// validator, renderer, and classifier never depend on a concrete
// engine; they only see this contract.
type Engine interface {
	Execute(ctx context.Context, req model.ResearchRequest) (*model.ResearchResult, error)
}

// SourceFetcher supplies grounding excerpts for the researcher agent
type SourceFetcher interface {
	FetchSources(ctx context.Context, urls []string) []model.Source
}

// Options configures a Crew
type Options struct {
	// SourceURLs are fetched for researcher grounding when a fetcher
	// is present; empty means an ungrounded run
	SourceURLs []string

	// Fetcher retrieves source excerpts; nil disables grounding
	Fetcher SourceFetcher

	// MaxFindings caps the findings kept from the researcher stage
	MaxFindings int
}

// Crew is a two-agent sequential engine: a researcher stage produces
// bullet findings, a reporting analyst stage expands them into a full
// markdown report.
type Crew struct {
	provider llm.Provider
	opts     Options
	now      func() time.Time
}

// NewCrew creates a new crew backed by the given provider
func NewCrew(provider llm.Provider, opts Options) *Crew {
	if opts.MaxFindings <= 0 {
		opts.MaxFindings = 10
	}
	return &Crew{
		provider: provider,
		opts:     opts,
		now:      time.Now,
	}
}

// Execute runs both stages synchronously and returns the final report.
// It blocks until the provider responds or ctx expires.
func (c *Crew) Execute(ctx context.Context, req model.ResearchRequest) (*model.ResearchResult, error) {
	var sources []model.Source
	if c.opts.Fetcher != nil && len(c.opts.SourceURLs) > 0 {
		sources = c.opts.Fetcher.FetchSources(ctx, c.opts.SourceURLs)
	}

	researchResp, err := c.provider.Complete(ctx, llm.CompletionRequest{
		System:      researcherSystem,
		Prompt:      researcherPrompt(req, sources),
		Temperature: 0.3,
	})
	if err != nil {
		return nil, fmt.Errorf("researcher stage: %w", err)
	}

	findings := parseFindings(researchResp.Text, c.opts.MaxFindings)
	if len(findings) == 0 {
		return nil, fmt.Errorf("researcher stage produced no findings")
	}

	reportResp, err := c.provider.Complete(ctx, llm.CompletionRequest{
		System:      analystSystem,
		Prompt:      analystPrompt(req, findings),
		Temperature: 0.4,
	})
	if err != nil {
		return nil, fmt.Errorf("reporting stage: %w", err)
	}

	return &model.ResearchResult{
		Topic:       req.Topic,
		Raw:         reportResp.Text,
		Provider:    c.provider.Name(),
		Model:       reportResp.Model,
		Findings:    findings,
		Sources:     sources,
		TokensUsed:  researchResp.TokensUsed + reportResp.TokensUsed,
		GeneratedAt: c.now(),
	}, nil
}

// bulletPrefix strips list markers: "-", "*", "•", or "1." / "1)"
var bulletPrefix = regexp.MustCompile(`^\s*(?:[-*•]|\d+[.)])\s*`)

// parseFindings extracts bullet findings from researcher output, one
// per non-empty line, capped at max.
func parseFindings(text string, max int) []model.Finding {
	var findings []model.Finding

	for _, line := range strings.Split(text, "\n") {
		stripped := strings.TrimSpace(bulletPrefix.ReplaceAllString(line, ""))
		if stripped == "" {
			continue
		}
		findings = append(findings, model.Finding{
			Index: len(findings) + 1,
			Text:  stripped,
		})
		if len(findings) >= max {
			break
		}
	}

	return findings
}
