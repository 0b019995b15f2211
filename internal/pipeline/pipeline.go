// Package pipeline wires one submission through its linear pass:
// validate, dispatch to the research engine, render or classify.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/pmorozov/newscrew/internal/cache"
	"github.com/pmorozov/newscrew/internal/crew"
	"github.com/pmorozov/newscrew/internal/fetch"
	"github.com/pmorozov/newscrew/internal/llm"
	"github.com/pmorozov/newscrew/internal/model"
	"github.com/pmorozov/newscrew/internal/render"
	"github.com/pmorozov/newscrew/internal/session"
	"github.com/pmorozov/newscrew/internal/validate"
)

// Pipeline runs research submissions end to end
type Pipeline struct {
	engine           crew.Engine
	cache            cache.Cache // nil when caching is disabled
	renderer         *render.Renderer
	config           *model.Config
	iface            string // session interface tag: "cli" or "batch"
	telemetryEnabled bool
	now              func() time.Time
}

// NewPipeline creates a pipeline with a crew engine built from the
// configuration. Fails when the LLM provider cannot be constructed.
func NewPipeline(cfg *model.Config, iface string, telemetryEnabled bool) (*Pipeline, error) {
	provider, err := llm.NewProvider(llm.ConfigFromModel(cfg.LLM, cfg.HTTP))
	if err != nil {
		return nil, fmt.Errorf("initialize LLM provider: %w", err)
	}

	var fetcher crew.SourceFetcher
	if len(cfg.Sources.URLs) > 0 {
		fetcher = fetch.NewFetcher(cfg.HTTP, cfg.Sources, cfg.Output.Verbose)
	}

	engine := crew.NewCrew(provider, crew.Options{
		SourceURLs: cfg.Sources.URLs,
		Fetcher:    fetcher,
	})

	return New(cfg, engine, iface, telemetryEnabled), nil
}

// New creates a pipeline around an existing engine
func New(cfg *model.Config, engine crew.Engine, iface string, telemetryEnabled bool) *Pipeline {
	var c cache.Cache
	if cfg.Cache.Enabled {
		if cfg.Cache.Dir != "" {
			c = cache.NewLayeredCache(cfg.Cache.TTL, cfg.Cache.Dir, cfg.Cache.TTL)
		} else {
			c = cache.NewMemoryCache(cfg.Cache.TTL, 10*time.Minute)
		}
	}

	return &Pipeline{
		engine:           engine,
		cache:            c,
		renderer:         render.NewRenderer(cfg.Output.IncludeFooter),
		config:           cfg,
		iface:            iface,
		telemetryEnabled: telemetryEnabled,
		now:              time.Now,
	}
}

// Research runs one topic through validate and dispatch. Validation
// failures return a *validate.ValidationError without touching the
// engine; dispatch failures are wrapped and left for the caller to
// classify. There is no retry.
func (p *Pipeline) Research(ctx context.Context, rawTopic string) (*model.ResearchResult, error) {
	topic, err := validate.Topic(rawTopic)
	if err != nil {
		return nil, err
	}

	if p.cache != nil {
		if res, found := p.cached(topic); found {
			if p.config.Output.Verbose {
				fmt.Fprintf(os.Stderr, "Cache hit for topic %q\n", topic)
			}
			return res, nil
		}
	}

	now := p.now()
	req := model.NewResearchRequest(topic, now, session.Metadata(topic, p.iface, now, p.telemetryEnabled))

	result, err := p.engine.Execute(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("research failed: %w", err)
	}

	if p.cache != nil {
		p.store(topic, result)
	}

	return result, nil
}

// RenderReport writes the result to the requested outputs and prints
// the run summary to stdout.
func (p *Pipeline) RenderReport(res *model.ResearchResult, mdPath, jsonPath string, verbose bool) error {
	if mdPath != "" {
		written, err := p.renderer.RenderMarkdown(res, mdPath)
		if err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote Markdown: %s\n", written)
		}
	}

	if jsonPath != "" {
		if err := p.renderer.RenderJSON(res, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote JSON: %s\n", jsonPath)
		}
	}

	p.renderer.RenderSummary(res)

	return nil
}

func (p *Pipeline) cached(topic string) (*model.ResearchResult, bool) {
	data, found := p.cache.Get(cache.TopicKey(topic))
	if !found {
		return nil, false
	}

	var res model.ResearchResult
	if err := json.Unmarshal(data, &res); err != nil {
		// Corrupt entry; drop it and re-dispatch
		_ = p.cache.Delete(cache.TopicKey(topic))
		return nil, false
	}

	return &res, true
}

func (p *Pipeline) store(topic string, res *model.ResearchResult) {
	data, err := json.Marshal(res)
	if err != nil {
		return
	}
	if err := p.cache.Set(cache.TopicKey(topic), data, p.config.Cache.TTL); err != nil && p.config.Output.Verbose {
		fmt.Fprintf(os.Stderr, "Warning: failed to cache report: %v\n", err)
	}
}
