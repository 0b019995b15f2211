package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmorozov/newscrew/internal/model"
	"github.com/pmorozov/newscrew/internal/validate"
)

// fakeEngine records executions and returns a scripted result
type fakeEngine struct {
	calls    int
	lastReq  model.ResearchRequest
	result   *model.ResearchResult
	err      error
}

func (f *fakeEngine) Execute(ctx context.Context, req model.ResearchRequest) (*model.ResearchResult, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func testConfig() *model.Config {
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = false
	return cfg
}

func TestPipeline_Research(t *testing.T) {
	engine := &fakeEngine{
		result: &model.ResearchResult{Topic: "Quantum Computing", Raw: "# Report"},
	}
	p := New(testConfig(), engine, "cli", true)

	res, err := p.Research(context.Background(), "  Quantum Computing  ")
	require.NoError(t, err)
	assert.Equal(t, "# Report", res.Raw)

	// Request carries the canonical topic, year text, and session metadata
	assert.Equal(t, "Quantum Computing", engine.lastReq.Topic)
	assert.Len(t, engine.lastReq.CurrentYear, 4)
	require.NotNil(t, engine.lastReq.Session)
	assert.Equal(t, "Quantum Computing", engine.lastReq.Session.Topic)
	assert.Equal(t, "cli", engine.lastReq.Session.Interface)
	assert.True(t, engine.lastReq.Session.TelemetryEnabled)
	assert.Contains(t, engine.lastReq.Session.SessionID, "session_")
}

func TestPipeline_Research_ValidationShortCircuits(t *testing.T) {
	engine := &fakeEngine{}
	p := New(testConfig(), engine, "cli", false)

	tests := []struct {
		input      string
		wantReason validate.Reason
	}{
		{"", validate.ReasonEmpty},
		{"AI", validate.ReasonTooShort},
		{"Topic<script>", validate.ReasonInvalidChars},
	}

	for _, tt := range tests {
		_, err := p.Research(context.Background(), tt.input)
		require.Error(t, err)

		var verr *validate.ValidationError
		require.ErrorAs(t, err, &verr, "input %q", tt.input)
		assert.Equal(t, tt.wantReason, verr.Reason)
	}

	assert.Zero(t, engine.calls, "invalid input must never reach the engine")
}

func TestPipeline_Research_DispatchErrorWrapped(t *testing.T) {
	engine := &fakeEngine{err: errors.New("API key not found")}
	p := New(testConfig(), engine, "cli", false)

	_, err := p.Research(context.Background(), "Quantum Computing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "research failed")
	assert.Contains(t, err.Error(), "API key not found")
	assert.Equal(t, 1, engine.calls, "no retry on dispatch failure")
}

func TestPipeline_Research_CacheHitSkipsDispatch(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = true
	cfg.Cache.Dir = "" // memory only

	engine := &fakeEngine{
		result: &model.ResearchResult{Topic: "AI LLMs", Raw: "# Cached Report"},
	}
	p := New(cfg, engine, "cli", false)

	first, err := p.Research(context.Background(), "AI LLMs")
	require.NoError(t, err)

	second, err := p.Research(context.Background(), "AI LLMs")
	require.NoError(t, err)

	assert.Equal(t, 1, engine.calls, "second submission must hit the cache")
	assert.Equal(t, first.Raw, second.Raw)
}

func TestPipeline_RenderReport(t *testing.T) {
	dir := t.TempDir()
	p := New(testConfig(), &fakeEngine{}, "cli", false)

	res := &model.ResearchResult{Topic: "AI LLMs", Raw: "# Report"}
	err := p.RenderReport(res, dir+"/out.md", dir+"/out.json", false)
	require.NoError(t, err)

	assert.FileExists(t, dir+"/out.md")
	assert.FileExists(t, dir+"/out.json")
}
