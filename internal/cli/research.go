package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/pmorozov/newscrew/internal/classify"
	"github.com/pmorozov/newscrew/internal/model"
	"github.com/pmorozov/newscrew/internal/pipeline"
	"github.com/pmorozov/newscrew/internal/render"
	"github.com/pmorozov/newscrew/internal/session"
	"github.com/pmorozov/newscrew/internal/telemetry"
	"github.com/pmorozov/newscrew/internal/validate"
)

var (
	outMD       string
	outJSON     string
	saveReport  bool
	timeout     time.Duration
	llmProvider string
	llmModel    string
	sourceURLs  []string
	noCache     bool
	noFooter    bool
	noSources   bool
	httpProxy   string
	httpsProxy  string
)

// researchCmd represents the research command
var researchCmd = &cobra.Command{
	Use:   "research <topic>",
	Short: "Research a topic and generate a markdown report",
	Long: `Research dispatches a topic to the AI crew:
- A researcher agent gathers the most relevant current findings
- A reporting analyst expands them into a detailed markdown report
- Optional source URLs ground the research in fetched page content

The topic must be 3-200 characters and may not contain < > { } [ ].

Example:
  newscrew research "AI LLMs"
  newscrew research "Quantum Computing" --save
  newscrew research "Climate Change" --md report.md --json report.json
  newscrew research "Mars missions" --provider ollama --model llama3.1:8b`,
	Args: cobra.ExactArgs(1),
	RunE: runResearch,
}

func init() {
	rootCmd.AddCommand(researchCmd)

	// Output flags
	researchCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional; directory gets a timestamped filename)")
	researchCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional)")
	researchCmd.Flags().BoolVar(&saveReport, "save", false, "save the report as report_<timestamp>.md in the current directory")
	researchCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	// Dispatch flags
	researchCmd.Flags().DurationVar(&timeout, "timeout", 10*time.Minute, "overall research timeout (the crew may take a few minutes)")
	researchCmd.Flags().StringVar(&llmProvider, "provider", "openai", "LLM provider (openai, anthropic, ollama)")
	researchCmd.Flags().StringVar(&llmModel, "model", "", "LLM model name (provider default when empty)")
	researchCmd.Flags().StringSliceVar(&sourceURLs, "source", nil, "source URL for researcher grounding (repeatable)")
	researchCmd.Flags().BoolVar(&noSources, "no-sources", false, "disable source grounding")
	researchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable report cache (force fresh research)")
	researchCmd.Flags().StringVar(&httpProxy, "http-proxy", "", "HTTP proxy URL (overrides HTTP_PROXY env var)")
	researchCmd.Flags().StringVar(&httpsProxy, "https-proxy", "", "HTTPS proxy URL (overrides HTTPS_PROXY env var)")
}

func runResearch(cmd *cobra.Command, args []string) error {
	rawTopic := args[0]

	// Validation failures surface their own message and never reach
	// the engine or the error classifier.
	if _, err := validate.Topic(rawTopic); err != nil {
		return err
	}

	telemetryEnabled := telemetry.Init()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if verbose {
		fmt.Fprintf(os.Stderr, "Topic:     %s\n", rawTopic)
		fmt.Fprintf(os.Stderr, "Provider:  %s\n", cfg.LLM.Provider)
		fmt.Fprintf(os.Stderr, "Timeout:   %v\n", timeout)
		fmt.Fprintf(os.Stderr, "Cache:     %v\n", cfg.Cache.Enabled)
		fmt.Fprintf(os.Stderr, "Telemetry: %v\n", telemetryEnabled)
		fmt.Fprintln(os.Stderr)
	}

	p, err := pipeline.NewPipeline(cfg, "cli", telemetryEnabled)
	if err != nil {
		return err
	}

	var state session.State

	fmt.Fprintf(os.Stderr, "🔍 AI crew is researching your topic... This may take a few minutes.\n")

	result, err := p.Research(ctx, rawTopic)
	if err != nil {
		var verr *validate.ValidationError
		if errors.As(err, &verr) {
			return verr
		}
		fmt.Fprintf(os.Stderr, "\n❌ An error occurred during research: %v\n", err)
		fmt.Fprintf(os.Stderr, "💡 %s\n", classify.Guidance(classify.Classify(err)))
		return err
	}

	state.Complete(result.Topic)

	fmt.Fprintf(os.Stderr, "✅ Research completed successfully!\n\n")
	fmt.Println(render.Display(result))

	mdPath := outMD
	if saveReport && mdPath == "" {
		mdPath = "."
	}

	if err := p.RenderReport(result, mdPath, outJSON, verbose); err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "\nSession: %s\n", state.String())
	}

	return nil
}

// buildConfig assembles configuration from defaults and flags
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()

	cfg.HTTP.HTTPProxy = httpProxy
	cfg.HTTP.HTTPSProxy = httpsProxy
	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter

	if cfg.Cache.Enabled && cfg.Cache.Dir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			cfg.Cache.Dir = filepath.Join(home, ".newscrew", "cache")
		}
	}

	cfg.LLM.Provider = llmProvider
	if llmModel != "" {
		cfg.LLM.Model = llmModel
	}
	if err := resolveAPIKey(cfg); err != nil {
		return nil, err
	}

	if noSources {
		cfg.Sources.URLs = nil
	} else if len(sourceURLs) > 0 {
		cfg.Sources.URLs = sourceURLs
	}

	return cfg, nil
}

// resolveAPIKey pulls the provider credential from the environment
func resolveAPIKey(cfg *model.Config) error {
	switch cfg.LLM.Provider {
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "anthropic", "claude":
		cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
	case "ollama":
		// Ollama doesn't need an API key
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			cfg.LLM.BaseURL = baseURL
		}
	}
	return nil
}
