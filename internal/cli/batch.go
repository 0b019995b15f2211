package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pmorozov/newscrew/internal/pipeline"
	"github.com/pmorozov/newscrew/internal/telemetry"
	"github.com/pmorozov/newscrew/internal/worker"
)

var (
	batchConcurrency int
	batchOutputDir   string
	batchTimeout     time.Duration
	batchProvider    string
	batchModel       string
	batchNoCache     bool
	batchNoFooter    bool
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <topics-file>",
	Short: "Research multiple topics from a file",
	Long: `Batch reads topics from a file (one per line, # comments and blank
lines skipped, duplicates dropped) and researches them concurrently.
Each topic gets its own markdown report in the output directory.

Example:
  newscrew batch topics.txt
  newscrew batch topics.txt --concurrency 4 --output-dir reports/`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 0, "number of topics researched in parallel (default from config)")
	batchCmd.Flags().StringVar(&batchOutputDir, "output-dir", "reports", "directory for per-topic markdown reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 30*time.Minute, "overall batch timeout")
	batchCmd.Flags().StringVar(&batchProvider, "provider", "openai", "LLM provider (openai, anthropic, ollama)")
	batchCmd.Flags().StringVar(&batchModel, "model", "", "LLM model name (provider default when empty)")
	batchCmd.Flags().BoolVar(&batchNoCache, "no-cache", false, "disable report cache")
	batchCmd.Flags().BoolVar(&batchNoFooter, "no-footer", false, "disable footer in Markdown reports")
}

func runBatch(cmd *cobra.Command, args []string) error {
	topicsFile := args[0]

	telemetryEnabled := telemetry.Init()

	llmProvider = batchProvider
	llmModel = batchModel
	noCache = batchNoCache
	noFooter = batchNoFooter

	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("concurrency") && cfg.Concurrency.Workers > 0 {
		batchConcurrency = cfg.Concurrency.Workers
	}

	topics, err := worker.ReadTopicsFromFile(topicsFile)
	if err != nil {
		return err
	}
	if len(topics) == 0 {
		return fmt.Errorf("no topics found in %s", topicsFile)
	}

	if err := os.MkdirAll(batchOutputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	p, err := pipeline.NewPipeline(cfg, "batch", telemetryEnabled)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "📋 Researching %d topics with concurrency %d\n", len(topics), batchConcurrency)
	fmt.Fprintf(os.Stderr, "📁 Reports: %s\n\n", batchOutputDir)

	processor := worker.NewBatchProcessor(p, batchConcurrency)
	outcomes := processor.ProcessTopics(ctx, topics)

	var succeeded, failed int
	for _, outcome := range outcomes {
		if outcome.Error != nil {
			failed++
			fmt.Fprintf(os.Stderr, "❌ %s: %v\n", outcome.Topic, outcome.Error)
			continue
		}

		path := filepath.Join(batchOutputDir, topicFilename(outcome.Topic))
		if err := p.RenderReport(outcome.Result, path, "", verbose); err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "❌ %s: %v\n", outcome.Topic, err)
			continue
		}

		succeeded++
		fmt.Fprintf(os.Stderr, "✅ %s -> %s\n", outcome.Topic, path)
	}

	fmt.Fprintf(os.Stderr, "\nDone: %d succeeded, %d failed\n", succeeded, failed)

	if failed > 0 {
		return fmt.Errorf("%d of %d topics failed", failed, len(outcomes))
	}
	return nil
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-z0-9]+`)

// topicFilename turns a topic into a filesystem-safe report name
func topicFilename(topic string) string {
	name := unsafeFilenameChars.ReplaceAllString(strings.ToLower(topic), "_")
	name = strings.Trim(name, "_")
	if name == "" {
		name = "report"
	}
	return name + ".md"
}
