package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pmorozov/newscrew/internal/model"
)

// Researcher runs one topic through the research pipeline
type Researcher interface {
	Research(ctx context.Context, topic string) (*model.ResearchResult, error)
}

// ResearchJob is one topic submission
type ResearchJob struct {
	Topic      string
	Researcher Researcher
}

// Execute runs the research job
func (j *ResearchJob) Execute(ctx context.Context) Result {
	result, err := j.Researcher.Research(ctx, j.Topic)
	return &ResearchOutcome{
		Topic:  j.Topic,
		Result: result,
		Error:  err,
	}
}

// ResearchOutcome is the result of one research job
type ResearchOutcome struct {
	Topic  string
	Result *model.ResearchResult
	Error  error
}

// GetError returns the error from the outcome
func (o *ResearchOutcome) GetError() error {
	return o.Error
}

// BatchProcessor runs multiple topics concurrently
type BatchProcessor struct {
	researcher  Researcher
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(researcher Researcher, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		researcher:  researcher,
		concurrency: concurrency,
	}
}

// ProcessTopics runs the given topics over the worker pool
func (b *BatchProcessor) ProcessTopics(ctx context.Context, topics []string) []*ResearchOutcome {
	if len(topics) == 0 {
		return []*ResearchOutcome{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, topic := range topics {
		pool.Submit(&ResearchJob{
			Topic:      topic,
			Researcher: b.researcher,
		})
	}

	results := pool.Wait()

	outcomes := make([]*ResearchOutcome, len(results))
	for i, result := range results {
		outcomes[i] = result.(*ResearchOutcome)
	}

	return outcomes
}

// ProcessFile reads topics from a file and processes them concurrently
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*ResearchOutcome, error) {
	topics, err := ReadTopicsFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read topics: %w", err)
	}

	return b.ProcessTopics(ctx, topics), nil
}

// ReadTopicsFromFile reads topics from a file, one per line. Empty
// lines and # comments are skipped; duplicate topics are dropped.
func ReadTopicsFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var topics []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !seen[line] {
			seen[line] = true
			topics = append(topics, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return topics, nil
}
