package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ppiankov/loanlens/internal/model"
)

// Processor defines the interface for processing a single document file
type Processor interface {
	ProcessFile(ctx context.Context, path string) (*model.ExtractionReport, error)
}

// DocumentJob represents one document extraction job
type DocumentJob struct {
	Path      string
	Processor Processor
}

// Execute executes the extraction job
func (j *DocumentJob) Execute(ctx context.Context) Result {
	report, err := j.Processor.ProcessFile(ctx, j.Path)
	if err != nil {
		return &DocumentResult{
			Path:   j.Path,
			Report: nil,
			Error:  err,
		}
	}
	return &DocumentResult{
		Path:   j.Path,
		Report: report,
		Error:  nil,
	}
}

// DocumentResult represents the result of a document extraction job
type DocumentResult struct {
	Path   string
	Report *model.ExtractionReport
	Error  error
}

// GetError returns the error from the extraction result
func (r *DocumentResult) GetError() error {
	return r.Error
}

// BatchProcessor processes multiple documents concurrently
type BatchProcessor struct {
	processor   Processor
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(processor Processor, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		processor:   processor,
		concurrency: concurrency,
	}
}

// ProcessPaths processes multiple document files concurrently. Submission
// runs on its own goroutine while results are drained here, so batches of
// any size flow through the pool's fixed buffers.
func (b *BatchProcessor) ProcessPaths(ctx context.Context, paths []string) []*DocumentResult {
	if len(paths) == 0 {
		return []*DocumentResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	go func() {
		for _, path := range paths {
			pool.Submit(&DocumentJob{
				Path:      path,
				Processor: b.processor,
			})
		}
		pool.Done()
	}()

	docResults := make([]*DocumentResult, 0, len(paths))
	for result := range pool.Results() {
		docResults = append(docResults, result.(*DocumentResult))
	}

	return docResults
}

// ProcessList reads document paths from a list file and processes them
// concurrently
func (b *BatchProcessor) ProcessList(ctx context.Context, listPath string) ([]*DocumentResult, error) {
	paths, err := ReadPathsFromFile(listPath)
	if err != nil {
		return nil, fmt.Errorf("read paths: %w", err)
	}

	return b.ProcessPaths(ctx, paths), nil
}

// ReadPathsFromFile reads document paths from a file (one per line)
func ReadPathsFromFile(listPath string) ([]string, error) {
	file, err := os.Open(listPath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var paths []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Deduplicate paths
		if !seen[line] {
			seen[line] = true
			paths = append(paths, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return paths, nil
}
