package worker

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/ppiankov/loanlens/internal/model"
)

// MockProcessor implements the Processor interface
type MockProcessor struct {
	ShouldError bool
}

func (m *MockProcessor) ProcessFile(ctx context.Context, path string) (*model.ExtractionReport, error) {
	time.Sleep(10 * time.Millisecond) // Simulate work
	if m.ShouldError {
		return nil, errors.New("extraction error")
	}
	return &model.ExtractionReport{
		Filename: path,
		Mode:     "rule",
	}, nil
}

func TestBatchProcessor_ProcessPaths(t *testing.T) {
	processor := NewBatchProcessor(&MockProcessor{}, 2)

	paths := []string{"a.txt", "b.txt", "c.txt"}
	ctx := context.Background()

	results := processor.ProcessPaths(ctx, paths)

	if len(results) != 3 {
		t.Errorf("expected 3 results, got %d", len(results))
	}

	successCount := 0
	for _, res := range results {
		if res.Error == nil {
			successCount++
			if res.Report == nil {
				t.Error("expected report for successful extraction")
			}
		} else {
			t.Errorf("unexpected error for %s: %v", res.Path, res.Error)
		}
	}

	if successCount != 3 {
		t.Errorf("expected 3 successes, got %d", successCount)
	}
}

func TestBatchProcessor_ProcessPaths_LargeBatch(t *testing.T) {
	// 30 documents on 2 workers far exceed the pool's internal buffers;
	// the batch must still flow through without stalling
	processor := NewBatchProcessor(&MockProcessor{}, 2)

	paths := make([]string, 30)
	for i := range paths {
		paths[i] = "docs/mitc_" + string(rune('a'+i%26)) + ".txt"
	}

	done := make(chan []*DocumentResult, 1)
	go func() {
		done <- processor.ProcessPaths(context.Background(), paths)
	}()

	select {
	case results := <-done:
		if len(results) != len(paths) {
			t.Errorf("expected %d results, got %d", len(paths), len(results))
		}
		for _, res := range results {
			if res.Error != nil {
				t.Errorf("unexpected error for %s: %v", res.Path, res.Error)
			}
		}
	case <-time.After(5 * time.Second):
		t.Fatal("batch stalled with more documents than pool buffer capacity")
	}
}

func TestBatchProcessor_ProcessPaths_Error(t *testing.T) {
	processor := NewBatchProcessor(&MockProcessor{ShouldError: true}, 2)

	results := processor.ProcessPaths(context.Background(), []string{"a.txt"})

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}

	if results[0].Error == nil {
		t.Error("expected error, got nil")
	}
	if results[0].Report != nil {
		t.Error("expected nil report on error")
	}
}

func TestBatchProcessor_ProcessPaths_Empty(t *testing.T) {
	processor := NewBatchProcessor(&MockProcessor{}, 2)

	results := processor.ProcessPaths(context.Background(), []string{})
	if len(results) != 0 {
		t.Errorf("expected 0 results, got %d", len(results))
	}
}

func TestReadPathsFromFile(t *testing.T) {
	content := `docs/sbi_mitc.txt
# comment
docs/hdfc_mitc.txt

docs/icici_mitc.txt   `

	tmpfile, err := os.CreateTemp("", "paths")
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		_ = os.Remove(tmpfile.Name())
	}()

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	paths, err := ReadPathsFromFile(tmpfile.Name())
	if err != nil {
		t.Fatalf("ReadPathsFromFile failed: %v", err)
	}

	expected := []string{"docs/sbi_mitc.txt", "docs/hdfc_mitc.txt", "docs/icici_mitc.txt"}
	if len(paths) != len(expected) {
		t.Fatalf("expected %d paths, got %d", len(expected), len(paths))
	}

	for i, path := range paths {
		if path != expected[i] {
			t.Errorf("expected path %s at index %d, got %s", expected[i], i, path)
		}
	}
}

func TestReadPathsFromFile_NonExistent(t *testing.T) {
	_, err := ReadPathsFromFile("non_existent_file.txt")
	if err == nil {
		t.Error("expected error for non-existent file, got nil")
	}
}

func TestDocumentResult_GetError(t *testing.T) {
	r1 := &DocumentResult{Path: "a.txt", Error: nil}
	if r1.GetError() != nil {
		t.Errorf("expected nil error, got %v", r1.GetError())
	}

	expected := errors.New("extraction failed")
	r2 := &DocumentResult{Path: "a.txt", Error: expected}
	if r2.GetError() != expected {
		t.Errorf("expected %v, got %v", expected, r2.GetError())
	}
}

func TestBatchProcessor_ProcessList(t *testing.T) {
	content := "a.txt\nb.txt\n# comment\n\nc.txt\n"

	tmpfile, err := os.CreateTemp("", "batch_paths")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = os.Remove(tmpfile.Name()) }()

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	processor := NewBatchProcessor(&MockProcessor{}, 2)

	results, err := processor.ProcessList(context.Background(), tmpfile.Name())
	if err != nil {
		t.Fatalf("ProcessList failed: %v", err)
	}

	if len(results) != 3 {
		t.Errorf("expected 3 results, got %d", len(results))
	}
}

func TestBatchProcessor_ProcessList_NonExistent(t *testing.T) {
	processor := NewBatchProcessor(&MockProcessor{}, 2)

	_, err := processor.ProcessList(context.Background(), "no_such_file.txt")
	if err == nil {
		t.Error("expected error for non-existent file, got nil")
	}
}

func TestReadPathsFromFile_Deduplication(t *testing.T) {
	content := `docs/sbi_mitc.txt
docs/sbi_mitc.txt`

	tmpfile, err := os.CreateTemp("", "paths_dedup")
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		_ = os.Remove(tmpfile.Name())
	}()

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	paths, err := ReadPathsFromFile(tmpfile.Name())
	if err != nil {
		t.Fatalf("ReadPathsFromFile failed: %v", err)
	}

	if len(paths) != 1 {
		t.Errorf("expected 1 path after deduplication, got %d", len(paths))
	}
}
