package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ppiankov/loanlens/internal/compare"
	"github.com/ppiankov/loanlens/internal/model"
	"github.com/ppiankov/loanlens/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	compareJSON    string
	compareCSV     string
	compareTimeout time.Duration
)

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare <file> <file>...",
	Short: "Compare loan terms across multiple documents",
	Long: `Compare extracts facts from two or more policy documents and diffs
the normalized fact sheets key by key:
- "same" when every document agrees on the value
- "different" when the normalized values disagree
- "missing" when at least one document lacks the term
- "suspect" when a document contradicts itself on the term

Example:
  loanlens compare sbi_mitc.txt hdfc_mitc.txt
  loanlens compare sbi.txt hdfc.txt icici.txt --json diff.json --csv diff.csv
  loanlens compare sbi.txt hdfc.txt --mode rule`,
	Args: cobra.MinimumNArgs(2),
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().StringVar(&compareJSON, "json", "", "output comparison JSON path (optional)")
	compareCmd.Flags().StringVar(&compareCSV, "csv", "", "output comparison CSV path (optional)")
	compareCmd.Flags().DurationVar(&compareTimeout, "timeout", 5*time.Minute, "overall comparison timeout")

	// Shared pipeline flags
	compareCmd.Flags().StringVar(&mode, "mode", "smart", "extraction mode: rule or smart")
	compareCmd.Flags().StringVar(&catalogOverlay, "catalog", "", "YAML pattern catalog overlay")
	compareCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable LLM response cache")
	compareCmd.Flags().StringVar(&cacheDir, "cache-dir", "", "directory for the disk cache tier")

	// LLM flags
	compareCmd.Flags().StringVar(&llmProvider, "llm-provider", "", "LLM provider for gap filling (openai, ollama)")
	compareCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name")
	compareCmd.Flags().IntVar(&llmRPM, "llm-rpm", 0, "LLM request budget per minute (0 = config default)")
}

func runCompare(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), compareTimeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return err
	}

	reports := make([]*model.ExtractionReport, 0, len(args))
	for _, path := range args {
		if verbose {
			fmt.Fprintf(os.Stderr, "⚙  Extracting %s...\n", path)
		}
		report, err := p.ProcessFile(ctx, path)
		if err != nil {
			return fmt.Errorf("extract %s: %w", path, err)
		}
		reports = append(reports, report)
	}

	result := compare.Compare(reports)

	renderer := pipeline.NewRenderer(cfg.Output.IncludeFooter)
	if compareJSON != "" {
		if err := renderer.RenderComparisonJSON(result, compareJSON); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", compareJSON)
		}
	}
	if compareCSV != "" {
		if err := renderer.RenderComparisonCSV(result, compareCSV); err != nil {
			return fmt.Errorf("render CSV: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote CSV: %s\n", compareCSV)
		}
	}

	renderer.RenderComparisonSummary(result)
	return nil
}
