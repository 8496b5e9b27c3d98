package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ppiankov/loanlens/internal/model"
	"github.com/ppiankov/loanlens/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	mode           string
	outJSON        string
	outMD          string
	timeout        time.Duration
	noCache        bool
	cacheDir       string
	noFooter       bool
	catalogOverlay string
	llmProvider    string
	llmModel       string
	llmRPM         int
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Extract loan policy facts from a single document",
	Long: `Extract analyzes one policy document (.txt, .md or .html) to:
- Pull the priority MITC terms with deterministic patterns
- Identify the high-value terms the rules missed
- Ask the configured LLM collaborator for those gaps only (smart mode)
- Normalize keys and values into a comparable fact sheet
- Flag contradictory values and suspicious numeric ranges

Example:
  loanlens extract sbi_mitc.txt
  loanlens extract hdfc_mitc.html --json report.json --md report.md
  loanlens extract icici_mitc.txt --mode rule
  loanlens extract dbs_mitc.txt --llm-provider openai --llm-model gpt-4o-mini`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	// Pipeline flags
	extractCmd.Flags().StringVar(&mode, "mode", "smart", "extraction mode: rule or smart")
	extractCmd.Flags().StringVar(&catalogOverlay, "catalog", "", "YAML pattern catalog overlay")
	extractCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall extraction timeout")

	// Output flags
	extractCmd.Flags().StringVar(&outJSON, "json", "report.json", "output JSON path")
	extractCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	extractCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	// Cache flags
	extractCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable LLM response cache")
	extractCmd.Flags().StringVar(&cacheDir, "cache-dir", "", "directory for the disk cache tier (default memory only)")

	// LLM flags
	extractCmd.Flags().StringVar(&llmProvider, "llm-provider", "", "LLM provider for gap filling (openai, ollama)")
	extractCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name")
	extractCmd.Flags().IntVar(&llmRPM, "llm-rpm", 0, "LLM request budget per minute (0 = config default)")
}

func runExtract(cmd *cobra.Command, args []string) error {
	path := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Extracting: %s\n", path)
		fmt.Fprintf(os.Stderr, "Mode: %s\n", cfg.Extraction.Mode)
		fmt.Fprintf(os.Stderr, "Cache: %v\n", cfg.Cache.Enabled)
		fmt.Fprintln(os.Stderr)
	}

	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return err
	}

	report, err := p.ProcessFile(ctx, path)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Extracted %d facts (%d rules, %d gap filling)\n",
			len(report.Facts), report.RuleFactCount, report.LLMFactCount)
		fmt.Fprintf(os.Stderr, "✓ Detected %d conflicts\n", len(report.Conflicts))
		fmt.Fprintln(os.Stderr)
	}

	if err := p.RenderReport(report, outJSON, outMD, verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	return nil
}

// buildConfig merges CLI flags over the file/env configuration
func buildConfig() (*model.Config, error) {
	cfg, err := model.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if mode != "" {
		cfg.Extraction.Mode = mode
	}
	if cfg.Extraction.Mode != "rule" && cfg.Extraction.Mode != "smart" {
		return nil, fmt.Errorf("unknown extraction mode %q (want rule or smart)", cfg.Extraction.Mode)
	}
	if catalogOverlay != "" {
		cfg.Extraction.CatalogOverlay = catalogOverlay
	}
	if noCache {
		cfg.Cache.Enabled = false
	}
	if cacheDir != "" {
		cfg.Cache.Dir = cacheDir
	}
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter

	if llmProvider != "" {
		cfg.LLM.Provider = llmProvider
	}
	if llmModel != "" {
		cfg.LLM.Model = llmModel
	}
	if llmRPM > 0 {
		cfg.LLM.RequestsPerMinute = llmRPM
	}

	// Get API key and endpoint from environment
	switch cfg.LLM.Provider {
	case "openai":
		if cfg.LLM.APIKey == "" {
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		}
		if cfg.LLM.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "ollama":
		// Ollama doesn't need an API key
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			cfg.LLM.BaseURL = baseURL
		}
	}

	return cfg, nil
}
