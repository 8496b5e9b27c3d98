// Package pipeline orchestrates the complete extraction pass: rules first,
// gap analysis, one targeted collaborator call for what the rules missed,
// then normalization and conflict detection over the combined facts.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/ppiankov/loanlens/internal/cache"
	"github.com/ppiankov/loanlens/internal/catalog"
	"github.com/ppiankov/loanlens/internal/conflict"
	"github.com/ppiankov/loanlens/internal/extract"
	"github.com/ppiankov/loanlens/internal/gaps"
	"github.com/ppiankov/loanlens/internal/ingest"
	"github.com/ppiankov/loanlens/internal/llm"
	"github.com/ppiankov/loanlens/internal/model"
	"github.com/ppiankov/loanlens/internal/normalize"
	"github.com/ppiankov/loanlens/internal/worker"
)

// RateLimiter throttles collaborator calls; satisfied by worker.Limiter
type RateLimiter interface {
	Wait(ctx context.Context, provider string) error
}

// Pipeline orchestrates the complete extraction process
type Pipeline struct {
	ruleExtractor *extract.RuleExtractor
	analyzer      *gaps.Analyzer
	normalizer    *normalize.Normalizer
	detector      *conflict.Detector
	renderer      *Renderer
	provider      llm.Provider // Optional gap filler (nil if disabled)
	limiter       RateLimiter
	cache         cache.Cache
	config        *model.Config
}

// NewPipeline creates a new pipeline with the given configuration
func NewPipeline(cfg *model.Config) (*Pipeline, error) {
	cat := catalog.Default()
	if cfg.Extraction.CatalogOverlay != "" {
		overlaid, err := cat.WithOverlay(cfg.Extraction.CatalogOverlay)
		if err != nil {
			return nil, fmt.Errorf("load catalog overlay: %w", err)
		}
		cat = overlaid
	}

	// Create LLM provider if configured
	var provider llm.Provider
	if cfg.LLM.Provider != "" {
		p, err := llm.NewProvider(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Failed to initialize LLM provider: %v\n", err)
		} else {
			provider = p
		}
	}

	var responseCache cache.Cache
	if cfg.Cache.Enabled {
		if cfg.Cache.Dir != "" {
			responseCache = cache.NewLayeredCache(cfg.Cache.TTL, cfg.Cache.Dir, cfg.Cache.TTL)
		} else {
			responseCache = cache.NewMemoryCache(cfg.Cache.TTL, 10*time.Minute)
		}
	}

	return &Pipeline{
		ruleExtractor: extract.NewRuleExtractor(cat),
		analyzer:      gaps.NewAnalyzer(),
		normalizer:    normalize.NewNormalizer(),
		detector:      conflict.NewDetector(cfg.Conflict.MinOverlapRatio),
		renderer:      NewRenderer(cfg.Output.IncludeFooter),
		provider:      provider,
		limiter:       worker.NewLimiter(cfg.LLM.RequestsPerMinute),
		cache:         responseCache,
		config:        cfg,
	}, nil
}

// ProcessFile loads one document from disk and processes it. Implements
// worker.Processor for batch runs.
func (p *Pipeline) ProcessFile(ctx context.Context, path string) (*model.ExtractionReport, error) {
	doc, err := ingest.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}
	return p.Process(ctx, doc)
}

// Process runs the full extraction pass over one loaded document
func (p *Pipeline) Process(ctx context.Context, doc *ingest.Document) (*model.ExtractionReport, error) {
	mode := p.config.Extraction.Mode
	if mode == "" {
		mode = "smart"
	}
	if mode == "smart" && p.provider == nil {
		// Smart without a collaborator is just the rule pass
		mode = "rule"
	}

	// 1. Rule-based extraction
	ruleFacts := p.ruleExtractor.Extract(doc.Text, doc.Filename)
	p.verbose("rules found %d facts in %s", len(ruleFacts), doc.Filename)

	// 2. Gap analysis runs on the RAW rule facts: checklist keys match
	// catalog keys only before synonym collapsing.
	gapsBySection := p.analyzer.Analyze(ruleFacts)
	p.verbose("%d high-value terms still missing", gaps.TermCount(gapsBySection))

	// 3. One targeted collaborator call, smart mode only
	var llmFacts []model.ExtractedFact
	if mode == "smart" && p.provider != nil && len(gapsBySection) > 0 {
		llmFacts = p.fillGaps(ctx, doc, gapsBySection)
		p.verbose("collaborator added %d facts", len(llmFacts))
	}

	// 4. Combine, normalize, filter
	allFacts := append(append([]model.ExtractedFact{}, ruleFacts...), llmFacts...)
	normalized := p.normalizer.NormalizeFacts(allFacts)

	// 5. Conflict detection over the normalized set
	conflicts := p.detector.Detect(normalized)

	return &model.ExtractionReport{
		DocumentID:    doc.ID,
		Filename:      doc.Filename,
		BankHint:      doc.BankHint,
		Mode:          mode,
		ProcessedAt:   time.Now().UTC(),
		Facts:         normalized,
		Conflicts:     conflicts,
		Gaps:          gapsBySection,
		RuleFactCount: len(ruleFacts),
		LLMFactCount:  len(llmFacts),
	}, nil
}

// fillGaps asks the collaborator for the missing terms, going through the
// response cache and the request budget. A provider failure degrades to
// rule-only output instead of failing the document.
func (p *Pipeline) fillGaps(ctx context.Context, doc *ingest.Document, gapsBySection map[string][]string) []model.ExtractedFact {
	key := cache.ResponseKey(doc.Text, gapsBySection, p.config.LLM.Model)
	if p.cache != nil {
		if data, found := p.cache.Get(key); found {
			var facts []model.ExtractedFact
			if err := json.Unmarshal(data, &facts); err == nil {
				p.verbose("collaborator response served from cache")
				return facts
			}
		}
	}

	if p.limiter != nil {
		if err := p.limiter.Wait(ctx, p.provider.Name()); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: request budget wait aborted: %v\n", err)
			return nil
		}
	}

	resp, err := p.provider.ExtractFacts(ctx, llm.ExtractRequest{
		DocumentText: doc.Text,
		Gaps:         gapsBySection,
		Filename:     doc.Filename,
	})
	if err != nil {
		// Don't fail the document; the rule facts still stand
		fmt.Fprintf(os.Stderr, "Warning: gap extraction failed: %v\n", err)
		return nil
	}

	// The collaborator only gets to answer what was asked. Whatever else it
	// volunteers is dropped here, whichever provider produced it.
	requested := make([]model.ExtractedFact, 0, len(resp.Facts))
	for _, f := range resp.Facts {
		if gaps.Contains(gapsBySection, f.Key) {
			requested = append(requested, f)
		}
	}

	if p.cache != nil {
		if data, err := json.Marshal(requested); err == nil {
			if err := p.cache.Set(key, data, p.config.Cache.TTL); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: cache write failed: %v\n", err)
			}
		}
	}

	return requested
}

// RenderReport renders the report to the specified outputs
func (p *Pipeline) RenderReport(report *model.ExtractionReport, jsonPath, mdPath string, verbose bool) error {
	// Render JSON
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(report, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote JSON: %s\n", jsonPath)
		}
	}

	// Render Markdown
	if mdPath != "" {
		if err := p.renderer.RenderMarkdown(report, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote Markdown: %s\n", mdPath)
		}
	}

	// Print summary to stdout
	p.renderer.RenderSummary(report)

	return nil
}

func (p *Pipeline) verbose(format string, args ...interface{}) {
	if p.config.Output.Verbose {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
