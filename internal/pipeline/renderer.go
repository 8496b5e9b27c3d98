package pipeline

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/ppiankov/loanlens/internal/gaps"
	"github.com/ppiankov/loanlens/internal/model"
)

// Renderer formats extraction and comparison reports for output
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a new renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the report as indented JSON
func (r *Renderer) RenderJSON(report *model.ExtractionReport, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// RenderMarkdown writes a human-readable fact sheet grouped by section
func (r *Renderer) RenderMarkdown(report *model.ExtractionReport, path string) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# Loan Policy Facts: %s\n\n", report.Filename)
	if report.BankHint != "" {
		fmt.Fprintf(&b, "**Bank:** %s\n", report.BankHint)
	}
	fmt.Fprintf(&b, "**Mode:** %s\n", report.Mode)
	fmt.Fprintf(&b, "**Processed:** %s\n\n", report.ProcessedAt.Format("2006-01-02 15:04 UTC"))

	for _, section := range factSections(report.Facts) {
		fmt.Fprintf(&b, "## %s\n\n", sectionTitle(section))
		b.WriteString("| Term | Value | Confidence |\n")
		b.WriteString("|------|-------|------------|\n")
		for _, f := range report.Facts {
			if f.Section() != section {
				continue
			}
			fmt.Fprintf(&b, "| %s | %s | %.2f |\n",
				escapeCell(f.Field()), escapeCell(f.Value), f.Confidence)
		}
		b.WriteString("\n")
	}

	if len(report.Conflicts) > 0 {
		b.WriteString("## Conflicts\n\n")
		for _, c := range report.Conflicts {
			b.WriteString(renderConflictLine(c))
		}
		b.WriteString("\n")
	}

	if len(report.Gaps) > 0 {
		b.WriteString("## Missing High-Value Terms\n\n")
		sections := make([]string, 0, len(report.Gaps))
		for s := range report.Gaps {
			sections = append(sections, s)
		}
		sort.Strings(sections)
		for _, s := range sections {
			fmt.Fprintf(&b, "- **%s**: %s\n", s, strings.Join(report.Gaps[s], ", "))
		}
		b.WriteString("\n")
	}

	if r.includeFooter {
		fmt.Fprintf(&b, "---\n*%d facts (%d from rules, %d from gap filling), %d conflicts*\n",
			len(report.Facts), report.RuleFactCount, report.LLMFactCount, len(report.Conflicts))
	}

	return os.WriteFile(path, []byte(b.String()), 0644)
}

// RenderSummary prints a one-screen summary to stdout
func (r *Renderer) RenderSummary(report *model.ExtractionReport) {
	fmt.Printf("\n%s (%s mode)\n", report.Filename, report.Mode)
	fmt.Printf("  Facts:     %d (%d rules, %d gap filling)\n",
		len(report.Facts), report.RuleFactCount, report.LLMFactCount)
	fmt.Printf("  Conflicts: %d\n", len(report.Conflicts))

	for _, c := range report.Conflicts {
		if c.Severity == model.ConflictSeverityHigh {
			fmt.Printf("  ⚠ %s", renderConflictLine(c))
		}
	}

	if len(report.Gaps) > 0 {
		fmt.Printf("  Missing:   %d high-value terms\n", gaps.TermCount(report.Gaps))
	}
}

// RenderComparisonJSON writes a cross-document comparison as indented JSON
func (r *Renderer) RenderComparisonJSON(report *model.ComparisonReport, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal comparison: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// RenderComparisonCSV writes the comparison matrix as CSV: one row per fact
// key, one column per document, plus the status.
func (r *Renderer) RenderComparisonCSV(report *model.ComparisonReport, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	header := append([]string{"fact_key", "status"}, report.Documents...)
	if err := w.Write(header); err != nil {
		return err
	}
	for _, fc := range report.Facts {
		row := []string{fc.Key, string(fc.Status)}
		for _, doc := range report.Documents {
			row = append(row, fc.Values[doc])
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// RenderComparisonSummary prints comparison counts to stdout
func (r *Renderer) RenderComparisonSummary(report *model.ComparisonReport) {
	fmt.Printf("\nCompared %d documents, %d fact keys\n", len(report.Documents), len(report.Facts))
	for _, status := range []model.ComparisonStatus{
		model.ComparisonSame, model.ComparisonDifferent,
		model.ComparisonMissing, model.ComparisonSuspect,
	} {
		if n := report.Summary[string(status)]; n > 0 {
			fmt.Printf("  %-10s %d\n", string(status)+":", n)
		}
	}
}

func renderConflictLine(c model.ConflictRecord) string {
	switch c.Type {
	case model.ConflictValueContradiction:
		return fmt.Sprintf("- **%s** (%s): %s\n",
			c.Key, c.Severity, strings.Join(c.ConflictingValues, " vs "))
	case model.ConflictOverlappingRanges:
		return fmt.Sprintf("- **%s ranges** (%s): %s. %s\n",
			c.Category, c.Severity, strings.Join(c.ConflictingRanges, " vs "), c.Recommendation)
	}
	return fmt.Sprintf("- %s (%s)\n", c.Type, c.Severity)
}

// factSections returns the distinct sections in first-seen order
func factSections(facts []model.ExtractedFact) []string {
	seen := make(map[string]bool)
	var sections []string
	for _, f := range facts {
		s := f.Section()
		if !seen[s] {
			seen[s] = true
			sections = append(sections, s)
		}
	}
	return sections
}

// sectionTitle turns a snake_case section key into a display heading
func sectionTitle(section string) string {
	words := strings.Split(section, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
