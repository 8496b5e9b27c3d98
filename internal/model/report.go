package model

import "time"

// ExtractionReport is the complete result of one document-processing pass.
// Facts are created fresh per pass; there is no persistence identity across
// runs.
type ExtractionReport struct {
	DocumentID  string    `json:"document_id"`
	Filename    string    `json:"filename"`
	BankHint    string    `json:"bank_hint,omitempty"` // SBI, HDFC, ICICI, DBS/HSBC
	Mode        string    `json:"mode"`                // rule or smart
	ProcessedAt time.Time `json:"processed_at"`

	Facts     []ExtractedFact  `json:"facts"`
	Conflicts []ConflictRecord `json:"conflicts"`

	// Gaps holds the high-value terms still missing after the rule pass,
	// keyed by section. These are the terms the external collaborator was
	// (or would have been) asked for.
	Gaps map[string][]string `json:"gaps,omitempty"`

	RuleFactCount int `json:"rule_fact_count"`
	LLMFactCount  int `json:"llm_fact_count"`
}

// ComparisonStatus describes how a fact key compares across documents
type ComparisonStatus string

const (
	ComparisonSame      ComparisonStatus = "same"
	ComparisonDifferent ComparisonStatus = "different"
	ComparisonMissing   ComparisonStatus = "missing"
	ComparisonSuspect   ComparisonStatus = "suspect"
)

// FactComparison is the per-key row of a cross-document comparison
type FactComparison struct {
	Key        string             `json:"fact_key"`
	Status     ComparisonStatus   `json:"status"`
	Values     map[string]string  `json:"values"` // document label -> value ("" when missing)
	Confidence map[string]float64 `json:"confidence_scores,omitempty"`
	Evidence   map[string]string  `json:"evidence,omitempty"` // document label -> source snippet
}

// ComparisonReport diffs normalized fact sets across multiple documents
type ComparisonReport struct {
	Documents []string         `json:"documents"`
	Facts     []FactComparison `json:"fact_comparisons"`
	Summary   map[string]int   `json:"summary"` // status -> count
	CreatedAt time.Time        `json:"created_at"`
}
