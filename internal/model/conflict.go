package model

// ConflictType classifies a detected contradiction
type ConflictType string

const (
	// Two facts share a key but disagree on the value
	ConflictValueContradiction ConflictType = "value_contradiction"
	// Two numeric ranges in the same category contradict or barely overlap
	ConflictOverlappingRanges ConflictType = "overlapping_ranges"
)

// ConflictSeverity indicates how seriously a conflict should be treated
type ConflictSeverity string

const (
	ConflictSeverityHigh   ConflictSeverity = "high"
	ConflictSeverityMedium ConflictSeverity = "medium"
)

// ConflictRecord describes one detected contradiction in a fact set.
// Records are recomputed on demand and never persisted.
type ConflictRecord struct {
	Type              ConflictType     `json:"type"`
	Key               string           `json:"key,omitempty"`      // for value contradictions
	Category          string           `json:"category,omitempty"` // for range contradictions (ltv, tenure, ...)
	ConflictingValues []string         `json:"conflicting_values,omitempty"`
	ConflictingRanges []string         `json:"conflicting_ranges,omitempty"`
	Sources           []string         `json:"sources,omitempty"`
	ConfidenceScores  []float64        `json:"confidence_scores,omitempty"`
	Severity          ConflictSeverity `json:"severity"`
	Recommendation    string           `json:"recommendation,omitempty"`
}
