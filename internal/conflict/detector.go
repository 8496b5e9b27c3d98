// Package conflict finds contradictions between facts that claim the same
// key or the same numeric range category. It runs on normalized facts so
// that synonym keys have already collapsed.
package conflict

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/ppiankov/loanlens/internal/model"
)

// DefaultMinOverlapRatio flags two ranges as suspect when their overlap is
// below this fraction of the average range width.
const DefaultMinOverlapRatio = 0.3

// confidence gap below which a value contradiction is high severity: two
// equally-trusted sources disagreeing is worse than a weak source
// disagreeing with a strong one.
const highSeverityConfidenceGap = 0.2

var (
	nonNumericRe = regexp.MustCompile(`[^\d.-]`)
	nonWordRe    = regexp.MustCompile(`[^\w]`)
)

// Detector compares facts pairwise within key groups and range categories
type Detector struct {
	minOverlapRatio float64
}

// NewDetector creates a detector. A non-positive ratio falls back to the
// default.
func NewDetector(minOverlapRatio float64) *Detector {
	if minOverlapRatio <= 0 {
		minOverlapRatio = DefaultMinOverlapRatio
	}
	return &Detector{minOverlapRatio: minOverlapRatio}
}

// Detect returns all value contradictions and overlapping-range conflicts in
// the fact set. Output order follows input fact order, so results are
// deterministic for a given document.
func (d *Detector) Detect(facts []model.ExtractedFact) []model.ConflictRecord {
	var conflicts []model.ConflictRecord
	conflicts = append(conflicts, d.detectValueConflicts(facts)...)
	conflicts = append(conflicts, d.detectRangeConflicts(facts)...)
	return conflicts
}

func (d *Detector) detectValueConflicts(facts []model.ExtractedFact) []model.ConflictRecord {
	groups := make(map[string][]model.ExtractedFact)
	var order []string
	for _, f := range facts {
		if _, seen := groups[f.Key]; !seen {
			order = append(order, f.Key)
		}
		groups[f.Key] = append(groups[f.Key], f)
	}

	var conflicts []model.ConflictRecord
	for _, key := range order {
		group := groups[key]
		for i := 0; i < len(group); i++ {
			for j := i + 1; j < len(group); j++ {
				a, b := group[i], group[j]
				if !valuesConflict(a.Value, b.Value) {
					continue
				}
				severity := model.ConflictSeverityMedium
				if math.Abs(a.Confidence-b.Confidence) < highSeverityConfidenceGap {
					severity = model.ConflictSeverityHigh
				}
				conflicts = append(conflicts, model.ConflictRecord{
					Type:              model.ConflictValueContradiction,
					Key:               key,
					ConflictingValues: []string{a.Value, b.Value},
					Sources:           []string{a.SourceText, b.SourceText},
					ConfidenceScores:  []float64{a.Confidence, b.Confidence},
					Severity:          severity,
				})
			}
		}
	}
	return conflicts
}

// valuesConflict reports whether two values for the same key disagree.
// Numeric values conflict when they differ by more than 10% of the larger;
// non-numeric values conflict when they differ after stripping case and
// punctuation.
func valuesConflict(v1, v2 string) bool {
	if v1 == v2 {
		return false
	}

	n1, err1 := strconv.ParseFloat(nonNumericRe.ReplaceAllString(v1, ""), 64)
	n2, err2 := strconv.ParseFloat(nonNumericRe.ReplaceAllString(v2, ""), 64)
	if err1 == nil && err2 == nil {
		if larger := math.Max(n1, n2); larger > 0 {
			return math.Abs(n1-n2)/larger > 0.1
		}
		return false
	}

	w1 := nonWordRe.ReplaceAllString(strings.ToLower(v1), "")
	w2 := nonWordRe.ReplaceAllString(strings.ToLower(v2), "")
	return w1 != w2 && w1 != "" && w2 != ""
}
