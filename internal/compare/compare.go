// Package compare diffs normalized fact sets across multiple policy
// documents, producing a per-key matrix suitable for side-by-side review
// of competing bank offers.
package compare

import (
	"time"

	"github.com/ppiankov/loanlens/internal/model"
)

// Compare builds a cross-document comparison from per-document extraction
// reports. Documents are labeled by filename. A key is "suspect" when any
// document reported a conflict on it, "missing" when at least one document
// lacks it, "different" when the normalized values disagree, else "same".
func Compare(reports []*model.ExtractionReport) *model.ComparisonReport {
	labels := make([]string, 0, len(reports))
	for _, r := range reports {
		labels = append(labels, r.Filename)
	}

	// Per-document fact index, first occurrence wins
	indexes := make([]map[string]model.ExtractedFact, len(reports))
	for i, r := range reports {
		idx := make(map[string]model.ExtractedFact, len(r.Facts))
		for _, f := range r.Facts {
			if _, seen := idx[f.Key]; !seen {
				idx[f.Key] = f
			}
		}
		indexes[i] = idx
	}

	conflicted := conflictedKeys(reports)

	var comparisons []model.FactComparison
	for _, key := range unionKeys(reports) {
		fc := model.FactComparison{
			Key:        key,
			Values:     make(map[string]string, len(reports)),
			Confidence: make(map[string]float64),
			Evidence:   make(map[string]string),
		}

		present := 0
		for i, label := range labels {
			f, ok := indexes[i][key]
			if !ok {
				fc.Values[label] = ""
				continue
			}
			present++
			fc.Values[label] = f.Value
			fc.Confidence[label] = f.Confidence
			if f.SourceText != "" {
				fc.Evidence[label] = f.SourceText
			}
		}

		fc.Status = classify(fc.Values, labels, present, len(reports), conflicted[key])
		comparisons = append(comparisons, fc)
	}

	summary := make(map[string]int)
	for _, fc := range comparisons {
		summary[string(fc.Status)]++
	}

	return &model.ComparisonReport{
		Documents: labels,
		Facts:     comparisons,
		Summary:   summary,
		CreatedAt: time.Now().UTC(),
	}
}

func classify(values map[string]string, labels []string, present, total int, conflicted bool) model.ComparisonStatus {
	switch {
	case conflicted:
		return model.ComparisonSuspect
	case present < total:
		return model.ComparisonMissing
	}

	first := values[labels[0]]
	for _, label := range labels[1:] {
		if values[label] != first {
			return model.ComparisonDifferent
		}
	}
	return model.ComparisonSame
}

// unionKeys returns all fact keys across the reports in first-seen order
func unionKeys(reports []*model.ExtractionReport) []string {
	seen := make(map[string]bool)
	var keys []string
	for _, r := range reports {
		for _, f := range r.Facts {
			if !seen[f.Key] {
				seen[f.Key] = true
				keys = append(keys, f.Key)
			}
		}
	}
	return keys
}

// conflictedKeys collects the keys any document flagged a conflict on
func conflictedKeys(reports []*model.ExtractionReport) map[string]bool {
	keys := make(map[string]bool)
	for _, r := range reports {
		for _, c := range r.Conflicts {
			if c.Key != "" {
				keys[c.Key] = true
			}
		}
	}
	return keys
}
