package conflict

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/ppiankov/loanlens/internal/model"
)

// Categories whose facts carry numeric ranges worth cross-checking. A fact
// whose key mentions several keywords lands in each matching category.
var rangeCategories = []string{"ltv", "interest_rate", "processing_fee", "age", "income", "tenure"}

type boundType int

const (
	boundRange boundType = iota
	boundUpper
	boundLower
)

// numericRange is a parsed range from a single fact value
type numericRange struct {
	fact model.ExtractedFact
	min  float64
	max  float64
	typ  boundType
}

var rangePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:%|L|Cr|K)?\s*(?:-|–|—|to)\s*(\d+(?:\.\d+)?)\s*(?:%|L|Cr|K)?`),
	regexp.MustCompile(`(?i)up\s+to\s+(\d+(?:\.\d+)?)\s*(?:%|L|Cr|K)?`),
	regexp.MustCompile(`(?i)minimum\s+(\d+(?:\.\d+)?)\s*(?:%|L|Cr|K)?`),
	regexp.MustCompile(`(?i)maximum\s+(\d+(?:\.\d+)?)\s*(?:%|L|Cr|K)?`),
}

func (d *Detector) detectRangeConflicts(facts []model.ExtractedFact) []model.ConflictRecord {
	byCategory := make(map[string][]model.ExtractedFact)
	for _, f := range facts {
		keyLower := strings.ToLower(f.Key)
		for _, category := range rangeCategories {
			if strings.Contains(keyLower, category) {
				byCategory[category] = append(byCategory[category], f)
			}
		}
	}

	var conflicts []model.ConflictRecord
	for _, category := range rangeCategories {
		categoryFacts := byCategory[category]
		if len(categoryFacts) < 2 {
			continue
		}
		ranges := extractRanges(categoryFacts)
		for i := 0; i < len(ranges); i++ {
			for j := i + 1; j < len(ranges); j++ {
				if !d.rangesContradict(ranges[i], ranges[j]) {
					continue
				}
				conflicts = append(conflicts, model.ConflictRecord{
					Type:              model.ConflictOverlappingRanges,
					Category:          category,
					ConflictingRanges: []string{ranges[i].String(), ranges[j].String()},
					Sources:           []string{ranges[i].fact.SourceText, ranges[j].fact.SourceText},
					Severity:          model.ConflictSeverityHigh,
					Recommendation:    "Mark as SUSPECT - contradictory range information",
				})
			}
		}
	}
	return conflicts
}

// extractRanges parses each fact value against the range patterns in order
// and keeps the first interpretation that applies.
func extractRanges(facts []model.ExtractedFact) []numericRange {
	var ranges []numericRange
	for _, f := range facts {
		lower := strings.ToLower(f.Value)
		for _, p := range rangePatterns {
			m := p.FindStringSubmatch(f.Value)
			if m == nil {
				continue
			}
			if len(m) == 3 && m[2] != "" {
				lo, err1 := strconv.ParseFloat(m[1], 64)
				hi, err2 := strconv.ParseFloat(m[2], 64)
				if err1 == nil && err2 == nil {
					ranges = append(ranges, numericRange{fact: f, min: lo, max: hi, typ: boundRange})
				}
			} else if v, err := strconv.ParseFloat(m[1], 64); err == nil {
				switch {
				case strings.Contains(lower, "up to"):
					ranges = append(ranges, numericRange{fact: f, min: 0, max: v, typ: boundUpper})
				case strings.Contains(lower, "minimum"):
					ranges = append(ranges, numericRange{fact: f, min: v, max: math.Inf(1), typ: boundLower})
				case strings.Contains(lower, "maximum"):
					ranges = append(ranges, numericRange{fact: f, min: 0, max: v, typ: boundUpper})
				}
			}
			break // first matching pattern wins
		}
	}
	return ranges
}

// rangesContradict reports whether two parsed ranges cannot both be true,
// or overlap so little that one of them is probably wrong.
func (d *Detector) rangesContradict(r1, r2 numericRange) bool {
	// two distinct point values always contradict
	if r1.min == r1.max && r2.min == r2.max {
		return r1.min != r2.min
	}

	// "up to X" against "minimum Y" with X < Y leaves no valid value
	if r1.typ == boundUpper && r2.typ == boundLower && r1.max < r2.min {
		return true
	}
	if r1.typ == boundLower && r2.typ == boundUpper && r1.min > r2.max {
		return true
	}

	if r1.typ == boundRange && r2.typ == boundRange {
		overlapStart := math.Max(r1.min, r2.min)
		overlapEnd := math.Min(r1.max, r2.max)
		if overlapStart <= overlapEnd {
			overlap := overlapEnd - overlapStart
			avgWidth := ((r1.max - r1.min) + (r2.max - r2.min)) / 2
			return overlap < d.minOverlapRatio*avgWidth
		}
	}

	return false
}

func (r numericRange) String() string {
	bounds := ""
	switch {
	case math.IsInf(r.max, 1):
		bounds = fmt.Sprintf(">=%s", trimFloat(r.min))
	default:
		bounds = fmt.Sprintf("%s-%s", trimFloat(r.min), trimFloat(r.max))
	}
	return fmt.Sprintf("%q [%s]", r.fact.Value, bounds)
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
