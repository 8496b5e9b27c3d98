// Package gaps decides what the rule pass missed. The checklist is limited
// to high-value terms that template MITC documents reliably carry; sections
// that are usually blank template fields (loan_amount_and_ltv, eligibility,
// repayment) are deliberately not chased.
package gaps

import (
	"sort"
	"strings"

	"github.com/ppiankov/loanlens/internal/model"
)

// checklistSection pairs a document section with the terms worth asking a
// language model for when rules come up empty.
type checklistSection struct {
	Section string
	Terms   []string
}

var highValueTerms = []checklistSection{
	{"fees_and_charges", []string{"processing_fee", "administrative_fee", "legal_charges", "valuation_charges"}},
	{"prepayment_and_foreclosure", []string{"prepayment_penalty", "foreclosure_charges", "lock_in_period"}},
	{"interest_rates", []string{"reset_frequency", "benchmark_rate", "rate_change_communication", "notification_method"}},
	{"documents", []string{"required_documents", "kyc_documents"}},
	{"grievance", []string{"process", "complaint_procedure", "customer_service"}},
}

// Analyzer computes missing high-value terms from rule extraction output
type Analyzer struct{}

// NewAnalyzer creates a gap analyzer
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze returns section -> missing terms for every checklist term the rule
// facts did not cover. It must run on the raw rule facts, before key
// normalization rewrites synonyms, so that checklist keys line up with
// catalog keys. Sections with no gaps are omitted.
func (a *Analyzer) Analyze(ruleFacts []model.ExtractedFact) map[string][]string {
	found := make(map[string]struct{}, len(ruleFacts))
	for _, f := range ruleFacts {
		found[f.Key] = struct{}{}
	}

	gaps := make(map[string][]string)
	for _, cs := range highValueTerms {
		var missing []string
		for _, term := range cs.Terms {
			if _, ok := found[cs.Section+"."+term]; !ok {
				missing = append(missing, term)
			}
		}
		if len(missing) > 0 {
			gaps[cs.Section] = missing
		}
	}
	return gaps
}

// Sections returns checklist section names in checklist order, filtered to
// those present in gaps. Iteration over the gaps map itself is unordered;
// prompt construction and logging go through this instead.
func Sections(gaps map[string][]string) []string {
	var out []string
	for _, cs := range highValueTerms {
		if _, ok := gaps[cs.Section]; ok {
			out = append(out, cs.Section)
		}
	}
	// overlay or LLM keys outside the checklist keep a stable order too
	var extra []string
	for section := range gaps {
		if !isChecklistSection(section) {
			extra = append(extra, section)
		}
	}
	sort.Strings(extra)
	return append(out, extra...)
}

// Contains reports whether section.term (or a bare key) was requested
func Contains(gaps map[string][]string, key string) bool {
	section, term, ok := strings.Cut(key, ".")
	if !ok {
		section, term = key, key
	}
	for _, t := range gaps[section] {
		if t == term {
			return true
		}
	}
	return false
}

// TermCount sums missing terms across all sections
func TermCount(gaps map[string][]string) int {
	total := 0
	for _, terms := range gaps {
		total += len(terms)
	}
	return total
}

func isChecklistSection(section string) bool {
	for _, cs := range highValueTerms {
		if cs.Section == section {
			return true
		}
	}
	return false
}
