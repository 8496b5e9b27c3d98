package model

import "strings"

// Confidence assigned to facts produced by the deterministic rule extractor.
// Rules are conservative: they only fire on clear pattern matches.
const RuleConfidence = 0.75

// Confidence assigned to LTV band facts parsed from tiered tables.
const BandConfidence = 0.70

// ExtractedFact is a single term/value pair extracted from a loan policy
// document, identified by a dotted section.field key (e.g.
// "fees_and_charges.processing_fee"). Keys are not unique across a fact set;
// repeated keys are evidence of a potential conflict.
type ExtractedFact struct {
	Key             string  `json:"key"`
	Value           string  `json:"value"`
	Confidence      float64 `json:"confidence"`
	SourceText      string  `json:"source_text,omitempty"`      // snippet around the match
	SourceReference string  `json:"source_reference,omitempty"` // filename:~start-end
	EffectiveDate   string  `json:"effective_date,omitempty"`   // document-stated date, if detected
}

// Section returns the section part of the key, or the whole key when undotted.
func (f ExtractedFact) Section() string {
	if i := strings.Index(f.Key, "."); i >= 0 {
		return f.Key[:i]
	}
	return f.Key
}

// Field returns the field part of the key, or the whole key when undotted.
func (f ExtractedFact) Field() string {
	if i := strings.Index(f.Key, "."); i >= 0 {
		return f.Key[i+1:]
	}
	return f.Key
}

// Band is one row of a tiered LTV table: an LTV percentage tied to an
// optional rupee amount range. Unit conversion happens downstream in
// normalization; the parser only tags the unit it saw.
type Band struct {
	MinAmount *int   `json:"min_amount"`
	MaxAmount *int   `json:"max_amount"`
	Unit      string `json:"unit,omitempty"` // L, Cr, K, ...
	LTV       string `json:"ltv"`            // "90%"
}
