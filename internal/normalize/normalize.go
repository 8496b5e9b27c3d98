// Package normalize canonicalizes fact keys and values: synonym-collapsed
// snake_case keys, INR currency amounts, percentage formatting, numeric
// coercion and text cleanup, followed by a placeholder filter. Every
// transform is a pure function of its inputs and idempotent, so facts that
// re-enter the pipeline come out unchanged.
package normalize

import "github.com/ppiankov/loanlens/internal/model"

// Normalizer rewrites extracted facts into canonical form and drops
// obviously bad ones.
type Normalizer struct{}

// NewNormalizer creates a normalizer
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// NormalizeFacts normalizes a fact list and filters placeholder values.
// The bad-value filter runs after normalization, as the last gate before a
// fact is accepted.
func (n *Normalizer) NormalizeFacts(facts []model.ExtractedFact) []model.ExtractedFact {
	normalized := make([]model.ExtractedFact, 0, len(facts))
	for _, f := range facts {
		nf := n.NormalizeFact(f)
		if looksBad(nf.Value) {
			continue
		}
		normalized = append(normalized, nf)
	}
	return normalized
}

// NormalizeFact returns a normalized copy of a single fact. The value is
// normalized against the original key, which still carries the raw
// type-indicating keywords.
func (n *Normalizer) NormalizeFact(f model.ExtractedFact) model.ExtractedFact {
	out := f
	out.Key = n.NormalizeKey(f.Key)
	out.Value = n.NormalizeValue(f.Value, f.Key)
	return out
}
