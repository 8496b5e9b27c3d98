package normalize

import (
	"regexp"
	"strings"
)

// synonymGroup maps a canonical banking term to the variants that collapse
// into it. Groups are applied in order and share a single pass, so mirrored
// pairs (cibil/credit_score, prepayment/foreclosure, tenure/term) settle on
// the later canonical and stay there on repeated application.
type synonymGroup struct {
	canonical string
	synonyms  []string
}

var termSynonyms = []synonymGroup{
	{"cibil", []string{"credit_score", "cibil_score", "credit_rating", "bureau_score"}},
	{"credit_score", []string{"cibil", "cibil_score", "credit_rating", "bureau_score"}},
	{"processing_fee", []string{"login_fee", "login_charges", "login_fee_processing_fee", "admin_fee", "administrative_charges", "handling_charges"}},
	{"prepayment", []string{"foreclosure", "pre_closure", "early_repayment", "premature_closure"}},
	{"foreclosure", []string{"prepayment", "pre_closure", "early_repayment", "premature_closure"}},
	{"ltv", []string{"loan_to_value", "ltv_ratio", "financing_ratio"}},
	{"tenure", []string{"term", "loan_term", "repayment_period", "loan_period"}},
	{"term", []string{"tenure", "loan_term", "repayment_period", "loan_period"}},
	{"emi", []string{"equated_monthly_installment", "monthly_installment", "installment"}},
	{"interest_rate", []string{"roi", "rate_of_interest", "lending_rate", "home_loan_rate"}},
	{"property_value", []string{"property_cost", "property_worth", "asset_value"}},
	{"income_proof", []string{"salary_certificate", "income_certificate", "pay_slip"}},
	{"reset", []string{"revision", "rate_change", "adjustment"}},
	{"grievance", []string{"complaint", "dispute", "issue_resolution"}},
}

var (
	nonKeyChars = regexp.MustCompile(`[^a-z0-9_]`)
	multiScore  = regexp.MustCompile(`_+`)
)

// NormalizeKey canonicalizes a fact key. Dotted keys are treated as
// section.field and only the field part goes through synonym collapsing;
// the section name is cleaned but otherwise preserved.
func (n *Normalizer) NormalizeKey(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return key
	}

	if section, field, ok := strings.Cut(key, "."); ok {
		return cleanSegment(section) + "." + applySynonyms(cleanSegment(field))
	}
	return applySynonyms(cleanSegment(key))
}

// cleanSegment lower-cases a key segment and squeezes it into snake_case
func cleanSegment(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = nonKeyChars.ReplaceAllString(s, "_")
	s = multiScore.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}

// applySynonyms runs one pass over the synonym groups. For each group the
// first variant found as a substring is replaced everywhere it occurs, then
// the scan moves on to the next group.
func applySynonyms(field string) string {
	for _, group := range termSynonyms {
		for _, syn := range group.synonyms {
			if strings.Contains(field, syn) {
				field = strings.ReplaceAll(field, syn, group.canonical)
				break
			}
		}
	}
	return field
}
