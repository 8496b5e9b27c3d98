package normalize

import (
	"testing"

	"github.com/ppiankov/loanlens/internal/model"
)

func TestNormalizeKeySynonyms(t *testing.T) {
	n := NewNormalizer()

	cases := []struct {
		in   string
		want string
	}{
		{"eligibility.bureau_score", "eligibility.credit_score"},
		{"eligibility.cibil_score", "eligibility.credit_score"},
		{"Fees & Charges.Processing Fee", "fees_charges.processing_fee"},
		{"fees_and_charges.admin_fee", "fees_and_charges.processing_fee"},
		{"fees_and_charges.login_fee", "fees_and_charges.processing_fee"},
		{"prepayment_and_foreclosure.prepayment_penalty", "prepayment_and_foreclosure.foreclosure_penalty"},
		{"loan_amount_and_ltv.loan_to_value", "loan_amount_and_ltv.ltv"},
		{"interest_rates.rate_of_interest", "interest_rates.interest_rate"},
		{"repayment.monthly_installment", "repayment.emi"},
		{"grievance.complaint_procedure", "grievance.grievance_procedure"},
	}

	for _, c := range cases {
		if got := n.NormalizeKey(c.in); got != c.want {
			t.Errorf("NormalizeKey(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeKeyIdempotent(t *testing.T) {
	n := NewNormalizer()

	keys := []string{
		"eligibility.bureau_score",
		"fees_and_charges.login_fee_processing_fee",
		"prepayment_and_foreclosure.pre_closure_charges",
		"repayment.loan_term",
		"Interest Rates.Home Loan Rate",
	}
	for _, k := range keys {
		once := n.NormalizeKey(k)
		twice := n.NormalizeKey(once)
		if once != twice {
			t.Errorf("NormalizeKey not idempotent for %q: first %q, second %q", k, once, twice)
		}
	}
}

func TestNormalizeValueCurrency(t *testing.T) {
	n := NewNormalizer()
	key := "loan_amount_and_ltv.sanctioned_amount"

	cases := []struct {
		in   string
		want string
	}{
		{"5L", "INR 500,000"},
		{"5 Lakhs", "INR 500,000"},
		{"2Cr", "INR 20,000,000"},
		{"2 Crores", "INR 20,000,000"},
		{"500K", "INR 500,000"},
		{"₹1,000", "INR 1,000"},
		{"Rs. 75,000", "INR 75,000"},
		{"INR 30,00,000", "INR 3,000,000"},
	}

	for _, c := range cases {
		if got := n.NormalizeValue(c.in, key); got != c.want {
			t.Errorf("NormalizeValue(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeValueCompoundFee(t *testing.T) {
	n := NewNormalizer()
	key := "fees_and_charges.processing_fee"

	cases := []struct {
		in   string
		want string
	}{
		{"1.50% or ₹4,500 whichever is higher", "1.50% or ₹4,500 (use min)"},
		{"1.50% or Rs. 4,500 whichever is lower", "1.50% or ₹4,500 (use max)"},
		{"0.50% or ₹2,000", "0.50% (min ₹2,000)"},
	}

	for _, c := range cases {
		if got := n.NormalizeValue(c.in, key); got != c.want {
			t.Errorf("NormalizeValue(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeValuePercentages(t *testing.T) {
	n := NewNormalizer()

	if got := n.NormalizeValue("1% to 3%", "prepayment_and_foreclosure.fixed_rate_band"); got != "1%-3%" {
		t.Errorf("range = %q, want 1%%-3%%", got)
	}
	if got := n.NormalizeValue("8.5% per annum", "interest_rates.floating_rate"); got != "8.5%" {
		t.Errorf("single = %q, want 8.5%%", got)
	}
	if got := n.NormalizeValue("2%", "interest_rates.spread"); got != "2%" {
		t.Errorf("integral = %q, want 2%%", got)
	}
}

func TestNormalizeValueNumbersAndText(t *testing.T) {
	n := NewNormalizer()

	if got := n.NormalizeValue("30 years", "repayment.max_tenure"); got != "30" {
		t.Errorf("tenure = %q, want 30", got)
	}
	if got := n.NormalizeValue("minimum   score of good standing", "grievance.process"); got != "Minimum score of good standing" {
		t.Errorf("text = %q", got)
	}
}

func TestNormalizeValueEMI(t *testing.T) {
	n := NewNormalizer()

	// tiny numbers are template placeholders, not real EMI amounts
	if got := n.NormalizeValue("5", "repayment.emi_amount"); got != "" {
		t.Errorf("placeholder EMI = %q, want empty", got)
	}
	if got := n.NormalizeValue("₹25,000", "repayment.emi_amount"); got != "INR 25,000" {
		t.Errorf("EMI = %q, want INR 25,000", got)
	}
	if got := n.NormalizeValue("Rs.", "repayment.emi_currency"); got != "₹" {
		t.Errorf("emi_currency = %q, want rupee symbol", got)
	}
}

func TestNormalizeValueIdempotent(t *testing.T) {
	n := NewNormalizer()

	cases := []struct{ value, key string }{
		{"1.50% or ₹4,500 whichever is higher", "fees_and_charges.processing_fee"},
		{"0.50% or ₹2,000", "fees_and_charges.processing_fee"},
		{"5L", "loan_amount_and_ltv.sanctioned_amount"},
		{"8.5% per annum", "interest_rates.floating_rate"},
		{"1% to 3%", "prepayment_and_foreclosure.fixed_rate_band"},
		{"30 years", "repayment.max_tenure"},
		{"submit a written complaint. response within 30 days", "grievance.process"},
	}

	for _, c := range cases {
		once := n.NormalizeValue(c.value, c.key)
		twice := n.NormalizeValue(once, c.key)
		if once != twice {
			t.Errorf("NormalizeValue not idempotent for %q: first %q, second %q", c.value, once, twice)
		}
	}
}

func TestNormalizeFactsFiltersBadValues(t *testing.T) {
	n := NewNormalizer()

	facts := []model.ExtractedFact{
		{Key: "fees_and_charges.processing_fee", Value: "0.50%", Confidence: 0.75},
		{Key: "fees_and_charges.legal_charges", Value: "___", Confidence: 0.75},
		{Key: "documents.required_documents", Value: "N.A.", Confidence: 0.75},
		{Key: "fees_and_charges.valuation_charges", Value: "as applicable", Confidence: 0.75},
		{Key: "repayment.emi_amount", Value: "", Confidence: 0.75},
	}

	out := n.NormalizeFacts(facts)
	if len(out) != 1 {
		t.Fatalf("got %d facts, want 1: %+v", len(out), out)
	}
	if out[0].Key != "fees_and_charges.processing_fee" || out[0].Value != "0.50%" {
		t.Errorf("surviving fact = %+v", out[0])
	}
}
