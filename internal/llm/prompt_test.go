package llm

import (
	"strings"
	"testing"
)

func TestBuildFocusedPrompt(t *testing.T) {
	gaps := map[string][]string{
		"fees_and_charges": {"administrative_fee", "legal_charges"},
		"grievance":        {"process"},
	}

	prompt := BuildFocusedPrompt("Document body text.", gaps, "SBI_home_loan_mitc.txt")

	if !strings.Contains(prompt, "fees_and_charges: administrative_fee, legal_charges") {
		t.Error("prompt missing fees_and_charges gap line")
	}
	if !strings.Contains(prompt, "grievance: process") {
		t.Error("prompt missing grievance gap line")
	}
	// checklist order: fees before grievance
	if strings.Index(prompt, "fees_and_charges:") > strings.Index(prompt, "grievance:") {
		t.Error("gap sections out of checklist order")
	}
	if !strings.Contains(prompt, "THIS IS A SBI HOME-LOAN MITC DOCUMENT.") {
		t.Error("prompt missing bank hint header")
	}
	if !strings.Contains(prompt, "Document body text.") {
		t.Error("prompt missing document text")
	}
}

func TestBuildFocusedPromptEmptyGaps(t *testing.T) {
	if got := BuildFocusedPrompt("text", nil, "doc.txt"); got != "" {
		t.Errorf("expected empty prompt for no gaps, got %d bytes", len(got))
	}
	if got := BuildFocusedPrompt("text", map[string][]string{"grievance": {}}, "doc.txt"); got != "" {
		t.Error("expected empty prompt when all sections have no terms")
	}
}

func TestBuildFocusedPromptTruncatesDocument(t *testing.T) {
	long := strings.Repeat("x", 20000)
	prompt := BuildFocusedPrompt(long, map[string][]string{"grievance": {"process"}}, "doc.txt")
	if strings.Contains(prompt, strings.Repeat("x", promptDocumentBudget+1)) {
		t.Error("document text not truncated to budget")
	}
}

func TestDetectBankHint(t *testing.T) {
	cases := []struct{ filename, want string }{
		{"SBI_home_loan.txt", "SBI"},
		{"state bank mitc.pdf.txt", "SBI"},
		{"hdfc-mitc.html", "HDFC"},
		{"icici_terms.md", "ICICI"},
		{"dbs_tariff.txt", "DBS/HSBC"},
		{"generic_bank.txt", ""},
	}
	for _, c := range cases {
		if got := DetectBankHint(c.filename); got != c.want {
			t.Errorf("DetectBankHint(%q) = %q, want %q", c.filename, got, c.want)
		}
	}
}

func TestParseFactsJSONWithFences(t *testing.T) {
	response := "Sure, here is the JSON:\n```json\n" +
		`[{"section": "Fees & Charges", "field": "administrative_fee", "value": "INR 5,000", "source_text": "Admin fee Rs.5,000", "confidence": 0.9}]` +
		"\n```\nLet me know if you need more."

	facts := ParseFactsJSON(response, "sbi.txt")
	if len(facts) != 1 {
		t.Fatalf("got %d facts, want 1", len(facts))
	}
	f := facts[0]
	if f.Key != "fees_and_charges.administrative_fee" {
		t.Errorf("key = %s, want fees_and_charges.administrative_fee", f.Key)
	}
	if f.SourceReference != "sbi.txt:llm" {
		t.Errorf("source reference = %s", f.SourceReference)
	}
}

func TestParseFactsJSONTolerance(t *testing.T) {
	// numeric value, missing field, out-of-range confidence
	response := `[
		{"section": "eligibility", "field": "min_age", "value": 21, "confidence": 1.4},
		{"section": "", "value": "something", "confidence": -0.5}
	]`

	facts := ParseFactsJSON(response, "")
	if len(facts) != 2 {
		t.Fatalf("got %d facts, want 2", len(facts))
	}
	if facts[0].Value != "21" {
		t.Errorf("numeric value = %q", facts[0].Value)
	}
	if facts[0].Confidence != 1 {
		t.Errorf("confidence not clamped: %f", facts[0].Confidence)
	}
	if facts[1].Key != "unknown.unknown" {
		t.Errorf("fallback key = %s", facts[1].Key)
	}
	if facts[1].Confidence != 0 {
		t.Errorf("negative confidence not clamped: %f", facts[1].Confidence)
	}
}

func TestParseFactsJSONNoArray(t *testing.T) {
	if facts := ParseFactsJSON("I could not find any of the requested terms.", "doc.txt"); facts != nil {
		t.Errorf("expected nil facts, got %+v", facts)
	}
	if facts := ParseFactsJSON(`[{"broken": `, "doc.txt"); facts != nil {
		t.Errorf("expected nil facts for malformed JSON, got %+v", facts)
	}
}
