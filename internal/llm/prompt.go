package llm

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ppiankov/loanlens/internal/gaps"
	"github.com/ppiankov/loanlens/internal/model"
)

// promptVersion is bumped whenever the focused prompt changes materially,
// so cached responses from older prompts stop matching.
const promptVersion = "v1.3"

// promptDocumentBudget caps how much document text goes into the prompt
const promptDocumentBudget = 8000

// BuildFocusedPrompt constructs the targeted gap-filling prompt. Returns ""
// when there is nothing to ask for.
func BuildFocusedPrompt(documentText string, gapsBySection map[string][]string, filename string) string {
	var missingSections []string
	for _, section := range gaps.Sections(gapsBySection) {
		terms := gapsBySection[section]
		if len(terms) == 0 {
			continue
		}
		missingSections = append(missingSections, fmt.Sprintf("%s: %s", section, strings.Join(terms, ", ")))
	}
	if len(missingSections) == 0 {
		return ""
	}

	bankHint := DetectBankHint(filename)

	header := ""
	if bankHint != "" {
		header = "THIS IS A " + bankHint + " HOME-LOAN MITC DOCUMENT.\n\n"
	}

	docText := documentText
	if len(docText) > promptDocumentBudget {
		docText = docText[:promptDocumentBudget]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "PROMPT_VERSION: %s\n", promptVersion)
	b.WriteString(header)
	b.WriteString("You are completing a loan document analysis. Advanced rule-based extraction has already found most terms, but these HARD-TO-FIND terms are still MISSING:\n\n")
	b.WriteString(strings.Join(missingSections, "\n"))
	b.WriteString("\n\nFOCUS ONLY on these specific missing terms. Look for:\n\n")
	b.WriteString(`DIFFICULT PATTERNS TO FIND:

PENAL CHARGES & LATE PAYMENTS:
- "Penal interest @ 2% p.a. over EBR", "Late payment charge: 2% p.a.", "Bounce charge: Rs.500"

COMPOUND FEES:
- "1.50% or Rs.4,500 whichever is higher", "0.50% to 3.00% (min Rs.2,000, max Rs.10,000)"

FEES & CHARGES:
- Administrative fees hidden in tariff schedules as "Admin fee" or "Documentation charges"
- Legal/Valuation charges listed as "As applicable", "As per actuals", or ranges

INTEREST RATE MECHANICS:
- Reset frequency ("reviewed quarterly"), benchmark names (EBR, RPLR, MCLR, repo rate)
- How rate changes are communicated (SMS, email, letter, website notice)

DOCUMENTS REQUIRED:
- Income proof ("Salary slips", "ITR", "Form 16"), KYC documents, property papers

GRIEVANCE & SUPPORT:
- Contact details, escalation levels, ombudsman references, response timelines
`)
	b.WriteString(bankSpecificBlock(bankHint))
	b.WriteString(`
TEMPLATE HANDLING:
- If fields are blank ("___", "[ ]", empty spaces), return "Template field - value not specified"
- If values say "As applicable" or "As per actuals", include that exact text
- If ranges are given ("18 to 70 years"), extract the full range

Return ONLY a JSON array in this format:
[{"section": "section_name", "field": "field_name", "value": "extracted_value", "source_text": "exact quote", "confidence": 0.9}]

DOCUMENT TEXT:
`)
	b.WriteString(docText)
	b.WriteString("\n\nJSON RESPONSE:\n")
	return b.String()
}

// DetectBankHint guesses the issuing bank from the filename so the prompt
// can carry bank-specific instructions.
func DetectBankHint(filename string) string {
	upper := strings.ToUpper(filename)
	switch {
	case strings.Contains(upper, "SBI") || strings.Contains(upper, "STATE BANK"):
		return "SBI"
	case strings.Contains(upper, "HDFC"):
		return "HDFC"
	case strings.Contains(upper, "ICICI"):
		return "ICICI"
	case strings.Contains(upper, "DBS") || strings.Contains(upper, "HSBC"):
		return "DBS/HSBC"
	}
	return ""
}

func bankSpecificBlock(bankHint string) string {
	switch bankHint {
	case "SBI":
		return "\nBANK-SPECIFIC: Extract penal charges, tiered LTV, NRI/defense/PSU employee criteria.\n"
	case "HDFC":
		return "\nBANK-SPECIFIC: Extract individual vs non-individual prepayment rules and lock-in nuances.\n"
	case "ICICI":
		return "\nBANK-SPECIFIC: Extract insurance mandates and special eligibility clauses.\n"
	case "DBS/HSBC":
		return "\nBANK-SPECIFIC: Extract fee schedules and security interest details.\n"
	}
	return ""
}

// factItem is the wire shape models are asked to return
type factItem struct {
	Section    string      `json:"section"`
	Field      string      `json:"field"`
	Value      interface{} `json:"value"`
	SourceText string      `json:"source_text"`
	Confidence float64     `json:"confidence"`
}

var (
	jsonArrayRe    = regexp.MustCompile(`(?s)\[.*\]`)
	sectionJunk    = regexp.MustCompile(`[^a-z0-9_]`)
	sectionSqueeze = regexp.MustCompile(`_+`)
)

// ParseFactsJSON extracts facts from a model response. Tolerant by design:
// code fences, prose around the array, numeric or string values, and
// free-form section names ("Fees & Charges") are all accepted. A response
// with no parsable JSON array yields no facts, never an error.
func ParseFactsJSON(responseText, filename string) []model.ExtractedFact {
	raw := jsonArrayRe.FindString(responseText)
	if raw == "" {
		return nil
	}

	var items []factItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil
	}

	if filename == "" {
		filename = "document"
	}

	var facts []model.ExtractedFact
	for _, item := range items {
		section := cleanSectionName(item.Section)
		field := strings.TrimSpace(item.Field)
		if section == "" {
			section = "unknown"
		}
		if field == "" {
			field = "unknown"
		}

		value := ""
		switch v := item.Value.(type) {
		case string:
			value = v
		case float64:
			value = strconv.FormatFloat(v, 'f', -1, 64)
		case nil:
		default:
			if data, err := json.Marshal(v); err == nil {
				value = string(data)
			}
		}

		confidence := item.Confidence
		if confidence < 0 {
			confidence = 0
		}
		if confidence > 1 {
			confidence = 1
		}

		facts = append(facts, model.ExtractedFact{
			Key:             section + "." + field,
			Value:           value,
			Confidence:      confidence,
			SourceText:      item.SourceText,
			SourceReference: filename + ":llm",
		})
	}
	return facts
}

// cleanSectionName converts a model-reported section ("Fees & Charges")
// into the snake_case convention catalog keys use (fees_and_charges), so
// gap filtering can match what was asked for.
func cleanSectionName(section string) string {
	s := strings.ToLower(strings.TrimSpace(section))
	s = strings.ReplaceAll(s, "&", " and ")
	s = sectionJunk.ReplaceAllString(s, "_")
	s = sectionSqueeze.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}
