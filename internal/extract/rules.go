// Package extract turns raw policy document text into facts using the
// pattern catalog and the tiered-table parser. Extraction is deterministic
// and side-effect-free: the same text and filename always yield the same
// fact sequence.
package extract

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/ppiankov/loanlens/internal/catalog"
	"github.com/ppiankov/loanlens/internal/model"
)

// snippetWindow is the number of bytes of context kept on each side of a
// match for evidence display.
const snippetWindow = 60

// RuleExtractor applies a pattern catalog to document text
type RuleExtractor struct {
	catalog *catalog.Catalog
}

// NewRuleExtractor creates an extractor over the given catalog
func NewRuleExtractor(c *catalog.Catalog) *RuleExtractor {
	return &RuleExtractor{catalog: c}
}

// Extract produces at most one fact per catalog key: patterns are tried in
// order and the first match anywhere in the text wins. Keys with no matching
// pattern are simply omitted. A tiered LTV table, when present, is appended
// as a single loan_amount_and_ltv.ltv_bands fact with a JSON value.
func (e *RuleExtractor) Extract(text, filename string) []model.ExtractedFact {
	var facts []model.ExtractedFact
	if text == "" {
		return facts
	}
	if filename == "" {
		filename = "document"
	}

	for _, key := range e.catalog.Keys() {
		for _, re := range e.catalog.Rules(key) {
			loc := re.FindStringSubmatchIndex(text)
			if loc == nil {
				continue
			}

			value := synthesizeValue(key, re, text, loc)
			start, end := loc[0], loc[1]
			snippet := snippetAround(text, start, end)

			facts = append(facts, model.ExtractedFact{
				Key:             key,
				Value:           value,
				Confidence:      model.RuleConfidence,
				SourceText:      snippet,
				SourceReference: fmt.Sprintf("%s:~%d-%d", filename, start, end),
			})
			break // first successful pattern per key
		}
	}

	if bands := ParseBands(text); len(bands) > 0 {
		data, err := json.Marshal(bands)
		if err == nil {
			facts = append(facts, model.ExtractedFact{
				Key:             "loan_amount_and_ltv.ltv_bands",
				Value:           string(data),
				Confidence:      model.BandConfidence,
				SourceText:      "Detected LTV table in document text",
				SourceReference: fmt.Sprintf("%s:~ltv_table", filename),
			})
		}
	}

	return facts
}

// synthesizeValue renders a fact value from the named capture groups of a
// match, in strict priority order. Groups outside the known vocabulary are
// ignored; with no usable group the full matched text is used.
func synthesizeValue(key string, re *regexp.Regexp, text string, loc []int) string {
	g := namedGroups(re, text, loc)

	switch {
	case key == "loan_amount_and_ltv.ltv_tier" && g["pct"] != "" && g["amt"] != "":
		unit := ""
		if g["unit"] != "" {
			unit = " " + g["unit"]
		}
		return strings.TrimSpace(fmt.Sprintf("%s%% up to ₹%s%s", g["pct"], g["amt"], unit))
	case g["pct"] != "" && g["pct2"] != "":
		return fmt.Sprintf("%s%% to %s%%", g["pct"], g["pct2"])
	case g["pct"] != "" && g["amt"] != "":
		// Compound fee phrasing; keep the whole clause so value
		// normalization can resolve the min/max semantics
		return strings.TrimSpace(text[loc[0]:loc[1]])
	case g["pct"] != "":
		return g["pct"] + "%"
	case g["amt"] != "":
		return strings.TrimSpace(g["amt"])
	case g["freq"] != "":
		return titleWords(g["freq"])
	case g["years"] != "":
		return g["years"] + " years"
	case g["bench"] != "":
		return strings.ToUpper(g["bench"])
	case g["bank"] != "":
		return strings.ToUpper(g["bank"])
	case g["score"] != "":
		return g["score"]
	case g["min_age"] != "" && g["max_age"] != "":
		return fmt.Sprintf("%s to %s years", g["min_age"], g["max_age"])
	case g["min_age"] != "":
		return g["min_age"] + " years minimum"
	case g["max_age"] != "":
		return g["max_age"] + " years maximum"
	case g["min_years"] != "" && g["max_years"] != "":
		return fmt.Sprintf("%s to %s years", g["min_years"], g["max_years"])
	case g["value"] != "":
		return truncate(strings.TrimSpace(g["value"]), 150)
	case g["method"] != "":
		return truncate(strings.TrimSpace(g["method"]), 100)
	case g["methods"] != "":
		return truncate(strings.TrimSpace(g["methods"]), 100)
	case g["docs"] != "":
		return truncate(strings.TrimSpace(g["docs"]), 100)
	case g["contact"] != "":
		return truncate(strings.TrimSpace(g["contact"]), 150)
	case g["process"] != "":
		return truncate(strings.TrimSpace(g["process"]), 100)
	case g["date"] != "":
		return g["date"]
	default:
		return strings.TrimSpace(text[loc[0]:loc[1]])
	}
}

// namedGroups maps capture group names to their matched text, skipping
// groups that did not participate in the match.
func namedGroups(re *regexp.Regexp, text string, loc []int) map[string]string {
	groups := make(map[string]string)
	for i, name := range re.SubexpNames() {
		if name == "" || 2*i+1 >= len(loc) {
			continue
		}
		if loc[2*i] < 0 {
			continue
		}
		groups[name] = text[loc[2*i]:loc[2*i+1]]
	}
	return groups
}

// snippetAround clamps a context window around a match, keeping the result
// valid UTF-8 even when the window lands inside a multi-byte rune.
func snippetAround(text string, start, end int) string {
	from := start - snippetWindow
	if from < 0 {
		from = 0
	}
	to := end + snippetWindow
	if to > len(text) {
		to = len(text)
	}
	return strings.ToValidUTF8(text[from:to], "")
}

// truncate limits a value to n runes
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// titleWords upper-cases the first letter of each word (Monthly, Quarterly)
func titleWords(s string) string {
	fields := strings.Fields(s)
	for i, f := range fields {
		r := []rune(f)
		r[0] = []rune(strings.ToUpper(string(r[0])))[0]
		fields[i] = string(r)
	}
	return strings.Join(fields, " ")
}
