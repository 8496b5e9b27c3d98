package normalize

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Currency amount patterns, tried in order; group 1 is the numeric amount.
// The unit multiplier is decided separately from markers in the whole value.
var currencyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)₹\s*([0-9,]+(?:\.[0-9]{2})?)`),
	regexp.MustCompile(`(?i)Rs\.?\s*([0-9,]+(?:\.[0-9]{2})?)`),
	regexp.MustCompile(`(?i)INR\s*([0-9,]+(?:\.[0-9]{2})?)`),
	// backtick rupee marker seen in some PDF-to-text conversions
	regexp.MustCompile("(?i)[\x60]\\s*([0-9,]+(?:\\.[0-9]{2})?)"),
	regexp.MustCompile(`(?i)([0-9,]+(?:\.[0-9]*)?)\s*L(?:akhs?|acs?)?\b`),
	regexp.MustCompile(`(?i)([0-9,]+(?:\.[0-9]*)?)\s*Cr(?:ores?)?\b`),
	regexp.MustCompile(`(?i)([0-9,]+(?:\.[0-9]*)?)\s*(?:Thousand|K)\b`),
}

var percentagePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)([0-9]+(?:\.[0-9]+)?)\s*%\s*(?:per\s+annum|p\.a\.?|annually)?`),
	regexp.MustCompile(`(?i)([0-9]+(?:\.[0-9]+)?)\s*percent`),
	regexp.MustCompile(`(?i)([0-9]+(?:\.[0-9]+)?)\s*pc`),
}

var (
	// "1.50% or ₹4,500 whichever is higher/lower"
	whicheverRe = regexp.MustCompile(`(?i)^([0-9]+(?:\.[0-9]+)?)%\s*or\s*(?:₹|rs\.?|inr)\s*([0-9,]+)\s*whichever is\s*(higher|lower)`)
	// "1.50% or ₹4,500" without the comparator clause
	compoundRe = regexp.MustCompile(`(?i)^([0-9]+(?:\.[0-9]+)?)%\s*or\s*(?:₹|rs\.?|inr)\s*([0-9,]+)`)
	// "1% to 3%" and dash variants
	pctRangeRe = regexp.MustCompile(`^(\d+(?:\.\d+)?)%\s*(?:to|-|–)\s*(\d+(?:\.\d+)?)%`)
	// already-canonical compound fee forms; re-running them through the
	// compound or percentage branches would mangle them
	normalizedCompoundRe = regexp.MustCompile(`^[0-9]+(?:\.[0-9]+)?% or ₹[0-9,]+ \(use (?:min|max)\)$|^[0-9]+(?:\.[0-9]+)?% \(min ₹[0-9,]+\)$`)

	numberRe = regexp.MustCompile(`\d+(?:\.\d+)?`)
	spaceRe  = regexp.MustCompile(`\s+`)
)

var (
	currencyKeywords   = []string{"fee", "charge", "amount", "limit", "income", "salary", "cost"}
	percentageKeywords = []string{"rate", "apr", "interest", "roi", "ltv", "percent", "penalty", "spread"}
	numericalKeywords  = []string{"days", "months", "years", "score", "limit", "period", "tenure", "term", "age", "experience"}
)

// NormalizeValue canonicalizes a fact value using the key for type hints.
// An empty result signals "drop this fact".
func (n *Normalizer) NormalizeValue(value, key string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	keyLower := strings.ToLower(key)

	// emi_currency facts carry just the currency symbol
	if strings.Contains(keyLower, "emi_currency") {
		lower := strings.ToLower(value)
		if strings.Contains(value, "₹") || strings.Contains(value, "\x60") ||
			strings.Contains(lower, "rs") || strings.Contains(lower, "inr") {
			return "₹"
		}
		return value
	}

	if normalizedCompoundRe.MatchString(value) {
		return value
	}

	// "whichever is higher" maps to (use min), "lower" to (use max)
	if m := whicheverRe.FindStringSubmatch(value); m != nil {
		comparator := "min"
		if strings.EqualFold(m[3], "lower") {
			comparator = "max"
		}
		return fmt.Sprintf("%s%% or ₹%s (use %s)", m[1], m[2], comparator)
	}

	if m := compoundRe.FindStringSubmatch(value); m != nil {
		return fmt.Sprintf("%s%% (min ₹%s)", m[1], m[2])
	}

	// EMI amounts: force rupee formatting, drop template placeholder digits
	if strings.Contains(keyLower, "emi_amount") {
		lower := strings.ToLower(value)
		if strings.Contains(lower, "rs") || strings.Contains(lower, "inr") ||
			strings.Contains(value, "₹") || strings.Contains(value, "\x60") {
			value = normalizeCurrency(value)
		}
		if num, ok := firstNumber(strings.ReplaceAll(value, ",", "")); ok && num > 0 && num < 100 {
			return ""
		}
	}

	if hasKeyword(keyLower, currencyKeywords) || containsCurrency(value) {
		return normalizeCurrency(value)
	}

	if m := pctRangeRe.FindStringSubmatch(value); m != nil {
		return m[1] + "%-" + m[2] + "%"
	}

	if hasKeyword(keyLower, percentageKeywords) || containsPercentage(value) {
		return normalizePercentage(value)
	}

	if hasKeyword(keyLower, numericalKeywords) {
		return normalizeNumber(value)
	}

	return normalizeText(value)
}

func hasKeyword(keyLower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(keyLower, kw) {
			return true
		}
	}
	return false
}

func containsCurrency(value string) bool {
	for _, p := range currencyPatterns {
		if p.MatchString(value) {
			return true
		}
	}
	return false
}

func containsPercentage(value string) bool {
	for _, p := range percentagePatterns {
		if p.MatchString(value) {
			return true
		}
	}
	return false
}

// normalizeCurrency converts Indian currency shorthand to "INR 1,234,567".
// Lakh = 1e5, Crore = 1e7, K = 1e3. The unit is decided from markers in the
// whole value, checked in L, Cr, K order.
func normalizeCurrency(value string) string {
	for _, p := range currencyPatterns {
		m := p.FindStringSubmatch(value)
		if m == nil {
			continue
		}
		amount, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
		if err != nil {
			continue
		}

		upper := strings.ToUpper(value)
		switch {
		case containsAny(upper, "L", "LAKH", "LAC"):
			amount *= 100000
		case containsAny(upper, "CR", "CRORE"):
			amount *= 10000000
		case containsAny(upper, "K", "THOUSAND"):
			amount *= 1000
		}
		return "INR " + formatGrouped(amount)
	}
	return value
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// formatGrouped renders a rounded amount with western thousands grouping
func formatGrouped(amount float64) string {
	n := int64(math.Round(amount))
	neg := n < 0
	if neg {
		n = -n
	}
	s := strconv.FormatInt(n, 10)
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}

func normalizePercentage(value string) string {
	for _, p := range percentagePatterns {
		m := p.FindStringSubmatch(value)
		if m == nil {
			continue
		}
		pct, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		return strconv.FormatFloat(pct, 'f', -1, 64) + "%"
	}
	return value
}

// normalizeNumber keeps the first number found: integers render bare,
// fractions render to two decimals.
func normalizeNumber(value string) string {
	num, ok := firstNumber(value)
	if !ok {
		return value
	}
	if num == math.Trunc(num) {
		return strconv.FormatInt(int64(num), 10)
	}
	return strconv.FormatFloat(num, 'f', 2, 64)
}

func firstNumber(value string) (float64, bool) {
	m := numberRe.FindString(value)
	if m == "" {
		return 0, false
	}
	num, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return num, true
}

// normalizeText squeezes whitespace and sentence-cases the result
func normalizeText(value string) string {
	value = strings.TrimSpace(spaceRe.ReplaceAllString(value, " "))
	sentences := strings.Split(value, ". ")
	out := make([]string, 0, len(sentences))
	for _, s := range sentences {
		if s == "" {
			continue
		}
		out = append(out, capitalize(s))
	}
	return strings.Join(out, ". ")
}

// capitalize upper-cases the first rune and lower-cases the rest
func capitalize(s string) string {
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:]))
}
