package normalize

import (
	"regexp"
	"strings"
)

// badValuePatterns flag empty, placeholder and template garbage values.
// Matching is case-insensitive and anchored to the whole trimmed value.
var badValuePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^\s*$`),
	regexp.MustCompile(`(?i)^[,.;]+$`),
	regexp.MustCompile(`(?i)^(template field.*|value not specified.*)$`),
	regexp.MustCompile(`(?i)^_{3,}$`),
	regexp.MustCompile(`(?i)^\[.*\]$`),
	regexp.MustCompile(`(?i)^not\s*found$`),
	regexp.MustCompile(`(?i)^n\.a\.$`),
	regexp.MustCompile(`(?i)^as applicable$`),
	regexp.MustCompile(`(?i)^as per actuals$`),
	regexp.MustCompile(`(?i)^not specified$`),
	regexp.MustCompile(`(?i)^to be filled$`),
	regexp.MustCompile(`(?i)^_____+$`),
}

// looksBad reports whether a value is empty, a placeholder, or template
// garbage. It runs on normalized values, after all other transforms.
func looksBad(value string) bool {
	trimmed := strings.TrimSpace(value)
	for _, p := range badValuePatterns {
		if p.MatchString(trimmed) {
			return true
		}
	}
	return false
}
