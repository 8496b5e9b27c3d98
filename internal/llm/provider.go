package llm

import (
	"context"
	"strings"

	"github.com/ppiankov/loanlens/internal/model"
)

// Provider defines the interface for gap-filling LLM providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// ExtractFacts asks the model for the missing terms only and returns
	// the facts it reported, filtered to the requested gaps
	ExtractFacts(ctx context.Context, req ExtractRequest) (*ExtractResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// ExtractRequest contains the input for targeted fact extraction
type ExtractRequest struct {
	// DocumentText is the full policy document text; providers truncate
	// it to the prompt budget themselves
	DocumentText string

	// Gaps maps section name to the terms rule extraction did not find.
	// This is the STRICT request list: facts outside it are discarded so
	// the model cannot inject keys it was never asked about.
	Gaps map[string][]string

	// Filename drives bank-specific prompt hints (SBI, HDFC, ...)
	Filename string

	// Prompt is an optional custom prompt (if empty, use the focused default)
	Prompt string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// ExtractResponse contains the provider's extraction output
type ExtractResponse struct {
	// Facts the model reported for the requested gaps
	Facts []model.ExtractedFact

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests
	Timeout int // seconds

	// MaxTokens for response generation
	MaxTokens int

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:  "", // Disabled by default
		Model:     "",
		Timeout:   30,
		MaxTokens: 1500,
	}
}

// filterToGaps drops facts whose section.term was not in the request. The
// prompt asks for specific terms, but models routinely volunteer extras.
func filterToGaps(facts []model.ExtractedFact, gaps map[string][]string) []model.ExtractedFact {
	if len(gaps) == 0 {
		return nil
	}
	var kept []model.ExtractedFact
	for _, f := range facts {
		if containsGap(gaps, f.Key) {
			kept = append(kept, f)
		}
	}
	return kept
}

func containsGap(gaps map[string][]string, key string) bool {
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
