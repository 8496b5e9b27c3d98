// Package cache stores collaborator responses so a document is never sent
// to a paid model twice for the same question. Memory and disk tiers share
// one interface; the layered cache stacks them.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"sort"
	"strings"
	"time"
)

// Cache defines the interface for caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// ResponseKey identifies one gap-filling call. The same document text, the
// same requested gaps and the same model hit the same entry; any change to
// one of them misses.
func ResponseKey(documentText string, gaps map[string][]string, model string) string {
	h := sha256.New()
	_, _ = io.WriteString(h, model)
	_, _ = io.WriteString(h, "\x00")
	_, _ = io.WriteString(h, documentText)

	sections := make([]string, 0, len(gaps))
	for section := range gaps {
		sections = append(sections, section)
	}
	sort.Strings(sections)
	for _, section := range sections {
		_, _ = io.WriteString(h, "\x00")
		_, _ = io.WriteString(h, section)
		_, _ = io.WriteString(h, ":")
		_, _ = io.WriteString(h, strings.Join(gaps[section], ","))
	}

	return "loanlens:v1:" + hex.EncodeToString(h.Sum(nil))
}
