// Package catalog holds the versioned extraction pattern table: canonical
// fact keys mapped to ordered lists of compiled patterns with named capture
// groups. The catalog is constructed once and never mutated; extractors
// receive it explicitly so test fixtures can build their own.
package catalog

import (
	"fmt"
	"os"
	"regexp"
	"sort"

	"gopkg.in/yaml.v3"
)

// Entry pairs a canonical key with its ordered pattern sources
type Entry struct {
	Key      string
	Patterns []string
}

// Catalog is an immutable key -> ordered rule table
type Catalog struct {
	keys  []string
	rules map[string][]*regexp.Regexp
}

// New compiles a catalog from entries. A pattern that fails to compile is
// skipped rather than aborting the whole catalog; a key left with no valid
// patterns is dropped.
func New(entries []Entry) *Catalog {
	c := &Catalog{rules: make(map[string][]*regexp.Regexp, len(entries))}
	for _, e := range entries {
		var compiled []*regexp.Regexp
		for _, p := range e.Patterns {
			re, err := regexp.Compile(p)
			if err != nil {
				continue
			}
			compiled = append(compiled, re)
		}
		if len(compiled) == 0 {
			continue
		}
		if _, ok := c.rules[e.Key]; !ok {
			c.keys = append(c.keys, e.Key)
		}
		c.rules[e.Key] = compiled
	}
	return c
}

// Default returns the built-in pattern catalog
func Default() *Catalog {
	return New(defaultPatterns)
}

// Keys returns canonical keys in catalog order. The slice is a copy.
func (c *Catalog) Keys() []string {
	keys := make([]string, len(c.keys))
	copy(keys, c.keys)
	return keys
}

// Rules returns the ordered rule list for a key, or nil
func (c *Catalog) Rules(key string) []*regexp.Regexp {
	return c.rules[key]
}

// Len returns the number of keys in the catalog
func (c *Catalog) Len() int {
	return len(c.keys)
}

// WithOverlay returns a new catalog with rule lists replaced (or added) from
// a YAML overlay file of the form:
//
//	fees_and_charges.processing_fee:
//	  - 'processing\s*fee[:\s]*(?P<pct>[0-9.]+)\s*%'
//
// Keys present in the overlay replace their whole rule list; unknown keys are
// appended after the built-in ones in sorted order so extraction stays
// deterministic.
func (c *Catalog) WithOverlay(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog overlay: %w", err)
	}

	var overlay map[string][]string
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("parse catalog overlay: %w", err)
	}

	next := &Catalog{
		keys:  make([]string, len(c.keys)),
		rules: make(map[string][]*regexp.Regexp, len(c.rules)+len(overlay)),
	}
	copy(next.keys, c.keys)
	for k, v := range c.rules {
		next.rules[k] = v
	}

	var added []string
	for key, patterns := range overlay {
		var compiled []*regexp.Regexp
		for _, p := range patterns {
			re, err := regexp.Compile(p)
			if err != nil {
				return nil, fmt.Errorf("catalog overlay key %s: %w", key, err)
			}
			compiled = append(compiled, re)
		}
		if len(compiled) == 0 {
			continue
		}
		if _, exists := next.rules[key]; !exists {
			added = append(added, key)
		}
		next.rules[key] = compiled
	}

	sort.Strings(added)
	next.keys = append(next.keys, added...)
	return next, nil
}
