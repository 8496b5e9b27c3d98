package cache

import (
	"os"
	"strings"
	"testing"
	"time"
)

func TestResponseKeyDeterministic(t *testing.T) {
	gaps := map[string][]string{
		"fees_and_charges": {"administrative_fee", "legal_charges"},
		"grievance":        {"process"},
	}

	k1 := ResponseKey("document text", gaps, "gpt-4o-mini")
	k2 := ResponseKey("document text", gaps, "gpt-4o-mini")
	if k1 != k2 {
		t.Errorf("same inputs produced different keys: %s vs %s", k1, k2)
	}

	if k := ResponseKey("other text", gaps, "gpt-4o-mini"); k == k1 {
		t.Error("different document text produced the same key")
	}
	if k := ResponseKey("document text", gaps, "llama3.1"); k == k1 {
		t.Error("different model produced the same key")
	}
	if k := ResponseKey("document text", map[string][]string{"grievance": {"process"}}, "gpt-4o-mini"); k == k1 {
		t.Error("different gaps produced the same key")
	}
}

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if _, found := c.Get("missing"); found {
		t.Error("found a key that was never set")
	}

	if err := c.Set("k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	val, found := c.Get("k")
	if !found || string(val) != "v" {
		t.Errorf("Get = %q, %v", val, found)
	}

	_ = c.Delete("k")
	if _, found := c.Get("k"); found {
		t.Error("key survived Delete")
	}
}

func TestDiskCacheRoundTrip(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, time.Minute)

	key := ResponseKey("doc", nil, "m")
	if err := c.Set(key, []byte("cached response"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}

	val, found := c.Get(key)
	if !found || string(val) != "cached response" {
		t.Errorf("Get = %q, %v", val, found)
	}
}

func TestDiskCacheFilenameSafe(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, time.Minute)

	// Response keys carry colons; the stored filename must not
	key := ResponseKey("doc", nil, "m")
	if err := c.Set(key, []byte("v"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 cache file, got %d", len(entries))
	}
	if name := entries[0].Name(); strings.ContainsAny(name, ":/\\") {
		t.Errorf("cache filename %q contains unsafe characters", name)
	}
}

func TestDiskCacheExpiry(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, time.Minute)

	if err := c.Set("k", []byte("v"), -time.Second); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("expired entry still served")
	}
}

func TestLayeredCachePromotesFromDisk(t *testing.T) {
	dir := t.TempDir()
	c := NewLayeredCache(time.Minute, dir, time.Minute)

	if err := c.Set("k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}

	// evict the memory tier; disk copy must still answer
	_ = c.memory.Clear()
	val, found := c.Get("k")
	if !found || string(val) != "v" {
		t.Fatalf("Get after memory clear = %q, %v", val, found)
	}

	// and the hit is promoted back into memory
	if _, found := c.memory.Get("k"); !found {
		t.Error("disk hit not promoted to memory")
	}
}
