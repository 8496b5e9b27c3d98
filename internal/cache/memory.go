package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache is the hot tier: it answers repeat gap-filling requests within
// a single run, for example when a batch contains the same document twice.
// Entries are marshaled responses keyed by ResponseKey.
type MemoryCache struct {
	responses *gocache.Cache
}

// NewMemoryCache creates a memory cache with the given default TTL and
// eviction sweep interval.
func NewMemoryCache(defaultTTL time.Duration, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{
		responses: gocache.New(defaultTTL, cleanupInterval),
	}
}

// Get returns the cached response for a key, if present and unexpired.
func (c *MemoryCache) Get(key string) ([]byte, bool) {
	val, found := c.responses.Get(key)
	if !found {
		return nil, false
	}
	resp, ok := val.([]byte)
	if !ok {
		return nil, false
	}
	return resp, true
}

// Set stores a response under the key. ttl of 0 uses the cache default.
func (c *MemoryCache) Set(key string, response []byte, ttl time.Duration) error {
	c.responses.Set(key, response, ttl)
	return nil
}

// Delete drops a single cached response.
func (c *MemoryCache) Delete(key string) error {
	c.responses.Delete(key)
	return nil
}

// Clear drops every cached response.
func (c *MemoryCache) Clear() error {
	c.responses.Flush()
	return nil
}
