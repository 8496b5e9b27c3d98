package cache

import "time"

// LayeredCache stacks the memory tier over the disk tier. Reads hit memory
// first; a disk hit is promoted so the next read for the same document stays
// in memory.
type LayeredCache struct {
	memory Cache
	disk   Cache
}

// NewLayeredCache creates a layered response cache.
func NewLayeredCache(memoryTTL time.Duration, diskDir string, diskTTL time.Duration) *LayeredCache {
	return &LayeredCache{
		memory: NewMemoryCache(memoryTTL, 10*time.Minute),
		disk:   NewDiskCache(diskDir, diskTTL),
	}
}

// Get checks memory, then disk. Disk hits are promoted into memory with the
// memory tier's default TTL.
func (c *LayeredCache) Get(key string) ([]byte, bool) {
	if resp, found := c.memory.Get(key); found {
		return resp, true
	}

	if resp, found := c.disk.Get(key); found {
		_ = c.memory.Set(key, resp, 0)
		return resp, true
	}

	return nil, false
}

// Set stores the response in both tiers.
func (c *LayeredCache) Set(key string, response []byte, ttl time.Duration) error {
	if err := c.memory.Set(key, response, ttl); err != nil {
		return err
	}
	return c.disk.Set(key, response, ttl)
}

// Delete removes the response from both tiers.
func (c *LayeredCache) Delete(key string) error {
	_ = c.memory.Delete(key)
	_ = c.disk.Delete(key)
	return nil
}

// Clear empties both tiers.
func (c *LayeredCache) Clear() error {
	_ = c.memory.Clear()
	_ = c.disk.Clear()
	return nil
}
