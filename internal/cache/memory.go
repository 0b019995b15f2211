package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache keeps serialized reports in process memory. Entries
// expire on their own TTL and are swept on the cleanup interval.
type MemoryCache struct {
	store *gocache.Cache
}

// NewMemoryCache creates a new memory cache
func NewMemoryCache(defaultTTL time.Duration, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{
		store: gocache.New(defaultTTL, cleanupInterval),
	}
}

// Get returns the cached report bytes for the key
func (c *MemoryCache) Get(key string) ([]byte, bool) {
	val, found := c.store.Get(key)
	if !found {
		return nil, false
	}
	return val.([]byte), true
}

// Set stores report bytes under the key. A non-positive ttl falls back
// to the cache default.
func (c *MemoryCache) Set(key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = gocache.DefaultExpiration
	}
	c.store.Set(key, value, ttl)
	return nil
}

// Delete removes the entry for the key
func (c *MemoryCache) Delete(key string) error {
	c.store.Delete(key)
	return nil
}

// Clear drops every entry
func (c *MemoryCache) Clear() error {
	c.store.Flush()
	return nil
}
