// Package cache provides report caching keyed by research topic.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// TopicKey generates a cache key from a canonical topic
func TopicKey(topic string) string {
	hash := sha256.Sum256([]byte(topic))
	return "newscrew:v1:" + hex.EncodeToString(hash[:])
}
