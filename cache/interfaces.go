// Package cache provides a shared in-memory store for upstream responses
// with per-entry TTL expiration.
package cache

import "time"

// DefaultTTL is how long upstream results stay fresh unless told otherwise.
const DefaultTTL = time.Hour

// Getter defines the interface for reading cache entries
type Getter interface {
	// Get returns the stored value and true if present and not expired.
	// A missing or expired entry returns nil and false.
	Get(key string) (any, bool)
}

// Setter defines the interface for writing cache entries
type Setter interface {
	// Set stores value under key, replacing any existing entry.
	// A ttl <= 0 falls back to the cache's default TTL.
	Set(key string, value any, ttl time.Duration)
}

// Cache is the main interface that combines all cache operations
type Cache interface {
	Getter
	Setter
}
