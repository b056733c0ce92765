package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// DefaultCleanupInterval is how often expired entries are purged from memory.
const DefaultCleanupInterval = 2 * time.Minute

// Memory implements Cache on top of go-cache. Entries live only as long as
// the process does.
type Memory struct {
	store      *gocache.Cache
	defaultTTL time.Duration
}

// NewMemory creates an in-memory cache. Zero values for defaultTTL or
// cleanupInterval fall back to DefaultTTL and DefaultCleanupInterval.
func NewMemory(defaultTTL, cleanupInterval time.Duration) *Memory {
	if defaultTTL <= 0 {
		defaultTTL = DefaultTTL
	}
	if cleanupInterval <= 0 {
		cleanupInterval = DefaultCleanupInterval
	}
	return &Memory{
		store:      gocache.New(defaultTTL, cleanupInterval),
		defaultTTL: defaultTTL,
	}
}

// Get implements Getter
func (m *Memory) Get(key string) (any, bool) {
	return m.store.Get(key)
}

// Set implements Setter
func (m *Memory) Set(key string, value any, ttl time.Duration) {
	if ttl <= 0 {
		ttl = gocache.DefaultExpiration
	}
	m.store.Set(key, value, ttl)
}

// DefaultTTL returns the TTL applied when Set is called without one.
func (m *Memory) DefaultTTL() time.Duration {
	return m.defaultTTL
}

// Len returns the number of entries held, including expired ones not yet
// purged.
func (m *Memory) Len() int {
	return m.store.ItemCount()
}
