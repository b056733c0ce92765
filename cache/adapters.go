package cache

import "time"

// Typed adapts the untyped Cache to a single value type so callers don't
// repeat type assertions at every read.
type Typed[T any] struct {
	cache Cache
	ttl   time.Duration
}

// NewTyped wraps c. Entries written through the adapter use ttl.
func NewTyped[T any](c Cache, ttl time.Duration) *Typed[T] {
	return &Typed[T]{cache: c, ttl: ttl}
}

// Get returns the cached value for key. A value of a different type is
// treated as a miss.
func (t *Typed[T]) Get(key string) (T, bool) {
	var zero T
	v, ok := t.cache.Get(key)
	if !ok {
		return zero, false
	}
	typed, ok := v.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// Set stores value under key with the adapter's TTL.
func (t *Typed[T]) Set(key string, value T) {
	t.cache.Set(key, value, t.ttl)
}
