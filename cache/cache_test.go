package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySetThenGet(t *testing.T) {
	c := NewMemory(time.Hour, time.Minute)

	values := map[string]any{
		"player_search__query=curry": []string{"Stephen Curry", "Seth Curry"},
		"player_stats__player_id=1":  map[string]float64{"points_per_game": 29.4},
		"empty":                      "",
	}

	for key, v := range values {
		c.Set(key, v, time.Hour)
		got, ok := c.Get(key)
		require.True(t, ok, "expected %q to be cached", key)
		assert.Equal(t, v, got)
	}
}

func TestMemoryMissingKey(t *testing.T) {
	c := NewMemory(time.Hour, time.Minute)

	got, ok := c.Get("nope")
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestMemoryExpires(t *testing.T) {
	c := NewMemory(time.Hour, time.Minute)

	c.Set("short", "lived", 20*time.Millisecond)
	_, ok := c.Get("short")
	require.True(t, ok)

	time.Sleep(50 * time.Millisecond)

	_, ok = c.Get("short")
	assert.False(t, ok, "entry should be gone after its TTL")
}

func TestMemoryOverwrite(t *testing.T) {
	c := NewMemory(time.Hour, time.Minute)

	c.Set("k", 1, time.Hour)
	c.Set("k", 2, time.Hour)

	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, 2, got)
	assert.Equal(t, 1, c.Len())
}

func TestMemoryZeroTTLUsesDefault(t *testing.T) {
	c := NewMemory(20*time.Millisecond, time.Minute)
	assert.Equal(t, 20*time.Millisecond, c.DefaultTTL())

	c.Set("k", "v", 0)
	_, ok := c.Get("k")
	require.True(t, ok)

	time.Sleep(50 * time.Millisecond)
	_, ok = c.Get("k")
	assert.False(t, ok)
}

func TestNewMemoryDefaults(t *testing.T) {
	c := NewMemory(0, 0)
	assert.Equal(t, DefaultTTL, c.DefaultTTL())
}

func TestTypedAdapter(t *testing.T) {
	c := NewMemory(time.Hour, time.Minute)
	ints := NewTyped[[]int](c, time.Hour)

	_, ok := ints.Get("nums")
	assert.False(t, ok)

	ints.Set("nums", []int{1, 2, 3})
	got, ok := ints.Get("nums")
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 3}, got)

	// a value of another type under the same key is a miss
	c.Set("nums", "not ints", time.Hour)
	_, ok = ints.Get("nums")
	assert.False(t, ok)
}
