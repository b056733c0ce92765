package cache

import (
	"fmt"
	"sort"
	"strings"
)

// KeyFor builds a stable cache key from a resource prefix and its query
// parameters. Params are sorted so that the same logical query always maps
// to the same key regardless of map iteration order.
func KeyFor(prefix string, params map[string]string) string {
	if len(params) == 0 {
		return prefix
	}

	parts := make([]string, 0, len(params))
	for k, v := range params {
		parts = append(parts, k+"="+v)
	}
	sort.Strings(parts)

	return fmt.Sprintf("%s__%s", prefix, strings.Join(parts, "__"))
}
