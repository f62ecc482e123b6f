package cachekey

import (
	"sort"
	"strings"
)

// Build derives a deterministic cache key from a namespace and a parameter
// map. Parameters are joined in sorted key order so equivalent filter sets
// always produce the same key regardless of map iteration order.
func Build(namespace string, params map[string]string) string {
	if len(params) == 0 {
		return namespace
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+":"+params[k])
	}

	return namespace + ":" + strings.Join(parts, "|")
}
