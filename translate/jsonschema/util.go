package jsonschema

import (
	"sort"
	"strconv"
)

func indexSegment(i int) string {
	return strconv.Itoa(i)
}

// sortedKeys returns m's keys in sorted order, for deterministic output
// over Go's randomized map iteration (spec §5's determinism requirement).
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
