package jsonschema

import (
	"net/url"
	"strconv"

	"github.com/kaptinlin/jsonpointer"
)

// resolvePointer walks root per RFC 6901 (spec §4.8.3's "deep pointer"
// case), using the same jsonpointer library the teacher imports for this
// exact purpose (ref.go's resolveJSONPointer). jsonpointer.Parse handles
// `~0`/`~1` escaping; URL percent-encoding (from a `#/a%2Fb` style ref) is
// unescaped separately, mirroring the teacher's two-stage decode.
func resolvePointer(root any, pointer string) (any, bool) {
	if pointer == "" || pointer == "/" {
		return root, true
	}
	segments := jsonpointer.Parse(pointer)
	current := root
	for _, raw := range segments {
		segment, err := url.PathUnescape(raw)
		if err != nil {
			segment = raw
		}
		next, found := descend(current, segment)
		if !found {
			return nil, false
		}
		current = next
	}
	return current, true
}

func descend(node any, segment string) (any, bool) {
	switch v := node.(type) {
	case map[string]any:
		child, ok := v[segment]
		return child, ok
	case []any:
		idx, err := strconv.Atoi(segment)
		if err != nil || idx < 0 || idx >= len(v) {
			return nil, false
		}
		return v[idx], true
	default:
		return nil, false
	}
}
