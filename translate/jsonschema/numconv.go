package jsonschema

import (
	"math/big"

	"github.com/goccy/go-json"
)

// asRat converts a decoded JSON number (decoded via json.Number, not
// float64 — the Importer always decodes with UseNumber so large or
// high-precision literals survive, consistent with this repo's
// math/big.Rat-everywhere numeric model) into an arbitrary-precision
// rational. Returns false for anything that isn't a JSON number.
func asRat(v any) (*big.Rat, bool) {
	n, ok := v.(json.Number)
	if !ok {
		return nil, false
	}
	r, ok := new(big.Rat).SetString(n.String())
	return r, ok
}

// asInt64 converts a decoded JSON number to an int64, returning false for a
// number with a fractional part (used for minLength/maxLength/minItems/
// maxItems, which are defined over integers).
func asInt64(v any) (int64, bool) {
	r, ok := asRat(v)
	if !ok || !r.IsInt() {
		return 0, false
	}
	return r.Num().Int64(), true
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asBool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

func asArray(v any) ([]any, bool) {
	a, ok := v.([]any)
	return a, ok
}

func asObject(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}
