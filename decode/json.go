package decode

import (
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/goccy/go-json"

	"github.com/veltrix/schemaforge/value"
)

// JSONDecoder decodes JSON text into a Value tree, reusing
// translate/jsonschema's UseNumber idiom so numeric literals survive as
// arbitrary-precision rationals rather than float64.
type JSONDecoder struct{}

func (JSONDecoder) Decode(text string) (value.Value, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return value.Value{}, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	return convertJSON(raw), nil
}

func convertJSON(v any) value.Value {
	switch t := v.(type) {
	case nil:
		return value.Null()
	case bool:
		return value.Bool(t)
	case json.Number:
		r, ok := new(big.Rat).SetString(t.String())
		if !ok {
			return value.Null()
		}
		return value.Number(r)
	case string:
		return value.Text(t)
	case []any:
		items := make([]value.Value, len(t))
		for i, e := range t {
			items[i] = convertJSON(e)
		}
		return value.List(items)
	case map[string]any:
		return value.FromObject(objectFromMap(t, convertJSON))
	default:
		return value.Null()
	}
}

// objectFromMap builds an Object from a generic string-keyed map, visiting
// keys in sorted order for deterministic output — plain Go maps carry no
// source order, unlike the schema/syntax side of this repo, which tracks
// declaration order explicitly.
func objectFromMap(m map[string]any, convert func(any) value.Value) *value.Object {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	obj := value.NewObject()
	for _, k := range keys {
		obj.Set(k, convert(m[k]))
	}
	return obj
}
