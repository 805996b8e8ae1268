package decode

import (
	"fmt"
	"math/big"

	"github.com/goccy/go-yaml"

	"github.com/veltrix/schemaforge/value"
)

// YAMLDecoder decodes YAML text into a Value tree. goccy/go-yaml decodes
// generically into the same string/bool/number/[]any/map[string]any shapes
// encoding/json uses, so this decoder mirrors JSONDecoder's conversion
// rather than introducing a second tree-walking scheme.
type YAMLDecoder struct{}

func (YAMLDecoder) Decode(text string) (value.Value, error) {
	var raw any
	if err := yaml.Unmarshal([]byte(text), &raw); err != nil {
		return value.Value{}, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	return convertYAML(raw), nil
}

func convertYAML(v any) value.Value {
	switch t := v.(type) {
	case nil:
		return value.Null()
	case bool:
		return value.Bool(t)
	case int:
		return value.NumberFromInt(int64(t))
	case int64:
		return value.NumberFromInt(t)
	case uint64:
		return value.Number(new(big.Rat).SetInt(new(big.Int).SetUint64(t)))
	case float64:
		r := new(big.Rat).SetFloat64(t)
		if r == nil {
			return value.Null()
		}
		return value.Number(r)
	case string:
		return value.Text(t)
	case []any:
		items := make([]value.Value, len(t))
		for i, e := range t {
			items[i] = convertYAML(e)
		}
		return value.List(items)
	case map[string]any:
		return value.FromObject(objectFromMap(t, convertYAML))
	case map[any]any:
		stringKeyed := make(map[string]any, len(t))
		for k, e := range t {
			stringKeyed[fmt.Sprint(k)] = e
		}
		return value.FromObject(objectFromMap(stringKeyed, convertYAML))
	default:
		return value.Null()
	}
}
