package jsonschema

import (
	"math/big"

	"github.com/veltrix/schemaforge/schema"
)

// intRangeFromMinMax builds an IntRange from a pair of inclusive-bound
// integer keywords (minLength/maxLength, minItems/maxItems), returning nil
// when neither is present.
func intRangeFromMinMax(obj map[string]any, minKey, maxKey string) *schema.IntRange {
	var out schema.IntRange
	present := false
	if n, ok := intKeyword(obj, minKey); ok {
		out.Min = &schema.Bound[int64]{Op: schema.MinInclusive, Value: n}
		present = true
	}
	if n, ok := intKeyword(obj, maxKey); ok {
		out.Max = &schema.Bound[int64]{Op: schema.MaxInclusive, Value: n}
		present = true
	}
	if !present {
		return nil
	}
	return &out
}

func intKeyword(obj map[string]any, key string) (int64, bool) {
	v, ok := obj[key]
	if !ok {
		return 0, false
	}
	return asInt64(v)
}

// decimalRangeFromNumberKeywords builds a DecimalRange from
// minimum/maximum/exclusiveMinimum/exclusiveMaximum, tolerating both the
// 2020-12 shape (exclusiveMinimum/Maximum as numbers in their own right)
// and the Draft-07 shape (exclusiveMinimum/Maximum as booleans modifying
// minimum/maximum).
func decimalRangeFromNumberKeywords(obj map[string]any) *schema.DecimalRange {
	var out schema.DecimalRange
	present := false

	if r, ok := ratKeyword(obj, "minimum"); ok {
		out.Min = &schema.Bound[*big.Rat]{Op: schema.MinInclusive, Value: r}
		present = true
	}
	if r, ok := ratKeyword(obj, "maximum"); ok {
		out.Max = &schema.Bound[*big.Rat]{Op: schema.MaxInclusive, Value: r}
		present = true
	}

	switch v := obj["exclusiveMinimum"].(type) {
	case bool:
		if v && out.Min != nil {
			out.Min.Op = schema.MinExclusive
		}
	default:
		if r, ok := ratKeyword(obj, "exclusiveMinimum"); ok {
			out.Min = &schema.Bound[*big.Rat]{Op: schema.MinExclusive, Value: r}
			present = true
		}
	}
	switch v := obj["exclusiveMaximum"].(type) {
	case bool:
		if v && out.Max != nil {
			out.Max.Op = schema.MaxExclusive
		}
	default:
		if r, ok := ratKeyword(obj, "exclusiveMaximum"); ok {
			out.Max = &schema.Bound[*big.Rat]{Op: schema.MaxExclusive, Value: r}
			present = true
		}
	}

	if !present {
		return nil
	}
	return &out
}

func ratKeyword(obj map[string]any, key string) (*big.Rat, bool) {
	v, ok := obj[key]
	if !ok {
		return nil, false
	}
	return asRat(v)
}
