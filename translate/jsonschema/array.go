package jsonschema

import "github.com/veltrix/schemaforge/schema"

func translateArray(obj map[string]any, sc scope) (schema.Schema, error) {
	if prefix, ok := asArray(obj["prefixItems"]); ok {
		if !itemsAllowsMore(obj) {
			return translateTuple(prefix, sc.AtPath("prefixItems"))
		}
	}
	if items, ok := asArray(obj["items"]); ok {
		// Draft-07 tuple shape: `items` itself an array.
		return translateTuple(items, sc.AtPath("items"))
	}

	var element schema.Schema = schema.Any()
	if itemsSchema, present := obj["items"]; present && itemsSchema != false {
		translated, err := translateValue(itemsSchema, sc.AtPath("items"))
		if err != nil {
			return nil, err
		}
		element = translated
	}

	var cs schema.ListConstraints
	cs.Size = intRangeFromMinMax(obj, "minItems", "maxItems")
	if unique, ok := asBool(obj["uniqueItems"]); ok && unique {
		cs.Unique = append(cs.Unique, schema.Uniqueness{})
	}

	if hasAny(obj, "contains", "minContains", "maxContains") {
		sc.AddLoss("contains/minContains/maxContains have no equivalent constraint in this schema model")
	}

	return schema.ListOf(element, cs), nil
}

// itemsAllowsMore reports whether `items` is present and not `false`.
// When it reports false (items absent or false), prefixItems alone is
// translated as a fixed tuple per spec §4.8.5.
func itemsAllowsMore(obj map[string]any) bool {
	v, present := obj["items"]
	if !present {
		return false
	}
	return v != false
}

func translateTuple(items []any, sc scope) (schema.Schema, error) {
	elements := make([]schema.Schema, 0, len(items))
	for i, item := range items {
		el, err := translateValue(item, sc.AtPath(indexSegment(i)))
		if err != nil {
			return nil, err
		}
		elements = append(elements, el)
	}
	if len(elements) < 2 {
		return schema.TupleOf(padTuple(elements)), nil
	}
	return schema.TupleOf(elements), nil
}

// padTuple brings a translated-but-too-short tuple up to the IR's minimum
// arity of 2 (spec §9 "Empty collections"), padding with Fail so the
// printer never sees a sub-canonical Tuple.
func padTuple(elements []schema.Schema) []schema.Schema {
	for len(elements) < 2 {
		elements = append(elements, schema.Fail())
	}
	return elements
}

func hasAny(obj map[string]any, keys ...string) bool {
	for _, k := range keys {
		if _, ok := obj[k]; ok {
			return true
		}
	}
	return false
}
