package jsonschema

import (
	"math/big"

	"github.com/goccy/go-json"

	"github.com/veltrix/schemaforge/schema"
)

// translateValue is the variant dispatch of spec §4.8.2: `true`/`false`,
// a bare JSON array (only valid inside a union), or a schema object.
func translateValue(raw any, sc scope) (schema.Schema, error) {
	switch v := raw.(type) {
	case bool:
		if v {
			return schema.Any(), nil
		}
		return schema.Fail(), nil
	case []any:
		return translateUnion(v, sc)
	case map[string]any:
		return translateObjectNode(v, sc)
	default:
		return schema.Any(), nil
	}
}

func translateObjectNode(obj map[string]any, sc scope) (schema.Schema, error) {
	if ref, ok := asString(obj["$ref"]); ok {
		result, err := translateRef(ref, sc)
		if err != nil {
			return nil, err
		}
		return wrapMetadata(obj, result), nil
	}

	var (
		result schema.Schema
		err    error
	)
	switch t := obj["type"].(type) {
	case string:
		result, err = translateByType(t, obj, sc)
	case []any:
		result, err = translateTypeUnion(t, obj, sc)
	default:
		result, err = translateUntyped(obj, sc)
	}
	if err != nil {
		return nil, err
	}
	return wrapMetadata(obj, result), nil
}

func translateByType(t string, obj map[string]any, sc scope) (schema.Schema, error) {
	switch t {
	case "string":
		return translateString(obj, sc)
	case "number":
		return translateNumeric(obj, false, sc)
	case "integer":
		return translateNumeric(obj, true, sc)
	case "boolean":
		return translateBoolean(obj), nil
	case "null":
		sc.AddApproximation("type \"null\" has no direct equivalent; nullability is expressed via optional field labels")
		return schema.Any(), nil
	case "array":
		return translateArray(obj, sc)
	case "object":
		return translateObject(obj, sc)
	default:
		sc.AddExtension("unrecognized type \"" + t + "\"")
		return schema.Any(), nil
	}
}

// translateTypeUnion handles `"type": [...]`: every non-"null" member is
// translated against the *same* object (each per-type translator only
// reads the keywords relevant to its own type), unioned into Alternatives;
// a singleton unwraps (spec §4.8.2). "null" members carry no schema of
// their own — they signal optionality at the enclosing object field.
func translateTypeUnion(types []any, obj map[string]any, sc scope) (schema.Schema, error) {
	var options []schema.Schema
	for _, t := range types {
		name, ok := asString(t)
		if !ok || name == "null" {
			continue
		}
		translated, err := translateByType(name, obj, sc)
		if err != nil {
			return nil, err
		}
		options = append(options, translated)
	}
	switch len(options) {
	case 0:
		return schema.Any(), nil
	case 1:
		return options[0], nil
	default:
		return schema.Alternatives(options), nil
	}
}

// translateUnion translates a raw JSON array of schema nodes (anyOf,
// oneOf, or a bare array only valid in that position) into Alternatives,
// unwrapping a singleton.
func translateUnion(members []any, sc scope) (schema.Schema, error) {
	options := make([]schema.Schema, 0, len(members))
	for i, m := range members {
		translated, err := translateValue(m, sc.AtPath(indexSegment(i)))
		if err != nil {
			return nil, err
		}
		options = append(options, translated)
	}
	switch len(options) {
	case 0:
		return schema.Any(), nil
	case 1:
		return options[0], nil
	default:
		return schema.Alternatives(options), nil
	}
}

// translateUntyped implements the no-`type` inspection order of spec
// §4.8.2: anyOf, oneOf, allOf, not, const, enum, properties,
// additionalProperties, else Any.
func translateUntyped(obj map[string]any, sc scope) (schema.Schema, error) {
	if members, ok := asArray(obj["anyOf"]); ok {
		return translateUnion(members, sc.AtPath("anyOf"))
	}
	if members, ok := asArray(obj["oneOf"]); ok {
		return translateUnion(members, sc.AtPath("oneOf"))
	}
	if _, ok := obj["allOf"]; ok {
		return translateObject(obj, sc)
	}
	if _, ok := obj["not"]; ok {
		sc.AddLoss("not has no equivalent constraint in this schema model")
		return schema.Any(), nil
	}
	if c, ok := obj["const"]; ok {
		return translateConst(c, sc)
	}
	if values, ok := asArray(obj["enum"]); ok {
		return translateEnum(values, sc)
	}
	if _, ok := obj["properties"]; ok {
		return translateObject(obj, sc)
	}
	if _, ok := obj["additionalProperties"]; ok {
		return translateObject(obj, sc)
	}
	return schema.Any(), nil
}

func translateBoolean(obj map[string]any) schema.Schema {
	var def *bool
	if d, ok := asBool(obj["default"]); ok {
		def = &d
	}
	return schema.Boolean(def)
}

func translateConst(c any, sc scope) (schema.Schema, error) {
	switch v := c.(type) {
	case string:
		return schema.GivenText(v), nil
	case json.Number:
		r, ok := new(big.Rat).SetString(v.String())
		if !ok {
			sc.AddLoss("const value \"" + v.String() + "\" could not be parsed as a number")
			return schema.Any(), nil
		}
		return schema.Numeric(schema.NumericConstraints{
			Value: &schema.DecimalRange{Min: &schema.Bound[*big.Rat]{Op: schema.Exact, Value: r}},
		}, nil), nil
	default:
		sc.AddApproximation("const value is neither a string nor a number; represented as Any")
		return schema.Any(), nil
	}
}

func translateEnum(values []any, sc scope) (schema.Schema, error) {
	strs := make([]string, 0, len(values))
	nonString := false
	for _, v := range values {
		if s, ok := v.(string); ok {
			strs = append(strs, s)
			continue
		}
		nonString = true
		strs = append(strs, stringifyEnumValue(v))
	}
	if nonString {
		sc.AddApproximation("enum contains non-string members, stringified to fit this engine's text-only Enum")
	}
	if len(strs) == 0 {
		return schema.Fail(), nil
	}
	return schema.Enum(strs), nil
}

func stringifyEnumValue(v any) string {
	switch t := v.(type) {
	case json.Number:
		return t.String()
	case bool:
		if t {
			return "true"
		}
		return "false"
	case nil:
		return "null"
	default:
		b, _ := json.Marshal(t)
		return string(b)
	}
}
