package validate

import (
	"math/big"
	"strings"

	"github.com/veltrix/schemaforge/schema"
	"github.com/veltrix/schemaforge/value"
)

func validateListOf(e *engine, path string, s schema.ListOfSchema, v value.Value, depth int) Result {
	items, isList := v.AsList()
	if !isList {
		return fail(path, "type_mismatch", "expected a list, got "+v.Kind().String(), nil)
	}

	var out Result
	for i, item := range items {
		out.Errors = append(out.Errors, e.validate(indexPath(path, i), s.Element, item, depth+1).Errors...)
	}

	if s.Constraints.Size != nil && !checkIntRange(s.Constraints.Size, int64(len(items))) {
		out.Errors = append(out.Errors, Error{Path: path, Code: "size_constraint", Message: "list size violates size constraint (" + describeIntRange("size", s.Constraints.Size) + ")"})
	}

	for _, u := range s.Constraints.Unique {
		if err := checkUniqueness(path, s.Element, u, items); err != nil {
			out.Errors = append(out.Errors, *err)
		}
	}

	return out
}

func checkUniqueness(path string, element schema.Schema, u schema.Uniqueness, items []value.Value) *Error {
	seen := map[string][]int{}
	if u.IsSimple() {
		for i, item := range items {
			key, err := value.ComparableKey(item)
			if err != nil {
				return &Error{Path: indexPath(path, i), Code: "uniqueness_scope", Message: "uniqueness only applies to simple values"}
			}
			seen[key] = append(seen[key], i)
		}
	} else {
		obj, isObjectSchema := schema.Unwrap(element).(schema.ObjectSchema)
		canonicalize := func(field string, v value.Value) value.Value {
			if !isObjectSchema {
				return v
			}
			f, found := obj.Field(field)
			if !found {
				return v
			}
			return canonicalFieldValue(f.Schema, v)
		}
		for i, item := range items {
			itemObj, isObject := item.AsObject()
			if !isObject {
				return &Error{Path: indexPath(path, i), Code: "uniqueness_scope", Message: "composite uniqueness requires object elements"}
			}
			key, err := value.FieldTupleKey(itemObj, u.ByFields, canonicalize)
			if err != nil {
				return &Error{Path: indexPath(path, i), Code: "uniqueness_scope", Message: err.Error()}
			}
			seen[key] = append(seen[key], i)
		}
	}

	for _, indices := range seen {
		if len(indices) > 1 {
			fieldsDesc := "element value"
			if !u.IsSimple() {
				fieldsDesc = strings.Join(u.ByFields, ", ")
			}
			return &Error{Path: path, Code: "uniqueness_violation", Message: "duplicate values for uniqueness constraint on " + fieldsDesc}
		}
	}
	return nil
}

// canonicalFieldValue rewrites v into its declared sub-schema's canonical
// representation before a ByFields uniqueness key is derived from it (spec
// §4.5), mirroring the coercions validateNumeric and validateBinary already
// accept: a Numeric field given as Text("1") keys the same as Number(1), and
// an encoded-text Binary field keys the same as its decoded bytes.
func canonicalFieldValue(fieldSchema schema.Schema, v value.Value) value.Value {
	switch fs := schema.Unwrap(fieldSchema).(type) {
	case schema.NumericSchema:
		if _, isNumber := v.AsNumber(); isNumber {
			return v
		}
		if text, isText := v.AsText(); isText {
			if parsed, ok := new(big.Rat).SetString(text); ok {
				return value.Number(parsed)
			}
		}
	case schema.BinarySchema:
		if _, isBinary := v.AsBinary(); isBinary {
			return v
		}
		if text, isText := v.AsText(); isText && fs.Constraints.Encoding != schema.EncodingNone {
			if decoded, err := decodeBinary(fs.Constraints.Encoding, text); err == nil {
				return value.Binary(decoded)
			}
		}
	}
	return v
}

func validateTuple(e *engine, path string, s schema.TupleSchema, v value.Value, depth int) Result {
	var items []value.Value
	if tuple, isTuple := v.AsTuple(); isTuple {
		items = tuple
	} else if list, isList := v.AsList(); isList {
		items = list
	} else {
		return fail(path, "type_mismatch", "expected a tuple, got "+v.Kind().String(), nil)
	}

	var out Result
	for i, elem := range s.Elements {
		if i < len(items) {
			out.Errors = append(out.Errors, e.validate(indexPath(path, i), elem, items[i], depth+1).Errors...)
		} else {
			out.Errors = append(out.Errors, e.validate(indexPath(path, i), schema.Fail(), value.Null(), depth+1).Errors...)
		}
	}
	for i := len(s.Elements); i < len(items); i++ {
		out.Errors = append(out.Errors, e.validate(indexPath(path, i), schema.Fail(), items[i], depth+1).Errors...)
	}
	return out
}

func validateAlternatives(e *engine, path string, s schema.AlternativesSchema, v value.Value, depth int) Result {
	for _, opt := range s.Options {
		if e.validate(path, opt, v, depth+1).Valid() {
			return ok()
		}
	}
	return fail(path, "no_alternative_matched", "value does not match any alternative", nil)
}

func validateObject(e *engine, path string, s schema.ObjectSchema, v value.Value, depth int) Result {
	obj, isObject := v.AsObject()
	if !isObject {
		return fail(path, "type_mismatch", "expected an object, got "+v.Kind().String(), nil)
	}

	var out Result
	for _, f := range s.Fields {
		fieldValue, present := obj.Get(f.Label.Name)
		fieldPath := joinPath(path, f.Label.Name)
		if !present {
			if f.Label.Mandatory {
				out.Errors = append(out.Errors, Error{Path: fieldPath, Code: "missing_mandatory_key", Message: "missing expected key " + f.Label.Name})
			}
			continue
		}
		out.Errors = append(out.Errors, e.validate(fieldPath, f.Schema, fieldValue, depth+1).Errors...)
	}
	// Extra keys are allowed silently (spec §4.5): additionalProperties:false
	// from JSON Schema is not modeled in the IR.
	return out
}

func validateMap(e *engine, path string, s schema.MapSchema, v value.Value, depth int) Result {
	obj, isObject := v.AsObject()
	if !isObject {
		return fail(path, "type_mismatch", "expected an object, got "+v.Kind().String(), nil)
	}
	var out Result
	for _, key := range obj.Keys() {
		fieldValue, _ := obj.Get(key)
		out.Errors = append(out.Errors, e.validate(joinPath(path, key), s.ValueSchema, fieldValue, depth+1).Errors...)
	}
	return out
}
