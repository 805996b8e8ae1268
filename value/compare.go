package value

import (
	"fmt"
	"sort"
	"strings"
)

// Equal reports structural equality between two values. Numbers compare by
// rational value (not by decimal representation), objects compare by field
// set regardless of insertion order.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindNumber:
		if a.num == nil || b.num == nil {
			return a.num == b.num
		}
		return a.num.Cmp(b.num) == 0
	case KindText:
		return a.text == b.text
	case KindBinary:
		return string(a.binary) == string(b.binary)
	case KindList, KindTuple:
		x, _ := a.sequence()
		y, _ := b.sequence()
		if len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if a.object.Len() != b.object.Len() {
			return false
		}
		for _, k := range a.object.Keys() {
			av, _ := a.object.Get(k)
			bv, ok := b.object.Get(k)
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	}
	return false
}

func (v Value) sequence() ([]Value, bool) {
	if v.kind == KindList {
		return v.list, true
	}
	if v.kind == KindTuple {
		return v.tuple, true
	}
	return nil, false
}

// ComparableKey produces a canonical string key for scalar values, used by
// the validator's Simple uniqueness check. It fails on non-scalar values.
func ComparableKey(v Value) (string, error) {
	switch v.kind {
	case KindNull:
		return "null:", nil
	case KindBool:
		return fmt.Sprintf("bool:%v", v.b), nil
	case KindNumber:
		if v.num == nil {
			return "number:", nil
		}
		return "number:" + v.num.RatString(), nil
	case KindText:
		return "text:" + v.text, nil
	case KindBinary:
		return "binary:" + string(v.binary), nil
	default:
		return "", fmt.Errorf("uniqueness only applies to simple values, got %s", v.kind)
	}
}

// FieldTupleKey builds a composite comparison key over a set of field
// names, used by the validator's ByFields uniqueness check; the key does
// not depend on the order in which fields are listed. canonicalize,
// if non-nil, is applied to each field's value before it is keyed — the
// caller uses it to normalize a field per its declared sub-schema (e.g. a
// Numeric field given as Text("1") and Number(1) must key identically) so
// that differently-represented-but-equal tuples are still recognized as
// duplicates.
func FieldTupleKey(obj *Object, fields []string, canonicalize func(field string, v Value) Value) (string, error) {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		fv, ok := obj.Get(f)
		if !ok {
			return "", fmt.Errorf("missing field %q for composite uniqueness key", f)
		}
		if canonicalize != nil {
			fv = canonicalize(f, fv)
		}
		k, err := ComparableKey(fv)
		if err != nil {
			return "", fmt.Errorf("field %q: %w", f, err)
		}
		parts = append(parts, f+"="+k)
	}
	sort.Strings(parts)
	return strings.Join(parts, "|"), nil
}
