package schema

// Substitute returns a new schema with every Ref(n) and ScopedRef(ns, n)
// replaced by context[key] if present (key is n for Ref, and ScopedRef's
// Key() for ScopedRef). Unresolved references remain unchanged: this is
// non-fatal, matching spec §4.1. Wrappers pass through transparently and
// keep their metadata. Composite variants substitute element-wise; the
// first element-wise error short-circuits the whole operation.
func Substitute(s Schema, context map[string]Schema) (Schema, error) {
	switch v := s.(type) {
	case RefSchema:
		if replacement, ok := context[v.Name]; ok {
			return replacement, nil
		}
		return v, nil
	case ScopedRefSchema:
		if replacement, ok := context[v.Key()]; ok {
			return replacement, nil
		}
		return v, nil
	case ListOfSchema:
		elem, err := Substitute(v.Element, context)
		if err != nil {
			return nil, err
		}
		return ListOfSchema{Element: elem, Constraints: v.Constraints}, nil
	case TupleSchema:
		elems := make([]Schema, len(v.Elements))
		for i, e := range v.Elements {
			sub, err := Substitute(e, context)
			if err != nil {
				return nil, err
			}
			elems[i] = sub
		}
		return TupleSchema{Elements: elems}, nil
	case AlternativesSchema:
		opts := make([]Schema, len(v.Options))
		for i, o := range v.Options {
			sub, err := Substitute(o, context)
			if err != nil {
				return nil, err
			}
			opts[i] = sub
		}
		return AlternativesSchema{Options: opts}, nil
	case ObjectSchema:
		fields := make([]ObjectField, len(v.Fields))
		for i, f := range v.Fields {
			sub, err := Substitute(f.Schema, context)
			if err != nil {
				return nil, err
			}
			fields[i] = ObjectField{Label: f.Label, Schema: sub}
		}
		return ObjectSchema{Fields: fields}, nil
	case MapSchema:
		sub, err := Substitute(v.ValueSchema, context)
		if err != nil {
			return nil, err
		}
		return MapSchema{ValueSchema: sub}, nil
	case DocumentedSchema:
		sub, err := Substitute(v.Inner, context)
		if err != nil {
			return nil, err
		}
		return DocumentedSchema{Doc: v.Doc, Inner: sub}, nil
	case DeprecatedSchema:
		sub, err := Substitute(v.Inner, context)
		if err != nil {
			return nil, err
		}
		return DeprecatedSchema{Inner: sub}, nil
	default:
		// Terminal variants are returned unchanged: Any, Fail, Boolean,
		// Text, GivenText, Numeric, Binary, Time, Enum, Import.
		return s, nil
	}
}
