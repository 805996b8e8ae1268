package schema

// Normalize collapses the empty-collection shapes that grammar forbids but
// translator code paths can produce (e.g. filtering every anyOf member out
// of existence): Enum() becomes Fail(), Alternatives with fewer than two
// options unwraps to its single member or Fail(), and Tuple with fewer than
// two elements likewise. The printer assumes these have already been
// normalized away (spec §9) and will not itself defend against them.
func Normalize(s Schema) Schema {
	switch v := s.(type) {
	case EnumSchema:
		if len(v.Values) == 0 {
			return Fail()
		}
		return v
	case AlternativesSchema:
		opts := make([]Schema, len(v.Options))
		for i, o := range v.Options {
			opts[i] = Normalize(o)
		}
		switch len(opts) {
		case 0:
			return Fail()
		case 1:
			return opts[0]
		default:
			allText := true
			values := make([]string, len(opts))
			for i, o := range opts {
				gt, ok := o.(GivenTextSchema)
				if !ok {
					allText = false
					break
				}
				values[i] = gt.Value
			}
			if allText {
				return Enum(values)
			}
			return AlternativesSchema{Options: opts}
		}
	case TupleSchema:
		elems := make([]Schema, len(v.Elements))
		for i, e := range v.Elements {
			elems[i] = Normalize(e)
		}
		switch len(elems) {
		case 0:
			return Fail()
		case 1:
			return elems[0]
		default:
			return TupleSchema{Elements: elems}
		}
	case ListOfSchema:
		return ListOfSchema{Element: Normalize(v.Element), Constraints: v.Constraints}
	case ObjectSchema:
		fields := make([]ObjectField, len(v.Fields))
		for i, f := range v.Fields {
			fields[i] = ObjectField{Label: f.Label, Schema: Normalize(f.Schema)}
		}
		return ObjectSchema{Fields: fields}
	case MapSchema:
		return MapSchema{ValueSchema: Normalize(v.ValueSchema)}
	case DocumentedSchema:
		return DocumentedSchema{Doc: v.Doc, Inner: Normalize(v.Inner)}
	case DeprecatedSchema:
		return DeprecatedSchema{Inner: Normalize(v.Inner)}
	default:
		return s
	}
}
