package schema

// Equal reports structural equality between two schemas. Object field
// order is not semantic (spec §3.4): field sets are compared by label
// regardless of declaration order. BoundedRange fields compare by bound
// operator/value, not by pointer identity.
func Equal(a, b Schema) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case AnySchema, FailSchema:
		return true
	case BooleanSchema:
		bv := b.(BooleanSchema)
		return equalPtr(av.Default, bv.Default)
	case TextSchema:
		bv := b.(TextSchema)
		return equalTextConstraints(av.Constraints, bv.Constraints) && equalPtr(av.Default, bv.Default)
	case GivenTextSchema:
		return av.Value == b.(GivenTextSchema).Value
	case NumericSchema:
		bv := b.(NumericSchema)
		return equalNumericConstraints(av.Constraints, bv.Constraints) && equalPtr(av.Default, bv.Default)
	case BinarySchema:
		bv := b.(BinarySchema)
		return equalBinaryConstraints(av.Constraints, bv.Constraints)
	case TimeSchema:
		bv := b.(TimeSchema)
		if len(av.Constraints) != len(bv.Constraints) {
			return false
		}
		for i := range av.Constraints {
			if av.Constraints[i] != bv.Constraints[i] {
				return false
			}
		}
		return true
	case EnumSchema:
		bv := b.(EnumSchema)
		if len(av.Values) != len(bv.Values) {
			return false
		}
		for i := range av.Values {
			if av.Values[i] != bv.Values[i] {
				return false
			}
		}
		return true
	case ListOfSchema:
		bv := b.(ListOfSchema)
		return Equal(av.Element, bv.Element) && equalListConstraints(av.Constraints, bv.Constraints)
	case TupleSchema:
		bv := b.(TupleSchema)
		if len(av.Elements) != len(bv.Elements) {
			return false
		}
		for i := range av.Elements {
			if !Equal(av.Elements[i], bv.Elements[i]) {
				return false
			}
		}
		return true
	case AlternativesSchema:
		bv := b.(AlternativesSchema)
		if len(av.Options) != len(bv.Options) {
			return false
		}
		for i := range av.Options {
			if !Equal(av.Options[i], bv.Options[i]) {
				return false
			}
		}
		return true
	case ObjectSchema:
		bv := b.(ObjectSchema)
		if len(av.Fields) != len(bv.Fields) {
			return false
		}
		for _, f := range av.Fields {
			other, ok := bv.Field(f.Label.Name)
			if !ok || other.Label.Mandatory != f.Label.Mandatory || !Equal(f.Schema, other.Schema) {
				return false
			}
		}
		return true
	case MapSchema:
		bv := b.(MapSchema)
		return Equal(av.ValueSchema, bv.ValueSchema)
	case RefSchema:
		return av.Name == b.(RefSchema).Name
	case ScopedRefSchema:
		bv := b.(ScopedRefSchema)
		return av.Namespace == bv.Namespace && av.Name == bv.Name
	case ImportSchema:
		bv := b.(ImportSchema)
		return av.Namespace == bv.Namespace && av.Path == bv.Path
	case DocumentedSchema:
		bv := b.(DocumentedSchema)
		return av.Doc == bv.Doc && Equal(av.Inner, bv.Inner)
	case DeprecatedSchema:
		return Equal(av.Inner, b.(DeprecatedSchema).Inner)
	default:
		return false
	}
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func equalIntRange(a, b *IntRange) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return equalBound(a.Min, b.Min) && equalBound(a.Max, b.Max)
}

func equalBound[V comparable](a, b *Bound[V]) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Op == b.Op && a.Value == b.Value
}

func equalDecimalRange(a, b *DecimalRange) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if (a.Min == nil) != (b.Min == nil) || (a.Max == nil) != (b.Max == nil) {
		return false
	}
	if a.Min != nil && (a.Min.Op != b.Min.Op || a.Min.Value.Cmp(b.Min.Value) != 0) {
		return false
	}
	if a.Max != nil && (a.Max.Op != b.Max.Op || a.Max.Value.Cmp(b.Max.Value) != 0) {
		return false
	}
	return true
}

func equalTextConstraints(a, b TextConstraints) bool {
	return equalIntRange(a.Size, b.Size) && equalPtr(a.Regex, b.Regex) && equalPtr(a.Format, b.Format)
}

func equalNumericConstraints(a, b NumericConstraints) bool {
	return equalDecimalRange(a.Value, b.Value) && a.Integer == b.Integer
}

func equalBinaryConstraints(a, b BinaryConstraints) bool {
	return equalIntRange(a.Size, b.Size) && a.Encoding == b.Encoding
}

func equalListConstraints(a, b ListConstraints) bool {
	if !equalIntRange(a.Size, b.Size) {
		return false
	}
	if len(a.Unique) != len(b.Unique) {
		return false
	}
	for i := range a.Unique {
		if len(a.Unique[i].ByFields) != len(b.Unique[i].ByFields) {
			return false
		}
		for j := range a.Unique[i].ByFields {
			if a.Unique[i].ByFields[j] != b.Unique[i].ByFields[j] {
				return false
			}
		}
	}
	return true
}
