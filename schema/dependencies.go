package schema

// Dependencies returns the set of names referenced anywhere beneath s:
// identity (empty) on terminals, union over composite children, a
// singleton {name} for Ref, and a singleton {namespace} or {namespace.name}
// for ScopedRef. The result has no duplicates but is otherwise unordered.
func Dependencies(s Schema) []string {
	seen := map[string]struct{}{}
	collectDependencies(s, seen)
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	return out
}

func collectDependencies(s Schema, seen map[string]struct{}) {
	switch v := s.(type) {
	case RefSchema:
		seen[v.Name] = struct{}{}
	case ScopedRefSchema:
		seen[v.Key()] = struct{}{}
	case ListOfSchema:
		collectDependencies(v.Element, seen)
	case TupleSchema:
		for _, e := range v.Elements {
			collectDependencies(e, seen)
		}
	case AlternativesSchema:
		for _, o := range v.Options {
			collectDependencies(o, seen)
		}
	case ObjectSchema:
		for _, f := range v.Fields {
			collectDependencies(f.Schema, seen)
		}
	case MapSchema:
		collectDependencies(v.ValueSchema, seen)
	case DocumentedSchema:
		collectDependencies(v.Inner, seen)
	case DeprecatedSchema:
		collectDependencies(v.Inner, seen)
	default:
		// Any, Fail, Boolean, Text, GivenText, Numeric, Binary, Time, Enum,
		// Import: no children to recurse into.
	}
}
