package schema

// RefSchema is an unresolved named reference within one scope.
type RefSchema struct {
	Name string
}

func (RefSchema) Kind() Kind { return KindRef }
func (RefSchema) isSchema()  {}

// Ref constructs a RefSchema.
func Ref(name string) Schema { return RefSchema{Name: name} }

// ScopedRefSchema is a `.`-separated reference into an imported namespace.
// Name may be empty, meaning "root of that namespace".
type ScopedRefSchema struct {
	Namespace string
	Name      string
}

func (ScopedRefSchema) Kind() Kind { return KindScopedRef }
func (ScopedRefSchema) isSchema()  {}

// ScopedRef constructs a ScopedRefSchema.
func ScopedRef(namespace, name string) Schema {
	return ScopedRefSchema{Namespace: namespace, Name: name}
}

// Key returns the lookup key used by substitute/resolveImports: "ns" if
// Name is empty, else "ns.name".
func (s ScopedRefSchema) Key() string {
	if s.Name == "" {
		return s.Namespace
	}
	return s.Namespace + "." + s.Name
}

// ImportSchema lives only inside a parsed-schema container and is replaced
// during resolution (component C); it never reaches the validator.
type ImportSchema struct {
	Namespace string
	Path      string
}

func (ImportSchema) Kind() Kind { return KindImport }
func (ImportSchema) isSchema()  {}

// Import constructs an ImportSchema.
func Import(namespace, path string) Schema { return ImportSchema{Namespace: namespace, Path: path} }

// DocumentedSchema attaches narrative documentation; transparent to
// validation.
type DocumentedSchema struct {
	Doc   string
	Inner Schema
}

func (DocumentedSchema) Kind() Kind { return KindDocumented }
func (DocumentedSchema) isSchema()  {}

// Documented wraps inner with a doc comment.
func Documented(doc string, inner Schema) Schema {
	return DocumentedSchema{Doc: doc, Inner: inner}
}

// DeprecatedSchema marks inner as advisory-deprecated; transparent to
// validation.
type DeprecatedSchema struct {
	Inner Schema
}

func (DeprecatedSchema) Kind() Kind { return KindDeprecated }
func (DeprecatedSchema) isSchema()  {}

// Deprecated wraps inner as deprecated.
func Deprecated(inner Schema) Schema { return DeprecatedSchema{Inner: inner} }

// Unwrap strips Documented/Deprecated wrappers and returns the innermost
// schema; a schema with no wrapper is returned as is.
func Unwrap(s Schema) Schema {
	for {
		switch w := s.(type) {
		case DocumentedSchema:
			s = w.Inner
		case DeprecatedSchema:
			s = w.Inner
		default:
			return s
		}
	}
}
