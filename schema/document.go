package schema

// ParsedSchema is the direct output of the syntax parser (component D):
// imports have not yet been inlined.
type ParsedSchema struct {
	Root        Schema
	Definitions map[string]Schema
	Imports     map[string]string // namespace -> relative file path
}

// ResolvedSchema is a ParsedSchema with imports inlined. Remaining Ref /
// ScopedRef values are namespace-internal; the validator treats an
// unresolved one as a programmer error (UnresolvedReference).
type ResolvedSchema struct {
	Root        Schema
	Definitions map[string]Schema
}
