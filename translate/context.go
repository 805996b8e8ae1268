// Package translate is the shared importer/exporter framework (component
// H, spec §4.7): a TranslationContext threaded through recursive descent,
// plus a pluggable Fetcher for importers that resolve external references.
package translate

import "github.com/veltrix/schemaforge/friction"

// Context is the value every translator threads through its recursion.
// It is immutable by convention: With*-prefixed methods return a modified
// copy rather than mutating receiver fields, mirroring the teacher's
// DynamicScope threading through evaluate. Report and ReferencedDefs are
// the two exceptions — they are the translation's running, shared state
// (an append-only log and a worklist) and are intentionally mutated in
// place across every branch of the recursion.
type Context struct {
	Path string
	// Report accumulates friction for the whole translation (spec §4.6);
	// shared across every recursive call, never copied.
	Report *friction.Report
	// Definitions holds the source document's raw, not-yet-translated
	// definitions, keyed by name, in whatever shape the source format
	// uses (e.g. decoded JSON for translate/jsonschema).
	Definitions map[string]any
	// ResolvedRefs is the set of reference names currently being resolved
	// on the path from the root to here, for cycle detection (spec
	// §4.8.4's "#" self-reference rule generalizes to every ref-bearing
	// translator).
	ResolvedRefs map[string]struct{}
	// ReferencedDefs is the running worklist of definition names
	// discovered by reference but not yet translated (spec §4.8.4).
	ReferencedDefs map[string]struct{}
}

// NewContext starts a translation at the document root with a fresh report
// and an empty worklist.
func NewContext(definitions map[string]any) Context {
	return Context{
		Path:           "$",
		Report:         friction.New(),
		Definitions:    definitions,
		ResolvedRefs:   map[string]struct{}{},
		ReferencedDefs: map[string]struct{}{},
	}
}

// AtPath returns a copy of c with segment appended to Path.
func (c Context) AtPath(segment string) Context {
	c.Path = c.Path + "/" + segment
	return c
}

// AddLoss records a Loss entry at c's current path.
func (c Context) AddLoss(message string, suggestion ...string) {
	c.Report.AddLoss(c.Path, message, suggestion...)
}

// AddApproximation records an Approximation entry at c's current path.
func (c Context) AddApproximation(message string, suggestion ...string) {
	c.Report.AddApproximation(c.Path, message, suggestion...)
}

// AddExtension records an Extension entry at c's current path.
func (c Context) AddExtension(message string, suggestion ...string) {
	c.Report.AddExtension(c.Path, message, suggestion...)
}

// WithResolvedRef returns a copy of c with name added to ResolvedRefs.
// Copying (rather than mutating) ResolvedRefs is what makes cycle
// detection scope-correct: a ref resolved on one branch of the recursion
// must not poison a sibling branch that never went through it.
func (c Context) WithResolvedRef(name string) Context {
	next := make(map[string]struct{}, len(c.ResolvedRefs)+1)
	for k := range c.ResolvedRefs {
		next[k] = struct{}{}
	}
	next[name] = struct{}{}
	c.ResolvedRefs = next
	return c
}

// IsResolvingRef reports whether name is already on the active resolution
// path (a cycle).
func (c Context) IsResolvingRef(name string) bool {
	_, found := c.ResolvedRefs[name]
	return found
}

// AddReferencedDef enqueues name onto the shared worklist.
func (c Context) AddReferencedDef(name string) {
	c.ReferencedDefs[name] = struct{}{}
}
