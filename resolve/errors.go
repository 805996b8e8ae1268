package resolve

import "errors"

// Hard errors surfaced by reference and import resolution. Following the
// teacher's categorized-sentinel style (kaptinlin/jsonschema's errors.go),
// each is a distinct sentinel so callers can errors.Is against a stable
// value instead of string-matching messages.
var (
	// ErrCircularImport is returned when a file, directly or transitively,
	// imports itself.
	ErrCircularImport = errors.New("circular import")

	// ErrImportRead is the sentinel for an imported file that cannot be
	// read. ResolveImports does not create it: it passes a FileLoader's
	// error through, prefixed with the import path.
	ErrImportRead = errors.New("import read failed")

	// ErrImportParse is the sentinel for an imported file whose contents are
	// not a valid schema document. Like ErrImportRead, it reaches callers
	// only when a FileLoader returns it.
	ErrImportParse = errors.New("import parse failed")

	// ErrRecursionLimit is the sentinel for resolution that recurses too
	// deeply. ResolveImports and ResolveReferences impose no depth limit
	// and never return it; import recursion ends at circular-import
	// detection.
	ErrRecursionLimit = errors.New("recursion limit exceeded")
)
