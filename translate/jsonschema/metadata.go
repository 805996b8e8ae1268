package jsonschema

import "github.com/veltrix/schemaforge/schema"

// wrapMetadata applies spec §4.8.8: Documented(description) first, then
// Deprecated on top, applied outside whatever payload was translated.
func wrapMetadata(obj map[string]any, s schema.Schema) schema.Schema {
	if desc, ok := asString(obj["description"]); ok {
		s = schema.Documented(desc, s)
	}
	if dep, ok := asBool(obj["deprecated"]); ok && dep {
		s = schema.Deprecated(s)
	}
	return s
}
