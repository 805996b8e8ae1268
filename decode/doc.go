// Package decode implements the §6.2 consumed decoder contract: turning
// raw source text in some wire format into the value package's untyped
// Value tree the validator checks against a schema. The validator itself
// is orthogonal to decoding — it never imports this package — but a
// runnable system needs at least one decoder per supported format, so
// this package supplies JSON, YAML, XML, CSV, and plain text as reference
// implementations.
package decode
