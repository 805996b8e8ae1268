// Package jsonschema is the flagship translator (component I, spec §4.8):
// a JSON Schema 2020-12 importer, tolerant of Draft-07 shapes, plus the
// inverse exporter (spec §4.9). Both directions map the same keywords, so
// they live in one package, but each has its own type switch: the importer
// dispatches in dispatch.go, the exporter in exporter.go.
package jsonschema
