package jsonschema

import (
	"fmt"

	"github.com/veltrix/schemaforge/friction"
	"github.com/veltrix/schemaforge/schema"
	"github.com/veltrix/schemaforge/translate"
)

// Importer translates JSON Schema text into this engine's IR. Modeled on
// the teacher's Compiler: a small struct carrying the one pluggable
// collaborator (here a single Fetcher, where the teacher has a
// scheme-keyed Loaders map) rather than free functions.
type Importer struct {
	// Fetcher resolves external URL `$ref`s (spec §4.8.7). Defaults to
	// translate.NoOpFetcher, under which such refs produce a Loss.
	Fetcher translate.Fetcher
}

// NewImporter returns an Importer with a NoOpFetcher.
func NewImporter() *Importer {
	return &Importer{Fetcher: translate.NoOpFetcher{}}
}

// Result is the importer's output (spec §4.8): the translated root, every
// definition reachable from it by name, and the accumulated friction.
type Result struct {
	Root        schema.Schema
	Definitions map[string]schema.Schema
	Report      *friction.Report
}

// Import runs the top-level algorithm of spec §4.8.1.
func (imp *Importer) Import(text string) (*Result, error) {
	raw, err := decodeJSON(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", translate.ErrMalformedSource, err)
	}

	fetcher := imp.Fetcher
	if fetcher == nil {
		fetcher = translate.NoOpFetcher{}
	}

	sc := newScope(raw, rootDefinitions(raw), fetcher)
	root, err := translateValue(raw, sc)
	if err != nil {
		return nil, err
	}

	definitions, err := translateReferencedDefs(sc)
	if err != nil {
		return nil, err
	}

	return &Result{Root: root, Definitions: definitions, Report: sc.Report}, nil
}

// translateReferencedDefs is the worklist of spec §4.8.4: dequeue a name,
// translate it with a fresh path and cycle-detection scope but the same
// shared report and referencedDefs set, enqueue anything newly
// discovered, stop when the worklist is empty.
func translateReferencedDefs(sc scope) (map[string]schema.Schema, error) {
	definitions := map[string]schema.Schema{}
	for {
		name, ok := popUntranslated(sc.ReferencedDefs, definitions)
		if !ok {
			break
		}

		raw, found := sc.Definitions[name]
		if !found {
			sc.Report.AddLoss("$/"+name, "definition \""+name+"\" was referenced but not found")
			definitions[name] = schema.Any()
			continue
		}

		defScope := sc
		defScope.Path = "$"
		defScope.ResolvedRefs = map[string]struct{}{}
		defScope = defScope.AtPath(name)

		translated, err := translateValue(raw, defScope)
		if err != nil {
			return nil, err
		}
		definitions[name] = translated
	}
	return definitions, nil
}

func popUntranslated(referenced map[string]struct{}, done map[string]schema.Schema) (string, bool) {
	for name := range referenced {
		delete(referenced, name)
		if _, already := done[name]; already {
			continue
		}
		return name, true
	}
	return "", false
}
