package avro

import (
	"fmt"

	"github.com/veltrix/schemaforge/friction"
	"github.com/veltrix/schemaforge/schema"
	"github.com/veltrix/schemaforge/translate"
)

// Importer translates Avro schema JSON into this engine's IR.
type Importer struct{}

// NewImporter returns a ready-to-use Importer.
func NewImporter() *Importer { return &Importer{} }

// Result is the importer's output: the translated root, every named
// record/enum/fixed reachable from it (keyed by Avro full name), and the
// accumulated friction.
type Result struct {
	Root        schema.Schema
	Definitions map[string]schema.Schema
	Report      *friction.Report
}

// Import decodes text as an Avro schema document and translates it.
func (imp *Importer) Import(text string) (*Result, error) {
	raw, err := decodeJSON(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", translate.ErrMalformedSource, err)
	}

	reg := newRegistry()
	ctx := translate.NewContext(nil)
	defs := map[string]schema.Schema{}

	root, err := translateValue(raw, ctx, reg, defs)
	if err != nil {
		return nil, err
	}

	return &Result{Root: root, Definitions: defs, Report: ctx.Report}, nil
}
