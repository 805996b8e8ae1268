package xsd

import (
	"encoding/xml"
	"fmt"

	"github.com/veltrix/schemaforge/friction"
	"github.com/veltrix/schemaforge/schema"
	"github.com/veltrix/schemaforge/translate"
)

// Importer translates an xs:schema document into this engine's IR.
type Importer struct{}

// NewImporter returns a ready-to-use Importer.
func NewImporter() *Importer { return &Importer{} }

// Result is the importer's output: the translated root (the schema's sole
// top-level element, or an Alternatives of several), every named
// complexType/simpleType the document declares (referenced from the root
// or not), and the accumulated friction.
type Result struct {
	Root        schema.Schema
	Definitions map[string]schema.Schema
	Report      *friction.Report
}

// Import runs the top-level algorithm spec §4.9 describes for XSD.
func (imp *Importer) Import(text string) (*Result, error) {
	var doc xsdSchema
	if err := xml.Unmarshal([]byte(text), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", translate.ErrMalformedSource, err)
	}

	reg := newRegistry(doc)
	ctx := translate.NewContext(nil)
	defs := map[string]schema.Schema{}

	root, err := translateRootElements(doc.Elements, ctx, reg, defs)
	if err != nil {
		return nil, err
	}

	if err := translateUnreferencedNamedTypes(reg, ctx, defs); err != nil {
		return nil, err
	}

	return &Result{Root: root, Definitions: defs, Report: ctx.Report}, nil
}

func translateRootElements(elements []xsdElement, ctx translate.Context, reg *registry, defs map[string]schema.Schema) (schema.Schema, error) {
	switch len(elements) {
	case 0:
		ctx.AddLoss("schema declares no top-level element")
		return schema.Any(), nil
	case 1:
		el := elements[0]
		return translateElementInline(el, ctx.AtPath(el.Name), reg, defs)
	default:
		ctx.AddApproximation("schema declares multiple top-level elements; represented as Alternatives")
		return translateChoice(elements, ctx, reg, defs)
	}
}

// translateUnreferencedNamedTypes reaches every named complexType and
// simpleType the root never referenced, so Definitions is complete even
// for library-style schemas (a common XSD authoring style: declare named
// types, reference only a subset from the root element).
func translateUnreferencedNamedTypes(reg *registry, ctx translate.Context, defs map[string]schema.Schema) error {
	for _, name := range sortedComplexTypeNames(reg.complexTypes) {
		if _, err := resolveNamedType(name, ctx, reg, defs); err != nil {
			return err
		}
	}
	for _, name := range sortedSimpleTypeNames(reg.simpleTypes) {
		if _, err := resolveNamedType(name, ctx, reg, defs); err != nil {
			return err
		}
	}
	return nil
}
