package jsonschema

import (
	"sort"

	"github.com/goccy/go-json"

	"github.com/veltrix/schemaforge/friction"
	"github.com/veltrix/schemaforge/schema"
	"github.com/veltrix/schemaforge/translate"
)

// Exporter is the inverse of Importer (spec §4.9's "JSON Schema export":
// inverse of §4.8 with friction wherever the reverse mapping is lossy).
type Exporter struct{}

// Export renders root (plus definitions, written under `$defs`) as
// indented JSON Schema text.
func (Exporter) Export(root schema.Schema, definitions map[string]schema.Schema) (string, *friction.Report, error) {
	report := friction.New()
	ctx := translate.NewContext(nil)
	ctx.Report = report

	doc := exportSchema(root, ctx)
	if len(definitions) > 0 {
		defs := map[string]any{}
		for _, name := range sortedDefNames(definitions) {
			defs[name] = exportSchema(definitions[name], ctx.AtPath(name))
		}
		doc["$defs"] = defs
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", report, err
	}
	return string(out), report, nil
}

func sortedDefNames(definitions map[string]schema.Schema) []string {
	names := make([]string, 0, len(definitions))
	for name := range definitions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// exportSchema is the inverse of dispatch.go's translateValue: a Go type
// switch over every IR Kind, producing the JSON Schema keyword map.
func exportSchema(s schema.Schema, ctx translate.Context) map[string]any {
	switch v := s.(type) {
	case schema.DocumentedSchema:
		doc := exportSchema(v.Inner, ctx)
		doc["description"] = v.Doc
		return doc
	case schema.DeprecatedSchema:
		doc := exportSchema(v.Inner, ctx)
		doc["deprecated"] = true
		return doc
	case schema.AnySchema:
		return map[string]any{}
	case schema.FailSchema:
		return map[string]any{"not": map[string]any{}}
	case schema.BooleanSchema:
		out := map[string]any{"type": "boolean"}
		if v.Default != nil {
			out["default"] = *v.Default
		}
		return out
	case schema.GivenTextSchema:
		return map[string]any{"const": v.Value}
	case schema.EnumSchema:
		values := make([]any, len(v.Values))
		for i, s := range v.Values {
			values[i] = s
		}
		return map[string]any{"enum": values}
	case schema.TextSchema:
		return exportText(v)
	case schema.NumericSchema:
		return exportNumeric(v)
	case schema.BinarySchema:
		return exportBinary(v, ctx)
	case schema.TimeSchema:
		return exportTime(v, ctx)
	case schema.ListOfSchema:
		return exportListOf(v, ctx)
	case schema.TupleSchema:
		return exportTuple(v, ctx)
	case schema.AlternativesSchema:
		options := make([]any, len(v.Options))
		for i, opt := range v.Options {
			options[i] = exportSchema(opt, ctx.AtPath(indexSegment(i)))
		}
		return map[string]any{"anyOf": options}
	case schema.ObjectSchema:
		return exportObject(v, ctx)
	case schema.MapSchema:
		return map[string]any{
			"type":                 "object",
			"additionalProperties": exportSchema(v.ValueSchema, ctx.AtPath("additionalProperties")),
		}
	case schema.RefSchema:
		return map[string]any{"$ref": "#/$defs/" + v.Name}
	case schema.ScopedRefSchema:
		ctx.AddLoss("cross-namespace reference " + v.Key() + " has no JSON Schema equivalent without a known file layout")
		return map[string]any{}
	default:
		ctx.AddLoss("schema kind has no JSON Schema export mapping")
		return map[string]any{}
	}
}
