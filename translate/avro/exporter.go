package avro

import (
	"strings"

	"github.com/goccy/go-json"

	"github.com/veltrix/schemaforge/friction"
	"github.com/veltrix/schemaforge/schema"
	"github.com/veltrix/schemaforge/translate"
)

// Exporter is the inverse of Importer.
type Exporter struct{}

// Export renders root (resolving through definitions) as indented Avro
// schema JSON. A named type is written out in full the first time it is
// reached and as a bare name string on every subsequent reference, per
// Avro's own named-type redefinition rule.
func (Exporter) Export(root schema.Schema, definitions map[string]schema.Schema) (string, *friction.Report, error) {
	report := friction.New()
	ctx := translate.NewContext(nil)
	ctx.Report = report
	emitted := map[string]bool{}

	doc, err := exportSchema(root, ctx, definitions, emitted, "")
	if err != nil {
		return "", report, err
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", report, err
	}
	return string(out), report, nil
}

func sanitizeName(path string) string {
	name := strings.TrimPrefix(path, "$/")
	name = strings.TrimPrefix(name, "$")
	if name == "" {
		return "Root"
	}
	return strings.NewReplacer("/", "_").Replace(name)
}

// exportSchema is the inverse of dispatch.go's translateValue. nameHint
// carries the Avro name a record/enum/fixed at this position should use
// (the referencing Ref's name, or "" to derive one from ctx.Path).
func exportSchema(s schema.Schema, ctx translate.Context, definitions map[string]schema.Schema, emitted map[string]bool, nameHint string) (any, error) {
	switch v := s.(type) {
	case schema.DocumentedSchema:
		inner, err := exportSchema(v.Inner, ctx, definitions, emitted, nameHint)
		if err != nil {
			return nil, err
		}
		if m, ok := inner.(map[string]any); ok {
			m["doc"] = v.Doc
			return m, nil
		}
		ctx.AddLoss("description has no Avro equivalent on a primitive type; dropped")
		return inner, nil
	case schema.DeprecatedSchema:
		ctx.AddApproximation("Avro has no deprecated marker; dropped on export")
		return exportSchema(v.Inner, ctx, definitions, emitted, nameHint)
	case schema.AnySchema:
		ctx.AddLoss("Any has no Avro equivalent; exported as opaque bytes")
		return "bytes", nil
	case schema.FailSchema:
		ctx.AddApproximation("an always-failing schema is approximated as Avro's null type")
		return "null", nil
	case schema.BooleanSchema:
		return "boolean", nil
	case schema.GivenTextSchema:
		ctx.AddLoss("an exact literal has no Avro equivalent; exported as string")
		return "string", nil
	case schema.EnumSchema:
		return map[string]any{
			"type":    "enum",
			"name":    orDefault(nameHint, sanitizeName(ctx.Path)),
			"symbols": v.Values,
		}, nil
	case schema.TextSchema:
		return exportText(v, ctx)
	case schema.NumericSchema:
		return exportNumeric(v, ctx)
	case schema.BinarySchema:
		return exportBinary(v, ctx, nameHint)
	case schema.TimeSchema:
		return exportTime(v, ctx)
	case schema.ListOfSchema:
		return exportListOf(v, ctx, definitions, emitted)
	case schema.TupleSchema:
		return exportTuple(v, ctx, definitions, emitted)
	case schema.AlternativesSchema:
		return exportAlternatives(v, ctx, definitions, emitted)
	case schema.ObjectSchema:
		return exportObject(v, ctx, definitions, emitted, orDefault(nameHint, sanitizeName(ctx.Path)))
	case schema.MapSchema:
		values, err := exportSchema(v.ValueSchema, ctx.AtPath("values"), definitions, emitted, "")
		if err != nil {
			return nil, err
		}
		return map[string]any{"type": "map", "values": values}, nil
	case schema.RefSchema:
		return exportRef(v.Name, ctx, definitions, emitted)
	case schema.ScopedRefSchema:
		ctx.AddLoss("cross-namespace reference " + v.Key() + " has no Avro equivalent")
		return "bytes", nil
	default:
		ctx.AddLoss("schema kind has no Avro export mapping")
		return "bytes", nil
	}
}

func orDefault(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}

func exportRef(name string, ctx translate.Context, definitions map[string]schema.Schema, emitted map[string]bool) (any, error) {
	if emitted[name] {
		return name, nil
	}
	def, found := definitions[name]
	if !found {
		ctx.AddLoss("reference \"" + name + "\" has no corresponding definition")
		return "bytes", nil
	}
	emitted[name] = true
	return exportSchema(def, ctx.AtPath(name), definitions, emitted, name)
}
