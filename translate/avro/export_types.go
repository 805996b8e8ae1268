package avro

import (
	"github.com/veltrix/schemaforge/schema"
	"github.com/veltrix/schemaforge/translate"
)

func exportText(v schema.TextSchema, ctx translate.Context) (any, error) {
	if v.Constraints.Format != nil && *v.Constraints.Format == "uuid" {
		return map[string]any{"type": "string", "logicalType": "uuid"}, nil
	}
	if v.Constraints.Size != nil || v.Constraints.Regex != nil {
		ctx.AddLoss("text size/pattern constraints have no Avro equivalent; exported as a plain string")
	}
	return "string", nil
}

func exportNumeric(v schema.NumericSchema, ctx translate.Context) (any, error) {
	if v.Constraints.Value != nil {
		ctx.AddLoss("numeric range constraints have no Avro equivalent")
	}
	if v.Constraints.Integer {
		return "long", nil
	}
	return "double", nil
}

func exportBinary(v schema.BinarySchema, ctx translate.Context, nameHint string) (any, error) {
	if v.Constraints.Encoding != schema.EncodingNone {
		ctx.AddLoss("binary text encoding \"" + v.Constraints.Encoding.String() + "\" has no Avro equivalent; exported as raw bytes")
	}
	if v.Constraints.Size != nil && v.Constraints.Size.Min != nil && v.Constraints.Size.Max != nil &&
		v.Constraints.Size.Min.Value == v.Constraints.Size.Max.Value {
		return map[string]any{
			"type": "fixed",
			"name": orDefault(nameHint, sanitizeName(ctx.Path)),
			"size": v.Constraints.Size.Min.Value,
		}, nil
	}
	return "bytes", nil
}

func exportTime(v schema.TimeSchema, ctx translate.Context) (any, error) {
	if len(v.Constraints) == 0 {
		return "string", nil
	}
	if len(v.Constraints) > 1 {
		ctx.AddApproximation("multiple time formats collapse to the first one on export")
	}
	switch v.Constraints[0].Named {
	case "rfc3339", "iso8601", "iso8601-datetime":
		return map[string]any{"type": "long", "logicalType": "timestamp-millis"}, nil
	case "iso8601-date":
		return map[string]any{"type": "int", "logicalType": "date"}, nil
	case "iso8601-time":
		return map[string]any{"type": "int", "logicalType": "time-millis"}, nil
	default:
		ctx.AddLoss("custom time pattern has no Avro logical type equivalent; exported as string")
		return "string", nil
	}
}

func exportListOf(v schema.ListOfSchema, ctx translate.Context, definitions map[string]schema.Schema, emitted map[string]bool) (any, error) {
	if v.Constraints.Size != nil || len(v.Constraints.Unique) > 0 {
		ctx.AddLoss("list size/uniqueness constraints have no Avro equivalent")
	}
	items, err := exportSchema(v.Element, ctx.AtPath("items"), definitions, emitted, "")
	if err != nil {
		return nil, err
	}
	return map[string]any{"type": "array", "items": items}, nil
}

func exportTuple(v schema.TupleSchema, ctx translate.Context, definitions map[string]schema.Schema, emitted map[string]bool) (any, error) {
	ctx.AddLoss("fixed-arity tuples have no Avro equivalent; exported as a union of each position's type")
	seen := map[string]bool{}
	union := make([]any, 0, len(v.Elements))
	for i, el := range v.Elements {
		exported, err := exportSchema(el, ctx.AtPath(indexSegment(i)), definitions, emitted, "")
		if err != nil {
			return nil, err
		}
		key, isString := exported.(string)
		if isString && seen[key] {
			continue
		}
		if isString {
			seen[key] = true
		}
		union = append(union, exported)
	}
	return union, nil
}

func exportAlternatives(v schema.AlternativesSchema, ctx translate.Context, definitions map[string]schema.Schema, emitted map[string]bool) (any, error) {
	union := make([]any, 0, len(v.Options))
	for i, opt := range v.Options {
		exported, err := exportSchema(opt, ctx.AtPath(indexSegment(i)), definitions, emitted, "")
		if err != nil {
			return nil, err
		}
		union = append(union, exported)
	}
	return union, nil
}

func exportObject(v schema.ObjectSchema, ctx translate.Context, definitions map[string]schema.Schema, emitted map[string]bool, name string) (any, error) {
	fields := make([]any, 0, len(v.Fields))
	for _, f := range v.Fields {
		fieldType, err := exportSchema(f.Schema, ctx.AtPath("fields").AtPath(f.Label.Name), definitions, emitted, "")
		if err != nil {
			return nil, err
		}
		if !f.Label.Mandatory {
			fieldType = []any{"null", fieldType}
		}
		fields = append(fields, map[string]any{"name": f.Label.Name, "type": fieldType})
	}
	return map[string]any{
		"type":   "record",
		"name":   name,
		"fields": fields,
	}, nil
}
