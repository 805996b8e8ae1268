package jsonschema

import (
	"math/big"

	"github.com/goccy/go-json"

	"github.com/veltrix/schemaforge/schema"
	"github.com/veltrix/schemaforge/translate"
)

func exportText(v schema.TextSchema) map[string]any {
	out := map[string]any{"type": "string"}
	if v.Constraints.Size != nil {
		if v.Constraints.Size.Min != nil {
			out["minLength"] = v.Constraints.Size.Min.Value
		}
		if v.Constraints.Size.Max != nil {
			out["maxLength"] = v.Constraints.Size.Max.Value
		}
	}
	if v.Constraints.Regex != nil {
		out["pattern"] = *v.Constraints.Regex
	}
	if v.Constraints.Format != nil {
		out["format"] = *v.Constraints.Format
	}
	if v.Default != nil {
		out["default"] = *v.Default
	}
	return out
}

func exportNumeric(v schema.NumericSchema) map[string]any {
	out := map[string]any{"type": "number"}
	if v.Constraints.Integer {
		out["type"] = "integer"
	}
	if rng := v.Constraints.Value; rng != nil {
		if rng.Min != nil {
			switch rng.Min.Op {
			case schema.MinExclusive:
				out["exclusiveMinimum"] = numToJSON(rng.Min.Value)
			default:
				out["minimum"] = numToJSON(rng.Min.Value)
			}
		}
		if rng.Max != nil {
			switch rng.Max.Op {
			case schema.MaxExclusive:
				out["exclusiveMaximum"] = numToJSON(rng.Max.Value)
			default:
				out["maximum"] = numToJSON(rng.Max.Value)
			}
		}
	}
	if v.Default != nil {
		n, ok := new(big.Rat).SetString(*v.Default)
		if ok {
			out["default"] = numToJSON(n)
		}
	}
	return out
}

func numToJSON(r *big.Rat) json.Number {
	if r.IsInt() {
		return json.Number(r.Num().String())
	}
	return json.Number(r.FloatString(10))
}

func exportBinary(v schema.BinarySchema, ctx translate.Context) map[string]any {
	if v.Constraints.Encoding == schema.EncodingBase64 {
		return map[string]any{"type": "string", "format": "byte"}
	}
	ctx.AddLoss("binary encoding \"" + v.Constraints.Encoding.String() + "\" has no direct JSON Schema format equivalent")
	return map[string]any{"type": "string"}
}

func exportTime(v schema.TimeSchema, ctx translate.Context) map[string]any {
	if len(v.Constraints) == 0 {
		return map[string]any{"type": "string"}
	}
	if len(v.Constraints) > 1 {
		ctx.AddApproximation("multiple time formats collapse to the first one on export")
	}
	format := timeFormatToJSONFormat(v.Constraints[0])
	out := map[string]any{"type": "string"}
	if format != "" {
		out["format"] = format
	}
	return out
}

func timeFormatToJSONFormat(c schema.TimeConstraint) string {
	switch c.Named {
	case "rfc3339", "iso8601", "iso8601-datetime":
		return "date-time"
	case "iso8601-date":
		return "date"
	case "iso8601-time":
		return "time"
	default:
		return ""
	}
}

func exportListOf(v schema.ListOfSchema, ctx translate.Context) map[string]any {
	out := map[string]any{
		"type":  "array",
		"items": exportSchema(v.Element, ctx.AtPath("items")),
	}
	if v.Constraints.Size != nil {
		if v.Constraints.Size.Min != nil {
			out["minItems"] = v.Constraints.Size.Min.Value
		}
		if v.Constraints.Size.Max != nil {
			out["maxItems"] = v.Constraints.Size.Max.Value
		}
	}
	for _, u := range v.Constraints.Unique {
		if u.IsSimple() {
			out["uniqueItems"] = true
		} else {
			ctx.AddLoss("uniqueness by fields (" + joinFields(u.ByFields) + ") has no JSON Schema equivalent")
		}
	}
	return out
}

func joinFields(fields []string) string {
	out := ""
	for i, f := range fields {
		if i > 0 {
			out += ", "
		}
		out += f
	}
	return out
}

func exportTuple(v schema.TupleSchema, ctx translate.Context) map[string]any {
	items := make([]any, len(v.Elements))
	for i, el := range v.Elements {
		items[i] = exportSchema(el, ctx.AtPath(indexSegment(i)))
	}
	return map[string]any{
		"type":        "array",
		"prefixItems": items,
		"items":       false,
	}
}

func exportObject(v schema.ObjectSchema, ctx translate.Context) map[string]any {
	props := map[string]any{}
	var required []any
	for _, f := range v.Fields {
		props[f.Label.Name] = exportSchema(f.Schema, ctx.AtPath("properties").AtPath(f.Label.Name))
		if f.Label.Mandatory {
			required = append(required, f.Label.Name)
		}
	}
	out := map[string]any{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		out["required"] = required
	}
	return out
}
