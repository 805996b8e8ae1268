package avro

import (
	"github.com/veltrix/schemaforge/schema"
	"github.com/veltrix/schemaforge/translate"
)

// translateValue is the variant dispatch over one Avro schema node: a
// primitive/named-type string, a union array, or a complex-type object.
func translateValue(raw any, ctx translate.Context, reg *registry, defs map[string]schema.Schema) (schema.Schema, error) {
	switch v := raw.(type) {
	case string:
		if v == "null" {
			ctx.AddApproximation("type \"null\" used outside a union; represented as Any")
			return schema.Any(), nil
		}
		return baseTypeOrRef(v, ctx, reg, defs)
	case []any:
		return translateTopLevelUnion(v, ctx, reg, defs)
	case map[string]any:
		return translateObjectNode(v, ctx, reg, defs)
	default:
		ctx.AddExtension("avro schema node is neither a type name, a union, nor a type object")
		return schema.Any(), nil
	}
}

func primitiveType(name string) (schema.Schema, bool) {
	switch name {
	case "boolean":
		return schema.Boolean(nil), true
	case "int", "long":
		return schema.Numeric(schema.NumericConstraints{Integer: true}, nil), true
	case "float", "double":
		return schema.Numeric(schema.NumericConstraints{}, nil), true
	case "bytes":
		return schema.Binary(schema.BinaryConstraints{}), true
	case "string":
		return schema.Text(schema.TextConstraints{}, nil), true
	default:
		return nil, false
	}
}

func baseTypeOrRef(name string, ctx translate.Context, reg *registry, defs map[string]schema.Schema) (schema.Schema, error) {
	if s, ok := primitiveType(name); ok {
		return s, nil
	}
	if reg.translated[name] || reg.inProgress[name] {
		return schema.Ref(name), nil
	}
	ctx.AddLoss("referenced named type \"" + name + "\" was not defined in this schema")
	return schema.Any(), nil
}

// translateTopLevelUnion handles a union appearing outside a record field
// (no enclosing field label to carry optionality onto); "null" members are
// dropped since the IR has no standalone null type, a documented loss of
// nuance at this one position (spec's field-level `[null, T]` rule covers
// the common case, handled separately by translateFieldType).
func translateTopLevelUnion(members []any, ctx translate.Context, reg *registry, defs map[string]schema.Schema) (schema.Schema, error) {
	var options []schema.Schema
	for i, m := range members {
		if s, ok := asString(m); ok && s == "null" {
			continue
		}
		translated, err := translateValue(m, ctx.AtPath(indexSegment(i)), reg, defs)
		if err != nil {
			return nil, err
		}
		options = append(options, translated)
	}
	switch len(options) {
	case 0:
		return schema.Any(), nil
	case 1:
		return options[0], nil
	default:
		return schema.Alternatives(options), nil
	}
}

// translateFieldType implements spec §4.9's "union [null, T] -> optional
// field": a record field's own type, returning whether it should be an
// Optional label.
func translateFieldType(raw any, ctx translate.Context, reg *registry, defs map[string]schema.Schema) (schema.Schema, bool, error) {
	members, ok := asArray(raw)
	if !ok {
		inner, err := translateValue(raw, ctx, reg, defs)
		return inner, false, err
	}

	nullable := false
	var nonNull []any
	for _, m := range members {
		if s, ok := asString(m); ok && s == "null" {
			nullable = true
			continue
		}
		nonNull = append(nonNull, m)
	}

	switch len(nonNull) {
	case 0:
		return schema.Any(), nullable, nil
	case 1:
		inner, err := translateValue(nonNull[0], ctx, reg, defs)
		return inner, nullable, err
	default:
		options := make([]schema.Schema, 0, len(nonNull))
		for i, m := range nonNull {
			s, err := translateValue(m, ctx.AtPath(indexSegment(i)), reg, defs)
			if err != nil {
				return nil, false, err
			}
			options = append(options, s)
		}
		return schema.Alternatives(options), nullable, nil
	}
}

func translateObjectNode(obj map[string]any, ctx translate.Context, reg *registry, defs map[string]schema.Schema) (schema.Schema, error) {
	switch t := obj["type"].(type) {
	case string:
		switch t {
		case "record":
			return translateRecord(obj, ctx, reg, defs)
		case "enum":
			return translateEnumType(obj, reg, defs)
		case "array":
			return translateArrayType(obj, ctx, reg, defs)
		case "map":
			return translateMapType(obj, ctx, reg, defs)
		case "fixed":
			return translateFixedType(obj, ctx, reg, defs)
		default:
			return translatePrimitiveWithLogicalType(t, obj, ctx)
		}
	case map[string]any:
		return translateValue(t, ctx, reg, defs)
	case []any:
		return translateTopLevelUnion(t, ctx, reg, defs)
	default:
		ctx.AddExtension("avro schema object has no recognizable \"type\"")
		return schema.Any(), nil
	}
}

func translatePrimitiveWithLogicalType(baseName string, obj map[string]any, ctx translate.Context) (schema.Schema, error) {
	base, ok := primitiveType(baseName)
	if !ok {
		ctx.AddExtension("unrecognized avro type \"" + baseName + "\"")
		return schema.Any(), nil
	}
	logical, hasLogical := asString(obj["logicalType"])
	if !hasLogical {
		return base, nil
	}
	switch logical {
	case "date":
		ctx.AddApproximation("logical type \"date\" (an integer day count) is approximated as a text Time schema")
		return schema.Time([]schema.TimeConstraint{{Named: "iso8601-date"}}), nil
	case "time-millis", "time-micros":
		ctx.AddApproximation("logical type \"" + logical + "\" (an integer) is approximated as a text Time schema")
		return schema.Time([]schema.TimeConstraint{{Named: "iso8601-time"}}), nil
	case "timestamp-millis", "timestamp-micros":
		ctx.AddApproximation("logical type \"" + logical + "\" (an integer) is approximated as a text Time schema")
		return schema.Time([]schema.TimeConstraint{{Named: "rfc3339"}}), nil
	case "decimal":
		ctx.AddApproximation("logical type \"decimal\" precision/scale are not enforced by this schema model's Numeric")
		return schema.Numeric(schema.NumericConstraints{}, nil), nil
	case "uuid":
		format := "uuid"
		return schema.Text(schema.TextConstraints{Format: &format}, nil), nil
	default:
		ctx.AddExtension("unrecognized logical type \"" + logical + "\"")
		return base, nil
	}
}
