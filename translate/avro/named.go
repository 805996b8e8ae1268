package avro

import (
	"github.com/veltrix/schemaforge/schema"
	"github.com/veltrix/schemaforge/translate"
)

// translateRecord implements spec §4.9's "records -> objects": each field
// translates via translateFieldType so a `[null, T]` union becomes an
// Optional label rather than an Alternatives member.
func translateRecord(obj map[string]any, ctx translate.Context, reg *registry, defs map[string]schema.Schema) (schema.Schema, error) {
	name, _ := asString(obj["name"])
	namespace, _ := asString(obj["namespace"])
	full := fullName(namespace, name)

	if full != "" {
		reg.inProgress[full] = true
	}
	fieldsRaw, _ := asArray(obj["fields"])
	fields := make([]schema.ObjectField, 0, len(fieldsRaw))
	for _, fr := range fieldsRaw {
		fobj, ok := asObject(fr)
		if !ok {
			continue
		}
		fname, _ := asString(fobj["name"])
		inner, nullable, err := translateFieldType(fobj["type"], ctx.AtPath(full).AtPath(fname), reg, defs)
		if err != nil {
			return nil, err
		}
		label := schema.Mandatory(fname)
		if nullable {
			label = schema.Optional(fname)
		}
		fields = append(fields, schema.ObjectField{Label: label, Schema: inner})
	}
	if full != "" {
		delete(reg.inProgress, full)
		reg.translated[full] = true
	}

	result := schema.ObjectOf(fields)
	if full == "" {
		return result, nil
	}
	defs[full] = result
	return schema.Ref(full), nil
}

// translateEnumType implements "enums -> Enum".
func translateEnumType(obj map[string]any, reg *registry, defs map[string]schema.Schema) (schema.Schema, error) {
	name, _ := asString(obj["name"])
	namespace, _ := asString(obj["namespace"])
	full := fullName(namespace, name)

	symsRaw, _ := asArray(obj["symbols"])
	syms := make([]string, 0, len(symsRaw))
	for _, s := range symsRaw {
		if str, ok := asString(s); ok {
			syms = append(syms, str)
		}
	}
	result := schema.Enum(syms)
	if full == "" {
		return result, nil
	}
	reg.translated[full] = true
	defs[full] = result
	return schema.Ref(full), nil
}

func translateArrayType(obj map[string]any, ctx translate.Context, reg *registry, defs map[string]schema.Schema) (schema.Schema, error) {
	elem, err := translateValue(obj["items"], ctx.AtPath("items"), reg, defs)
	if err != nil {
		return nil, err
	}
	return schema.ListOf(elem, schema.ListConstraints{}), nil
}

// translateMapType implements "map<K,V> -> Map"; Avro map keys are always
// text, so no Approximation is needed (unlike Protobuf's map<K,V>).
func translateMapType(obj map[string]any, ctx translate.Context, reg *registry, defs map[string]schema.Schema) (schema.Schema, error) {
	v, err := translateValue(obj["values"], ctx.AtPath("values"), reg, defs)
	if err != nil {
		return nil, err
	}
	return schema.MapOf(v), nil
}

// translateFixedType implements "fixed -> Binary + Loss": the exact byte
// length is preserved as a min==max Size range, but fixed's
// exact-length *enforcement* (not merely a range) doesn't transfer.
func translateFixedType(obj map[string]any, ctx translate.Context, reg *registry, defs map[string]schema.Schema) (schema.Schema, error) {
	name, _ := asString(obj["name"])
	namespace, _ := asString(obj["namespace"])
	full := fullName(namespace, name)
	size, _ := asInt64(obj["size"])

	ctx.AddLoss("fixed-size binary has only its byte length preserved as a range, not enforced as an exact size")
	sizeRange := &schema.IntRange{
		Min: &schema.Bound[int64]{Op: schema.MinInclusive, Value: size},
		Max: &schema.Bound[int64]{Op: schema.MaxInclusive, Value: size},
	}
	result := schema.Binary(schema.BinaryConstraints{Size: sizeRange})
	if full == "" {
		return result, nil
	}
	reg.translated[full] = true
	defs[full] = result
	return schema.Ref(full), nil
}
