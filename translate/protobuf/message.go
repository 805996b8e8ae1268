package protobuf

import (
	"strconv"
	"strings"

	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/veltrix/schemaforge/schema"
	"github.com/veltrix/schemaforge/translate"
)

// translateMessageFields implements "messages -> objects": one ObjectField
// per plain field, one grouped Alternatives field per real (non-synthetic)
// oneof, and a Map field wherever a repeated message field is a proto3 map
// entry. Field numbers are recorded as a single Loss per message (spec
// §4.9: "field numbers are not represented in the IR").
func translateMessageFields(m *descriptorpb.DescriptorProto, fullName string, ctx translate.Context, reg *registry, defs map[string]schema.Schema) ([]schema.ObjectField, error) {
	mapEntries := mapEntryTypeNames(fullName, m)

	oneofMembers := map[int32][]*descriptorpb.FieldDescriptorProto{}
	for _, f := range m.GetField() {
		if f.OneofIndex != nil && !f.GetProto3Optional() {
			oneofMembers[f.GetOneofIndex()] = append(oneofMembers[f.GetOneofIndex()], f)
		}
	}

	emittedOneof := map[int32]bool{}
	var fields []schema.ObjectField
	var fieldNumbers []string

	for _, f := range m.GetField() {
		fieldNumbers = append(fieldNumbers, f.GetName()+"="+strconv.Itoa(int(f.GetNumber())))

		if f.OneofIndex != nil && !f.GetProto3Optional() {
			idx := f.GetOneofIndex()
			if emittedOneof[idx] {
				continue
			}
			emittedOneof[idx] = true
			field, err := translateOneof(oneofName(m, idx), oneofMembers[idx], ctx, reg, defs)
			if err != nil {
				return nil, err
			}
			fields = append(fields, field)
			continue
		}

		if isMapField(f, mapEntries) {
			field, err := translateMapField(f, ctx, reg, defs)
			if err != nil {
				return nil, err
			}
			fields = append(fields, field)
			continue
		}

		field, err := translatePlainField(f, ctx, reg, defs)
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}

	if len(fieldNumbers) > 0 {
		ctx.AddLoss("field numbers (" + strings.Join(fieldNumbers, ", ") + ") are not represented in this schema model")
	}

	return fields, nil
}

func oneofName(m *descriptorpb.DescriptorProto, idx int32) string {
	decls := m.GetOneofDecl()
	if int(idx) < len(decls) {
		return decls[idx].GetName()
	}
	return "oneof_" + strconv.Itoa(int(idx))
}

func mapEntryTypeNames(fullName string, m *descriptorpb.DescriptorProto) map[string]bool {
	set := map[string]bool{}
	for _, nt := range m.GetNestedType() {
		if nt.GetOptions().GetMapEntry() {
			set[joinName(fullName, nt.GetName())] = true
		}
	}
	return set
}

func isMapField(f *descriptorpb.FieldDescriptorProto, mapEntries map[string]bool) bool {
	return f.GetLabel() == descriptorpb.FieldDescriptorProto_LABEL_REPEATED &&
		f.GetType() == descriptorpb.FieldDescriptorProto_TYPE_MESSAGE &&
		mapEntries[stripLeadingDot(f.GetTypeName())]
}

// translateMapField implements "map<K,V> -> Map with Approximation when
// K != string".
func translateMapField(f *descriptorpb.FieldDescriptorProto, ctx translate.Context, reg *registry, defs map[string]schema.Schema) (schema.ObjectField, error) {
	entry := reg.idx.messages[stripLeadingDot(f.GetTypeName())]
	if entry == nil {
		ctx.AddLoss("map entry type for field \"" + f.GetName() + "\" could not be found")
		return schema.ObjectField{Label: schema.Mandatory(f.GetName()), Schema: schema.MapOf(schema.Any())}, nil
	}

	var keyField, valueField *descriptorpb.FieldDescriptorProto
	for _, nf := range entry.GetField() {
		switch nf.GetNumber() {
		case 1:
			keyField = nf
		case 2:
			valueField = nf
		}
	}
	if keyField != nil && keyField.GetType() != descriptorpb.FieldDescriptorProto_TYPE_STRING {
		ctx.AddApproximation("map field \"" + f.GetName() + "\" has a non-string key; represented as Map with the key type ignored")
	}

	valueSchema := schema.Schema(schema.Any())
	if valueField != nil {
		translated, err := translateFieldScalarType(valueField, ctx.AtPath(f.GetName()), reg, defs)
		if err != nil {
			return schema.ObjectField{}, err
		}
		valueSchema = translated
	}
	return schema.ObjectField{Label: schema.Mandatory(f.GetName()), Schema: schema.MapOf(valueSchema)}, nil
}

// translateOneof implements "oneof -> Alternatives": every member field's
// type, unioned; the field itself is always Optional since a proto3
// oneof may have none of its members set.
func translateOneof(name string, members []*descriptorpb.FieldDescriptorProto, ctx translate.Context, reg *registry, defs map[string]schema.Schema) (schema.ObjectField, error) {
	options := make([]schema.Schema, 0, len(members))
	for _, m := range members {
		s, err := translateFieldScalarType(m, ctx.AtPath(name).AtPath(m.GetName()), reg, defs)
		if err != nil {
			return schema.ObjectField{}, err
		}
		options = append(options, s)
	}
	var result schema.Schema
	switch len(options) {
	case 0:
		result = schema.Any()
	case 1:
		result = options[0]
	default:
		result = schema.Alternatives(options)
	}
	return schema.ObjectField{Label: schema.Optional(name), Schema: result}, nil
}

// translatePlainField implements "repeated -> lists" plus the
// proto3-presence label rule: a field explicitly declared `optional`, or
// repeated (naturally zero-or-more), is Optional; an ordinary implicit-
// presence singular field is Mandatory (design decision, DESIGN.md Open
// Questions: proto3 gives singular fields a default rather than true
// absence, so this engine's Mandatory is the closer of the two labels).
func translatePlainField(f *descriptorpb.FieldDescriptorProto, ctx translate.Context, reg *registry, defs map[string]schema.Schema) (schema.ObjectField, error) {
	inner, err := translateFieldScalarType(f, ctx.AtPath(f.GetName()), reg, defs)
	if err != nil {
		return schema.ObjectField{}, err
	}
	repeated := f.GetLabel() == descriptorpb.FieldDescriptorProto_LABEL_REPEATED
	if repeated {
		inner = schema.ListOf(inner, schema.ListConstraints{})
	}
	label := schema.Mandatory(f.GetName())
	if repeated || f.GetProto3Optional() {
		label = schema.Optional(f.GetName())
	}
	return schema.ObjectField{Label: label, Schema: inner}, nil
}

// translateFieldScalarType translates f's own type, ignoring its
// repeated-ness (the caller wraps that).
func translateFieldScalarType(f *descriptorpb.FieldDescriptorProto, ctx translate.Context, reg *registry, defs map[string]schema.Schema) (schema.Schema, error) {
	switch f.GetType() {
	case descriptorpb.FieldDescriptorProto_TYPE_DOUBLE, descriptorpb.FieldDescriptorProto_TYPE_FLOAT:
		return schema.Numeric(schema.NumericConstraints{}, nil), nil
	case descriptorpb.FieldDescriptorProto_TYPE_INT64, descriptorpb.FieldDescriptorProto_TYPE_UINT64,
		descriptorpb.FieldDescriptorProto_TYPE_INT32, descriptorpb.FieldDescriptorProto_TYPE_FIXED64,
		descriptorpb.FieldDescriptorProto_TYPE_FIXED32, descriptorpb.FieldDescriptorProto_TYPE_UINT32,
		descriptorpb.FieldDescriptorProto_TYPE_SFIXED32, descriptorpb.FieldDescriptorProto_TYPE_SFIXED64,
		descriptorpb.FieldDescriptorProto_TYPE_SINT32, descriptorpb.FieldDescriptorProto_TYPE_SINT64:
		return schema.Numeric(schema.NumericConstraints{Integer: true}, nil), nil
	case descriptorpb.FieldDescriptorProto_TYPE_BOOL:
		return schema.Boolean(nil), nil
	case descriptorpb.FieldDescriptorProto_TYPE_STRING:
		return schema.Text(schema.TextConstraints{}, nil), nil
	case descriptorpb.FieldDescriptorProto_TYPE_BYTES:
		return schema.Binary(schema.BinaryConstraints{}), nil
	case descriptorpb.FieldDescriptorProto_TYPE_ENUM:
		return resolveNamedType(stripLeadingDot(f.GetTypeName()), true, ctx, reg, defs)
	case descriptorpb.FieldDescriptorProto_TYPE_MESSAGE:
		full := stripLeadingDot(f.GetTypeName())
		if wk, ok := wellKnownType(full, ctx); ok {
			return wk, nil
		}
		return resolveNamedType(full, false, ctx, reg, defs)
	case descriptorpb.FieldDescriptorProto_TYPE_GROUP:
		ctx.AddExtension("proto2 group fields are not supported")
		return schema.Any(), nil
	default:
		ctx.AddExtension("unrecognized protobuf field type")
		return schema.Any(), nil
	}
}

func resolveNamedType(full string, isEnum bool, ctx translate.Context, reg *registry, defs map[string]schema.Schema) (schema.Schema, error) {
	if reg.translated[full] || reg.inProgress[full] {
		return schema.Ref(full), nil
	}

	if isEnum {
		e, ok := reg.idx.enums[full]
		if !ok {
			ctx.AddLoss("enum type \"" + full + "\" could not be found")
			return schema.Any(), nil
		}
		reg.inProgress[full] = true
		result := translateEnum(e)
		delete(reg.inProgress, full)
		reg.translated[full] = true
		defs[full] = result
		return schema.Ref(full), nil
	}

	msg, ok := reg.idx.messages[full]
	if !ok {
		ctx.AddLoss("message type \"" + full + "\" could not be found")
		return schema.Any(), nil
	}
	reg.inProgress[full] = true
	fields, err := translateMessageFields(msg, full, ctx.AtPath(full), reg, defs)
	delete(reg.inProgress, full)
	if err != nil {
		return nil, err
	}
	reg.translated[full] = true
	defs[full] = schema.ObjectOf(fields)
	return schema.Ref(full), nil
}

func translateEnum(e *descriptorpb.EnumDescriptorProto) schema.Schema {
	values := make([]string, 0, len(e.GetValue()))
	for _, v := range e.GetValue() {
		values = append(values, v.GetName())
	}
	return schema.Enum(values)
}
