package protobuf

import (
	"strconv"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/veltrix/schemaforge/schema"
)

// buildMessage is the inverse of translateMessageFields: one
// FieldDescriptorProto per ObjectField, with sequentially synthesized
// field numbers (the originals were dropped on import, per spec §4.9),
// one oneof_decl per Alternatives field, and one synthesized MapEntry
// message per Map field, added at the top level of the file rather than
// nested inside msg.
func (b *fileBuilder) buildMessage(name string, obj schema.ObjectSchema) (*descriptorpb.DescriptorProto, error) {
	msg := &descriptorpb.DescriptorProto{Name: proto.String(name)}
	next := int32(1)
	hasOptional := false
	var fieldNames []string

	for _, f := range obj.Fields {
		fieldNames = append(fieldNames, f.Label.Name)

		switch s := f.Schema.(type) {
		case schema.AlternativesSchema:
			oneofIdx := int32(len(msg.OneofDecl))
			msg.OneofDecl = append(msg.OneofDecl, &descriptorpb.OneofDescriptorProto{Name: proto.String(f.Label.Name)})
			for i, opt := range s.Options {
				fd, err := b.exportFieldType(f.Label.Name+"_"+strconv.Itoa(i+1), opt)
				if err != nil {
					return nil, err
				}
				fd.Number = proto.Int32(next)
				fd.OneofIndex = proto.Int32(oneofIdx)
				msg.Field = append(msg.Field, fd)
				next++
			}
			continue

		case schema.MapSchema:
			entryLocal := name + "_" + sanitizeProtoName(f.Label.Name) + "Entry"
			valueFD, err := b.exportFieldType("value", s.ValueSchema)
			if err != nil {
				return nil, err
			}
			valueFD.Number = proto.Int32(2)
			entry := &descriptorpb.DescriptorProto{
				Name: proto.String(entryLocal),
				Field: []*descriptorpb.FieldDescriptorProto{
					{
						Name:   proto.String("key"),
						Number: proto.Int32(1),
						Label:  descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
						Type:   descriptorpb.FieldDescriptorProto_TYPE_STRING.Enum(),
					},
					valueFD,
				},
				Options: &descriptorpb.MessageOptions{MapEntry: proto.Bool(true)},
			}
			b.fd.MessageType = append(b.fd.MessageType, entry)

			fd := &descriptorpb.FieldDescriptorProto{
				Name:     proto.String(f.Label.Name),
				Number:   proto.Int32(next),
				Label:    descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum(),
				Type:     descriptorpb.FieldDescriptorProto_TYPE_MESSAGE.Enum(),
				TypeName: proto.String(typeNameRef(entryLocal)),
			}
			msg.Field = append(msg.Field, fd)
			next++
			continue

		default:
			fd, err := b.exportFieldType(f.Label.Name, f.Schema)
			if err != nil {
				return nil, err
			}
			fd.Number = proto.Int32(next)
			if !f.Label.Mandatory {
				hasOptional = true
			}
			msg.Field = append(msg.Field, fd)
			next++
		}
	}

	if hasOptional {
		b.ctx.AtPath(name).AddApproximation("optional vs. mandatory fields are not distinguished in the exported proto3 message; all non-repeated fields use implicit presence")
	}
	if len(fieldNames) > 0 {
		b.ctx.AtPath(name).AddApproximation("field numbers were not present in the source schema and have been synthesized sequentially in declaration order")
	}
	return msg, nil
}

// exportFieldType sets every FieldDescriptorProto attribute except Number
// and OneofIndex, which the caller assigns (Number depends on the
// enclosing message's synthesized sequence; OneofIndex only applies to
// Alternatives members).
func (b *fileBuilder) exportFieldType(name string, s schema.Schema) (*descriptorpb.FieldDescriptorProto, error) {
	fd := &descriptorpb.FieldDescriptorProto{
		Name:  proto.String(name),
		Label: descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
	}

	switch v := schema.Unwrap(s).(type) {
	case schema.ListOfSchema:
		inner, err := b.exportFieldType(name, v.Element)
		if err != nil {
			return nil, err
		}
		inner.Label = descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum()
		return inner, nil

	case schema.RefSchema:
		local := sanitizeProtoName(v.Name)
		if err := b.emitNamed(v.Name); err != nil {
			return nil, err
		}
		if _, isEnum := schema.Unwrap(b.definitions[v.Name]).(schema.EnumSchema); isEnum {
			fd.Type = descriptorpb.FieldDescriptorProto_TYPE_ENUM.Enum()
		} else {
			fd.Type = descriptorpb.FieldDescriptorProto_TYPE_MESSAGE.Enum()
		}
		fd.TypeName = proto.String(typeNameRef(local))
		return fd, nil

	case schema.ScopedRefSchema:
		b.ctx.AddLoss("cross-namespace reference " + v.Key() + " has no protobuf equivalent; exported as string")
		fd.Type = descriptorpb.FieldDescriptorProto_TYPE_STRING.Enum()
		return fd, nil

	case schema.TextSchema:
		fd.Type = descriptorpb.FieldDescriptorProto_TYPE_STRING.Enum()
		return fd, nil

	case schema.NumericSchema:
		if v.Constraints.Integer {
			fd.Type = descriptorpb.FieldDescriptorProto_TYPE_INT64.Enum()
		} else {
			fd.Type = descriptorpb.FieldDescriptorProto_TYPE_DOUBLE.Enum()
		}
		return fd, nil

	case schema.BooleanSchema:
		fd.Type = descriptorpb.FieldDescriptorProto_TYPE_BOOL.Enum()
		return fd, nil

	case schema.BinarySchema:
		fd.Type = descriptorpb.FieldDescriptorProto_TYPE_BYTES.Enum()
		return fd, nil

	case schema.TimeSchema:
		b.ctx.AddApproximation("Time is approximated as a plain string field on export")
		fd.Type = descriptorpb.FieldDescriptorProto_TYPE_STRING.Enum()
		return fd, nil

	case schema.GivenTextSchema:
		b.ctx.AddLoss("an exact literal has no protobuf equivalent; exported as string")
		fd.Type = descriptorpb.FieldDescriptorProto_TYPE_STRING.Enum()
		return fd, nil

	case schema.EnumSchema:
		b.ctx.AddLoss("an inline enumeration has no protobuf equivalent outside a named enum type; exported as string")
		fd.Type = descriptorpb.FieldDescriptorProto_TYPE_STRING.Enum()
		return fd, nil

	case schema.TupleSchema:
		b.ctx.AddLoss("a fixed-arity tuple has no protobuf equivalent; exported as opaque bytes, discarding arity and per-position types")
		fd.Type = descriptorpb.FieldDescriptorProto_TYPE_BYTES.Enum()
		return fd, nil

	case schema.AlternativesSchema:
		b.ctx.AddApproximation("a union nested below the top level of a field cannot become a protobuf oneof; exported as opaque bytes")
		fd.Type = descriptorpb.FieldDescriptorProto_TYPE_BYTES.Enum()
		return fd, nil

	case schema.MapSchema:
		b.ctx.AddApproximation("a map nested below the top level of a field has no protobuf equivalent here; exported as opaque bytes")
		fd.Type = descriptorpb.FieldDescriptorProto_TYPE_BYTES.Enum()
		return fd, nil

	case schema.ObjectSchema:
		local := sanitizeProtoName(name) + "Msg"
		nested, err := b.buildMessage(local, v)
		if err != nil {
			return nil, err
		}
		b.fd.MessageType = append(b.fd.MessageType, nested)
		fd.Type = descriptorpb.FieldDescriptorProto_TYPE_MESSAGE.Enum()
		fd.TypeName = proto.String(typeNameRef(local))
		return fd, nil

	case schema.AnySchema:
		b.ctx.AddExtension("Any is exported as a reference to google.protobuf.Any")
		fd.Type = descriptorpb.FieldDescriptorProto_TYPE_MESSAGE.Enum()
		fd.TypeName = proto.String(".google.protobuf.Any")
		return fd, nil

	case schema.FailSchema:
		b.ctx.AddLoss("an always-failing schema has no protobuf equivalent; exported as bool")
		fd.Type = descriptorpb.FieldDescriptorProto_TYPE_BOOL.Enum()
		return fd, nil

	default:
		b.ctx.AddLoss("schema kind has no protobuf export mapping; exported as bytes")
		fd.Type = descriptorpb.FieldDescriptorProto_TYPE_BYTES.Enum()
		return fd, nil
	}
}
