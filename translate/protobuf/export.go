package protobuf

import (
	"sort"
	"strings"

	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/veltrix/schemaforge/friction"
	"github.com/veltrix/schemaforge/schema"
	"github.com/veltrix/schemaforge/translate"
)

const exportPackage = "schemaforge"

// Exporter is the inverse of Importer: it renders the IR back out as the
// text-format serialization of a descriptorpb.FileDescriptorProto. Field
// numbers were never carried by the IR (Loss on import), so export
// synthesizes them sequentially per message — flagged with one
// Approximation per message, mirroring the Loss the importer records for
// the opposite direction.
type Exporter struct{}

// Export renders root plus every entry of definitions, reachable from root
// or not, as one FileDescriptorProto in textproto form.
func (Exporter) Export(root schema.Schema, definitions map[string]schema.Schema) (string, *friction.Report, error) {
	ctx := translate.NewContext(nil)
	b := &fileBuilder{
		fd:         &descriptorpb.FileDescriptorProto{},
		emitted:    map[string]bool{},
		definitions: definitions,
		ctx:        ctx,
	}
	b.fd.Name = proto.String("exported.proto")
	b.fd.Package = proto.String(exportPackage)
	b.fd.Syntax = proto.String("proto3")

	rootName := "Root"
	if ref, ok := root.(schema.RefSchema); ok {
		rootName = ref.Name
	} else {
		definitions = mergeRoot(definitions, rootName, root)
		b.definitions = definitions
	}
	if err := b.emitNamed(rootName); err != nil {
		return "", ctx.Report, err
	}

	var rest []string
	for name := range definitions {
		if !b.emitted[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	for _, name := range rest {
		if err := b.emitNamed(name); err != nil {
			return "", ctx.Report, err
		}
	}

	out, err := prototext.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(b.fd)
	if err != nil {
		return "", ctx.Report, err
	}
	return string(out), ctx.Report, nil
}

func mergeRoot(definitions map[string]schema.Schema, name string, root schema.Schema) map[string]schema.Schema {
	merged := make(map[string]schema.Schema, len(definitions)+1)
	for k, v := range definitions {
		merged[k] = v
	}
	merged[name] = root
	return merged
}

type fileBuilder struct {
	fd          *descriptorpb.FileDescriptorProto
	emitted     map[string]bool
	definitions map[string]schema.Schema
	ctx         translate.Context
}

func sanitizeProtoName(name string) string {
	return strings.NewReplacer(".", "_", "/", "_", "-", "_").Replace(name)
}

func typeNameRef(localName string) string {
	return "." + exportPackage + "." + localName
}

func (b *fileBuilder) emitNamed(name string) error {
	if b.emitted[name] {
		return nil
	}
	def, found := b.definitions[name]
	if !found {
		b.ctx.AddLoss("reference \"" + name + "\" has no corresponding definition; omitted from export")
		return nil
	}
	b.emitted[name] = true
	local := sanitizeProtoName(name)

	switch v := schema.Unwrap(def).(type) {
	case schema.ObjectSchema:
		msg, err := b.buildMessage(local, v)
		if err != nil {
			return err
		}
		b.fd.MessageType = append(b.fd.MessageType, msg)
	case schema.EnumSchema:
		b.fd.EnumType = append(b.fd.EnumType, buildEnum(local, v))
	default:
		b.ctx.AddLoss("definition \"" + name + "\" is not an object or enum; omitted from export")
	}
	return nil
}

func buildEnum(name string, e schema.EnumSchema) *descriptorpb.EnumDescriptorProto {
	values := make([]*descriptorpb.EnumValueDescriptorProto, 0, len(e.Values)+1)
	values = append(values, &descriptorpb.EnumValueDescriptorProto{
		Name:   proto.String(name + "_UNSPECIFIED"),
		Number: proto.Int32(0),
	})
	for i, v := range e.Values {
		values = append(values, &descriptorpb.EnumValueDescriptorProto{
			Name:   proto.String(v),
			Number: proto.Int32(int32(i) + 1),
		})
	}
	return &descriptorpb.EnumDescriptorProto{Name: proto.String(name), Value: values}
}
