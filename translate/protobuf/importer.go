package protobuf

import (
	"fmt"

	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/veltrix/schemaforge/friction"
	"github.com/veltrix/schemaforge/schema"
	"github.com/veltrix/schemaforge/translate"
)

// Importer turns the text-format serialization of a single
// descriptorpb.FileDescriptorProto into the schema IR. A real build
// pipeline would obtain this textproto by compiling a .proto file with
// protoc and --descriptor_set_out; this importer only consumes the
// resulting descriptor, matching the depth the rest of component J is
// built to (design sketch, not a full proto3 front end).
type Importer struct{}

func NewImporter() *Importer { return &Importer{} }

// Result mirrors translate/xsd and translate/avro's Result shape: a root
// schema plus every named message/enum this document declares, reachable
// by full (package-qualified) name.
type Result struct {
	Root        schema.Schema
	Definitions map[string]schema.Schema
	Report      *friction.Report
}

// Import parses text as a FileDescriptorProto and translates it. Root
// selection: the file's first top-level message, if any, else its first
// top-level enum; every other declared message/enum is still translated
// and reachable through Definitions, matching the "library schema"
// treatment translate/xsd and translate/avro give unreferenced named
// types.
func (imp *Importer) Import(text string) (*Result, error) {
	var fd descriptorpb.FileDescriptorProto
	if err := prototext.Unmarshal([]byte(text), &fd); err != nil {
		return nil, fmt.Errorf("%w: %v", translate.ErrMalformedSource, err)
	}

	ctx := translate.NewContext(nil)
	idx := buildIndex(&fd)
	reg := newRegistry(idx)
	defs := map[string]schema.Schema{}

	var root schema.Schema
	switch {
	case len(fd.GetMessageType()) > 0:
		full := joinName(fd.GetPackage(), fd.GetMessageType()[0].GetName())
		r, err := resolveNamedType(full, false, ctx, reg, defs)
		if err != nil {
			return nil, err
		}
		root = r
	case len(fd.GetEnumType()) > 0:
		full := joinName(fd.GetPackage(), fd.GetEnumType()[0].GetName())
		r, err := resolveNamedType(full, true, ctx, reg, defs)
		if err != nil {
			return nil, err
		}
		root = r
	default:
		root = schema.Any()
	}

	for full := range idx.messages {
		if reg.translated[full] {
			continue
		}
		if _, err := resolveNamedType(full, false, ctx, reg, defs); err != nil {
			return nil, err
		}
	}
	for full := range idx.enums {
		if reg.translated[full] {
			continue
		}
		if _, err := resolveNamedType(full, true, ctx, reg, defs); err != nil {
			return nil, err
		}
	}

	return &Result{Root: root, Definitions: defs, Report: ctx.Report}, nil
}
