package protobuf

import "google.golang.org/protobuf/types/descriptorpb"

// index is a flat, full-name-keyed view of every message and enum
// declared anywhere in a FileDescriptorProto (top-level or nested),
// built once so resolveNamedType can translate a `.pkg.Type` reference
// without re-walking the descriptor tree each time.
type index struct {
	messages map[string]*descriptorpb.DescriptorProto
	enums    map[string]*descriptorpb.EnumDescriptorProto
}

func buildIndex(fd *descriptorpb.FileDescriptorProto) *index {
	idx := &index{
		messages: map[string]*descriptorpb.DescriptorProto{},
		enums:    map[string]*descriptorpb.EnumDescriptorProto{},
	}
	pkg := fd.GetPackage()
	for _, m := range fd.GetMessageType() {
		idx.collectMessage(pkg, m)
	}
	for _, e := range fd.GetEnumType() {
		idx.enums[joinName(pkg, e.GetName())] = e
	}
	return idx
}

func (idx *index) collectMessage(scope string, m *descriptorpb.DescriptorProto) {
	full := joinName(scope, m.GetName())
	idx.messages[full] = m
	for _, nested := range m.GetNestedType() {
		idx.collectMessage(full, nested)
	}
	for _, e := range m.GetEnumType() {
		idx.enums[joinName(full, e.GetName())] = e
	}
}

func joinName(scope, name string) string {
	if scope == "" {
		return name
	}
	return scope + "." + name
}

// stripLeadingDot turns protobuf's fully-qualified type_name (".pkg.Msg")
// into the bare "pkg.Msg" key this package's index uses internally.
func stripLeadingDot(typeName string) string {
	if len(typeName) > 0 && typeName[0] == '.' {
		return typeName[1:]
	}
	return typeName
}
