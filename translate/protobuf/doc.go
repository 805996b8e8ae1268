// Package protobuf implements the Protobuf proto3 importer/exporter
// named in spec §4.9 (design sketch depth). Rather than hand-rolling a
// .proto grammar, the importer parses the text-format serialization of a
// descriptorpb.FileDescriptorProto via prototext.Unmarshal — the same
// approach the pack's own google.golang.org/protobuf dependency is built
// to support, and the only parse path available without writing a
// third-party-free proto3 parser from scratch.
package protobuf
