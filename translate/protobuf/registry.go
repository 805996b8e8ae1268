package protobuf

// registry is the translate-once memo plus in-progress cycle guard shared
// by every named-type reference, mirroring translate/xsd and
// translate/avro's registries.
type registry struct {
	idx        *index
	translated map[string]bool
	inProgress map[string]bool
}

func newRegistry(idx *index) *registry {
	return &registry{
		idx:        idx,
		translated: make(map[string]bool),
		inProgress: make(map[string]bool),
	}
}
