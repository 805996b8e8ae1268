package avro

// registry memoizes named records/enums/fixed (Avro's "named type"
// concept) the same way translate/xsd's registry does for complexType:
// translate once, return Ref("name") from then on, with an in-progress
// set for direct or mutual self-recursion.
type registry struct {
	translated map[string]bool
	inProgress map[string]bool
}

func newRegistry() *registry {
	return &registry{
		translated: make(map[string]bool),
		inProgress: make(map[string]bool),
	}
}

// fullName joins an Avro namespace and name per the Avro spec's naming
// rules (namespace absent or empty means the bare name is already full).
func fullName(namespace, name string) string {
	if namespace == "" || name == "" {
		return name
	}
	return namespace + "." + name
}
