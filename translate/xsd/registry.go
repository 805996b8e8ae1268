package xsd

// registry holds the named complexType/simpleType declarations of one
// schema document plus the translate-once memo and in-progress set used
// for the same cycle-detection idiom translate/jsonschema uses for
// `$ref` (a named XSD type can recurse into itself, directly or through a
// chain of element references).
type registry struct {
	complexTypes map[string]xsdComplexType
	simpleTypes  map[string]xsdSimpleType
	elements     map[string]xsdElement // top-level elements, resolvable by xs:ref
	translated   map[string]bool
	inProgress   map[string]bool
}

func newRegistry(s xsdSchema) *registry {
	r := &registry{
		complexTypes: make(map[string]xsdComplexType, len(s.ComplexTypes)),
		simpleTypes:  make(map[string]xsdSimpleType, len(s.SimpleTypes)),
		elements:     make(map[string]xsdElement, len(s.Elements)),
		translated:   make(map[string]bool),
		inProgress:   make(map[string]bool),
	}
	for _, ct := range s.ComplexTypes {
		r.complexTypes[ct.Name] = ct
	}
	for _, st := range s.SimpleTypes {
		r.simpleTypes[st.Name] = st
	}
	for _, el := range s.Elements {
		r.elements[el.Name] = el
	}
	return r
}
