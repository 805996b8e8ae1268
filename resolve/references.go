package resolve

import (
	"fmt"

	"github.com/veltrix/schemaforge/schema"
)

// ResolveReferences applies schema.Substitute to every definition (using
// the other definitions as context) and to the root. A fixpoint is not
// required: references are non-recursive by construction (the parser
// guarantees distinct names at each nesting level; cycles are only possible
// via imports and are caught by ResolveImports, spec §4.2).
func ResolveReferences(in schema.ResolvedSchema) (schema.ResolvedSchema, error) {
	context := make(map[string]schema.Schema, len(in.Definitions))
	for name, s := range in.Definitions {
		context[name] = s
	}

	out := schema.ResolvedSchema{Definitions: make(map[string]schema.Schema, len(in.Definitions))}
	for name, s := range in.Definitions {
		sub, err := schema.Substitute(s, context)
		if err != nil {
			return schema.ResolvedSchema{}, fmt.Errorf("resolving definition %q: %w", name, err)
		}
		out.Definitions[name] = sub
	}

	if in.Root != nil {
		sub, err := schema.Substitute(in.Root, context)
		if err != nil {
			return schema.ResolvedSchema{}, fmt.Errorf("resolving root: %w", err)
		}
		out.Root = sub
	}

	return out, nil
}
