package resolve

import (
	"fmt"
	"path/filepath"

	"github.com/veltrix/schemaforge/schema"
)

// FileLoader reads and parses a schema document at a path. File I/O and
// text parsing are external collaborators per spec §1 (the CLI/file layer
// supplies the real implementation, e.g. reading from disk and calling
// syntax.Parse); resolve only needs the resulting schema.ParsedSchema.
type FileLoader interface {
	Load(path string) (schema.ParsedSchema, error)
}

// ResolveImports implements spec §4.2's resolveImports: it inlines every
// imported file's definitions under "namespace.defName" and exposes the
// imported file's root (if any) as the namespace itself, detecting
// circular imports via the visited set.
func ResolveImports(loader FileLoader, parsed schema.ParsedSchema, originPath string, visited map[string]struct{}) (schema.ResolvedSchema, error) {
	if _, seen := visited[originPath]; seen {
		return schema.ResolvedSchema{}, fmt.Errorf("%w: %s", ErrCircularImport, originPath)
	}
	nextVisited := make(map[string]struct{}, len(visited)+1)
	for k := range visited {
		nextVisited[k] = struct{}{}
	}
	nextVisited[originPath] = struct{}{}

	merged := make(map[string]schema.Schema, len(parsed.Definitions))
	for name, s := range parsed.Definitions {
		merged[name] = s
	}

	for namespace, relativePath := range parsed.Imports {
		importPath := filepath.Join(filepath.Dir(originPath), relativePath)

		importedParsed, err := loader.Load(importPath)
		if err != nil {
			return schema.ResolvedSchema{}, fmt.Errorf("%s: %w", importPath, err)
		}

		importedResolved, err := ResolveImports(loader, importedParsed, importPath, nextVisited)
		if err != nil {
			return schema.ResolvedSchema{}, fmt.Errorf("%s: %w", importPath, err)
		}

		for defName, s := range importedResolved.Definitions {
			merged[namespace+"."+defName] = s
		}
		if importedResolved.Root != nil {
			merged[namespace] = importedResolved.Root
		}
	}

	return schema.ResolvedSchema{Root: parsed.Root, Definitions: merged}, nil
}
