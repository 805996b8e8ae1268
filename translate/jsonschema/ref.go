package jsonschema

import (
	"net/url"
	"path"
	"strings"

	"github.com/veltrix/schemaforge/schema"
)

const rootRefName = "root"

// translateRef classifies and resolves a `$ref` value per spec §4.8.3.
// Mirrors the shape of the teacher's resolveRef/resolveAnchor dispatch in
// ref.go, reinterpreted as "produce an IR schema" instead of "locate
// another live *Schema".
func translateRef(ref string, sc scope) (schema.Schema, error) {
	if name, ok := exactDefRef(ref); ok {
		sc.AddReferencedDef(name)
		return schema.Ref(name), nil
	}

	if ref == "#" {
		if sc.IsResolvingRef(rootRefName) {
			return schema.Ref(rootRefName), nil
		}
		return translateValue(sc.root, sc.AtPath("$ref").WithResolvedRef(rootRefName))
	}

	if strings.HasPrefix(ref, "#/") {
		return translateDeepPointer(ref[1:], sc)
	}

	if strings.HasPrefix(ref, "#") {
		sc.AddApproximation("anchor reference " + ref + " is not resolved by name, only by structural location")
		return schema.Any(), nil
	}

	if isAbsoluteURI(ref) {
		return translateURLRef(ref, sc)
	}

	return translateFilesystemRef(ref, sc)
}

// exactDefRef matches "#/$defs/NAME" or "#/definitions/NAME" exactly (no
// deeper path beneath NAME), the fast path that becomes a named Ref rather
// than an inlined pointer walk.
func exactDefRef(ref string) (string, bool) {
	for _, prefix := range []string{"#/$defs/", "#/definitions/"} {
		if strings.HasPrefix(ref, prefix) {
			rest := ref[len(prefix):]
			if rest != "" && !strings.Contains(rest, "/") {
				return rest, true
			}
		}
	}
	return "", false
}

// translateDeepPointer inlines the subtree a JSON Pointer resolves to
// within the current document, guarding against cycles by sanitizing the
// pointer into a stable Ref name (spec §4.8.3).
func translateDeepPointer(pointer string, sc scope) (schema.Schema, error) {
	sanitized := sanitizePointerName(pointer)
	if sc.IsResolvingRef(sanitized) {
		return schema.Ref(sanitized), nil
	}
	target, found := resolvePointer(sc.root, pointer)
	if !found {
		sc.AddLoss("reference #" + pointer + " could not be resolved")
		return schema.Any(), nil
	}
	return translateValue(target, sc.AtPath("$ref").WithResolvedRef(sanitized))
}

func sanitizePointerName(pointer string) string {
	pointer = strings.TrimPrefix(pointer, "/")
	return strings.NewReplacer("/", "_", "~1", "_", "~0", "~").Replace(pointer)
}

// translateFilesystemRef handles a relative/absolute file path ref, with
// an optional "#fragment" naming a definition inside that file. No
// fetching happens for this case (spec §4.8.3) — the referenced file is
// assumed to be translated separately by the caller.
func translateFilesystemRef(ref string, sc scope) (schema.Schema, error) {
	filePath, fragment, _ := strings.Cut(ref, "#")
	namespace := namespaceFromFilename(filePath)
	name := ""
	if after, ok := strings.CutPrefix(fragment, "/$defs/"); ok {
		name = after
	} else if after, ok := strings.CutPrefix(fragment, "/definitions/"); ok {
		name = after
	}
	return schema.ScopedRef(namespace, name), nil
}

func namespaceFromFilename(filePath string) string {
	base := path.Base(filePath)
	return strings.TrimSuffix(base, path.Ext(base))
}

func isAbsoluteURI(ref string) bool {
	u, err := url.Parse(ref)
	return err == nil && u.Scheme != ""
}
