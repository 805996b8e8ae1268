package jsonschema

import (
	"strings"

	"github.com/goccy/go-json"

	"github.com/veltrix/schemaforge/schema"
)

// translateURLRef resolves a `$ref` whose target is a full URL (spec
// §4.8.7): fetch the base URL's document (cached per Import call so a
// `$defs`-sharing schema only fetches once), resolve the fragment as a
// JSON Pointer within it, and inline the result with cycle detection.
func translateURLRef(ref string, sc scope) (schema.Schema, error) {
	base, fragment, _ := strings.Cut(ref, "#")

	if sc.IsResolvingRef(ref) {
		return schema.Ref(sanitizePointerName(base + "_" + fragment)), nil
	}

	doc, ok := sc.fetchedDocs[base]
	if !ok {
		body, err := sc.fetcher.Fetch(base)
		if err != nil {
			sc.AddLoss("external reference " + base + " could not be fetched: " + err.Error())
			return schema.Any(), nil
		}
		if err := json.Unmarshal([]byte(body), &doc); err != nil {
			sc.AddLoss("external reference " + base + " did not decode as JSON: " + err.Error())
			return schema.Any(), nil
		}
		sc.Report.TrackFetchedURL(base)
		sc.fetchedDocs[base] = doc
	}

	target, found := resolvePointer(doc, fragment)
	if !found {
		sc.AddLoss("external reference " + ref + " could not be resolved")
		return schema.Any(), nil
	}

	inner := sc.AtPath("$ref").WithResolvedRef(ref)
	inner.root = doc
	return translateValue(target, inner)
}
