package jsonschema

import "github.com/veltrix/schemaforge/translate"

// scope pairs the shared translate.Context with the one field spec §4.7's
// generic envelope leaves translator-specific — "rootJson|rootXml|…" — so
// that "#" self-references (§4.8.3) can re-translate the whole document.
// Every method that would otherwise return a bare translate.Context is
// re-exposed here returning scope, so callers never have to rebuild the
// wrapper by hand at each recursive call.
type scope struct {
	translate.Context
	root        any
	fetcher     translate.Fetcher
	fetchedDocs map[string]any // base URL -> decoded JSON, shared across the whole Import call
}

func newScope(root any, definitions map[string]any, fetcher translate.Fetcher) scope {
	return scope{
		Context:     translate.NewContext(definitions),
		root:        root,
		fetcher:     fetcher,
		fetchedDocs: map[string]any{},
	}
}

func (s scope) AtPath(segment string) scope {
	s.Context = s.Context.AtPath(segment)
	return s
}

func (s scope) WithResolvedRef(name string) scope {
	s.Context = s.Context.WithResolvedRef(name)
	return s
}
