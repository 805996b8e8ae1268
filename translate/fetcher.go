package translate

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// Fetcher resolves an external URL to its raw text body, the collaborator
// translate/jsonschema (and any other URL-ref-aware importer) uses to
// follow `$ref: "https://…"` (spec §4.8.7). Modeled on the teacher's
// Compiler.Loaders map-of-scheme pattern, collapsed to one interface since
// this engine does not need per-scheme dispatch at this layer.
type Fetcher interface {
	Fetch(url string) (string, error)
}

// NoOpFetcher never fetches; callers report a Loss when a URL ref is
// encountered under it (spec §4.8.7).
type NoOpFetcher struct{}

func (NoOpFetcher) Fetch(url string) (string, error) {
	return "", errNoOpFetch
}

var errNoOpFetch = fetchError("no-op fetcher: external references are not resolved")

type fetchError string

func (e fetchError) Error() string { return string(e) }

// DefaultCacheSize bounds the number of distinct fetched-URL bodies kept in
// memory by CachingFetcher.
const DefaultCacheSize = 128

// CachingFetcher wraps another Fetcher with an LRU cache keyed by URL, so a
// schema that refs the same external document many times (a common
// $defs-sharing pattern) fetches it once. Grounded on
// github.com/hashicorp/golang-lru/v2, wired in via mattsp1290-ag-ui's go.mod
// — the fetched-bytes cache is a different, bounded-size concern from the
// single-pass resolve/substitute walks elsewhere in this engine, and an LRU
// is the right shape for it.
type CachingFetcher struct {
	inner Fetcher
	cache *lru.Cache[string, string]
}

// NewCachingFetcher wraps inner with an LRU of the given size (DefaultCacheSize
// if size <= 0).
func NewCachingFetcher(inner Fetcher, size int) (*CachingFetcher, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[string, string](size)
	if err != nil {
		return nil, err
	}
	return &CachingFetcher{inner: inner, cache: cache}, nil
}

func (f *CachingFetcher) Fetch(url string) (string, error) {
	if body, ok := f.cache.Get(url); ok {
		return body, nil
	}
	body, err := f.inner.Fetch(url)
	if err != nil {
		return "", err
	}
	f.cache.Add(url, body)
	return body, nil
}
