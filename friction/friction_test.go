package friction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddAndIsEmpty(t *testing.T) {
	r := New()
	assert.True(t, r.IsEmpty())
	r.AddLoss("$/multipleOf", "multipleOf has no IR equivalent")
	assert.False(t, r.IsEmpty())
	assert.Equal(t, Loss, r.Entries[0].Kind)
}

func TestMergeConcatenatesInOrder(t *testing.T) {
	a := New()
	a.AddLoss("$/a", "first")
	b := New()
	b.AddApproximation("$/b", "second")
	a.Merge(b)
	assert.Len(t, a.Entries, 2)
	assert.Equal(t, "first", a.Entries[0].Message)
	assert.Equal(t, "second", a.Entries[1].Message)
}

func TestFetchedURLsTracked(t *testing.T) {
	r := New()
	r.TrackFetchedURL("https://example.com/schema.json")
	assert.Contains(t, r.FetchedURLs(), "https://example.com/schema.json")
}

func TestMergeUnionsFetchedURLs(t *testing.T) {
	a := New()
	a.TrackFetchedURL("u1")
	b := New()
	b.TrackFetchedURL("u2")
	a.Merge(b)
	assert.ElementsMatch(t, []string{"u1", "u2"}, a.FetchedURLs())
}
