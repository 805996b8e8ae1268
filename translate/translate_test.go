package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtPathAppends(t *testing.T) {
	c := NewContext(nil)
	c2 := c.AtPath("properties").AtPath("name")
	assert.Equal(t, "$/properties/name", c2.Path)
	assert.Equal(t, "$", c.Path) // original untouched
}

func TestAddFrictionRecordsAtCurrentPath(t *testing.T) {
	c := NewContext(nil).AtPath("foo")
	c.AddLoss("cannot represent contains")
	require.Len(t, c.Report.Entries, 1)
	assert.Equal(t, "$/foo", c.Report.Entries[0].Path)
	assert.Equal(t, "cannot represent contains", c.Report.Entries[0].Message)
}

func TestWithResolvedRefDoesNotLeakAcrossBranches(t *testing.T) {
	c := NewContext(nil)
	branch := c.WithResolvedRef("Node")
	assert.True(t, branch.IsResolvingRef("Node"))
	assert.False(t, c.IsResolvingRef("Node"))
}

func TestAddReferencedDefSharesWorklistAcrossCopies(t *testing.T) {
	c := NewContext(nil)
	branch := c.AtPath("x")
	branch.AddReferencedDef("Address")
	_, found := c.ReferencedDefs["Address"]
	assert.True(t, found, "ReferencedDefs is shared worklist state, not copied by AtPath")
}

type fakeFetcher struct {
	calls int
	body  string
}

func (f *fakeFetcher) Fetch(url string) (string, error) {
	f.calls++
	return f.body, nil
}

func TestNoOpFetcherErrors(t *testing.T) {
	_, err := NoOpFetcher{}.Fetch("https://example.com/schema.json")
	require.Error(t, err)
}

func TestCachingFetcherFetchesOnce(t *testing.T) {
	inner := &fakeFetcher{body: `{"type":"string"}`}
	cf, err := NewCachingFetcher(inner, 4)
	require.NoError(t, err)

	body1, err := cf.Fetch("https://example.com/a.json")
	require.NoError(t, err)
	body2, err := cf.Fetch("https://example.com/a.json")
	require.NoError(t, err)
	assert.Equal(t, body1, body2)
	assert.Equal(t, 1, inner.calls)

	_, err = cf.Fetch("https://example.com/b.json")
	require.NoError(t, err)
	assert.Equal(t, 2, inner.calls)
}
