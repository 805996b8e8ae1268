package schema

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDependenciesTerminalsEmpty(t *testing.T) {
	assert.Empty(t, Dependencies(Any()))
	assert.Empty(t, Dependencies(Boolean(nil)))
}

func TestDependenciesRef(t *testing.T) {
	assert.Equal(t, []string{"Addr"}, Dependencies(Ref("Addr")))
}

func TestDependenciesScopedRefEmptyName(t *testing.T) {
	assert.Equal(t, []string{"geo"}, Dependencies(ScopedRef("geo", "")))
}

func TestDependenciesScopedRefWithName(t *testing.T) {
	assert.Equal(t, []string{"geo.Point"}, Dependencies(ScopedRef("geo", "Point")))
}

func TestDependenciesUnionOverChildren(t *testing.T) {
	obj := ObjectOf([]ObjectField{
		{Label: Mandatory("home"), Schema: Ref("Addr")},
		{Label: Optional("work"), Schema: ScopedRef("geo", "Point")},
	})
	deps := Dependencies(obj)
	assert.ElementsMatch(t, []string{"Addr", "geo.Point"}, deps)
}

func TestSubstituteResolvesRef(t *testing.T) {
	ctx := map[string]Schema{"Addr": Text(TextConstraints{}, nil)}
	out, err := Substitute(Ref("Addr"), ctx)
	require.NoError(t, err)
	assert.True(t, Equal(out, Text(TextConstraints{}, nil)))
}

func TestSubstituteLeavesUnresolvedRefUnchanged(t *testing.T) {
	out, err := Substitute(Ref("Missing"), map[string]Schema{})
	require.NoError(t, err)
	assert.True(t, Equal(out, Ref("Missing")))
}

func TestSubstituteIdempotentWhenContextDisjoint(t *testing.T) {
	ctx := map[string]Schema{"A": Text(TextConstraints{}, nil)}
	s := ObjectOf([]ObjectField{{Label: Mandatory("f"), Schema: Ref("A")}})
	once, err := Substitute(s, ctx)
	require.NoError(t, err)
	twice, err := Substitute(once, ctx)
	require.NoError(t, err)
	assert.True(t, Equal(once, twice))
}

func TestSubstitutePassesThroughWrappers(t *testing.T) {
	ctx := map[string]Schema{"A": Boolean(nil)}
	out, err := Substitute(Documented("doc", Ref("A")), ctx)
	require.NoError(t, err)
	doc, ok := out.(DocumentedSchema)
	require.True(t, ok)
	assert.Equal(t, "doc", doc.Doc)
	assert.True(t, Equal(doc.Inner, Boolean(nil)))
}

func TestBoundedRangeMergePrefersAlreadySetSide(t *testing.T) {
	one := int64(1)
	ten := int64(10)
	a := IntRange{Min: &Bound[int64]{Op: MinInclusive, Value: one}}
	b := IntRange{Min: &Bound[int64]{Op: MinInclusive, Value: ten}, Max: &Bound[int64]{Op: MaxInclusive, Value: ten}}
	merged := a.Merge(b)
	require.NotNil(t, merged.Min)
	assert.Equal(t, one, merged.Min.Value) // a's side wins since it was already set
	require.NotNil(t, merged.Max)
	assert.Equal(t, ten, merged.Max.Value) // b fills in the unset side
}

func TestBoundedRangeMergeDisjointSidesCommute(t *testing.T) {
	one := int64(1)
	ten := int64(10)
	a := IntRange{Min: &Bound[int64]{Op: MinInclusive, Value: one}}
	b := IntRange{Max: &Bound[int64]{Op: MaxInclusive, Value: ten}}
	ab := a.Merge(b)
	ba := b.Merge(a)
	assert.Equal(t, ab, ba)
}

func TestExactCanonicalizedIntoMin(t *testing.T) {
	five := int64(5)
	r := IntRange{Min: &Bound[int64]{Op: Exact, Value: five}, Max: &Bound[int64]{Op: MaxInclusive, Value: five}}
	merged := r.Merge(IntRange{})
	assert.Equal(t, Exact, merged.Min.Op)
	assert.Nil(t, merged.Max)
}

func TestNormalizeEmptyEnumBecomesFail(t *testing.T) {
	assert.Equal(t, Fail(), Normalize(Enum(nil)))
}

func TestNormalizeSingletonAlternativesUnwraps(t *testing.T) {
	out := Normalize(Alternatives([]Schema{Boolean(nil)}))
	assert.True(t, Equal(out, Boolean(nil)))
}

func TestNormalizeAllGivenTextAlternativesCollapsesToEnum(t *testing.T) {
	out := Normalize(Alternatives([]Schema{GivenText("red"), GivenText("blue")}))
	enum, ok := out.(EnumSchema)
	require.True(t, ok)
	assert.Equal(t, []string{"red", "blue"}, enum.Values)
}

func TestEqualIgnoresObjectFieldOrder(t *testing.T) {
	a := ObjectOf([]ObjectField{{Label: Mandatory("x"), Schema: Any()}, {Label: Optional("y"), Schema: Any()}})
	b := ObjectOf([]ObjectField{{Label: Optional("y"), Schema: Any()}, {Label: Mandatory("x"), Schema: Any()}})
	assert.True(t, Equal(a, b))
}

func TestEqualNumericConstraintsByValue(t *testing.T) {
	a := NumericConstraints{Value: &DecimalRange{Min: &Bound[*big.Rat]{Op: MinInclusive, Value: big.NewRat(1, 2)}}}
	b := NumericConstraints{Value: &DecimalRange{Min: &Bound[*big.Rat]{Op: MinInclusive, Value: big.NewRat(2, 4)}}}
	assert.True(t, equalNumericConstraints(a, b))
}
