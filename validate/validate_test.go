package validate

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veltrix/schemaforge/schema"
	"github.com/veltrix/schemaforge/value"
)

func mustValidate(t *testing.T, s schema.Schema, v value.Value) Result {
	t.Helper()
	res, err := Validate(s, v)
	require.NoError(t, err)
	return res
}

func TestAnySoundness(t *testing.T) {
	for _, v := range []value.Value{value.Null(), value.Bool(true), value.Text("x"), value.NumberFromInt(1)} {
		assert.True(t, mustValidate(t, schema.Any(), v).Valid())
	}
}

func TestFailSoundness(t *testing.T) {
	for _, v := range []value.Value{value.Null(), value.Bool(true), value.Text("x"), value.NumberFromInt(1)} {
		assert.False(t, mustValidate(t, schema.Fail(), v).Valid())
	}
}

// S1 — basic object validation (spec §8.2).
func TestScenarioS1BasicObjectValidation(t *testing.T) {
	ageConstraints := schema.NumericConstraints{
		Value:   &schema.DecimalRange{Min: &schema.Bound[*big.Rat]{Op: schema.MinInclusive, Value: big.NewRat(0, 1)}},
		Integer: true,
	}
	objSchema := schema.ObjectOf([]schema.ObjectField{
		{Label: schema.Mandatory("name"), Schema: schema.Text(schema.TextConstraints{}, nil)},
		{Label: schema.Optional("age"), Schema: schema.Numeric(ageConstraints, nil)},
	})

	full := value.NewObject()
	full.Set("name", value.Text("Ada"))
	full.Set("age", value.NumberFromInt(36))
	assert.True(t, mustValidate(t, objSchema, value.FromObject(full)).Valid())

	nameOnly := value.NewObject()
	nameOnly.Set("name", value.Text("Ada"))
	assert.True(t, mustValidate(t, objSchema, value.FromObject(nameOnly)).Valid())

	ageOnly := value.NewObject()
	ageOnly.Set("age", value.NumberFromInt(36))
	res := mustValidate(t, objSchema, value.FromObject(ageOnly))
	require.False(t, res.Valid())
	assert.Contains(t, res.Errors[0].Message, "missing expected key name")

	negativeAge := value.NewObject()
	negativeAge.Set("name", value.Text("Ada"))
	negativeAge.Set("age", value.NumberFromInt(-1))
	res = mustValidate(t, objSchema, value.FromObject(negativeAge))
	require.False(t, res.Valid())
	assert.Contains(t, res.Errors[0].Message, "minimum value constraint")
}

// S4 — list with uniqueness by composite key (spec §8.2).
func TestScenarioS4CompositeUniqueness(t *testing.T) {
	elem := schema.ObjectOf([]schema.ObjectField{
		{Label: schema.Mandatory("id"), Schema: schema.Numeric(schema.NumericConstraints{}, nil)},
		{Label: schema.Mandatory("code"), Schema: schema.Text(schema.TextConstraints{}, nil)},
	})
	one := int64(1)
	listSchema := schema.ListOf(elem, schema.ListConstraints{
		Size:   &schema.IntRange{Min: &schema.Bound[int64]{Op: schema.MinInclusive, Value: one}},
		Unique: []schema.Uniqueness{{ByFields: []string{"id", "code"}}},
	})

	dup := value.NewObject()
	dup.Set("id", value.NumberFromInt(1))
	dup.Set("code", value.Text("a"))
	dupList := value.List([]value.Value{value.FromObject(dup), value.FromObject(dup)})
	res := mustValidate(t, listSchema, dupList)
	require.False(t, res.Valid())
	assert.Contains(t, res.Errors[0].Message, "id, code")

	b := value.NewObject()
	b.Set("id", value.NumberFromInt(1))
	b.Set("code", value.Text("b"))
	okList := value.List([]value.Value{value.FromObject(dup), value.FromObject(b)})
	assert.True(t, mustValidate(t, listSchema, okList).Valid())
}

// ByFields uniqueness normalizes each field per its declared sub-schema
// before comparing tuples (spec §4.5): a Numeric field given once as
// Text("1") and once as Number(1) must still be recognized as a duplicate.
func TestCompositeUniquenessNormalizesFieldsBeforeComparing(t *testing.T) {
	elem := schema.ObjectOf([]schema.ObjectField{
		{Label: schema.Mandatory("id"), Schema: schema.Numeric(schema.NumericConstraints{}, nil)},
		{Label: schema.Mandatory("code"), Schema: schema.Text(schema.TextConstraints{}, nil)},
	})
	listSchema := schema.ListOf(elem, schema.ListConstraints{
		Unique: []schema.Uniqueness{{ByFields: []string{"id", "code"}}},
	})

	asNumber := value.NewObject()
	asNumber.Set("id", value.NumberFromInt(1))
	asNumber.Set("code", value.Text("a"))

	asText := value.NewObject()
	asText.Set("id", value.Text("1"))
	asText.Set("code", value.Text("a"))

	res := mustValidate(t, listSchema, value.List([]value.Value{value.FromObject(asNumber), value.FromObject(asText)}))
	require.False(t, res.Valid())
	assert.Contains(t, res.Errors[0].Message, "id, code")
}

// S8 — binary size unit normalization is a syntax-layer concern, but the
// validator-side half of the scenario is: a Binary schema with size.max set
// to 2048 bytes rejects 3000 and accepts 2000.
func TestScenarioS8BinarySizeBounds(t *testing.T) {
	twoKB := int64(2048)
	s := schema.Binary(schema.BinaryConstraints{Size: &schema.IntRange{Max: &schema.Bound[int64]{Op: schema.MaxInclusive, Value: twoKB}}})
	assert.False(t, mustValidate(t, s, value.Binary(make([]byte, 3000))).Valid())
	assert.True(t, mustValidate(t, s, value.Binary(make([]byte, 2000))).Valid())
}

func TestAlternativesFirstMatchWins(t *testing.T) {
	s := schema.Alternatives([]schema.Schema{schema.Boolean(nil), schema.Text(schema.TextConstraints{}, nil)})
	assert.True(t, mustValidate(t, s, value.Text("hi")).Valid())
	assert.True(t, mustValidate(t, s, value.Bool(true)).Valid())
	assert.False(t, mustValidate(t, s, value.NumberFromInt(1)).Valid())
}

func TestTupleLengthMismatchSurfacesAsFailValue(t *testing.T) {
	s := schema.TupleOf([]schema.Schema{schema.Boolean(nil), schema.Text(schema.TextConstraints{}, nil)})
	tooShort := value.Tuple([]value.Value{value.Bool(true)})
	res := mustValidate(t, s, tooShort)
	require.False(t, res.Valid())
	assert.Contains(t, res.Errors[0].Message, "fail value")
}

func TestMapValidatesEveryValue(t *testing.T) {
	s := schema.MapOf(schema.Numeric(schema.NumericConstraints{Integer: true}, nil))
	obj := value.NewObject()
	obj.Set("a", value.NumberFromInt(1))
	obj.Set("b", value.Text("not a number"))
	res := mustValidate(t, s, value.FromObject(obj))
	require.False(t, res.Valid())
}

func TestUnresolvedRefIsReportedNotPanicked(t *testing.T) {
	res := mustValidate(t, schema.Ref("Missing"), value.Text("x"))
	require.False(t, res.Valid())
	assert.Equal(t, "unresolved_reference", res.Errors[0].Code)
}

func TestDecodeBase58RoundTrips(t *testing.T) {
	encoded := "2NEpo7TZRRrLZSi2U"
	decoded, err := decodeBinary(schema.EncodingBase58, encoded)
	require.NoError(t, err)
	assert.Equal(t, []byte("Hello World!"), decoded)
}

func TestCompileFormatGlyphs(t *testing.T) {
	matched, err := matchFormat("###-XXX", "123-abc")
	require.NoError(t, err)
	assert.True(t, matched)

	matched, err = matchFormat("###-XXX", "12a-abc")
	require.NoError(t, err)
	assert.False(t, matched)
}

func TestRecursionLimitIsHardError(t *testing.T) {
	var deepSchema schema.Schema = schema.Any()
	var deepValue value.Value = value.List(nil)
	for i := 0; i < 210; i++ {
		deepSchema = schema.ListOf(deepSchema, schema.ListConstraints{})
		deepValue = value.List([]value.Value{deepValue})
	}
	_, err := Validate(deepSchema, deepValue)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRecursionLimit)
}
