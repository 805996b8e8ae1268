package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veltrix/schemaforge/schema"
)

func mustParseItem(t *testing.T, text string) schema.Schema {
	t.Helper()
	s, err := ParseItem(text)
	require.NoError(t, err)
	return s
}

func TestRoundTripPrimitives(t *testing.T) {
	cases := []string{
		"any",
		"fail",
		"boolean",
		"boolean = true",
		"text",
		`text = "hi"`,
		"number",
		"number = 42",
	}
	for _, c := range cases {
		s := mustParseItem(t, c)
		assert.Equal(t, c, Print(s))
	}
}

func TestRoundTripRef(t *testing.T) {
	assert.Equal(t, "Address", Print(mustParseItem(t, "Address")))
	assert.Equal(t, "geo.Point", Print(mustParseItem(t, "geo.Point")))
}

func TestRoundTripListSuffixes(t *testing.T) {
	assert.Equal(t, "text*", Print(mustParseItem(t, "text*")))
	assert.Equal(t, "text+", Print(mustParseItem(t, "text+")))
}

func TestRoundTripTuple(t *testing.T) {
	s := mustParseItem(t, "(boolean, text)")
	assert.Equal(t, "(boolean, text)", Print(s))
}

func TestRoundTripGroupedAlternatives(t *testing.T) {
	s := mustParseItem(t, "(boolean | text)")
	assert.Equal(t, "boolean | text", Print(s)) // grouping parens are not canonical once parsed to an AlternativesSchema
}

func TestRoundTripObject(t *testing.T) {
	s := mustParseItem(t, "{ name: text, age?: number }")
	assert.Equal(t, "{ name: text, age?: number }", Print(s))
}

func TestRoundTripMap(t *testing.T) {
	s := mustParseItem(t, "{ …: number }")
	assert.Equal(t, "{ …: number }", Print(s))
	s2 := mustParseItem(t, "{ ...: number }")
	assert.Equal(t, "{ …: number }", Print(s2))
}

// S2 — alternatives of literal text canonicalize to Enum (spec §8.2).
func TestScenarioS2EnumCanonicalization(t *testing.T) {
	parsed := mustParseItem(t, `"red" | "green" | "blue"`)
	enum, ok := parsed.(schema.EnumSchema)
	require.True(t, ok)
	assert.Equal(t, []string{"red", "green", "blue"}, enum.Values)
	assert.Equal(t, `"red" | "green" | "blue"`, Print(parsed))
}

// S3 — bounded range grammar, both single and double bound forms (spec §8.2).
func TestScenarioS3BoundedRangeGrammar(t *testing.T) {
	single := mustParseItem(t, "text [ length >= 3 ]")
	text := single.(schema.TextSchema)
	require.NotNil(t, text.Constraints.Size)
	require.NotNil(t, text.Constraints.Size.Min)
	assert.Equal(t, int64(3), text.Constraints.Size.Min.Value)
	assert.Equal(t, schema.MinInclusive, text.Constraints.Size.Min.Op)
	assert.Equal(t, "text [length >= 3]", Print(single))

	double := mustParseItem(t, "text [ 0 <= length <= 10 ]")
	text2 := double.(schema.TextSchema)
	require.NotNil(t, text2.Constraints.Size.Min)
	require.NotNil(t, text2.Constraints.Size.Max)
	assert.Equal(t, int64(0), text2.Constraints.Size.Min.Value)
	assert.Equal(t, int64(10), text2.Constraints.Size.Max.Value)
	assert.Equal(t, "text [0 <= length <= 10]", Print(double))
}

// S4 — composite uniqueness grammar on a list suffix (spec §8.2).
func TestScenarioS4CompositeUniqueGrammar(t *testing.T) {
	item := mustParseItem(t, "Record+[ unique = (id, code) ]")
	list := item.(schema.ListOfSchema)
	require.Len(t, list.Constraints.Unique, 1)
	assert.Equal(t, []string{"id", "code"}, list.Constraints.Unique[0].ByFields)
	assert.Equal(t, "Record+[size >= 1, unique = (id, code)]", Print(item))
}

// S8 — binary size unit normalization: "KB" is parsed into bytes (spec §8.2).
func TestScenarioS8BinarySizeUnitNormalization(t *testing.T) {
	item := mustParseItem(t, "binary [ size <= 2 KB ]")
	bin := item.(schema.BinarySchema)
	require.NotNil(t, bin.Constraints.Size.Max)
	assert.Equal(t, int64(2048), bin.Constraints.Size.Max.Value)

	bits := mustParseItem(t, "binary [ size <= 2048 bits ]")
	binBits := bits.(schema.BinarySchema)
	assert.Equal(t, int64(2048), binBits.Constraints.Size.Max.Value)
}

func TestParseDocumentWithDefinitionsAndRoot(t *testing.T) {
	src := "Name = text\n\n= { name: Name }\n"
	doc, err := Parse(src)
	require.NoError(t, err)
	require.Contains(t, doc.Definitions, "Name")
	require.NotNil(t, doc.Root)
}

func TestParseImportStatement(t *testing.T) {
	src := `geo => import "./geo.schema"` + "\n"
	doc, err := Parse(src)
	require.NoError(t, err)
	assert.Equal(t, "./geo.schema", doc.Imports["geo"])
}

func TestParseDeprecatedDefinition(t *testing.T) {
	src := "@deprecated\nOldName = text\n"
	doc, err := Parse(src)
	require.NoError(t, err)
	_, ok := doc.Definitions["OldName"].(schema.DeprecatedSchema)
	assert.True(t, ok)
}

func TestParsePrecedingDocComment(t *testing.T) {
	src := "## a person's display name\nName = text\n"
	doc, err := Parse(src)
	require.NoError(t, err)
	documented, ok := doc.Definitions["Name"].(schema.DocumentedSchema)
	require.True(t, ok)
	assert.Equal(t, "a person's display name", documented.Doc)
}

func TestParseSyntaxErrorReportsLine(t *testing.T) {
	_, err := ParseItem("{ name text }")
	require.Error(t, err)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 1, parseErr.Line)
}

func TestParseQuotedStringEscapes(t *testing.T) {
	s := mustParseItem(t, `"line one\nline \"two\""`)
	given := s.(schema.GivenTextSchema)
	assert.Equal(t, "line one\nline \"two\"", given.Value)
}
