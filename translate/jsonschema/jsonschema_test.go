package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veltrix/schemaforge/schema"
)

func TestScenarioS5RefImport(t *testing.T) {
	input := `{"$defs":{"Addr":{"type":"object","properties":{"city":{"type":"string"}},"required":["city"]}},
 "type":"object","properties":{"home":{"$ref":"#/$defs/Addr"}},"required":["home"]}`

	result, err := NewImporter().Import(input)
	require.NoError(t, err)

	root, ok := result.Root.(schema.ObjectSchema)
	require.True(t, ok)
	home, found := root.Field("home")
	require.True(t, found)
	assert.True(t, home.Label.Mandatory)
	assert.Equal(t, schema.Ref("Addr"), home.Schema)

	addr, ok := result.Definitions["Addr"].(schema.ObjectSchema)
	require.True(t, ok)
	city, found := addr.Field("city")
	require.True(t, found)
	assert.True(t, city.Label.Mandatory)
	assert.Equal(t, schema.KindText, city.Schema.Kind())

	assert.True(t, result.Report.IsEmpty())
}

func TestScenarioS6AllOfMerge(t *testing.T) {
	input := `{"allOf":[{"$ref":"#/$defs/Base"},{"type":"object","properties":{"extra":{"type":"string"}}}],
 "$defs":{"Base":{"type":"object","properties":{"id":{"type":"integer"}},"required":["id"]}}}`

	result, err := NewImporter().Import(input)
	require.NoError(t, err)

	root, ok := result.Root.(schema.ObjectSchema)
	require.True(t, ok)

	id, found := root.Field("id")
	require.True(t, found)
	assert.True(t, id.Label.Mandatory)
	numeric, ok := id.Schema.(schema.NumericSchema)
	require.True(t, ok)
	assert.True(t, numeric.Constraints.Integer)

	extra, found := root.Field("extra")
	require.True(t, found)
	assert.False(t, extra.Label.Mandatory)

	for _, entry := range result.Report.Entries {
		assert.NotEqualf(t, "loss", entry.Kind.String(), "unexpected loss entry merging allOf: %s", entry.Message)
	}
}

func TestScenarioS7MultipleOfFriction(t *testing.T) {
	input := `{"type":"integer","multipleOf":3}`

	result, err := NewImporter().Import(input)
	require.NoError(t, err)

	numeric, ok := result.Root.(schema.NumericSchema)
	require.True(t, ok)
	assert.True(t, numeric.Constraints.Integer)

	require.Len(t, result.Report.Entries, 1)
	assert.Contains(t, result.Report.Entries[0].Message, "multipleOf")
}

func TestBasicStringWithConstraints(t *testing.T) {
	input := `{"type":"string","minLength":2,"maxLength":10,"pattern":"^[a-z]+$"}`
	result, err := NewImporter().Import(input)
	require.NoError(t, err)

	text, ok := result.Root.(schema.TextSchema)
	require.True(t, ok)
	require.NotNil(t, text.Constraints.Size)
	assert.EqualValues(t, 2, text.Constraints.Size.Min.Value)
	assert.EqualValues(t, 10, text.Constraints.Size.Max.Value)
	require.NotNil(t, text.Constraints.Regex)
	assert.Equal(t, "^[a-z]+$", *text.Constraints.Regex)
}

func TestOptionalityViaNullType(t *testing.T) {
	input := `{"type":"object","properties":{"nickname":{"type":["string","null"]}},"required":["nickname"]}`
	result, err := NewImporter().Import(input)
	require.NoError(t, err)

	root := result.Root.(schema.ObjectSchema)
	field, found := root.Field("nickname")
	require.True(t, found)
	assert.False(t, field.Label.Mandatory, "a null-typed member makes the field optional even if listed in required")
}

func TestPrefixItemsTuple(t *testing.T) {
	input := `{"type":"array","prefixItems":[{"type":"string"},{"type":"integer"}]}`
	result, err := NewImporter().Import(input)
	require.NoError(t, err)

	tuple, ok := result.Root.(schema.TupleSchema)
	require.True(t, ok)
	require.Len(t, tuple.Elements, 2)
	assert.Equal(t, schema.KindText, tuple.Elements[0].Kind())
	assert.Equal(t, schema.KindNumeric, tuple.Elements[1].Kind())
}

func TestAdditionalPropertiesMap(t *testing.T) {
	input := `{"type":"object","additionalProperties":{"type":"number"}}`
	result, err := NewImporter().Import(input)
	require.NoError(t, err)

	m, ok := result.Root.(schema.MapSchema)
	require.True(t, ok)
	assert.Equal(t, schema.KindNumeric, m.ValueSchema.Kind())
}

func TestDescriptionAndDeprecatedWrapping(t *testing.T) {
	input := `{"type":"string","description":"a name","deprecated":true}`
	result, err := NewImporter().Import(input)
	require.NoError(t, err)

	dep, ok := result.Root.(schema.DeprecatedSchema)
	require.True(t, ok)
	doc, ok := dep.Inner.(schema.DocumentedSchema)
	require.True(t, ok)
	assert.Equal(t, "a name", doc.Doc)
	assert.Equal(t, schema.KindText, doc.Inner.Kind())
}

func TestEnumCanonicalizesToEnumSchema(t *testing.T) {
	input := `{"enum":["red","green","blue"]}`
	result, err := NewImporter().Import(input)
	require.NoError(t, err)

	enum, ok := result.Root.(schema.EnumSchema)
	require.True(t, ok)
	assert.Equal(t, []string{"red", "green", "blue"}, enum.Values)
}

func TestExportRoundTripsObjectWithRef(t *testing.T) {
	root := schema.ObjectOf([]schema.ObjectField{
		{Label: schema.Mandatory("home"), Schema: schema.Ref("Addr")},
	})
	definitions := map[string]schema.Schema{
		"Addr": schema.ObjectOf([]schema.ObjectField{
			{Label: schema.Mandatory("city"), Schema: schema.Text(schema.TextConstraints{}, nil)},
		}),
	}

	text, report, err := Exporter{}.Export(root, definitions)
	require.NoError(t, err)
	assert.True(t, report.IsEmpty())
	assert.Contains(t, text, `"$ref": "#/$defs/Addr"`)
	assert.Contains(t, text, `"$defs"`)

	reimported, err := NewImporter().Import(text)
	require.NoError(t, err)
	reRoot := reimported.Root.(schema.ObjectSchema)
	home, _ := reRoot.Field("home")
	assert.Equal(t, schema.Ref("Addr"), home.Schema)
}

func TestExportByFieldsUniquenessIsLoss(t *testing.T) {
	list := schema.ListOf(
		schema.ObjectOf([]schema.ObjectField{{Label: schema.Mandatory("id"), Schema: schema.Numeric(schema.NumericConstraints{}, nil)}}),
		schema.ListConstraints{Unique: []schema.Uniqueness{{ByFields: []string{"id"}}}},
	)
	_, report, err := Exporter{}.Export(list, nil)
	require.NoError(t, err)
	require.Len(t, report.Entries, 1)
	assert.Contains(t, report.Entries[0].Message, "id")
}
