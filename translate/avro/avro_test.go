package avro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veltrix/schemaforge/schema"
)

func TestRecordWithNullableField(t *testing.T) {
	input := `{"type":"record","name":"User","fields":[
		{"name":"id","type":"long"},
		{"name":"nickname","type":["null","string"]}
	]}`
	result, err := NewImporter().Import(input)
	require.NoError(t, err)

	require.Equal(t, schema.Ref("User"), result.Root)
	user, ok := result.Definitions["User"].(schema.ObjectSchema)
	require.True(t, ok)

	id, found := user.Field("id")
	require.True(t, found)
	assert.True(t, id.Label.Mandatory)

	nickname, found := user.Field("nickname")
	require.True(t, found)
	assert.False(t, nickname.Label.Mandatory)
	assert.Equal(t, schema.KindText, nickname.Schema.Kind())
}

func TestEnumType(t *testing.T) {
	input := `{"type":"enum","name":"Suit","symbols":["SPADES","HEARTS","DIAMONDS","CLUBS"]}`
	result, err := NewImporter().Import(input)
	require.NoError(t, err)

	enum, ok := result.Definitions["Suit"].(schema.EnumSchema)
	require.True(t, ok)
	assert.Equal(t, []string{"SPADES", "HEARTS", "DIAMONDS", "CLUBS"}, enum.Values)
}

func TestFixedBecomesBinaryWithLoss(t *testing.T) {
	input := `{"type":"fixed","name":"MD5","size":16}`
	result, err := NewImporter().Import(input)
	require.NoError(t, err)

	bin, ok := result.Definitions["MD5"].(schema.BinarySchema)
	require.True(t, ok)
	require.NotNil(t, bin.Constraints.Size)
	assert.EqualValues(t, 16, bin.Constraints.Size.Min.Value)
	require.Len(t, result.Report.Entries, 1)
	assert.Equal(t, "loss", result.Report.Entries[0].Kind.String())
}

func TestLogicalTypeTimestamp(t *testing.T) {
	input := `{"type":"long","logicalType":"timestamp-millis"}`
	result, err := NewImporter().Import(input)
	require.NoError(t, err)

	tm, ok := result.Root.(schema.TimeSchema)
	require.True(t, ok)
	require.Len(t, tm.Constraints, 1)
	assert.Equal(t, "rfc3339", tm.Constraints[0].Named)
}

func TestArrayAndMap(t *testing.T) {
	input := `{"type":"array","items":"string"}`
	result, err := NewImporter().Import(input)
	require.NoError(t, err)
	list, ok := result.Root.(schema.ListOfSchema)
	require.True(t, ok)
	assert.Equal(t, schema.KindText, list.Element.Kind())

	mapInput := `{"type":"map","values":"int"}`
	mapResult, err := NewImporter().Import(mapInput)
	require.NoError(t, err)
	m, ok := mapResult.Root.(schema.MapSchema)
	require.True(t, ok)
	assert.Equal(t, schema.KindNumeric, m.ValueSchema.Kind())
}

func TestExportRecordRoundTrip(t *testing.T) {
	root := schema.ObjectOf([]schema.ObjectField{
		{Label: schema.Mandatory("id"), Schema: schema.Numeric(schema.NumericConstraints{Integer: true}, nil)},
		{Label: schema.Optional("nickname"), Schema: schema.Text(schema.TextConstraints{}, nil)},
	})

	text, report, err := Exporter{}.Export(root, nil)
	require.NoError(t, err)
	assert.True(t, report.IsEmpty())
	assert.Contains(t, text, `"type": "record"`)

	reimported, err := NewImporter().Import(text)
	require.NoError(t, err)
	require.Equal(t, schema.Ref("Root"), reimported.Root)
	obj, ok := reimported.Definitions["Root"].(schema.ObjectSchema)
	require.True(t, ok)
	nickname, found := obj.Field("nickname")
	require.True(t, found)
	assert.False(t, nickname.Label.Mandatory)
}
