package protobuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veltrix/schemaforge/schema"
)

const personProto = `
name: "test.proto"
package: "demo"
syntax: "proto3"
message_type {
  name: "Person"
  field { name: "id" number: 1 label: LABEL_OPTIONAL type: TYPE_INT64 }
  field { name: "name" number: 2 label: LABEL_OPTIONAL type: TYPE_STRING }
  field { name: "tags" number: 3 label: LABEL_REPEATED type: TYPE_STRING }
}
`

func TestImportMessageFields(t *testing.T) {
	result, err := NewImporter().Import(personProto)
	require.NoError(t, err)
	require.Equal(t, schema.Ref("demo.Person"), result.Root)

	person, ok := result.Definitions["demo.Person"].(schema.ObjectSchema)
	require.True(t, ok)

	id, found := person.Field("id")
	require.True(t, found)
	assert.True(t, id.Label.Mandatory)
	assert.Equal(t, schema.KindNumeric, id.Schema.Kind())

	tags, found := person.Field("tags")
	require.True(t, found)
	assert.False(t, tags.Label.Mandatory, "repeated fields are optional")
	list, ok := tags.Schema.(schema.ListOfSchema)
	require.True(t, ok)
	assert.Equal(t, schema.KindText, list.Element.Kind())
}

func TestImportMapField(t *testing.T) {
	input := `
name: "test.proto"
package: "demo"
syntax: "proto3"
message_type {
  name: "Config"
  field {
    name: "settings"
    number: 1
    label: LABEL_REPEATED
    type: TYPE_MESSAGE
    type_name: ".demo.Config.SettingsEntry"
  }
  nested_type {
    name: "SettingsEntry"
    field { name: "key" number: 1 label: LABEL_OPTIONAL type: TYPE_STRING }
    field { name: "value" number: 2 label: LABEL_OPTIONAL type: TYPE_STRING }
    options { map_entry: true }
  }
}
`
	result, err := NewImporter().Import(input)
	require.NoError(t, err)

	config, ok := result.Definitions["demo.Config"].(schema.ObjectSchema)
	require.True(t, ok)

	settings, found := config.Field("settings")
	require.True(t, found)
	m, ok := settings.Schema.(schema.MapSchema)
	require.True(t, ok)
	assert.Equal(t, schema.KindText, m.ValueSchema.Kind())
}

func TestImportOneofBecomesAlternatives(t *testing.T) {
	input := `
name: "test.proto"
package: "demo"
syntax: "proto3"
message_type {
  name: "Event"
  field { name: "text" number: 1 label: LABEL_OPTIONAL type: TYPE_STRING oneof_index: 0 }
  field { name: "count" number: 2 label: LABEL_OPTIONAL type: TYPE_INT64 oneof_index: 0 }
  oneof_decl { name: "choice" }
}
`
	result, err := NewImporter().Import(input)
	require.NoError(t, err)

	event, ok := result.Definitions["demo.Event"].(schema.ObjectSchema)
	require.True(t, ok)

	choice, found := event.Field("choice")
	require.True(t, found)
	assert.False(t, choice.Label.Mandatory)
	alt, ok := choice.Schema.(schema.AlternativesSchema)
	require.True(t, ok)
	assert.Len(t, alt.Options, 2)

	_, textStillAField := event.Field("text")
	assert.False(t, textStillAField, "oneof members are folded into the grouped field, not kept standalone")
}

func TestImportSyntheticOneofIsPlainOptional(t *testing.T) {
	input := `
name: "test.proto"
package: "demo"
syntax: "proto3"
message_type {
  name: "Thing"
  field {
    name: "nickname"
    number: 1
    label: LABEL_OPTIONAL
    type: TYPE_STRING
    oneof_index: 0
    proto3_optional: true
  }
  oneof_decl { name: "_nickname" }
}
`
	result, err := NewImporter().Import(input)
	require.NoError(t, err)

	thing, ok := result.Definitions["demo.Thing"].(schema.ObjectSchema)
	require.True(t, ok)

	nickname, found := thing.Field("nickname")
	require.True(t, found)
	assert.False(t, nickname.Label.Mandatory)
	assert.Equal(t, schema.KindText, nickname.Schema.Kind())

	_, grouped := thing.Field("_nickname")
	assert.False(t, grouped, "a synthetic proto3-optional oneof must not become an Alternatives field")
}

func TestImportWellKnownTimestamp(t *testing.T) {
	input := `
name: "test.proto"
package: "demo"
syntax: "proto3"
message_type {
  name: "Stamped"
  field {
    name: "created_at"
    number: 1
    label: LABEL_OPTIONAL
    type: TYPE_MESSAGE
    type_name: ".google.protobuf.Timestamp"
  }
}
`
	result, err := NewImporter().Import(input)
	require.NoError(t, err)

	stamped, ok := result.Definitions["demo.Stamped"].(schema.ObjectSchema)
	require.True(t, ok)

	createdAt, found := stamped.Field("created_at")
	require.True(t, found)
	assert.Equal(t, schema.KindTime, createdAt.Schema.Kind())

	found = false
	for _, e := range result.Report.Entries {
		if e.Kind.String() == "approximation" {
			found = true
		}
	}
	assert.True(t, found, "mapping a well-known type should record an approximation")
}

func TestFieldNumbersAreRecordedAsLoss(t *testing.T) {
	result, err := NewImporter().Import(personProto)
	require.NoError(t, err)

	found := false
	for _, e := range result.Report.Entries {
		if e.Kind.String() == "loss" {
			found = true
		}
	}
	assert.True(t, found, "field numbers are dropped and must be recorded as a loss")
}

func TestExportRoundTrip(t *testing.T) {
	root := schema.ObjectOf([]schema.ObjectField{
		{Label: schema.Mandatory("id"), Schema: schema.Numeric(schema.NumericConstraints{Integer: true}, nil)},
		{Label: schema.Optional("name"), Schema: schema.Text(schema.TextConstraints{}, nil)},
		{Label: schema.Optional("tags"), Schema: schema.ListOf(schema.Text(schema.TextConstraints{}, nil), schema.ListConstraints{})},
	})

	text, report, err := Exporter{}.Export(root, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, report.Entries)
	assert.Contains(t, text, "message_type")

	reimported, err := NewImporter().Import(text)
	require.NoError(t, err)
	require.Equal(t, schema.Ref("schemaforge.Root"), reimported.Root)

	obj, ok := reimported.Definitions["schemaforge.Root"].(schema.ObjectSchema)
	require.True(t, ok)
	tags, found := obj.Field("tags")
	require.True(t, found)
	assert.Equal(t, schema.KindListOf, tags.Schema.Kind())
}
