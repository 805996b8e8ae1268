package decode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veltrix/schemaforge/schema"
	"github.com/veltrix/schemaforge/value"
)

func TestJSONDecoderPreservesPrecision(t *testing.T) {
	v, err := JSONDecoder{}.Decode(`{"n": 12345678901234567890, "s": "hi", "ok": true}`)
	require.NoError(t, err)

	obj, ok := v.AsObject()
	require.True(t, ok)

	n, found := obj.Get("n")
	require.True(t, found)
	num, ok := n.AsNumber()
	require.True(t, ok)
	assert.Equal(t, "12345678901234567890", num.Num().String())

	s, _ := obj.Get("s")
	text, _ := s.AsText()
	assert.Equal(t, "hi", text)
}

func TestJSONDecoderMalformedInput(t *testing.T) {
	_, err := JSONDecoder{}.Decode(`{"n": `)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestYAMLDecoderBasicShapes(t *testing.T) {
	v, err := YAMLDecoder{}.Decode("name: Ada\ntags:\n  - math\n  - computing\n")
	require.NoError(t, err)

	obj, ok := v.AsObject()
	require.True(t, ok)
	name, _ := obj.Get("name")
	text, _ := name.AsText()
	assert.Equal(t, "Ada", text)

	tags, _ := obj.Get("tags")
	list, ok := tags.AsList()
	require.True(t, ok)
	require.Len(t, list, 2)
}

func TestTextDecoderWrapsWholeInput(t *testing.T) {
	v, err := TextDecoder{}.Decode("raw content\nwith lines")
	require.NoError(t, err)
	s, ok := v.AsText()
	require.True(t, ok)
	assert.Equal(t, "raw content\nwith lines", s)
}

func TestXMLDecoderSingleTextElementCollapses(t *testing.T) {
	v, err := XMLDecoder{}.Decode(`<name>Ada Lovelace</name>`)
	require.NoError(t, err)
	s, ok := v.AsText()
	require.True(t, ok)
	assert.Equal(t, "Ada Lovelace", s)
}

func TestXMLDecoderAttributesAndRepeatedChildren(t *testing.T) {
	v, err := XMLDecoder{}.Decode(`<person id="1"><name>Ada</name><tag>math</tag><tag>computing</tag></person>`)
	require.NoError(t, err)

	obj, ok := v.AsObject()
	require.True(t, ok)

	id, found := obj.Get("@id")
	require.True(t, found)
	idText, _ := id.AsText()
	assert.Equal(t, "1", idText)

	name, found := obj.Get("name")
	require.True(t, found)
	nameText, _ := name.AsText()
	assert.Equal(t, "Ada", nameText)

	tags, found := obj.Get("tag")
	require.True(t, found)
	list, ok := tags.AsList()
	require.True(t, ok)
	assert.Len(t, list, 2)
}

func TestCSVDecoderHeaderKeyedRows(t *testing.T) {
	hint := schema.ListOf(schema.ObjectOf([]schema.ObjectField{
		{Label: schema.Mandatory("name"), Schema: schema.Text(schema.TextConstraints{}, nil)},
		{Label: schema.Mandatory("age"), Schema: schema.Numeric(schema.NumericConstraints{}, nil)},
	}), schema.ListConstraints{})

	v, err := CSVDecoder{}.Decode("name,age\nAda,36\nGrace,85\n", hint)
	require.NoError(t, err)

	rows, ok := v.AsList()
	require.True(t, ok)
	require.Len(t, rows, 2)

	first, ok := rows[0].AsObject()
	require.True(t, ok)
	name, _ := first.Get("name")
	nameText, _ := name.AsText()
	assert.Equal(t, "Ada", nameText)
}

func TestCSVDecoderPositionalTuples(t *testing.T) {
	hint := schema.ListOf(schema.TupleOf([]schema.Schema{
		schema.Text(schema.TextConstraints{}, nil),
		schema.Numeric(schema.NumericConstraints{}, nil),
	}), schema.ListConstraints{})

	v, err := CSVDecoder{}.Decode("Ada,36\nGrace,85\n", hint)
	require.NoError(t, err)

	rows, ok := v.AsList()
	require.True(t, ok)
	require.Len(t, rows, 2)

	first, ok := rows[0].AsTuple()
	require.True(t, ok)
	require.Len(t, first, 2)
	assert.True(t, value.Equal(value.Text("Ada"), first[0]))
}
