package xsd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veltrix/schemaforge/schema"
)

func TestImportSimpleSequence(t *testing.T) {
	input := `<schema>
  <element name="Person">
    <complexType>
      <sequence>
        <element name="name" type="xs:string" minOccurs="1" maxOccurs="1"/>
        <element name="nickname" type="xs:string" minOccurs="0"/>
        <element name="tag" type="xs:string" minOccurs="0" maxOccurs="unbounded"/>
      </sequence>
      <attribute name="id" type="xs:int" use="required"/>
    </complexType>
  </element>
</schema>`

	result, err := NewImporter().Import(input)
	require.NoError(t, err)

	obj, ok := result.Root.(schema.ObjectSchema)
	require.True(t, ok)

	name, found := obj.Field("name")
	require.True(t, found)
	assert.True(t, name.Label.Mandatory)
	assert.Equal(t, schema.KindText, name.Schema.Kind())

	nickname, found := obj.Field("nickname")
	require.True(t, found)
	assert.False(t, nickname.Label.Mandatory)

	tag, found := obj.Field("tag")
	require.True(t, found)
	assert.Equal(t, schema.KindListOf, tag.Schema.Kind())

	id, found := obj.Field("@id")
	require.True(t, found)
	assert.True(t, id.Label.Mandatory)
	assert.True(t, id.Schema.(schema.NumericSchema).Constraints.Integer)
}

func TestImportChoiceBecomesAlternatives(t *testing.T) {
	input := `<schema>
  <element name="Shape">
    <complexType>
      <choice>
        <element name="circle" type="xs:string"/>
        <element name="square" type="xs:string"/>
      </choice>
    </complexType>
  </element>
</schema>`

	result, err := NewImporter().Import(input)
	require.NoError(t, err)
	_, ok := result.Root.(schema.AlternativesSchema)
	require.True(t, ok)
}

func TestNamedComplexTypeBecomesRef(t *testing.T) {
	input := `<schema>
  <element name="Order">
    <complexType>
      <sequence>
        <element name="billTo" type="AddressType"/>
      </sequence>
    </complexType>
  </element>
  <complexType name="AddressType">
    <sequence>
      <element name="city" type="xs:string"/>
    </sequence>
  </complexType>
</schema>`

	result, err := NewImporter().Import(input)
	require.NoError(t, err)

	obj := result.Root.(schema.ObjectSchema)
	billTo, found := obj.Field("billTo")
	require.True(t, found)
	assert.Equal(t, schema.Ref("AddressType"), billTo.Schema)

	addr, ok := result.Definitions["AddressType"].(schema.ObjectSchema)
	require.True(t, ok)
	_, found = addr.Field("city")
	assert.True(t, found)
}

func TestSimpleContentExtensionAddsValueField(t *testing.T) {
	input := `<schema>
  <element name="Price">
    <complexType>
      <simpleContent>
        <extension base="xs:decimal">
          <attribute name="currency" type="xs:string" use="required"/>
        </extension>
      </simpleContent>
    </complexType>
  </element>
</schema>`

	result, err := NewImporter().Import(input)
	require.NoError(t, err)

	obj := result.Root.(schema.ObjectSchema)
	value, found := obj.Field("_value")
	require.True(t, found)
	assert.Equal(t, schema.KindNumeric, value.Schema.Kind())

	currency, found := obj.Field("@currency")
	require.True(t, found)
	assert.True(t, currency.Label.Mandatory)
}

func TestSimpleTypeEnumerationRestriction(t *testing.T) {
	input := `<schema>
  <element name="Status" type="StatusType"/>
  <simpleType name="StatusType">
    <restriction base="xs:string">
      <enumeration value="active"/>
      <enumeration value="inactive"/>
    </restriction>
  </simpleType>
</schema>`

	result, err := NewImporter().Import(input)
	require.NoError(t, err)
	require.Equal(t, schema.Ref("StatusType"), result.Root)

	enum, ok := result.Definitions["StatusType"].(schema.EnumSchema)
	require.True(t, ok)
	assert.Equal(t, []string{"active", "inactive"}, enum.Values)
}
