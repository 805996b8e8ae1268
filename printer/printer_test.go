package printer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/veltrix/schemaforge/schema"
)

func personSchema() schema.Schema {
	return schema.ObjectOf([]schema.ObjectField{
		{Label: schema.Mandatory("name"), Schema: schema.Text(schema.TextConstraints{}, nil)},
		{Label: schema.Optional("age"), Schema: schema.Numeric(schema.NumericConstraints{Integer: true}, nil)},
	})
}

func TestCompactIsSingleLine(t *testing.T) {
	out := Print(personSchema(), Compact())
	assert.False(t, strings.Contains(out, "\n"))
	assert.Equal(t, "{ name: text, age?: number [integer] }", out)
}

func TestPrettyExpandsObjectsButInlinesUnions(t *testing.T) {
	out := Print(personSchema(), Pretty())
	assert.True(t, strings.Contains(out, "\n"))
	assert.Contains(t, out, "    age?: number [integer],")
	assert.Contains(t, out, "    name: text\n}")

	alt := schema.Alternatives([]schema.Schema{schema.Boolean(nil), schema.Text(schema.TextConstraints{}, nil)})
	assert.Equal(t, "boolean | text", Print(alt, Pretty()))
}

func TestExpandedExpandsAlternativesWithoutLeadingPipeOnFirst(t *testing.T) {
	alt := schema.Alternatives([]schema.Schema{schema.Boolean(nil), schema.Text(schema.TextConstraints{}, nil)})
	out := Print(alt, Expanded())
	lines := strings.Split(out, "\n")
	assert.Equal(t, "boolean", lines[0])
	assert.Equal(t, "| text", lines[1])
}

func TestExpandedExpandsTuples(t *testing.T) {
	tup := schema.TupleOf([]schema.Schema{schema.Boolean(nil), schema.Text(schema.TextConstraints{}, nil)})
	out := Print(tup, Expanded())
	assert.True(t, strings.Contains(out, "\n"))
	assert.Contains(t, out, "boolean,")
}

func TestTrailingDocOnSimpleField(t *testing.T) {
	obj := schema.ObjectOf([]schema.ObjectField{
		{Label: schema.Mandatory("name"), Schema: schema.Documented("the person's name", schema.Text(schema.TextConstraints{}, nil))},
	})
	out := Print(obj, Pretty())
	assert.Contains(t, out, "name: text  ## the person's name")
}

func TestPrecedingDocOnComplexField(t *testing.T) {
	nested := schema.ObjectOf([]schema.ObjectField{
		{Label: schema.Mandatory("street"), Schema: schema.Text(schema.TextConstraints{}, nil)},
	})
	obj := schema.ObjectOf([]schema.ObjectField{
		{Label: schema.Mandatory("address"), Schema: schema.Documented("postal address", nested)},
	})
	out := Print(obj, Expanded())
	assert.Contains(t, out, "## postal address")
}

func TestOptionalFieldWithDefaultPrintsAsMandatory(t *testing.T) {
	def := "unknown"
	obj := schema.ObjectOf([]schema.ObjectField{
		{Label: schema.Optional("status"), Schema: schema.Text(schema.TextConstraints{}, &def)},
	})
	out := Print(obj, Compact())
	assert.Contains(t, out, `status: text = "unknown"`)
	assert.NotContains(t, out, "status?")
}

func TestListSuffixRendering(t *testing.T) {
	star := schema.ListOf(schema.Text(schema.TextConstraints{}, nil), schema.ListConstraints{})
	assert.Equal(t, "text*", Print(star, Compact()))

	one := int64(1)
	plus := schema.ListOf(schema.Boolean(nil), schema.ListConstraints{Size: &schema.IntRange{Min: &schema.Bound[int64]{Op: schema.MinInclusive, Value: one}}})
	assert.Equal(t, "boolean+", Print(plus, Compact()))
}
