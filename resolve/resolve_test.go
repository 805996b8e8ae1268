package resolve

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veltrix/schemaforge/schema"
)

func TestResolveReferencesInlinesDefinitions(t *testing.T) {
	in := schema.ResolvedSchema{
		Root: schema.ObjectOf([]schema.ObjectField{{Label: schema.Mandatory("home"), Schema: schema.Ref("Addr")}}),
		Definitions: map[string]schema.Schema{
			"Addr": schema.ObjectOf([]schema.ObjectField{{Label: schema.Mandatory("city"), Schema: schema.Text(schema.TextConstraints{}, nil)}}),
		},
	}
	out, err := ResolveReferences(in)
	require.NoError(t, err)

	root := out.Root.(schema.ObjectSchema)
	field, ok := root.Field("home")
	require.True(t, ok)
	assert.Equal(t, schema.KindObject, field.Schema.Kind())
}

func TestResolveReferencesLeavesUnknownRefAlone(t *testing.T) {
	in := schema.ResolvedSchema{Root: schema.Ref("Nope"), Definitions: map[string]schema.Schema{}}
	out, err := ResolveReferences(in)
	require.NoError(t, err)
	assert.Equal(t, schema.KindRef, out.Root.Kind())
}

type fakeLoader struct {
	files map[string]schema.ParsedSchema
}

func (f fakeLoader) Load(path string) (schema.ParsedSchema, error) {
	p, ok := f.files[path]
	if !ok {
		return schema.ParsedSchema{}, errors.New("not found: " + path)
	}
	return p, nil
}

func TestResolveImportsScopesDefinitionsAndRoot(t *testing.T) {
	loader := fakeLoader{files: map[string]schema.ParsedSchema{
		"geo.schema": {
			Root:        schema.Text(schema.TextConstraints{}, nil),
			Definitions: map[string]schema.Schema{"Point": schema.Boolean(nil)},
		},
	}}
	parsed := schema.ParsedSchema{
		Root:    schema.ObjectOf(nil),
		Imports: map[string]string{"geo": "geo.schema"},
	}

	out, err := ResolveImports(loader, parsed, "main.schema", map[string]struct{}{})
	require.NoError(t, err)

	assert.Equal(t, schema.KindText, out.Definitions["geo"].Kind())
	assert.Equal(t, schema.KindBoolean, out.Definitions["geo.Point"].Kind())
}

func TestResolveImportsDetectsCircularImport(t *testing.T) {
	loader := fakeLoader{files: map[string]schema.ParsedSchema{
		"b.schema": {Imports: map[string]string{"a": "a.schema"}},
	}}
	parsed := schema.ParsedSchema{Imports: map[string]string{"b": "b.schema"}}

	visited := map[string]struct{}{"a.schema": {}}
	_, err := ResolveImports(loader, parsed, "a.schema", visited)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCircularImport)
}
