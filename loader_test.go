package yamlschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, yaml string) *Node {
	t.Helper()
	n, err := ParseYAML([]byte(yaml))
	require.NoError(t, err)
	return n
}

func mustLoad(t *testing.T, yaml string) *RootSchema {
	t.Helper()
	n := mustParse(t, yaml)
	root, err := Load(n)
	require.NoError(t, err)
	return root
}

func TestLoad_BooleanSchema(t *testing.T) {
	root := mustLoad(t, "not: true\n")
	cs := root.Schema.(*CompositionSchema)
	_, ok := cs.Subschemas[0].(BooleanSchema)
	require.True(t, ok)
	assert.True(t, bool(cs.Subschemas[0].(BooleanSchema)))
}

func TestLoad_SimpleType(t *testing.T) {
	root := mustLoad(t, "type: string\nminLength: 2\n")
	ts, ok := root.Schema.(*TypedSchema)
	require.True(t, ok)
	require.Equal(t, []string{"string"}, ts.Types)
	require.NotNil(t, ts.String)
	require.NotNil(t, ts.String.MinLength)
	assert.Equal(t, 2, *ts.String.MinLength)
}

func TestLoad_MultiType(t *testing.T) {
	root := mustLoad(t, "type: [string, number]\nminimum: 1\nminLength: 1\n")
	ts := root.Schema.(*TypedSchema)
	assert.Equal(t, []string{"string", "number"}, ts.Types)
	require.NotNil(t, ts.Number)
	require.NotNil(t, ts.String)
}

func TestLoad_UnknownType(t *testing.T) {
	_, err := Load(mustParse(t, "type: weird\n"))
	require.Error(t, err)
	le, ok := err.(*LoadError)
	require.True(t, ok)
	assert.Equal(t, UnknownType, le.Kind)
}

func TestLoad_Defs(t *testing.T) {
	root := mustLoad(t, "$defs:\n  pos:\n    type: integer\n    minimum: 0\nallOf:\n  - $ref: \"#/$defs/pos\"\n")
	require.Contains(t, root.Defs, "/$defs/pos")
	_, ok := root.Schema.(*CompositionSchema)
	require.True(t, ok)
}

func TestLoad_EmptyCompositionIsError(t *testing.T) {
	_, err := Load(mustParse(t, "allOf: []\n"))
	require.Error(t, err)
	le := err.(*LoadError)
	assert.Equal(t, EmptyComposition, le.Kind)
}

func TestLoad_InvalidMultipleOf(t *testing.T) {
	_, err := Load(mustParse(t, "type: number\nmultipleOf: 0\n"))
	require.Error(t, err)
	le := err.(*LoadError)
	assert.Equal(t, InvalidMultipleOf, le.Kind)
}

func TestLoad_InvalidRegex(t *testing.T) {
	_, err := Load(mustParse(t, "type: string\npattern: \"[unterminated\"\n"))
	require.Error(t, err)
	le := err.(*LoadError)
	assert.Equal(t, InvalidRegex, le.Kind)
}

func TestLoad_MalformedRef(t *testing.T) {
	_, err := Load(mustParse(t, "$ref: \"https://example.com/schema\"\n"))
	require.Error(t, err)
	le := err.(*LoadError)
	assert.Equal(t, MalformedRef, le.Kind)
}

func TestLoad_TupleItems(t *testing.T) {
	root := mustLoad(t, "type: array\nitems:\n  - type: string\n  - type: number\n")
	ts := root.Schema.(*TypedSchema)
	require.NotNil(t, ts.Array)
	require.Len(t, ts.Array.TupleItems, 2)
	require.Nil(t, ts.Array.Items)
}

func TestLoad_SingleItems(t *testing.T) {
	root := mustLoad(t, "type: array\nitems:\n  type: string\n")
	ts := root.Schema.(*TypedSchema)
	require.NotNil(t, ts.Array.Items)
	require.Nil(t, ts.Array.TupleItems)
}

func TestLoad_RootIDAndSchema(t *testing.T) {
	root := mustLoad(t, "$id: urn:example:s\n$schema: urn:example:meta\ntype: object\n")
	assert.Equal(t, "urn:example:s", root.ID)
	assert.Equal(t, "urn:example:meta", root.SchemaURI)
}
