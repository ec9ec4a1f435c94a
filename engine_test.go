package yamlschema

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validateYAML(t *testing.T, schemaYAML, instanceYAML string) []*ValidationError {
	t.Helper()
	root := mustLoad(t, schemaYAML)
	instance := mustParse(t, instanceYAML)
	return Validate(root, instance)
}

func TestScenario_IntegerType(t *testing.T) {
	schema := "type: integer\n"
	assert.Empty(t, validateYAML(t, schema, "42"))
	errs := validateYAML(t, schema, "3.1415926")
	require.Len(t, errs, 1)
	assert.Equal(t, TypeMismatch, errs[0].Kind)
	errs = validateYAML(t, schema, "\"42\"")
	require.Len(t, errs, 1)
	assert.Equal(t, TypeMismatch, errs[0].Kind)
	assert.Empty(t, validateYAML(t, schema, "1.0"))
}

func TestScenario_MultipleOf(t *testing.T) {
	schema := "type: number\nmultipleOf: 10\n"
	assert.Empty(t, validateYAML(t, schema, "0"))
	assert.Empty(t, validateYAML(t, schema, "10"))
	errs := validateYAML(t, schema, "23")
	require.Len(t, errs, 1)
	assert.Equal(t, MultipleOfViolation, errs[0].Kind)
}

func TestScenario_RangeBounds(t *testing.T) {
	schema := "type: number\nminimum: 0\nexclusiveMaximum: 10\n"
	errs := validateYAML(t, schema, "-1")
	require.Len(t, errs, 1)
	assert.Equal(t, RangeViolation, errs[0].Kind)
	assert.Empty(t, validateYAML(t, schema, "0"))
	assert.Empty(t, validateYAML(t, schema, "9"))
	errs = validateYAML(t, schema, "10")
	require.Len(t, errs, 1)
	assert.Equal(t, RangeViolation, errs[0].Kind)
}

func TestScenario_OneOf(t *testing.T) {
	schema := "oneOf:\n  - type: number\n    multipleOf: 5\n  - type: number\n    multipleOf: 3\n"
	assert.Empty(t, validateYAML(t, schema, "10"))
	assert.Empty(t, validateYAML(t, schema, "9"))
	errs := validateYAML(t, schema, "15")
	require.Len(t, errs, 1)
	assert.Equal(t, OneOfMultipleMatched, errs[0].Kind)
	errs = validateYAML(t, schema, "2")
	require.Len(t, errs, 1)
	assert.Equal(t, OneOfNoneMatched, errs[0].Kind)
}

func TestScenario_AnyOfMismatchSummarizesCauses(t *testing.T) {
	schema := "anyOf:\n  - type: string\n    minLength: 5\n  - type: number\n    minimum: 10\n"
	assert.Empty(t, validateYAML(t, schema, "\"hello\""))
	errs := validateYAML(t, schema, "3")
	require.Len(t, errs, 1)
	assert.Equal(t, AnyOfMismatch, errs[0].Kind)
	assert.Contains(t, errs[0].Message, "[0]")
	assert.Contains(t, errs[0].Message, "[1]")
	assert.Contains(t, errs[0].Message, TypeMismatch.String())
	assert.Contains(t, errs[0].Message, RangeViolation.String())
}

func TestScenario_ObjectProperties(t *testing.T) {
	schema := "type: object\nproperties:\n  foo:\n    type: string\n  bar:\n    type: number\n"
	errs := validateYAML(t, schema, "foo: 42\nbar: \"x\"\n")
	require.Len(t, errs, 2)
	assert.Equal(t, ".foo", errs[0].Path)
	assert.Equal(t, ".bar", errs[1].Path)
	assert.GreaterOrEqual(t, errs[0].Marker.Line, 1)
	assert.GreaterOrEqual(t, errs[0].Marker.Column, 1)
}

func TestScenario_Not(t *testing.T) {
	schema := "not:\n  type: number\n  multipleOf: 2\n"
	assert.Empty(t, validateYAML(t, schema, "1"))
	errs := validateYAML(t, schema, "-2")
	require.Len(t, errs, 1)
	assert.Equal(t, NotShouldHaveFailed, errs[0].Kind)
}

func TestScenario_MultiTypeWithBounds(t *testing.T) {
	schema := "type: [string, number]\nminimum: 1\nminLength: 1\n"
	errs := validateYAML(t, schema, "0")
	require.Len(t, errs, 1)
	assert.Equal(t, RangeViolation, errs[0].Kind)
	errs = validateYAML(t, schema, "\"\"")
	require.Len(t, errs, 1)
	assert.Equal(t, LengthViolation, errs[0].Kind)
	assert.Empty(t, validateYAML(t, schema, "\"one\""))
	assert.Empty(t, validateYAML(t, schema, "1"))
}

func TestBooleanSchemaLaw(t *testing.T) {
	// Load requires a mapping root, so the boolean roots are built directly.
	instance := mustParse(t, "anything")
	assert.Empty(t, Validate(&RootSchema{Schema: BooleanSchema(true), Defs: map[string]Schema{}}, instance))
	errs := Validate(&RootSchema{Schema: BooleanSchema(false), Defs: map[string]Schema{}}, instance)
	require.Len(t, errs, 1)
	assert.Equal(t, FalseSchema, errs[0].Kind)
}

func TestCompositionLaws(t *testing.T) {
	schemaA := "type: number\nminimum: 0\n"
	schemaB := "type: number\nmaximum: 10\n"
	allOf := "allOf:\n  - type: number\n    minimum: 0\n  - type: number\n    maximum: 10\n"

	for _, instance := range []string{"5", "-1", "11"} {
		aEmpty := len(validateYAML(t, schemaA, instance)) == 0
		bEmpty := len(validateYAML(t, schemaB, instance)) == 0
		allEmpty := len(validateYAML(t, allOf, instance)) == 0
		assert.Equal(t, aEmpty && bEmpty, allEmpty, "instance=%s", instance)
	}

	notA := "not:\n  type: number\n  minimum: 0\n"
	for _, instance := range []string{"5", "-1"} {
		aEmpty := len(validateYAML(t, schemaA, instance)) == 0
		notEmpty := len(validateYAML(t, notA, instance)) == 0
		assert.Equal(t, !aEmpty, notEmpty, "instance=%s", instance)
	}
}

func TestIdempotence(t *testing.T) {
	root := mustLoad(t, "type: object\nproperties:\n  foo:\n    type: string\nrequired: [foo]\n")
	instance := mustParse(t, "bar: 1\n")
	first := Validate(root, instance)
	second := Validate(root, instance)
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Kind, second[i].Kind)
		assert.Equal(t, first[i].Path, second[i].Path)
	}
}

func TestIntegerNumberDuality(t *testing.T) {
	schema := "type: integer\n"
	intErrs := validateYAML(t, schema, "4")
	floatErrs := validateYAML(t, schema, "4.0")
	assert.Equal(t, len(intErrs), len(floatErrs))
}

func TestFailFastStopsAtFirstError(t *testing.T) {
	root := mustLoad(t, "type: object\nproperties:\n  foo:\n    type: string\n  bar:\n    type: string\n")
	instance := mustParse(t, "foo: 1\nbar: 2\n")
	errs := ValidateWithOptions(root, instance, Options{FailFast: true})
	require.Len(t, errs, 1)
}

func TestSelfValidation(t *testing.T) {
	data, err := os.ReadFile("testdata/meta-schema.yaml")
	require.NoError(t, err)
	node, err := ParseYAML(data)
	require.NoError(t, err)
	root, err := Load(node)
	require.NoError(t, err)
	errs := Validate(root, node)
	assert.Empty(t, errs, "meta-schema should validate against itself")
}

func TestRefCycleTerminatesAgainstScalar(t *testing.T) {
	root := mustLoad(t, "$defs:\n  node:\n    type: object\n    properties:\n      child:\n        $ref: \"#/$defs/node\"\nallOf:\n  - $ref: \"#/$defs/node\"\n")
	instance := mustParse(t, "1")
	errs := Validate(root, instance)
	require.Len(t, errs, 1)
	assert.Equal(t, TypeMismatch, errs[0].Kind)
}

func TestUnresolvedRef(t *testing.T) {
	root := mustLoad(t, "allOf:\n  - $ref: \"#/$defs/missing\"\n")
	instance := mustParse(t, "1")
	errs := Validate(root, instance)
	require.Len(t, errs, 1)
	assert.Equal(t, UnresolvedRef, errs[0].Kind)
}
