package yamlschema

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReplace(t *testing.T) {
	out := replace("Expected {expected}, got {got}", map[string]interface{}{"expected": "string", "got": 42})
	assert.Equal(t, "Expected string, got 42", out)
}

func TestCanonicalEqual_NumericDuality(t *testing.T) {
	intNode := &Node{Kind: KindInt, Int: 4}
	floatNode := &Node{Kind: KindFloat, Float: 4.0}
	assert.True(t, canonicalEqual(intNode, floatNode))
}

func TestCanonicalEqual_ZeroSigns(t *testing.T) {
	a := &Node{Kind: KindFloat, Float: 0.0}
	b := &Node{Kind: KindFloat, Float: math.Copysign(0, -1)}
	assert.True(t, canonicalEqual(a, b))
}

func TestCanonicalEqual_NaNDistinct(t *testing.T) {
	a := &Node{Kind: KindFloat, Float: math.NaN()}
	b := &Node{Kind: KindFloat, Float: math.NaN()}
	assert.False(t, canonicalEqual(a, b))
}

func TestCanonicalEqual_MappingIgnoresOrder(t *testing.T) {
	a := &Node{Kind: KindMapping, Entries: []Pair{
		{Key: &Node{Kind: KindString, Str: "x"}, Value: &Node{Kind: KindInt, Int: 1}},
		{Key: &Node{Kind: KindString, Str: "y"}, Value: &Node{Kind: KindInt, Int: 2}},
	}}
	b := &Node{Kind: KindMapping, Entries: []Pair{
		{Key: &Node{Kind: KindString, Str: "y"}, Value: &Node{Kind: KindInt, Int: 2}},
		{Key: &Node{Kind: KindString, Str: "x"}, Value: &Node{Kind: KindInt, Int: 1}},
	}}
	assert.True(t, canonicalEqual(a, b))
}
