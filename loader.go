package yamlschema

import (
	"fmt"
	"regexp"
	"strings"
)

var knownTypes = map[string]bool{
	"null": true, "boolean": true, "integer": true, "number": true,
	"string": true, "array": true, "object": true,
}

// Load converts a marked YAML tree known to describe a schema into a
// RootSchema, hoisting $defs into the root's lookup table and leaving $ref
// nodes as deferred lookups (SPEC_FULL.md §4.1).
func Load(node *Node) (*RootSchema, error) {
	if node == nil || node.Kind != KindMapping {
		return nil, NewLoadError(ExpectedMapping, markerOf(node), "schema root must be a mapping", nil)
	}

	root := &RootSchema{Defs: map[string]Schema{}}

	if idNode, ok := node.Get("$id"); ok && idNode.Kind == KindString {
		root.ID = idNode.Str
	}
	if schemaNode, ok := node.Get("$schema"); ok && schemaNode.Kind == KindString {
		root.SchemaURI = schemaNode.Str
	}

	if defsNode, ok := node.Get("$defs"); ok {
		if defsNode.Kind != KindMapping {
			return nil, NewLoadError(ExpectedMapping, defsNode.Marker, "$defs must be a mapping", nil)
		}
		for _, pair := range defsNode.Entries {
			if pair.Key.Kind != KindString {
				return nil, NewLoadError(ExpectedScalar, pair.Key.Marker, "$defs keys must be strings", nil)
			}
			sub, err := loadSchema(pair.Value)
			if err != nil {
				return nil, err
			}
			root.Defs["/$defs/"+pair.Key.Str] = sub
		}
	}

	schema, err := loadSchema(node)
	if err != nil {
		return nil, err
	}
	root.Schema = schema
	return root, nil
}

func markerOf(n *Node) Marker {
	if n == nil {
		return Marker{Line: 1, Column: 1}
	}
	return n.Marker
}

// loadSchema recursively converts a single marked node into a Schema.
// Nested $defs are not hoisted: this function never reads the $defs key,
// so it is simply ignored wherever it appears below the root.
func loadSchema(node *Node) (Schema, error) {
	if node == nil {
		return nil, NewLoadError(ExpectedMapping, Marker{Line: 1, Column: 1}, "expected a schema, got nothing", nil)
	}
	if node.Kind == KindBool {
		return BooleanSchema(node.Bool), nil
	}
	if node.Kind != KindMapping {
		return nil, NewLoadError(UnsupportedType, node.Marker, "schema node must be a mapping or boolean, got {kind}", map[string]interface{}{"kind": node.Kind})
	}

	if refNode, ok := node.Get("$ref"); ok {
		return loadRef(refNode)
	}

	for _, entry := range []struct {
		key string
		op  CompositionOp
	}{
		{"allOf", OpAllOf},
		{"anyOf", OpAnyOf},
		{"oneOf", OpOneOf},
	} {
		if subsNode, ok := node.Get(entry.key); ok {
			return loadComposition(entry.key, entry.op, subsNode)
		}
	}
	if notNode, ok := node.Get("not"); ok {
		sub, err := loadSchema(notNode)
		if err != nil {
			return nil, err
		}
		return &CompositionSchema{Op: OpNot, Subschemas: []Schema{sub}}, nil
	}

	base, err := parseBase(node)
	if err != nil {
		return nil, err
	}

	types, err := parseTypes(node)
	if err != nil {
		return nil, err
	}

	stringConstraints, err := parseStringConstraints(node)
	if err != nil {
		return nil, err
	}
	numberConstraints, err := parseNumberConstraints(node)
	if err != nil {
		return nil, err
	}
	arrayConstraints, err := parseArrayConstraints(node)
	if err != nil {
		return nil, err
	}
	objectConstraints, err := parseObjectConstraints(node)
	if err != nil {
		return nil, err
	}

	return &TypedSchema{
		BaseSchema: *base,
		Types:      types,
		String:     stringConstraints,
		Number:     numberConstraints,
		Array:      arrayConstraints,
		Object:     objectConstraints,
	}, nil
}

func loadRef(refNode *Node) (Schema, error) {
	if refNode.Kind != KindString {
		return nil, NewLoadError(ExpectedScalar, refNode.Marker, "$ref must be a string", nil)
	}
	if !strings.HasPrefix(refNode.Str, "#") {
		return nil, NewLoadError(MalformedRef, refNode.Marker, "external $ref {ref} is not supported", map[string]interface{}{"ref": refNode.Str})
	}
	return &RefSchema{Fragment: strings.TrimPrefix(refNode.Str, "#")}, nil
}

func loadComposition(keyword string, op CompositionOp, subsNode *Node) (Schema, error) {
	if subsNode.Kind != KindSequence {
		return nil, NewLoadError(ExpectedSequence, subsNode.Marker, "{keyword} must be a sequence of schemas", map[string]interface{}{"keyword": keyword})
	}
	if len(subsNode.Items) == 0 {
		return nil, NewLoadError(EmptyComposition, subsNode.Marker, "{keyword} must not be empty", map[string]interface{}{"keyword": keyword})
	}
	subs := make([]Schema, 0, len(subsNode.Items))
	for _, item := range subsNode.Items {
		sub, err := loadSchema(item)
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return &CompositionSchema{Op: op, Subschemas: subs}, nil
}

func parseBase(node *Node) (*BaseSchema, error) {
	base := &BaseSchema{}
	if titleNode, ok := node.Get("title"); ok && titleNode.Kind == KindString {
		base.Title = &titleNode.Str
	}
	if descNode, ok := node.Get("description"); ok && descNode.Kind == KindString {
		base.Description = &descNode.Str
	}
	if constNode, ok := node.Get("const"); ok {
		base.Const = constNode
		base.HasConst = true
	}
	if enumNode, ok := node.Get("enum"); ok {
		if enumNode.Kind != KindSequence {
			return nil, NewLoadError(ExpectedSequence, enumNode.Marker, "enum must be a sequence", nil)
		}
		base.Enum = append(base.Enum, enumNode.Items...)
	}
	if defNode, ok := node.Get("default"); ok {
		base.Default = defNode
	}
	return base, nil
}

func parseTypes(node *Node) ([]string, error) {
	typeNode, ok := node.Get("type")
	if !ok {
		return nil, nil
	}
	switch typeNode.Kind {
	case KindString:
		if !knownTypes[typeNode.Str] {
			return nil, NewLoadError(UnknownType, typeNode.Marker, "unknown type {name}", map[string]interface{}{"name": typeNode.Str})
		}
		return []string{typeNode.Str}, nil
	case KindSequence:
		types := make([]string, 0, len(typeNode.Items))
		for _, item := range typeNode.Items {
			if item.Kind != KindString || !knownTypes[item.Str] {
				return nil, NewLoadError(UnknownType, item.Marker, "unknown type in type list", nil)
			}
			types = append(types, item.Str)
		}
		return types, nil
	default:
		return nil, NewLoadError(ExpectedScalar, typeNode.Marker, "type must be a string or a sequence of strings", nil)
	}
}

func parseStringConstraints(node *Node) (*StringConstraints, error) {
	minLen, okMin, err := readNonNegativeInt(node, "minLength")
	if err != nil {
		return nil, err
	}
	maxLen, okMax, err := readNonNegativeInt(node, "maxLength")
	if err != nil {
		return nil, err
	}
	patternNode, okPattern := node.Get("pattern")

	if !okMin && !okMax && !okPattern {
		return nil, nil
	}
	sc := &StringConstraints{}
	if okMin {
		sc.MinLength = &minLen
	}
	if okMax {
		sc.MaxLength = &maxLen
	}
	if okPattern {
		if patternNode.Kind != KindString {
			return nil, NewLoadError(ExpectedScalar, patternNode.Marker, "pattern must be a string", nil)
		}
		re, err := regexp.Compile(patternNode.Str)
		if err != nil {
			return nil, NewLoadError(InvalidRegex, patternNode.Marker, "invalid pattern {pattern}: {cause}", map[string]interface{}{"pattern": patternNode.Str, "cause": err})
		}
		sc.Pattern = re
		sc.PatternSource = patternNode.Str
	}
	return sc, nil
}

func parseNumberConstraints(node *Node) (*NumberConstraints, error) {
	keys := []string{"minimum", "maximum", "exclusiveMinimum", "exclusiveMaximum", "multipleOf"}
	present := false
	for _, k := range keys {
		if _, ok := node.Get(k); ok {
			present = true
			break
		}
	}
	if !present {
		return nil, nil
	}
	nc := &NumberConstraints{}
	var err error
	if nc.Minimum, err = readFloatPtr(node, "minimum"); err != nil {
		return nil, err
	}
	if nc.Maximum, err = readFloatPtr(node, "maximum"); err != nil {
		return nil, err
	}
	if nc.ExclusiveMinimum, err = readFloatPtr(node, "exclusiveMinimum"); err != nil {
		return nil, err
	}
	if nc.ExclusiveMaximum, err = readFloatPtr(node, "exclusiveMaximum"); err != nil {
		return nil, err
	}
	if multipleOfNode, ok := node.Get("multipleOf"); ok {
		v, isNum := multipleOfNode.NumericValue()
		if !isNum {
			return nil, NewLoadError(ExpectedScalar, multipleOfNode.Marker, "multipleOf must be numeric", nil)
		}
		if v <= 0 {
			return nil, NewLoadError(InvalidMultipleOf, multipleOfNode.Marker, "multipleOf must be positive", nil)
		}
		nc.MultipleOf = &v
	}
	return nc, nil
}

func parseArrayConstraints(node *Node) (*ArrayConstraints, error) {
	itemsNode, okItems := node.Get("items")
	minItems, okMin, err := readNonNegativeInt(node, "minItems")
	if err != nil {
		return nil, err
	}
	maxItems, okMax, err := readNonNegativeInt(node, "maxItems")
	if err != nil {
		return nil, err
	}
	uniqueNode, okUnique := node.Get("uniqueItems")

	if !okItems && !okMin && !okMax && !okUnique {
		return nil, nil
	}
	ac := &ArrayConstraints{}
	if okItems {
		switch itemsNode.Kind {
		case KindSequence:
			tuple := make([]Schema, 0, len(itemsNode.Items))
			for _, item := range itemsNode.Items {
				sub, err := loadSchema(item)
				if err != nil {
					return nil, err
				}
				tuple = append(tuple, sub)
			}
			ac.TupleItems = tuple
		default:
			sub, err := loadSchema(itemsNode)
			if err != nil {
				return nil, err
			}
			ac.Items = sub
		}
	}
	if okMin {
		ac.MinItems = &minItems
	}
	if okMax {
		ac.MaxItems = &maxItems
	}
	if okUnique {
		if uniqueNode.Kind != KindBool {
			return nil, NewLoadError(ExpectedScalar, uniqueNode.Marker, "uniqueItems must be a boolean", nil)
		}
		ac.UniqueItems = uniqueNode.Bool
	}
	return ac, nil
}

func parseObjectConstraints(node *Node) (*ObjectConstraints, error) {
	propsNode, okProps := node.Get("properties")
	patPropsNode, okPatProps := node.Get("patternProperties")
	addPropsNode, okAddProps := node.Get("additionalProperties")
	requiredNode, okRequired := node.Get("required")
	minProps, okMinProps, err := readNonNegativeInt(node, "minProperties")
	if err != nil {
		return nil, err
	}
	maxProps, okMaxProps, err := readNonNegativeInt(node, "maxProperties")
	if err != nil {
		return nil, err
	}

	if !okProps && !okPatProps && !okAddProps && !okRequired && !okMinProps && !okMaxProps {
		return nil, nil
	}

	oc := &ObjectConstraints{}
	if okProps {
		if propsNode.Kind != KindMapping {
			return nil, NewLoadError(ExpectedMapping, propsNode.Marker, "properties must be a mapping", nil)
		}
		for _, pair := range propsNode.Entries {
			if pair.Key.Kind != KindString {
				return nil, NewLoadError(ExpectedScalar, pair.Key.Marker, "properties keys must be strings", nil)
			}
			sub, err := loadSchema(pair.Value)
			if err != nil {
				return nil, err
			}
			oc.Properties = append(oc.Properties, PropertySchema{Name: pair.Key.Str, Schema: sub})
		}
	}
	if okPatProps {
		if patPropsNode.Kind != KindMapping {
			return nil, NewLoadError(ExpectedMapping, patPropsNode.Marker, "patternProperties must be a mapping", nil)
		}
		for _, pair := range patPropsNode.Entries {
			if pair.Key.Kind != KindString {
				return nil, NewLoadError(ExpectedScalar, pair.Key.Marker, "patternProperties keys must be strings", nil)
			}
			re, err := regexp.Compile(pair.Key.Str)
			if err != nil {
				return nil, NewLoadError(InvalidRegex, pair.Key.Marker, "invalid pattern {pattern}: {cause}", map[string]interface{}{"pattern": pair.Key.Str, "cause": err})
			}
			sub, err := loadSchema(pair.Value)
			if err != nil {
				return nil, err
			}
			oc.PatternProperties = append(oc.PatternProperties, PatternPropertySchema{Pattern: re, Source: pair.Key.Str, Schema: sub})
		}
	}
	if okAddProps {
		sub, err := loadSchema(addPropsNode)
		if err != nil {
			return nil, err
		}
		oc.AdditionalProperties = sub
	}
	if okRequired {
		if requiredNode.Kind != KindSequence {
			return nil, NewLoadError(ExpectedSequence, requiredNode.Marker, "required must be a sequence of strings", nil)
		}
		for _, item := range requiredNode.Items {
			if item.Kind != KindString {
				return nil, NewLoadError(ExpectedScalar, item.Marker, "required entries must be strings", nil)
			}
			oc.Required = append(oc.Required, item.Str)
		}
	}
	if okMinProps {
		oc.MinProperties = &minProps
	}
	if okMaxProps {
		oc.MaxProperties = &maxProps
	}
	return oc, nil
}

func readNonNegativeInt(node *Node, key string) (int, bool, error) {
	n, ok := node.Get(key)
	if !ok {
		return 0, false, nil
	}
	if n.Kind != KindInt || n.Int < 0 {
		return 0, false, NewLoadError(InvalidBound, n.Marker, "{key} must be a non-negative integer", map[string]interface{}{"key": key})
	}
	return int(n.Int), true, nil
}

func readFloatPtr(node *Node, key string) (*float64, error) {
	n, ok := node.Get(key)
	if !ok {
		return nil, nil
	}
	v, isNum := n.NumericValue()
	if !isNum {
		return nil, NewLoadError(ExpectedScalar, n.Marker, fmt.Sprintf("%s must be numeric", key), nil)
	}
	return &v, nil
}
