package yamlschema

import "regexp"

// Schema is a tagged variant: BooleanSchema, *TypedSchema, *RefSchema or
// *CompositionSchema. The marker method keeps the variant set closed to this
// package's own types.
type Schema interface {
	schemaNode()
}

// BooleanSchema is the degenerate schema: true accepts every instance, false
// rejects every instance.
type BooleanSchema bool

func (BooleanSchema) schemaNode() {}

// BaseSchema holds the fields shared by every non-boolean schema variant.
// const/enum are checked before any per-kind constraint (SPEC_FULL.md §4.4).
type BaseSchema struct {
	Title       *string
	Description *string
	Const       *Node // the const value node (a null node for `const: null`); HasConst records whether the keyword is present
	HasConst    bool
	Enum        []*Node
	Default     *Node
}

// StringConstraints bundles the per-kind keywords applicable when an
// instance's kind is string.
type StringConstraints struct {
	MinLength     *int
	MaxLength     *int
	Pattern       *regexp.Regexp
	PatternSource string
}

// NumberConstraints bundles the per-kind keywords applicable when an
// instance's kind is integer or number.
type NumberConstraints struct {
	Minimum          *float64
	Maximum          *float64
	ExclusiveMinimum *float64
	ExclusiveMaximum *float64
	MultipleOf       *float64
}

// ArrayConstraints bundles the per-kind keywords applicable when an
// instance's kind is array. Items holds the single-schema form; TupleItems
// holds the positional tuple form. At most one of the two is set (neither
// when items is absent), per SPEC_FULL.md §4.1's
// items-is-mapping-vs-sequence discriminant.
type ArrayConstraints struct {
	Items       Schema
	TupleItems  []Schema
	MinItems    *int
	MaxItems    *int
	UniqueItems bool
}

// PropertySchema is a single (name, schema) entry of an object schema's
// properties, kept as an ordered slice rather than a map so validators can
// iterate in source order (SPEC_FULL.md §9).
type PropertySchema struct {
	Name   string
	Schema Schema
}

// PatternPropertySchema is a single (pattern, schema) entry of an object
// schema's patternProperties, ordered the same way as PropertySchema.
type PatternPropertySchema struct {
	Pattern *regexp.Regexp
	Source  string
	Schema  Schema
}

// ObjectConstraints bundles the per-kind keywords applicable when an
// instance's kind is object.
type ObjectConstraints struct {
	Properties           []PropertySchema
	PatternProperties    []PatternPropertySchema
	Required             []string
	AdditionalProperties Schema // nil means unconstrained; BooleanSchema(false) forbids; any other Schema validates
	MinProperties        *int
	MaxProperties        *int
}

// TypedSchema is the usual schema case: a BaseSchema plus a type
// discriminator (one or more kinds) and the constraint bundles applicable
// to each kind it declares.
type TypedSchema struct {
	BaseSchema
	Types  []string // ordered subset of {null, boolean, integer, number, string, array, object}; empty means "any kind"
	String *StringConstraints
	Number *NumberConstraints
	Array  *ArrayConstraints
	Object *ObjectConstraints
}

func (*TypedSchema) schemaNode() {}

// RefSchema is a deferred $ref lookup, resolved through the root's $defs
// table at validation time.
type RefSchema struct {
	Fragment string
}

func (*RefSchema) schemaNode() {}

// CompositionOp identifies which of allOf/anyOf/oneOf/not a
// CompositionSchema represents.
type CompositionOp int

const (
	OpAllOf CompositionOp = iota
	OpAnyOf
	OpOneOf
	OpNot
)

// CompositionSchema carries one or more subschemas under allOf/anyOf/oneOf,
// or exactly one under not.
type CompositionSchema struct {
	Op         CompositionOp
	Subschemas []Schema
}

func (*CompositionSchema) schemaNode() {}

// RootSchema wraps the top-level Schema and owns the $defs table. $id and
// $schema are root-only fields (SPEC_FULL.md §3.2): subschemas never carry
// their own base URI, since remote/relative $ref resolution is out of scope.
type RootSchema struct {
	Schema    Schema
	Defs      map[string]Schema
	ID        string
	SchemaURI string
}
