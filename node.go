package yamlschema

import (
	"fmt"
	"math"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
	"github.com/goccy/go-yaml/token"
)

// Kind identifies the shape of a Node: a scalar, an ordered sequence, or an
// ordered mapping.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindSequence
	KindMapping
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindInt:
		return "integer"
	case KindFloat:
		return "number"
	case KindString:
		return "string"
	case KindSequence:
		return "array"
	case KindMapping:
		return "object"
	default:
		return "unknown"
	}
}

// Marker is the (line, column, byte offset) provenance attached to every
// parsed node. Line and column are 1-based, matching the underlying tokenizer.
type Marker struct {
	Line   int
	Column int
	Offset int
}

func markerFromToken(tok *token.Token) Marker {
	if tok == nil || tok.Position == nil {
		return Marker{Line: 1, Column: 1}
	}
	return Marker{Line: tok.Position.Line, Column: tok.Position.Column, Offset: tok.Position.Offset}
}

// Pair is a single entry of an ordered Mapping, preserving source order.
type Pair struct {
	Key   *Node
	Value *Node
}

// Node is a parsed YAML value carrying source location. It mirrors the
// "marked YAML tree" this module treats as an external primitive: a thin,
// library-agnostic adapter lives here so the rest of the package never
// imports goccy/go-yaml's ast types directly.
type Node struct {
	Kind    Kind
	Marker  Marker
	Bool    bool
	Int     int64
	Float   float64
	Str     string
	Items   []*Node // Kind == KindSequence
	Entries []Pair  // Kind == KindMapping, insertion order preserved
}

// ParseYAML parses data into a marked tree. Only the first document in a
// multi-document stream is considered; this module has no concept of
// document streams, matching the loader's single-schema contract.
func ParseYAML(data []byte) (*Node, error) {
	file, err := parser.ParseBytes(data, 0)
	if err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if len(file.Docs) == 0 {
		return &Node{Kind: KindNull}, nil
	}
	body := file.Docs[0].Body
	if body == nil {
		return &Node{Kind: KindNull}, nil
	}
	return fromAST(body)
}

func fromAST(n ast.Node) (*Node, error) {
	switch v := n.(type) {
	case *ast.NullNode:
		return &Node{Kind: KindNull, Marker: markerFromToken(v.GetToken())}, nil
	case *ast.BoolNode:
		return &Node{Kind: KindBool, Marker: markerFromToken(v.GetToken()), Bool: v.Value}, nil
	case *ast.IntegerNode:
		i, ok := toInt64(v.Value)
		if !ok {
			return nil, fmt.Errorf("unsupported integer literal %v at line %d", v.Value, v.GetToken().Position.Line)
		}
		return &Node{Kind: KindInt, Marker: markerFromToken(v.GetToken()), Int: i}, nil
	case *ast.FloatNode:
		return &Node{Kind: KindFloat, Marker: markerFromToken(v.GetToken()), Float: v.Value}, nil
	case *ast.StringNode:
		return &Node{Kind: KindString, Marker: markerFromToken(v.GetToken()), Str: v.Value}, nil
	case *ast.LiteralNode:
		return &Node{Kind: KindString, Marker: markerFromToken(v.GetToken()), Str: v.GetToken().Value}, nil
	case *ast.SequenceNode:
		items := make([]*Node, 0, len(v.Values))
		for _, child := range v.Values {
			cn, err := fromAST(child)
			if err != nil {
				return nil, err
			}
			items = append(items, cn)
		}
		return &Node{Kind: KindSequence, Marker: markerFromToken(v.GetToken()), Items: items}, nil
	case *ast.MappingNode:
		entries := make([]Pair, 0, len(v.Values))
		for _, mv := range v.Values {
			p, err := pairFromMappingValue(mv)
			if err != nil {
				return nil, err
			}
			entries = append(entries, p)
		}
		return &Node{Kind: KindMapping, Marker: markerFromToken(v.GetToken()), Entries: entries}, nil
	case *ast.MappingValueNode:
		// A mapping with a single key is returned directly as a
		// MappingValueNode rather than wrapped in a MappingNode.
		p, err := pairFromMappingValue(v)
		if err != nil {
			return nil, err
		}
		return &Node{Kind: KindMapping, Marker: markerFromToken(v.GetToken()), Entries: []Pair{p}}, nil
	case *ast.AnchorNode:
		return fromAST(v.Value)
	case *ast.AliasNode:
		return nil, fmt.Errorf("aliases are not supported at line %d", v.GetToken().Position.Line)
	case *ast.TagNode:
		return fromAST(v.Value)
	case *ast.CommentNode:
		return &Node{Kind: KindNull, Marker: markerFromToken(v.GetToken())}, nil
	default:
		return nil, fmt.Errorf("unsupported yaml node type %T", n)
	}
}

func pairFromMappingValue(mv *ast.MappingValueNode) (Pair, error) {
	key, err := fromAST(mv.Key)
	if err != nil {
		return Pair{}, err
	}
	val, err := fromAST(mv.Value)
	if err != nil {
		return Pair{}, err
	}
	return Pair{Key: key, Value: val}, nil
}

func toInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case int:
		return int64(n), true
	default:
		return 0, false
	}
}

// Get returns the value mapped to key and true if node is a mapping
// containing that key, comparing keys structurally (string scalars only,
// which is the only key shape this dialect's schemas and instances use).
func (n *Node) Get(key string) (*Node, bool) {
	if n == nil || n.Kind != KindMapping {
		return nil, false
	}
	for _, p := range n.Entries {
		if p.Key.Kind == KindString && p.Key.Str == key {
			return p.Value, true
		}
	}
	return nil, false
}

// IsIntegerValued reports whether a numeric node represents an integer: an
// Int node always does, a Float node does when its fractional part is zero.
func (n *Node) IsIntegerValued() bool {
	switch n.Kind {
	case KindInt:
		return true
	case KindFloat:
		return n.Float == math.Trunc(n.Float) && !math.IsInf(n.Float, 0) && !math.IsNaN(n.Float)
	default:
		return false
	}
}

// NumericValue returns the node's numeric value as a float64, and whether
// the node is numeric at all (Int or Float).
func (n *Node) NumericValue() (float64, bool) {
	switch n.Kind {
	case KindInt:
		return float64(n.Int), true
	case KindFloat:
		return n.Float, true
	default:
		return 0, false
	}
}
