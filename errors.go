package yamlschema

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for malformations that do not carry enough structure to
// warrant a LoadErrorKind of their own. Load does not return
// ErrEmptyDocument: an empty document parses to a null node, which Load
// rejects with an ExpectedMapping LoadError.
var (
	ErrEmptyDocument = errors.New("yamlschema: empty document")
)

// LoadErrorKind classifies a fatal failure encountered while materialising a
// Schema graph from a marked YAML tree.
type LoadErrorKind int

const (
	ExpectedMapping LoadErrorKind = iota
	ExpectedSequence
	ExpectedScalar
	UnknownType
	UnsupportedType
	InvalidRegex
	MalformedRef
	EmptyComposition
	InvalidMultipleOf
	InvalidBound
	Generic
)

func (k LoadErrorKind) String() string {
	switch k {
	case ExpectedMapping:
		return "expected_mapping"
	case ExpectedSequence:
		return "expected_sequence"
	case ExpectedScalar:
		return "expected_scalar"
	case UnknownType:
		return "unknown_type"
	case UnsupportedType:
		return "unsupported_type"
	case InvalidRegex:
		return "invalid_regex"
	case MalformedRef:
		return "malformed_ref"
	case EmptyComposition:
		return "empty_composition"
	case InvalidMultipleOf:
		return "invalid_multiple_of"
	case InvalidBound:
		return "invalid_bound"
	case Generic:
		return "generic"
	default:
		return "unknown"
	}
}

// LoadError is a fatal error that halts loading. It always carries the
// marker of the node that triggered it.
type LoadError struct {
	Kind   LoadErrorKind
	Marker Marker
	Detail string
}

// NewLoadError builds a LoadError, substituting {placeholder} tokens in the
// message template with params, matching this module's other error
// constructors.
func NewLoadError(kind LoadErrorKind, marker Marker, template string, params map[string]interface{}) *LoadError {
	return &LoadError{Kind: kind, Marker: marker, Detail: replace(template, params)}
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("[%d:%d] %s: %s", e.Marker.Line, e.Marker.Column, e.Kind, e.Detail)
}

// ValidationErrorKind classifies a non-fatal diagnostic accumulated while
// validating an instance against a schema.
type ValidationErrorKind int

const (
	TypeMismatch ValidationErrorKind = iota
	ConstMismatch
	EnumMismatch
	PatternMismatch
	RangeViolation
	MultipleOfViolation
	LengthViolation
	SizeViolation
	UniquenessViolation
	RequiredMissing
	UnexpectedProperty
	OneOfNoneMatched
	OneOfMultipleMatched
	AnyOfMismatch
	NotShouldHaveFailed
	FalseSchema
	UnresolvedRef
)

func (k ValidationErrorKind) String() string {
	switch k {
	case TypeMismatch:
		return "type_mismatch"
	case ConstMismatch:
		return "const_mismatch"
	case EnumMismatch:
		return "enum_mismatch"
	case PatternMismatch:
		return "pattern_mismatch"
	case RangeViolation:
		return "range_violation"
	case MultipleOfViolation:
		return "multiple_of_violation"
	case LengthViolation:
		return "length_violation"
	case SizeViolation:
		return "size_violation"
	case UniquenessViolation:
		return "uniqueness_violation"
	case RequiredMissing:
		return "required_missing"
	case UnexpectedProperty:
		return "unexpected_property"
	case OneOfNoneMatched:
		return "one_of_none_matched"
	case OneOfMultipleMatched:
		return "one_of_multiple_matched"
	case AnyOfMismatch:
		return "any_of_mismatch"
	case NotShouldHaveFailed:
		return "not_should_have_failed"
	case FalseSchema:
		return "false_schema"
	case UnresolvedRef:
		return "unresolved_ref"
	default:
		return "unknown"
	}
}

// ValidationError is a single diagnostic produced by the engine. Path uses
// ".name" for object descent and "[i]" for array descent; the root path is
// the empty string.
type ValidationError struct {
	Kind    ValidationErrorKind
	Path    string
	Marker  Marker
	Message string
}

// NewValidationError builds a ValidationError, substituting {placeholder}
// tokens in the message template with params.
func NewValidationError(kind ValidationErrorKind, path string, marker Marker, template string, params map[string]interface{}) *ValidationError {
	return &ValidationError{Kind: kind, Path: path, Marker: marker, Message: replace(template, params)}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%d:%d] %s: %s", e.Marker.Line, e.Marker.Column, e.Path, e.Message)
}

// FormatErrors renders a diagnostic slice one line per error, in the
// "[<line>:<col>] <path>: <message>" form a CLI front-end would print.
func FormatErrors(errs []*ValidationError) string {
	lines := make([]string, len(errs))
	for i, e := range errs {
		lines[i] = e.Error()
	}
	return strings.Join(lines, "\n")
}
