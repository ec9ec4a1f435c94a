package yamlschema

import "strings"

// Options configures a Validate call. The zero value accumulates every
// diagnostic; FailFast stops at the first reportable error.
type Options struct {
	FailFast bool
}

// Validate walks target against root's schema and returns every diagnostic
// found, in report order. It is sugar for ValidateWithOptions with the zero
// Options.
func Validate(root *RootSchema, target *Node) []*ValidationError {
	return ValidateWithOptions(root, target, Options{})
}

// ValidateWithOptions is the fail-fast-aware entry point: constructs a
// Context and dispatches to the root schema's validator.
func ValidateWithOptions(root *RootSchema, target *Node, opts Options) []*ValidationError {
	ctx := NewContext(root, opts.FailFast)
	_ = validateSchema(ctx, root.Schema, target)
	return ctx.Sink.Errors()
}

// validateSchema dispatches to the validator for schema's concrete variant.
// The returned error is either nil or errStopValidation, propagated up so
// callers that own a loop (allOf, properties, array items, ...) can break
// out of it under fail-fast.
func validateSchema(ctx *Context, schema Schema, node *Node) error {
	switch s := schema.(type) {
	case BooleanSchema:
		return validateBoolean(ctx, s, node)
	case *TypedSchema:
		return validateTyped(ctx, s, node)
	case *RefSchema:
		return validateRefSchema(ctx, s, node)
	case *CompositionSchema:
		return validateComposition(ctx, s, node)
	default:
		return nil
	}
}

func validateBoolean(ctx *Context, s BooleanSchema, node *Node) error {
	if bool(s) {
		return nil
	}
	return ctx.Report(NewValidationError(FalseSchema, ctx.Path.String(), markerOf(node), "schema is false, no instance is valid", nil))
}

func kindName(k Kind) string {
	return k.String()
}

func typeList(types []string) string {
	return strings.Join(types, ", ")
}
