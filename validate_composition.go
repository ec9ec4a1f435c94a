package yamlschema

import (
	"fmt"
	"strings"
)

// validateComposition dispatches to the allOf/anyOf/oneOf/not contracts of
// SPEC_FULL.md §4.4.
func validateComposition(ctx *Context, s *CompositionSchema, node *Node) error {
	switch s.Op {
	case OpAllOf:
		return validateAllOf(ctx, s.Subschemas, node)
	case OpAnyOf:
		return validateAnyOf(ctx, s.Subschemas, node)
	case OpOneOf:
		return validateOneOf(ctx, s.Subschemas, node)
	case OpNot:
		return validateNot(ctx, s.Subschemas[0], node)
	default:
		return nil
	}
}

// validateAllOf requires every subschema to accept; each subschema's own
// errors are reported directly into the shared sink.
func validateAllOf(ctx *Context, subs []Schema, node *Node) error {
	for _, sub := range subs {
		if err := validateSchema(ctx, sub, node); err != nil {
			return err
		}
	}
	return nil
}

// evaluateOnThrowawaySink runs sub against node without touching ctx's
// sink or fail-fast state, returning the diagnostics it would have produced.
func evaluateOnThrowawaySink(ctx *Context, sub Schema, node *Node) []*ValidationError {
	tempCtx := &Context{Root: ctx.Root, Path: ctx.Path, FailFast: false, Sink: &ErrorSink{}}
	_ = validateSchema(tempCtx, sub, node)
	return tempCtx.Sink.Errors()
}

// accepts reports whether sub accepts node, per evaluateOnThrowawaySink.
// Used by oneOf and not, which only need the verdict and not the detail.
func accepts(ctx *Context, sub Schema, node *Node) bool {
	return len(evaluateOnThrowawaySink(ctx, sub, node)) == 0
}

// validateAnyOf requires at least one subschema to accept; each candidate
// is tried on a throwaway sink and the first acceptance short-circuits. On
// total failure, the message folds in a condensed summary of why each
// candidate was rejected rather than just a branch count.
func validateAnyOf(ctx *Context, subs []Schema, node *Node) error {
	summaries := make([]string, 0, len(subs))
	for i, sub := range subs {
		errs := evaluateOnThrowawaySink(ctx, sub, node)
		if len(errs) == 0 {
			return nil
		}
		summaries = append(summaries, fmt.Sprintf("[%d] %s: %s", i, errs[0].Kind, errs[0].Message))
	}
	return ctx.Report(NewValidationError(AnyOfMismatch, ctx.Path.String(), node.Marker,
		"Value does not match any of the {count} schemas in anyOf: {summary}",
		map[string]interface{}{"count": len(subs), "summary": strings.Join(summaries, "; ")}))
}

// validateOneOf requires exactly one subschema to accept. It evaluates all
// subschemas even after a match is found, because two or more matches are
// themselves an error (SPEC_FULL.md §4.4). Under fail-fast it stops once a
// second acceptance is found (enough to report OneOfMultipleMatched) or
// once every subschema has been tried with none matching
// (SPEC_FULL.md §9's resolution of the fail-fast/oneOf open question).
func validateOneOf(ctx *Context, subs []Schema, node *Node) error {
	var matched []int
	for i, sub := range subs {
		if accepts(ctx, sub, node) {
			matched = append(matched, i)
			if ctx.FailFast && len(matched) >= 2 {
				break
			}
		}
	}
	switch len(matched) {
	case 1:
		return nil
	case 0:
		return ctx.Report(NewValidationError(OneOfNoneMatched, ctx.Path.String(), node.Marker,
			"Value matches none of the schemas in oneOf", nil))
	default:
		return ctx.Report(NewValidationError(OneOfMultipleMatched, ctx.Path.String(), node.Marker,
			"Value matches more than one schema in oneOf: {indices}",
			map[string]interface{}{"indices": fmt.Sprint(matched)}))
	}
}

// validateNot requires sub to reject node.
func validateNot(ctx *Context, sub Schema, node *Node) error {
	if accepts(ctx, sub, node) {
		return ctx.Report(NewValidationError(NotShouldHaveFailed, ctx.Path.String(), node.Marker,
			"Value matches the schema under not, but should not", nil))
	}
	return nil
}
