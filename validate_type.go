package yamlschema

// kindMatchesDeclared reports whether node's kind satisfies a single
// declared type name, applying the integer/number duality rule: an Int or
// a zero-fractional Float satisfies "integer"; any numeric satisfies
// "number".
func kindMatchesDeclared(node *Node, declared string) bool {
	switch declared {
	case "null":
		return node.Kind == KindNull
	case "boolean":
		return node.Kind == KindBool
	case "integer":
		return node.Kind == KindInt || (node.Kind == KindFloat && node.IsIntegerValued())
	case "number":
		return node.Kind == KindInt || node.Kind == KindFloat
	case "string":
		return node.Kind == KindString
	case "array":
		return node.Kind == KindSequence
	case "object":
		return node.Kind == KindMapping
	default:
		return false
	}
}

// validateTyped implements SPEC_FULL.md §4.4's TypedSchema contract: kind
// matching, then const/enum, then the per-kind constraint bundle matching
// the instance's actual kind.
func validateTyped(ctx *Context, s *TypedSchema, node *Node) error {
	if len(s.Types) > 0 {
		matched := false
		for _, t := range s.Types {
			if kindMatchesDeclared(node, t) {
				matched = true
				break
			}
		}
		if !matched {
			return ctx.Report(NewValidationError(TypeMismatch, ctx.Path.String(), node.Marker,
				"Expected type {expected}, but got: {got}",
				map[string]interface{}{"expected": typeList(s.Types), "got": kindName(node.Kind)}))
		}
	}

	if s.HasConst {
		if !canonicalEqual(s.Const, node) {
			if err := ctx.Report(NewValidationError(ConstMismatch, ctx.Path.String(), node.Marker,
				"Value does not match const", nil)); err != nil {
				return err
			}
		}
	}
	if len(s.Enum) > 0 {
		matched := false
		for _, candidate := range s.Enum {
			if canonicalEqual(candidate, node) {
				matched = true
				break
			}
		}
		if !matched {
			if err := ctx.Report(NewValidationError(EnumMismatch, ctx.Path.String(), node.Marker,
				"Value is not one of the enumerated values", nil)); err != nil {
				return err
			}
		}
	}

	switch node.Kind {
	case KindString:
		if s.String != nil {
			return validateStringConstraints(ctx, s.String, node)
		}
	case KindInt, KindFloat:
		if s.Number != nil {
			return validateNumberConstraints(ctx, s.Number, node)
		}
	case KindSequence:
		if s.Array != nil {
			return validateArrayConstraints(ctx, s.Array, node)
		}
	case KindMapping:
		if s.Object != nil {
			return validateObjectConstraints(ctx, s.Object, node)
		}
	}
	return nil
}
