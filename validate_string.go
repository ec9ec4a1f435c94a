package yamlschema

import "unicode/utf8"

// validateStringConstraints applies minLength/maxLength/pattern to a string
// instance. Lengths count Unicode scalar values, not bytes.
func validateStringConstraints(ctx *Context, sc *StringConstraints, node *Node) error {
	length := utf8.RuneCountInString(node.Str)

	if sc.MinLength != nil && length < *sc.MinLength {
		if err := ctx.Report(NewValidationError(LengthViolation, ctx.Path.String(), node.Marker,
			"String length {length} is less than minLength {bound}",
			map[string]interface{}{"length": length, "bound": *sc.MinLength})); err != nil {
			return err
		}
	}
	if sc.MaxLength != nil && length > *sc.MaxLength {
		if err := ctx.Report(NewValidationError(LengthViolation, ctx.Path.String(), node.Marker,
			"String length {length} is greater than maxLength {bound}",
			map[string]interface{}{"length": length, "bound": *sc.MaxLength})); err != nil {
			return err
		}
	}
	if sc.Pattern != nil && !sc.Pattern.MatchString(node.Str) {
		if err := ctx.Report(NewValidationError(PatternMismatch, ctx.Path.String(), node.Marker,
			"String does not match pattern {pattern}",
			map[string]interface{}{"pattern": sc.PatternSource})); err != nil {
			return err
		}
	}
	return nil
}
