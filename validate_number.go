package yamlschema

import "math"

// floatTolerance bounds how far n/k may be from the nearest integer for
// multipleOf to accept a float-involving comparison (SPEC_FULL.md §4.4).
const floatTolerance = 1e-9

// validateNumberConstraints applies minimum/maximum/exclusiveMinimum/
// exclusiveMaximum/multipleOf to a numeric instance. Comparisons use
// float64, not exact rational arithmetic: the tolerance multipleOf requires
// for float operands has no natural expression over big.Rat.
func validateNumberConstraints(ctx *Context, nc *NumberConstraints, node *Node) error {
	value, _ := node.NumericValue()

	if nc.Minimum != nil && value < *nc.Minimum {
		if err := ctx.Report(NewValidationError(RangeViolation, ctx.Path.String(), node.Marker,
			"Value {value} is less than minimum {bound}",
			map[string]interface{}{"value": value, "bound": *nc.Minimum})); err != nil {
			return err
		}
	}
	if nc.Maximum != nil && value > *nc.Maximum {
		if err := ctx.Report(NewValidationError(RangeViolation, ctx.Path.String(), node.Marker,
			"Value {value} is greater than maximum {bound}",
			map[string]interface{}{"value": value, "bound": *nc.Maximum})); err != nil {
			return err
		}
	}
	if nc.ExclusiveMinimum != nil && value <= *nc.ExclusiveMinimum {
		if err := ctx.Report(NewValidationError(RangeViolation, ctx.Path.String(), node.Marker,
			"Value {value} is not greater than exclusiveMinimum {bound}",
			map[string]interface{}{"value": value, "bound": *nc.ExclusiveMinimum})); err != nil {
			return err
		}
	}
	if nc.ExclusiveMaximum != nil && value >= *nc.ExclusiveMaximum {
		if err := ctx.Report(NewValidationError(RangeViolation, ctx.Path.String(), node.Marker,
			"Value {value} is not less than exclusiveMaximum {bound}",
			map[string]interface{}{"value": value, "bound": *nc.ExclusiveMaximum})); err != nil {
			return err
		}
	}
	if nc.MultipleOf != nil && !isMultipleOf(node, value, *nc.MultipleOf) {
		if err := ctx.Report(NewValidationError(MultipleOfViolation, ctx.Path.String(), node.Marker,
			"Value {value} is not a multiple of {divisor}",
			map[string]interface{}{"value": value, "divisor": *nc.MultipleOf})); err != nil {
			return err
		}
	}
	return nil
}

// isMultipleOf implements the exact-for-integers, tolerant-for-floats rule:
// an integer instance divided by an integer divisor must be exactly
// integral; any other combination is checked within floatTolerance.
func isMultipleOf(node *Node, value, divisor float64) bool {
	if node.Kind == KindInt && divisor == math.Trunc(divisor) {
		return math.Mod(value, divisor) == 0
	}
	quotient := value / divisor
	return math.Abs(quotient-math.Round(quotient)) <= floatTolerance
}
