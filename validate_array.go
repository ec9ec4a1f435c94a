package yamlschema

// validateArrayConstraints applies items/minItems/maxItems/uniqueItems to
// an array instance.
func validateArrayConstraints(ctx *Context, ac *ArrayConstraints, node *Node) error {
	if ac.MinItems != nil && len(node.Items) < *ac.MinItems {
		if err := ctx.Report(NewValidationError(SizeViolation, ctx.Path.String(), node.Marker,
			"Array has {count} items, fewer than minItems {bound}",
			map[string]interface{}{"count": len(node.Items), "bound": *ac.MinItems})); err != nil {
			return err
		}
	}
	if ac.MaxItems != nil && len(node.Items) > *ac.MaxItems {
		if err := ctx.Report(NewValidationError(SizeViolation, ctx.Path.String(), node.Marker,
			"Array has {count} items, more than maxItems {bound}",
			map[string]interface{}{"count": len(node.Items), "bound": *ac.MaxItems})); err != nil {
			return err
		}
	}

	switch {
	case ac.Items != nil:
		for i, item := range node.Items {
			pop := ctx.Path.Push(IndexSegment(i))
			err := validateSchema(ctx, ac.Items, item)
			pop()
			if err != nil {
				return err
			}
		}
	case ac.TupleItems != nil:
		for i, item := range node.Items {
			if i >= len(ac.TupleItems) {
				break
			}
			pop := ctx.Path.Push(IndexSegment(i))
			err := validateSchema(ctx, ac.TupleItems[i], item)
			pop()
			if err != nil {
				return err
			}
		}
	}

	if ac.UniqueItems {
		if idx1, idx2, ok := firstDuplicate(node.Items); ok {
			if err := ctx.Report(NewValidationError(UniquenessViolation, ctx.Path.String(), node.Marker,
				"Array items at indices {first} and {second} are duplicates",
				map[string]interface{}{"first": idx1, "second": idx2})); err != nil {
				return err
			}
		}
	}
	return nil
}

func firstDuplicate(items []*Node) (int, int, bool) {
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			if canonicalEqual(items[i], items[j]) {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}
