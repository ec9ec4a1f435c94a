package yamlschema

// validateObjectConstraints applies properties/patternProperties/required/
// additionalProperties/minProperties/maxProperties to an object instance.
func validateObjectConstraints(ctx *Context, oc *ObjectConstraints, node *Node) error {
	if oc.MinProperties != nil && len(node.Entries) < *oc.MinProperties {
		if err := ctx.Report(NewValidationError(SizeViolation, ctx.Path.String(), node.Marker,
			"Object has {count} properties, fewer than minProperties {bound}",
			map[string]interface{}{"count": len(node.Entries), "bound": *oc.MinProperties})); err != nil {
			return err
		}
	}
	if oc.MaxProperties != nil && len(node.Entries) > *oc.MaxProperties {
		if err := ctx.Report(NewValidationError(SizeViolation, ctx.Path.String(), node.Marker,
			"Object has {count} properties, more than maxProperties {bound}",
			map[string]interface{}{"count": len(node.Entries), "bound": *oc.MaxProperties})); err != nil {
			return err
		}
	}

	// properties: schema-source order.
	for _, prop := range oc.Properties {
		value, ok := node.Get(prop.Name)
		if !ok {
			continue
		}
		pop := ctx.Path.Push(PropertySegment(prop.Name))
		err := validateSchema(ctx, prop.Schema, value)
		pop()
		if err != nil {
			return err
		}
	}

	// patternProperties: instance-source order, schema-source order of patterns.
	for _, entry := range node.Entries {
		if entry.Key.Kind != KindString {
			continue
		}
		for _, pp := range oc.PatternProperties {
			if !pp.Pattern.MatchString(entry.Key.Str) {
				continue
			}
			pop := ctx.Path.Push(PropertySegment(entry.Key.Str))
			err := validateSchema(ctx, pp.Schema, entry.Value)
			pop()
			if err != nil {
				return err
			}
		}
	}

	if len(oc.Required) > 0 {
		for _, name := range oc.Required {
			if _, ok := node.Get(name); !ok {
				if err := ctx.Report(NewValidationError(RequiredMissing, ctx.Path.String(), node.Marker,
					"Missing required property {name}",
					map[string]interface{}{"name": name})); err != nil {
					return err
				}
			}
		}
	}

	if oc.AdditionalProperties != nil {
		propertyNames := make(map[string]bool, len(oc.Properties))
		for _, prop := range oc.Properties {
			propertyNames[prop.Name] = true
		}
		for _, entry := range node.Entries {
			if entry.Key.Kind != KindString {
				continue
			}
			name := entry.Key.Str
			if propertyNames[name] {
				continue
			}
			if matchesAnyPattern(oc.PatternProperties, name) {
				continue
			}
			if boolSchema, isBool := oc.AdditionalProperties.(BooleanSchema); isBool && !bool(boolSchema) {
				if err := ctx.Report(NewValidationError(UnexpectedProperty, ctx.Path.String(), entry.Key.Marker,
					"Unexpected property {name}",
					map[string]interface{}{"name": name})); err != nil {
					return err
				}
				continue
			}
			pop := ctx.Path.Push(PropertySegment(name))
			err := validateSchema(ctx, oc.AdditionalProperties, entry.Value)
			pop()
			if err != nil {
				return err
			}
		}
	}

	return nil
}

func matchesAnyPattern(patterns []PatternPropertySchema, name string) bool {
	for _, pp := range patterns {
		if pp.Pattern.MatchString(name) {
			return true
		}
	}
	return false
}
