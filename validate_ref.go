package yamlschema

import (
	"net/url"
	"strings"

	"github.com/kaptinlin/jsonpointer"
)

// validateRefSchema resolves s.Fragment through root.Defs and delegates.
// Cycles are permitted: each $ref hop is a pure lookup, never an owning
// edge, and termination comes from the target document shrinking at every
// other validator, not from this lookup itself.
func validateRefSchema(ctx *Context, s *RefSchema, node *Node) error {
	resolved, ok := ctx.Root.Defs[canonicalFragment(s.Fragment)]
	if !ok {
		return ctx.Report(NewValidationError(UnresolvedRef, ctx.Path.String(), node.Marker,
			"Unresolved reference {fragment}",
			map[string]interface{}{"fragment": s.Fragment}))
	}
	return validateSchema(ctx, resolved, node)
}

// canonicalFragment normalizes a JSON-Pointer-style fragment (e.g.
// "/$defs/schema_type") to the form this module's $defs table is keyed
// under. jsonpointer.Parse splits on "/" and undoes "~0"/"~1" escaping;
// this also undoes URI percent-encoding, since $ref values are written as
// URI fragments even though nothing in this dialect percent-encodes them.
func canonicalFragment(fragment string) string {
	segments := jsonpointer.Parse(fragment)
	parts := make([]string, len(segments))
	for i, seg := range segments {
		if unescaped, err := url.PathUnescape(seg); err == nil {
			parts[i] = unescaped
		} else {
			parts[i] = seg
		}
	}
	return "/" + strings.Join(parts, "/")
}
