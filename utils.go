package yamlschema

import (
	"fmt"
	"strings"
)

// replace substitutes {key} placeholders in a template string with params,
// matching the lightweight message templating this module uses in place of
// a locale-bundle-backed i18n library.
func replace(template string, params map[string]interface{}) string {
	for key, value := range params {
		placeholder := "{" + key + "}"
		template = strings.ReplaceAll(template, placeholder, fmt.Sprint(value))
	}
	return template
}

// canonicalEqual reports structural equality between two instance nodes, as
// used by const, enum and uniqueItems: null=null, bools by value, numerics
// by numeric value (ints and integer-valued floats compare equal),
// strings by code points, sequences/mappings by recursive structural
// comparison. Mapping comparison ignores key order.
func canonicalEqual(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	aNum, aIsNum := a.NumericValue()
	bNum, bIsNum := b.NumericValue()
	if aIsNum && bIsNum {
		return numericEqual(aNum, bNum)
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindNull:
		return true
	case KindBool:
		return a.Bool == b.Bool
	case KindString:
		return a.Str == b.Str
	case KindSequence:
		if len(a.Items) != len(b.Items) {
			return false
		}
		for i := range a.Items {
			if !canonicalEqual(a.Items[i], b.Items[i]) {
				return false
			}
		}
		return true
	case KindMapping:
		if len(a.Entries) != len(b.Entries) {
			return false
		}
		for _, pa := range a.Entries {
			found := false
			for _, pb := range b.Entries {
				if pa.Key.Kind == KindString && pb.Key.Kind == KindString && pa.Key.Str == pb.Key.Str {
					if !canonicalEqual(pa.Value, pb.Value) {
						return false
					}
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// numericEqual implements the total-ordering-derived equality this module
// uses for numeric const/enum/uniqueItems comparisons: NaN is distinct from
// every value including itself, +0.0 equals -0.0 (the default Go float64
// equality already gives both properties).
func numericEqual(a, b float64) bool {
	return a == b
}
