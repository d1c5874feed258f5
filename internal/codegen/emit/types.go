package emit

import (
	"fmt"

	"github.com/okra-platform/argsgen/internal/schema"
)

// TypeTable maps every schema kind to a rendered type name. Entries for named
// kinds are formats taking the type name, the KindSequence entry is a format
// taking the rendered element type. KindInvalid never maps.
type TypeTable [schema.KindTotal]string

// Map renders t, reporting false when t has no mapping
func (tt TypeTable) Map(t schema.Type) (string, bool) {
	if t.Kind <= schema.KindInvalid || int(t.Kind) >= schema.KindTotal {
		return "", false
	}

	format := tt[t.Kind]
	if format == "" {
		return "", false
	}

	switch {
	case t.Kind == schema.KindSequence:
		if t.Elem == nil {
			return "", false
		}
		elem, ok := tt.Map(*t.Elem)
		if !ok {
			return "", false
		}
		return fmt.Sprintf(format, elem), true

	case t.Kind.IsNamed():
		if t.Name == "" {
			return "", false
		}
		return fmt.Sprintf(format, t.Name), true

	default:
		return format, true
	}
}

// Missing lists the kinds other than KindInvalid without an entry
func (tt TypeTable) Missing() []schema.Kind {
	var missing []schema.Kind
	for k := schema.KindInvalid + 1; int(k) < schema.KindTotal; k++ {
		if tt[k] == "" {
			missing = append(missing, k)
		}
	}
	return missing
}
