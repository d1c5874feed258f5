package emit

import (
	"strconv"

	json "github.com/goccy/go-json"

	"github.com/okra-platform/argsgen/internal/schema"
)

// Literal renders v as a literal of type t. Sequences are rendered element by
// element through the dialect's array form; a single value given for a
// sequence type becomes a one-element array.
func Literal(s Syntax, t schema.Type, v any) (string, bool) {
	if !t.IsSequence() {
		return s.ScalarLiteral(t, v)
	}

	if t.Elem == nil {
		return "", false
	}

	elemType, ok := s.Types().Map(*t.Elem)
	if !ok {
		return "", false
	}

	items, isList := v.([]any)
	if !isList {
		items = []any{v}
	}

	rendered := make([]string, 0, len(items))
	for _, item := range items {
		lit, ok := Literal(s, *t.Elem, item)
		if !ok {
			return "", false
		}
		rendered = append(rendered, lit)
	}

	return s.ArrayLiteral(elemType, rendered), true
}

// BoolLiteral renders a bool default
func BoolLiteral(v any) (string, bool) {
	b, ok := v.(bool)
	if !ok {
		return "", false
	}
	return strconv.FormatBool(b), true
}

// IntLiteral renders an integral default
func IntLiteral(v any) (string, bool) {
	i, ok := v.(int64)
	if !ok {
		return "", false
	}
	return strconv.FormatInt(i, 10), true
}

// FloatLiteral renders a numeric default with the shortest text that
// round-trips at the given bit size
func FloatLiteral(v any, bitSize int) (string, bool) {
	switch x := v.(type) {
	case int64:
		return strconv.FormatInt(x, 10), true
	case float64:
		return strconv.FormatFloat(x, 'g', -1, bitSize), true
	default:
		return "", false
	}
}

// QuoteString renders s as a double-quoted string literal. JSON escapes are
// valid in both C# and TypeScript string literals.
func QuoteString(s string) string {
	b, err := json.MarshalNoEscape(s)
	if err != nil {
		return strconv.Quote(s)
	}
	return string(b)
}

// IsIdentifier reports whether s can be used as an enum member reference
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
