package csharp

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/okra-platform/argsgen/internal/codegen/emit"
	"github.com/okra-platform/argsgen/internal/codegen/writer"
	"github.com/okra-platform/argsgen/internal/schema"
)

// Types maps schema kinds to C# type names
var Types = emit.TypeTable{
	schema.KindBool:         "bool",
	schema.KindInt:          "int",
	schema.KindLong:         "long",
	schema.KindFloat:        "float",
	schema.KindDouble:       "double",
	schema.KindString:       "string",
	schema.KindChar:         "char",
	schema.KindEnum:         "%s",
	schema.KindObject:       "%s",
	schema.KindColumn:       "%s",
	schema.KindSubcomponent: "%s",
	schema.KindSequence:     "%s[]",
}

// Syntax spells members and statements in C#
type Syntax struct{}

// Types returns the C# type table
func (Syntax) Types() emit.TypeTable {
	return Types
}

// ScalarLiteral renders a default value as a C# literal
func (Syntax) ScalarLiteral(t schema.Type, v any) (string, bool) {
	switch t.Kind {
	case schema.KindBool:
		return emit.BoolLiteral(v)
	case schema.KindInt:
		// int is 32 bits wide in C#
		if i, ok := v.(int64); !ok || i < math.MinInt32 || i > math.MaxInt32 {
			return "", false
		}
		return emit.IntLiteral(v)
	case schema.KindLong:
		lit, ok := emit.IntLiteral(v)
		if !ok {
			return "", false
		}
		return lit + "L", true
	case schema.KindFloat:
		lit, ok := emit.FloatLiteral(v, 32)
		if !ok {
			return "", false
		}
		return lit + "f", true
	case schema.KindDouble:
		lit, ok := emit.FloatLiteral(v, 64)
		if !ok {
			return "", false
		}
		if _, isInt := v.(int64); isInt {
			lit += ".0"
		}
		return lit, true
	case schema.KindString:
		s, ok := v.(string)
		if !ok {
			return "", false
		}
		return emit.QuoteString(s), true
	case schema.KindChar:
		s, ok := v.(string)
		if !ok || utf8.RuneCountInString(s) != 1 {
			return "", false
		}
		return charLiteral(s), true
	case schema.KindEnum:
		s, ok := v.(string)
		if !ok || !emit.IsIdentifier(s) {
			return "", false
		}
		return t.Name + "." + s, true
	default:
		return "", false
	}
}

// charLiteral re-quotes a one-rune string for single quotes
func charLiteral(s string) string {
	inner := emit.QuoteString(s)
	inner = inner[1 : len(inner)-1]

	switch inner {
	case `\"`:
		inner = `"`
	case "'":
		inner = `\'`
	}

	return "'" + inner + "'"
}

// ArrayLiteral renders an explicitly typed array creation
func (Syntax) ArrayLiteral(elemType string, items []string) string {
	if len(items) == 0 {
		return "new " + elemType + "[0]"
	}
	return fmt.Sprintf("new %s[] { %s }", elemType, strings.Join(items, ", "))
}

// Storage writes a private field
func (Syntax) Storage(w *writer.Writer, typeName, name, init string) {
	if init == "" {
		w.WriteLinef("private %s %s;", typeName, name)
		return
	}
	w.WriteLinef("private %s %s = %s;", typeName, name, init)
}

// Accessor writes a documented property backed by the field
func (Syntax) Accessor(w *writer.Writer, typeName, publicName, storageName, doc string) {
	writeXMLDoc(w, "summary", "Gets or sets "+doc)
	w.WriteLinef("public %s %s", typeName, publicName)
	w.WriteBlock("{", "}", func() {
		w.WriteLinef("get { return %s; }", storageName)
		w.WriteLinef("set { %s = value; }", storageName)
	})
}

// writeXMLDoc writes an XML doc element. Multi-line text gets the tags on
// lines of their own so every line stays inside the /// comment.
func writeXMLDoc(w *writer.Writer, tag, text string) {
	if !strings.Contains(text, "\n") {
		w.WriteLinef("/// <%s> %s </%s>", tag, text, tag)
		return
	}
	w.WriteComment("///", "<"+tag+">")
	w.WriteDocComment("///", text)
	w.WriteComment("///", "</"+tag+">")
}

// MemberRef reads a field by name
func (Syntax) MemberRef(name string) string {
	return name
}

// ParseEach maps every element through the parser type's Parse method
func (Syntax) ParseEach(ref, parser string) string {
	return fmt.Sprintf("%s.Select(%s.Parse).ToArray()", ref, parser)
}

// WrapOne builds an implicitly typed one-element array
func (Syntax) WrapOne(ref, elemType string) string {
	return fmt.Sprintf("new[] { %s }", ref)
}

// NewArgs declares a local arguments object
func (Syntax) NewArgs(varName, argsType string) string {
	return fmt.Sprintf("var %s = new %s();", varName, argsType)
}

var _ emit.Syntax = Syntax{}

