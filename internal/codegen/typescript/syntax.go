package typescript

import (
	"fmt"
	"strings"

	"github.com/okra-platform/argsgen/internal/codegen/emit"
	"github.com/okra-platform/argsgen/internal/codegen/writer"
	"github.com/okra-platform/argsgen/internal/schema"
)

// Types maps schema kinds to TypeScript types
var Types = emit.TypeTable{
	schema.KindBool:         "boolean",
	schema.KindInt:          "number",
	schema.KindLong:         "number",
	schema.KindFloat:        "number",
	schema.KindDouble:       "number",
	schema.KindString:       "string",
	schema.KindChar:         "string",
	schema.KindEnum:         "%s",
	schema.KindObject:       "%s",
	schema.KindColumn:       "%s",
	schema.KindSubcomponent: "%s",
	schema.KindSequence:     "%s[]",
}

// Syntax spells members and statements in TypeScript
type Syntax struct{}

// Types returns the TypeScript type table
func (Syntax) Types() emit.TypeTable {
	return Types
}

// ScalarLiteral renders a default value as a TypeScript literal
func (Syntax) ScalarLiteral(t schema.Type, v any) (string, bool) {
	switch t.Kind {
	case schema.KindBool:
		return emit.BoolLiteral(v)
	case schema.KindInt, schema.KindLong:
		return emit.IntLiteral(v)
	case schema.KindFloat:
		return emit.FloatLiteral(v, 32)
	case schema.KindDouble:
		return emit.FloatLiteral(v, 64)
	case schema.KindString, schema.KindChar:
		s, ok := v.(string)
		if !ok {
			return "", false
		}
		return emit.QuoteString(s), true
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

// ArrayLiteral renders an array literal
func (Syntax) ArrayLiteral(elemType string, items []string) string {
	return "[" + strings.Join(items, ", ") + "]"
}

// Storage writes a private class property
func (Syntax) Storage(w *writer.Writer, typeName, name, init string) {
	if init == "" {
		w.WriteLinef("private %s: %s;", name, typeName)
		return
	}
	w.WriteLinef("private %s: %s = %s;", name, typeName, init)
}

// Accessor writes a JSDoc line and a get/set pair over the private property
func (Syntax) Accessor(w *writer.Writer, typeName, publicName, storageName, doc string) {
	writeJSDoc(w, "Gets or sets "+doc)
	w.WriteBlock(fmt.Sprintf("get %s(): %s {", publicName, typeName), "}", func() {
		w.WriteLinef("return this.%s;", storageName)
	})
	w.WriteBlock(fmt.Sprintf("set %s(value: %s) {", publicName, typeName), "}", func() {
		w.WriteLinef("this.%s = value;", storageName)
	})
}

// writeJSDoc writes a JSDoc comment, one " * " line per line of text when
// the text spans several lines. "*/" inside the text is written as "*\/".
func writeJSDoc(w *writer.Writer, text string) {
	text = strings.ReplaceAll(text, "*/", "*\\/")
	if !strings.Contains(text, "\n") {
		w.WriteLinef("/** %s */", text)
		return
	}
	w.WriteLine("/**")
	w.WriteDocComment(" *", text)
	w.WriteLine(" */")
}

// MemberRef reads a property through this
func (Syntax) MemberRef(name string) string {
	return "this." + name
}

// ParseEach maps every element through the parser's static parse function
func (Syntax) ParseEach(ref, parser string) string {
	return fmt.Sprintf("%s.map(%s.parse)", ref, parser)
}

// WrapOne builds a one-element array
func (Syntax) WrapOne(ref, elemType string) string {
	return "[" + ref + "]"
}

// NewArgs declares a local arguments object
func (Syntax) NewArgs(varName, argsType string) string {
	return fmt.Sprintf("const %s = new %s();", varName, argsType)
}

var _ emit.Syntax = Syntax{}
