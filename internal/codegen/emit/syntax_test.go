package emit

import (
	"fmt"
	"strings"

	"github.com/okra-platform/argsgen/internal/codegen/writer"
	"github.com/okra-platform/argsgen/internal/schema"
)

// testSyntax is a minimal C#-like syntax for exercising the emitter
type testSyntax struct{}

var testTypes = TypeTable{
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

func (testSyntax) Types() TypeTable { return testTypes }

func (testSyntax) ScalarLiteral(t schema.Type, v any) (string, bool) {
	switch t.Kind {
	case schema.KindBool:
		return BoolLiteral(v)
	case schema.KindInt, schema.KindLong:
		return IntLiteral(v)
	case schema.KindFloat, schema.KindDouble:
		return FloatLiteral(v, 64)
	case schema.KindString:
		s, ok := v.(string)
		return QuoteString(s), ok
	case schema.KindEnum:
		s, ok := v.(string)
		if !ok || !IsIdentifier(s) {
			return "", false
		}
		return t.Name + "." + s, true
	}
	return "", false
}

func (testSyntax) ArrayLiteral(elemType string, items []string) string {
	return fmt.Sprintf("new %s[] { %s }", elemType, strings.Join(items, ", "))
}

func (testSyntax) Storage(w *writer.Writer, typeName, name, init string) {
	if init != "" {
		w.WriteLinef("private %s %s = %s;", typeName, name, init)
		return
	}
	w.WriteLinef("private %s %s;", typeName, name)
}

func (testSyntax) Accessor(w *writer.Writer, typeName, publicName, storageName, doc string) {
	w.WriteLinef("/// %s", doc)
	w.WriteBlock(fmt.Sprintf("public %s %s {", typeName, publicName), "}", func() {
		w.WriteLinef("get => %s;", storageName)
	})
}

func (testSyntax) MemberRef(name string) string { return name }

func (testSyntax) ParseEach(ref, parser string) string {
	return fmt.Sprintf("%s.Select(%s.Parse).ToArray()", ref, parser)
}

func (testSyntax) WrapOne(ref, elemType string) string {
	return fmt.Sprintf("new[] { %s }", ref)
}

func (testSyntax) NewArgs(varName, argsType string) string {
	return fmt.Sprintf("var %s = new %s();", varName, argsType)
}
