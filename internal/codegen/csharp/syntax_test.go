package csharp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/okra-platform/argsgen/internal/codegen/writer"
	"github.com/okra-platform/argsgen/internal/schema"
)

func TestTypes_Complete(t *testing.T) {
	// Test: every kind except KindInvalid has a C# type
	assert.Empty(t, Types.Missing())
}

func TestSyntax_ScalarLiteral(t *testing.T) {
	tests := []struct {
		name string
		typ  schema.Type
		v    any
		want string
		ok   bool
	}{
		{"bool", schema.Scalar(schema.KindBool), true, "true", true},
		{"int", schema.Scalar(schema.KindInt), int64(-3), "-3", true},
		{"int max", schema.Scalar(schema.KindInt), int64(2147483647), "2147483647", true},
		{"int min", schema.Scalar(schema.KindInt), int64(-2147483648), "-2147483648", true},
		{"int overflow", schema.Scalar(schema.KindInt), int64(3000000000), "", false},
		{"int underflow", schema.Scalar(schema.KindInt), int64(-2147483649), "", false},
		{"long keeps wide values", schema.Scalar(schema.KindLong), int64(3000000000), "3000000000L", true},
		{"long", schema.Scalar(schema.KindLong), int64(9000000000), "9000000000L", true},
		{"float", schema.Scalar(schema.KindFloat), 0.1, "0.1f", true},
		{"float from int", schema.Scalar(schema.KindFloat), int64(2), "2f", true},
		{"double", schema.Scalar(schema.KindDouble), 1e-7, "1e-07", true},
		{"double from int", schema.Scalar(schema.KindDouble), int64(2), "2.0", true},
		{"string", schema.Scalar(schema.KindString), "a\tb", `"a\tb"`, true},
		{"char", schema.Scalar(schema.KindChar), "x", "'x'", true},
		{"char quote", schema.Scalar(schema.KindChar), "'", `'\''`, true},
		{"char double quote", schema.Scalar(schema.KindChar), `"`, `'"'`, true},
		{"char too long", schema.Scalar(schema.KindChar), "xy", "", false},
		{"enum", schema.Named(schema.KindEnum, "LossKind"), "Log", "LossKind.Log", true},
		{"object", schema.Named(schema.KindObject, "Point"), "p", "", false},
		{"int from string", schema.Scalar(schema.KindInt), "5", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Syntax{}.ScalarLiteral(tt.typ, tt.v)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSyntax_ArrayLiteral(t *testing.T) {
	assert.Equal(t, "new string[0]", Syntax{}.ArrayLiteral("string", nil))
	assert.Equal(t, `new string[] { "a", "b" }`, Syntax{}.ArrayLiteral("string", []string{`"a"`, `"b"`}))
}

func TestSyntax_Members(t *testing.T) {
	w := writer.NewWriter(indent)
	s := Syntax{}

	s.Storage(w, "int", "count", "5")
	s.Storage(w, "string[]", "cols", "")
	s.Accessor(w, "int", "Count", "count", "Number of rows")

	expected := "private int count = 5;\n" +
		"private string[] cols;\n" +
		"/// <summary> Gets or sets Number of rows </summary>\n" +
		"public int Count\n" +
		"{\n" +
		"    get { return count; }\n" +
		"    set { count = value; }\n" +
		"}\n"
	assert.Equal(t, expected, w.String())

	assert.Equal(t, "cols.Select(Column.Parse).ToArray()", s.ParseEach("cols", "Column"))
	assert.Equal(t, "new[] { weights }", s.WrapOne("weights", "double"))
	assert.Equal(t, "var argsSub = new Sub.Arguments();", s.NewArgs("argsSub", "Sub.Arguments"))
	assert.Equal(t, "count", s.MemberRef("count"))
}

func TestSyntax_AccessorMultilineDoc(t *testing.T) {
	// Test: every line of a multi-line doc stays inside the /// comment
	w := writer.NewWriter("    ")
	w.Indent()

	Syntax{}.Accessor(w, "int", "N", "n", "First line\n  second line\r\n\nlast")

	expected := "    /// <summary>\n" +
		"    /// Gets or sets First line\n" +
		"    /// second line\n" +
		"    ///\n" +
		"    /// last\n" +
		"    /// </summary>\n" +
		"    public int N\n" +
		"    {\n" +
		"        get { return n; }\n" +
		"        set { n = value; }\n" +
		"    }\n"
	assert.Equal(t, expected, w.String())
}
