package emit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/okra-platform/argsgen/internal/schema"
)

func TestLiteral(t *testing.T) {
	s := testSyntax{}
	ints := schema.SequenceOf(schema.Scalar(schema.KindInt))

	tests := []struct {
		name string
		typ  schema.Type
		v    any
		want string
		ok   bool
	}{
		{"int", schema.Scalar(schema.KindInt), int64(5), "5", true},
		{"bool", schema.Scalar(schema.KindBool), false, "false", true},
		{"double fraction", schema.Scalar(schema.KindDouble), 0.1, "0.1", true},
		{"double integral", schema.Scalar(schema.KindDouble), int64(2), "2", true},
		{"string", schema.Scalar(schema.KindString), `say "hi"`, `"say \"hi\""`, true},
		{"enum", schema.Named(schema.KindEnum, "LossKind"), "Hinge", "LossKind.Hinge", true},
		{"enum not identifier", schema.Named(schema.KindEnum, "LossKind"), "not valid", "", false},
		{"list", ints, []any{int64(1), int64(2)}, "new int[] { 1, 2 }", true},
		{"single value as list", ints, int64(3), "new int[] { 3 }", true},
		{"list with bad item", ints, []any{int64(1), "x"}, "", false},
		{"wrong go type", schema.Scalar(schema.KindInt), "five", "", false},
		{"object", schema.Named(schema.KindObject, "Point"), "p", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Literal(s, tt.typ, tt.v)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuoteString(t *testing.T) {
	assert.Equal(t, `"plain"`, QuoteString("plain"))
	assert.Equal(t, `"a\nb"`, QuoteString("a\nb"))
	assert.Equal(t, `"back\\slash"`, QuoteString(`back\slash`))
	assert.Equal(t, `"<b>&"`, QuoteString("<b>&"))
}

func TestIsIdentifier(t *testing.T) {
	assert.True(t, IsIdentifier("Hinge"))
	assert.True(t, IsIdentifier("_x1"))
	assert.False(t, IsIdentifier(""))
	assert.False(t, IsIdentifier("1x"))
	assert.False(t, IsIdentifier("a-b"))
	assert.False(t, IsIdentifier("a b"))
}
