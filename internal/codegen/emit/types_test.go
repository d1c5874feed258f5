package emit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/okra-platform/argsgen/internal/schema"
)

func TestTypeTable_Map(t *testing.T) {
	tests := []struct {
		name string
		in   schema.Type
		want string
		ok   bool
	}{
		{"scalar", schema.Scalar(schema.KindInt), "int", true},
		{"enum", schema.Named(schema.KindEnum, "LossKind"), "LossKind", true},
		{"column", schema.Named(schema.KindColumn, "Column"), "Column", true},
		{"sequence", schema.SequenceOf(schema.Scalar(schema.KindString)), "string[]", true},
		{"nested sequence", schema.SequenceOf(schema.SequenceOf(schema.Scalar(schema.KindDouble))), "double[][]", true},
		{"unknown name", schema.Named(schema.KindInvalid, "Mystery"), "", false},
		{"zero", schema.Type{}, "", false},
		{"named kind without name", schema.Scalar(schema.KindEnum), "", false},
		{"sequence without elem", schema.Type{Kind: schema.KindSequence}, "", false},
		{"sequence of unknown", schema.SequenceOf(schema.Named(schema.KindInvalid, "X")), "", false},
		{"out of range", schema.Type{Kind: schema.Kind(schema.KindTotal)}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := testTypes.Map(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTypeTable_Stable(t *testing.T) {
	// Test: mapping does not depend on call order
	in := schema.SequenceOf(schema.Named(schema.KindEnum, "Mode"))
	first, _ := testTypes.Map(in)
	for i := 0; i < 10; i++ {
		got, _ := testTypes.Map(in)
		assert.Equal(t, first, got)
	}
}

func TestTypeTable_Missing(t *testing.T) {
	assert.Empty(t, testTypes.Missing())

	partial := testTypes
	partial[schema.KindChar] = ""
	assert.Equal(t, []schema.Kind{schema.KindChar}, partial.Missing())

	// Test: an entry removed from the table stops mapping
	_, ok := partial.Map(schema.Scalar(schema.KindChar))
	assert.False(t, ok)
}
