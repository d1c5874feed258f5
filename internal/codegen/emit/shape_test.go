package emit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okra-platform/argsgen/internal/schema"
)

func TestClassify(t *testing.T) {
	intType := schema.Scalar(schema.KindInt)
	column := schema.Named(schema.KindColumn, "Column")
	strings := schema.SequenceOf(schema.Scalar(schema.KindString))

	tests := []struct {
		name    string
		arg     schema.Argument
		want    Shape
		wantErr bool
	}{
		{
			name: "scalar",
			arg:  schema.Argument{LongName: "count", ItemType: intType},
			want: ShapeScalar,
		},
		{
			name: "list declared as single value",
			arg:  schema.Argument{LongName: "pair", ItemType: schema.SequenceOf(intType)},
			want: ShapeScalar,
		},
		{
			name: "column collection",
			arg:  schema.Argument{LongName: "cols", ItemType: column, IsCollection: true},
			want: ShapeColumnCollection,
		},
		{
			name: "column wins over string field",
			arg:  schema.Argument{LongName: "cols", ItemType: column, FieldType: strings, IsCollection: true},
			want: ShapeColumnCollection,
		},
		{
			name: "string collection",
			arg: schema.Argument{
				LongName: "names", ItemType: schema.Scalar(schema.KindString), FieldType: strings, IsCollection: true,
			},
			want: ShapeStringCollection,
		},
		{
			name: "generic collection",
			arg:  schema.Argument{LongName: "sizes", ItemType: intType, IsCollection: true},
			want: ShapeGenericCollection,
		},
		{
			name: "generic collection with declared sequence",
			arg: schema.Argument{
				LongName: "sizes", ItemType: intType, FieldType: schema.SequenceOf(intType), IsCollection: true,
			},
			want: ShapeGenericCollection,
		},
		{
			name: "subcomponent",
			arg:  schema.Argument{LongName: "sub", ItemType: schema.Named(schema.KindSubcomponent, "Sub")},
			want: ShapeSubcomponentGroup,
		},
		{
			name: "collection of subcomponents",
			arg: schema.Argument{
				LongName:     "subs",
				ItemType:     schema.Named(schema.KindSubcomponent, "Sub"),
				FieldType:    schema.SequenceOf(schema.Named(schema.KindSubcomponent, "Sub")),
				IsCollection: true,
			},
			wantErr: true,
		},
		{
			name: "unknown named type still classifies",
			arg:  schema.Argument{LongName: "m", ItemType: schema.Named(schema.KindInvalid, "Mystery")},
			want: ShapeScalar,
		},
		{
			name:    "collection without item type",
			arg:     schema.Argument{LongName: "broken", IsCollection: true},
			wantErr: true,
		},
		{
			name:    "collection with scalar field type",
			arg:     schema.Argument{LongName: "broken", ItemType: intType, FieldType: intType, IsCollection: true},
			wantErr: true,
		},
		{
			name:    "empty name",
			arg:     schema.Argument{ItemType: intType},
			wantErr: true,
		},
		{
			name:    "capitalized name",
			arg:     schema.Argument{LongName: "Count", ItemType: intType},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Classify(tt.arg)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrClassification)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestShape_IsCollection(t *testing.T) {
	assert.False(t, ShapeScalar.IsCollection())
	assert.True(t, ShapeColumnCollection.IsCollection())
	assert.True(t, ShapeStringCollection.IsCollection())
	assert.True(t, ShapeGenericCollection.IsCollection())
	assert.False(t, ShapeSubcomponentGroup.IsCollection())
	assert.Equal(t, "ShapeGenericCollection", ShapeGenericCollection.String())
}
