package emit

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/okra-platform/argsgen/internal/schema"
)

//go:generate go tool stringer -type=Shape -output=shape_string.go

// Shape is the output-facing classification of one argument
type Shape int

const (
	ShapeScalar            Shape = iota
	ShapeColumnCollection        // column references, rendered as a sequence of strings
	ShapeStringCollection        // declared as a string sequence, assigned as is
	ShapeGenericCollection       // any other collection
	ShapeSubcomponentGroup       // nested argument schema
)

// IsCollection reports whether the shape is one of the collection shapes
func (s Shape) IsCollection() bool {
	switch s {
	case ShapeColumnCollection, ShapeStringCollection, ShapeGenericCollection:
		return true
	default:
		return false
	}
}

// Classify places an argument into exactly one Shape. It depends only on the
// argument's name, collection flag, item type and field type.
func Classify(arg schema.Argument) (Shape, error) {
	if err := checkLongName(arg.LongName); err != nil {
		return 0, &ClassificationError{Argument: arg.LongName, Reason: err.Error()}
	}

	if arg.ItemType.Kind == schema.KindSubcomponent {
		if arg.IsCollection {
			return 0, &ClassificationError{
				Argument: arg.LongName,
				Reason:   fmt.Sprintf("collections of subcomponent %s are not supported", arg.ItemType),
			}
		}
		return ShapeSubcomponentGroup, nil
	}

	if arg.ItemType.IsZero() {
		return 0, &ClassificationError{Argument: arg.LongName, Reason: "no resolvable item type"}
	}

	if !arg.IsCollection {
		return ShapeScalar, nil
	}

	if arg.ItemType.Kind == schema.KindColumn {
		return ShapeColumnCollection, nil
	}

	if arg.FieldType.IsSequenceOf(schema.KindString) {
		return ShapeStringCollection, nil
	}

	if !arg.FieldType.IsZero() && !arg.FieldType.IsSequence() {
		return 0, &ClassificationError{
			Argument: arg.LongName,
			Reason:   fmt.Sprintf("collection declared with non-sequence field type %s", arg.FieldType),
		}
	}

	return ShapeGenericCollection, nil
}

// checkLongName requires a leading lower-case letter so the capitalized
// accessor name always differs from the storage name
func checkLongName(name string) error {
	if name == "" {
		return errors.New("empty name")
	}

	r, _ := utf8.DecodeRuneInString(name)
	if !unicode.IsLower(r) {
		return fmt.Errorf("name %q must start with a lower-case letter", name)
	}

	return nil
}
