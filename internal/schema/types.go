package schema

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind is the closed set of argument type kinds
type Kind int

const (
	KindInvalid Kind = iota // unresolved or unknown type

	KindBool
	KindInt
	KindLong
	KindFloat
	KindDouble
	KindString
	KindChar
	KindEnum         // named enumeration
	KindObject       // named nested-object reference
	KindColumn       // named data column reference, parsed rather than cast
	KindSubcomponent // named nested component with its own argument schema
	KindSequence     // sequence of Elem

	// KindTotal is the number of kinds defined
	KindTotal = int(iota)
)

// IsNamed reports whether types of this kind carry a Name
func (k Kind) IsNamed() bool {
	switch k {
	case KindEnum, KindObject, KindColumn, KindSubcomponent:
		return true
	default:
		return false
	}
}

// builtinScalars maps textual scalar names to their kinds
var builtinScalars = map[string]Kind{
	"Boolean": KindBool,
	"Bool":    KindBool,
	"Int":     KindInt,
	"Long":    KindLong,
	"Float":   KindFloat,
	"Double":  KindDouble,
	"String":  KindString,
	"Char":    KindChar,
}

// scalarNames is the canonical textual name of each unnamed kind
var scalarNames = map[Kind]string{
	KindBool:   "Boolean",
	KindInt:    "Int",
	KindLong:   "Long",
	KindFloat:  "Float",
	KindDouble: "Double",
	KindString: "String",
	KindChar:   "Char",
}

// ColumnTypeName is the builtin column reference type
const ColumnTypeName = "Column"

// Type is a resolved argument type
type Type struct {
	Kind Kind
	// Name is set for named kinds, and for KindInvalid when the name could not be resolved
	Name string
	// Elem is set for KindSequence
	Elem *Type
}

// Scalar returns an unnamed scalar type
func Scalar(kind Kind) Type {
	return Type{Kind: kind}
}

// Named returns a named type of the given kind
func Named(kind Kind, name string) Type {
	return Type{Kind: kind, Name: name}
}

// SequenceOf returns a sequence of elem
func SequenceOf(elem Type) Type {
	return Type{Kind: KindSequence, Elem: &elem}
}

// IsZero reports whether the type is unset
func (t Type) IsZero() bool {
	return t.Kind == KindInvalid && t.Name == "" && t.Elem == nil
}

// IsSequence reports whether the type is a sequence
func (t Type) IsSequence() bool {
	return t.Kind == KindSequence
}

// IsSequenceOf reports whether the type is a sequence whose element has the given kind
func (t Type) IsSequenceOf(kind Kind) bool {
	return t.Kind == KindSequence && t.Elem != nil && t.Elem.Kind == kind
}

// Equal reports whether two types are structurally equal
func (t Type) Equal(o Type) bool {
	if t.Kind != o.Kind || t.Name != o.Name {
		return false
	}

	if t.Elem == nil || o.Elem == nil {
		return t.Elem == o.Elem
	}

	return t.Elem.Equal(*o.Elem)
}

// String returns the textual form of the type, e.g. "Int", "[String]", "LossKind"
func (t Type) String() string {
	switch {
	case t.Kind == KindSequence:
		if t.Elem == nil {
			return "[]"
		}
		return "[" + t.Elem.String() + "]"
	case t.Name != "":
		return t.Name
	default:
		if name, ok := scalarNames[t.Kind]; ok {
			return name
		}
		return t.Kind.String()
	}
}

// ParseType parses a textual type reference such as "Int", "[String!]" or "Column".
//
// Builtin scalars and the Column type are resolved immediately. Any other name is
// returned as KindInvalid carrying the name so a catalog can resolve it later.
func ParseType(s string) (Type, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "!")
	if s == "" {
		return Type{}, fmt.Errorf("%w: empty type", ErrInvalidTypeRef)
	}

	if strings.HasPrefix(s, "[") {
		if !strings.HasSuffix(s, "]") {
			return Type{}, fmt.Errorf("%w: unbalanced list in %q", ErrInvalidTypeRef, s)
		}

		elem, err := ParseType(s[1 : len(s)-1])
		if err != nil {
			return Type{}, err
		}

		return SequenceOf(elem), nil
	}

	if strings.ContainsAny(s, "[] \t") {
		return Type{}, fmt.Errorf("%w: %q", ErrInvalidTypeRef, s)
	}

	if kind, ok := builtinScalars[s]; ok {
		return Scalar(kind), nil
	}

	if s == ColumnTypeName {
		return Named(KindColumn, s), nil
	}

	return Named(KindInvalid, s), nil
}
