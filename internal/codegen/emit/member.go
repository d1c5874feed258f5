package emit

import "github.com/okra-platform/argsgen/internal/schema"

// Member is one resolved argument, ready to be rendered
type Member struct {
	Arg   schema.Argument
	Shape Shape

	// Name is the rendered storage name, LongName followed by Suffix
	Name string
	// Suffix identifies the arguments object that owns the argument
	Suffix string
	// Type is the rendered member type; for groups it is the nested arguments type
	Type string
	// ElemType is the rendered item type of collections, used as the parser of columns
	ElemType string
	// Default is the rendered initializer, empty when absent
	Default string
	IsBool  bool
	Help    string
	// Lifted marks a generic collection stored as a single item value
	Lifted bool

	Nested       []Member
	NestedSuffix string
}

// PublicName is the accessor name of the member
func (m Member) PublicName() string {
	return Capitalize(m.Name)
}

// EmitFunc receives each member of a walk
type EmitFunc func(m Member)

// Visit calls emit for every member in declaration order, descending into
// groups right after the group itself
func Visit(members []Member, emit EmitFunc) {
	for _, m := range members {
		emit(m)
		if m.Shape == ShapeSubcomponentGroup {
			Visit(m.Nested, emit)
		}
	}
}
