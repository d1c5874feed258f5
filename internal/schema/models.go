package schema

// Catalog is the root of a loaded component catalog
type Catalog struct {
	Components    []Component
	Subcomponents []Component
	Enums         []EnumType
	Objects       []string
}

// Component describes one configurable component and its ordered argument schema
type Component struct {
	Name string
	// ArgsType is the name of the component's real arguments type
	ArgsType   string
	EntryPoint string
	HelpText   string
	Arguments  []Argument
}

// EnumType represents an enum definition referenced by arguments
type EnumType struct {
	Name   string
	Values []string
}

// Argument is the schema of one configurable argument.
//
// Arguments are immutable values once a catalog is built; generators only read them.
type Argument struct {
	// LongName is the stable identifier of the argument within its component
	LongName string
	// ItemType is the element type of a collection, otherwise the scalar type
	ItemType Type
	// FieldType is the declared type before collection/column resolution.
	// The zero value means "as declared": [ItemType] for collections, ItemType otherwise.
	FieldType    Type
	IsCollection bool
	IsHidden     bool
	// Default is nil when the argument has no default value
	Default  any
	HelpText string

	// Nested holds the resolved arguments of a subcomponent argument
	Nested []Argument
	// NestedArgsType is the arguments type of the referenced subcomponent
	NestedArgsType string
}

// IsSubcomponent reports whether the argument refers to a nested subcomponent
func (a Argument) IsSubcomponent() bool {
	return a.ItemType.Kind == KindSubcomponent
}

// DeclaredType returns FieldType, or the type implied by ItemType and IsCollection when unset
func (a Argument) DeclaredType() Type {
	if !a.FieldType.IsZero() {
		return a.FieldType
	}

	if a.IsCollection {
		return SequenceOf(a.ItemType)
	}

	return a.ItemType
}

// Component looks up a top-level component by name
func (c *Catalog) Component(name string) (*Component, bool) {
	for i := range c.Components {
		if c.Components[i].Name == name {
			return &c.Components[i], true
		}
	}

	return nil, false
}
