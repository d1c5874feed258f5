package schema

import (
	"fmt"
	"math"
	"strings"
)

// Document is the unresolved catalog form shared by every input format
type Document struct {
	Enums         []EnumDef      `json:"enums,omitempty" yaml:"enums,omitempty"`
	Objects       []string       `json:"objects,omitempty" yaml:"objects,omitempty"`
	Subcomponents []ComponentDef `json:"subcomponents,omitempty" yaml:"subcomponents,omitempty"`
	Components    []ComponentDef `json:"components" yaml:"components"`
}

// EnumDef declares an enum type
type EnumDef struct {
	Name   string   `json:"name" yaml:"name"`
	Values []string `json:"values,omitempty" yaml:"values,omitempty"`
}

// ComponentDef declares a component or subcomponent
type ComponentDef struct {
	Name       string        `json:"name" yaml:"name"`
	Args       string        `json:"args,omitempty" yaml:"args,omitempty"`
	EntryPoint string        `json:"entrypoint,omitempty" yaml:"entrypoint,omitempty"`
	Help       string        `json:"help,omitempty" yaml:"help,omitempty"`
	Arguments  []ArgumentDef `json:"arguments" yaml:"arguments"`
}

// ArgumentDef declares one argument using textual type references
type ArgumentDef struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
	// Field overrides the declared field type, e.g. "[String]" for string-backed columns
	Field string `json:"field,omitempty" yaml:"field,omitempty"`
	// Collection defaults to whether Type is a list
	Collection *bool  `json:"collection,omitempty" yaml:"collection,omitempty"`
	Hidden     bool   `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	Default    any    `json:"default,omitempty" yaml:"default,omitempty"`
	Help       string `json:"help,omitempty" yaml:"help,omitempty"`
}

// DefaultArgsType returns the arguments type name used when a component does not declare one
func DefaultArgsType(component string) string {
	return component + ".Arguments"
}

// Build resolves a document into a catalog: type names are bound to their kinds,
// subcomponent arguments are expanded, and default values are normalized
func Build(doc *Document) (*Catalog, error) {
	r := &resolver{
		kinds: make(map[string]Kind),
		subs:  make(map[string]*ComponentDef),
	}

	catalog := &Catalog{
		Components:    []Component{},
		Subcomponents: []Component{},
		Enums:         []EnumType{},
		Objects:       []string{},
	}

	for _, e := range doc.Enums {
		if err := r.declare(e.Name, KindEnum); err != nil {
			return nil, err
		}
		catalog.Enums = append(catalog.Enums, EnumType{Name: e.Name, Values: e.Values})
	}

	for _, o := range doc.Objects {
		if err := r.declare(o, KindObject); err != nil {
			return nil, err
		}
		catalog.Objects = append(catalog.Objects, o)
	}

	for i := range doc.Subcomponents {
		def := &doc.Subcomponents[i]
		if err := r.declare(def.Name, KindSubcomponent); err != nil {
			return nil, err
		}
		r.subs[def.Name] = def
	}

	for _, def := range doc.Subcomponents {
		comp, err := r.component(def, []string{def.Name})
		if err != nil {
			return nil, err
		}
		catalog.Subcomponents = append(catalog.Subcomponents, comp)
	}

	seen := make(map[string]bool)
	for _, def := range doc.Components {
		if def.Name == "" {
			return nil, fmt.Errorf("%w: component #%d", ErrMissingName, len(catalog.Components)+1)
		}
		if seen[def.Name] {
			return nil, fmt.Errorf("%w: component %s", ErrDuplicateName, def.Name)
		}
		seen[def.Name] = true

		comp, err := r.component(def, nil)
		if err != nil {
			return nil, err
		}
		catalog.Components = append(catalog.Components, comp)
	}

	return catalog, nil
}

type resolver struct {
	kinds map[string]Kind
	subs  map[string]*ComponentDef
}

func (r *resolver) declare(name string, kind Kind) error {
	if name == "" {
		return fmt.Errorf("%w: %s declaration", ErrMissingName, strings.TrimPrefix(kind.String(), "Kind"))
	}

	_, builtin := builtinScalars[name]
	if _, exists := r.kinds[name]; exists || builtin || name == ColumnTypeName {
		return fmt.Errorf("%w: %s", ErrDuplicateName, name)
	}

	r.kinds[name] = kind
	return nil
}

func (r *resolver) component(def ComponentDef, stack []string) (Component, error) {
	args, err := r.arguments(def.Name, def.Arguments, stack)
	if err != nil {
		return Component{}, err
	}

	argsType := def.Args
	if argsType == "" {
		argsType = DefaultArgsType(def.Name)
	}

	return Component{
		Name:       def.Name,
		ArgsType:   argsType,
		EntryPoint: def.EntryPoint,
		HelpText:   def.Help,
		Arguments:  args,
	}, nil
}

func (r *resolver) arguments(owner string, defs []ArgumentDef, stack []string) ([]Argument, error) {
	args := make([]Argument, 0, len(defs))

	for _, def := range defs {
		arg, err := r.argument(owner, def)
		if err != nil {
			return nil, err
		}

		if arg.IsSubcomponent() {
			name := arg.ItemType.Name
			for _, s := range stack {
				if s == name {
					path := append(stack[:len(stack):len(stack)], name)
					return nil, fmt.Errorf("%w: %s", ErrSchemaCycle, strings.Join(path, " -> "))
				}
			}

			sub := r.subs[name]
			nested, err := r.arguments(name, sub.Arguments, append(stack[:len(stack):len(stack)], name))
			if err != nil {
				return nil, err
			}

			arg.Nested = nested
			arg.NestedArgsType = sub.Args
			if arg.NestedArgsType == "" {
				arg.NestedArgsType = DefaultArgsType(name)
			}
		}

		args = append(args, arg)
	}

	return args, nil
}

func (r *resolver) argument(owner string, def ArgumentDef) (Argument, error) {
	if def.Name == "" {
		return Argument{}, fmt.Errorf("%w: argument of %s", ErrMissingName, owner)
	}

	declared, err := ParseType(def.Type)
	if err != nil {
		return Argument{}, fmt.Errorf("%s.%s: %w", owner, def.Name, err)
	}
	declared = r.resolve(declared)

	arg := Argument{
		LongName:     def.Name,
		IsCollection: declared.IsSequence(),
		IsHidden:     def.Hidden,
		Default:      normalizeDefault(def.Default),
		HelpText:     def.Help,
	}
	if def.Collection != nil {
		arg.IsCollection = *def.Collection
	}

	if arg.IsCollection && declared.IsSequence() {
		arg.ItemType = *declared.Elem
		arg.FieldType = declared
	} else {
		arg.ItemType = declared
	}

	if def.Field != "" {
		field, err := ParseType(def.Field)
		if err != nil {
			return Argument{}, fmt.Errorf("%s.%s field: %w", owner, def.Name, err)
		}
		arg.FieldType = r.resolve(field)
	}

	return arg, nil
}

// resolve binds declared names; unknown names stay KindInvalid
func (r *resolver) resolve(t Type) Type {
	if t.Kind == KindSequence && t.Elem != nil {
		return SequenceOf(r.resolve(*t.Elem))
	}

	if t.Kind == KindInvalid && t.Name != "" {
		if kind, ok := r.kinds[t.Name]; ok {
			return Named(kind, t.Name)
		}
	}

	return t
}

// normalizeDefault folds the numeric types produced by the different decoders
// into int64 for integral values and float64 otherwise
func normalizeDefault(v any) any {
	switch x := v.(type) {
	case int:
		return int64(x)
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case uint:
		return normalizeUint(uint64(x))
	case uint8:
		return int64(x)
	case uint16:
		return int64(x)
	case uint32:
		return int64(x)
	case uint64:
		return normalizeUint(x)
	case float32:
		return normalizeFloat(float64(x))
	case float64:
		return normalizeFloat(x)
	case []any:
		out := make([]any, len(x))
		for i := range x {
			out[i] = normalizeDefault(x[i])
		}
		return out
	default:
		return v
	}
}

// normalizeUint keeps values above MaxInt64 as uint64 so they have no literal form
func normalizeUint(u uint64) any {
	if u > math.MaxInt64 {
		return u
	}
	return int64(u)
}

func normalizeFloat(f float64) any {
	if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		return int64(f)
	}
	return f
}
