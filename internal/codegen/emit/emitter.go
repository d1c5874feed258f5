package emit

import (
	"errors"

	"github.com/okra-platform/argsgen/internal/codegen/writer"
	"github.com/okra-platform/argsgen/internal/schema"
)

// ErrNoComponents is returned when a catalog has nothing to generate
var ErrNoComponents = errors.New("catalog has no components")

// Emitter renders resolved members as storage members, accessors and
// assignment statements
type Emitter struct {
	syntax Syntax
	walker *Walker
}

// NewEmitter creates an emitter and the walker it resolves with
func NewEmitter(syntax Syntax, opts ...Option) *Emitter {
	return &Emitter{
		syntax: syntax,
		walker: NewWalker(syntax, opts...),
	}
}

// Resolve resolves the top-level arguments of a component
func (e *Emitter) Resolve(c schema.Component) ([]Member, error) {
	return e.walker.Resolve(c.Name, c.Arguments, "")
}

// Storage writes the private member of m followed by a blank line
func (e *Emitter) Storage(w *writer.Writer, m Member) {
	if m.Shape == ShapeSubcomponentGroup {
		return
	}

	e.syntax.Storage(w, m.Type, m.Name, m.Default)
	w.BlankLine()
}

// Accessor writes the documented public accessor of m followed by a blank line
func (e *Emitter) Accessor(w *writer.Writer, m Member) {
	if m.Shape == ShapeSubcomponentGroup {
		return
	}

	e.syntax.Accessor(w, m.Type, m.PublicName(), m.Name, DocText(m))
	w.BlankLine()
}

// Assignment writes the statement copying m into its arguments object.
// Groups declare their nested arguments object and link it to the parent.
func (e *Emitter) Assignment(w *writer.Writer, m Member) {
	if e.walker.Excluded(m.Arg.LongName) {
		return
	}

	ref := e.syntax.MemberRef(m.Name)

	var value string
	switch m.Shape {
	case ShapeSubcomponentGroup:
		value = ArgsVar(m.NestedSuffix)
		w.WriteLine(e.syntax.NewArgs(value, m.Type))
	case ShapeColumnCollection:
		value = e.syntax.ParseEach(ref, m.ElemType)
	case ShapeGenericCollection:
		value = ref
		if m.Lifted {
			value = e.syntax.WrapOne(ref, m.ElemType)
		}
	default:
		value = ref
	}

	w.WriteLinef("%s.%s = %s;", ArgsVar(m.Suffix), m.Arg.LongName, value)
}

// StorageBlock writes the storage members of a resolved component
func (e *Emitter) StorageBlock(w *writer.Writer, members []Member) {
	Visit(members, func(m Member) { e.Storage(w, m) })
}

// AccessorBlock writes the accessors of a resolved component
func (e *Emitter) AccessorBlock(w *writer.Writer, members []Member) {
	Visit(members, func(m Member) { e.Accessor(w, m) })
}

// AssignmentBlock writes the assignment statements of a resolved component
func (e *Emitter) AssignmentBlock(w *writer.Writer, members []Member) {
	Visit(members, func(m Member) { e.Assignment(w, m) })
}
