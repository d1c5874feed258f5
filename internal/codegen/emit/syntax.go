package emit

import (
	"github.com/okra-platform/argsgen/internal/codegen/writer"
	"github.com/okra-platform/argsgen/internal/schema"
)

// Syntax is the concrete declaration syntax of one output language. The
// emitter decides what to write for each shape; a Syntax only decides how
// the pieces are spelled.
type Syntax interface {
	// Types is the closed mapping from schema kinds to type names
	Types() TypeTable

	// ScalarLiteral renders a non-sequence default value
	ScalarLiteral(t schema.Type, v any) (string, bool)

	// ArrayLiteral renders already-rendered items as an array of elemType
	ArrayLiteral(elemType string, items []string) string

	// Storage writes a private member declaration; init is empty when absent
	Storage(w *writer.Writer, typeName, name, init string)

	// Accessor writes a documented public accessor named publicName that
	// reads and writes storageName
	Accessor(w *writer.Writer, typeName, publicName, storageName, doc string)

	// MemberRef is an expression reading the storage member
	MemberRef(name string) string

	// ParseEach parses every element of ref with the parser type
	ParseEach(ref, parser string) string

	// WrapOne builds a one-element sequence holding ref
	WrapOne(ref, elemType string) string

	// NewArgs declares varName as a fresh instance of argsType
	NewArgs(varName, argsType string) string
}
