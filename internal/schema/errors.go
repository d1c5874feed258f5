package schema

import "errors"

var (
	// Type reference errors
	ErrInvalidTypeRef = errors.New("invalid type reference")

	// Catalog resolution errors
	ErrDuplicateName    = errors.New("duplicate type name")
	ErrSchemaCycle      = errors.New("subcomponent reference cycle")
	ErrMissingName      = errors.New("definition is missing a name")
	ErrUnsupportedInput = errors.New("unsupported catalog format")
)
