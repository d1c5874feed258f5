package codegen

import (
	"github.com/rs/zerolog"

	"github.com/okra-platform/argsgen/internal/codegen/emit"
	"github.com/okra-platform/argsgen/internal/schema"
)

// Generator is the interface that all language-specific code generators must implement
type Generator interface {
	// Generate renders every component of the catalog into one source file
	Generate(catalog *schema.Catalog) ([]byte, error)

	// Language returns the name of the target language (e.g., "csharp", "typescript")
	Language() string

	// FileExtension returns the file extension for generated files (e.g., ".cs", ".ts")
	FileExtension() string
}

// Resolver is implemented by generators that can report the members they
// render for a component without writing any code
type Resolver interface {
	Resolve(c schema.Component) ([]emit.Member, error)
}

// Options contains common options for code generation
type Options struct {
	// Namespace wraps the generated types (C# namespace, TypeScript namespace)
	Namespace string

	// Exclude lists argument long names left out of every generated member
	Exclude []string

	// Collections selects how generic collection arguments round-trip
	Collections emit.CollectionPolicy

	// Logger receives warnings about lifted collections and skipped arguments
	Logger *zerolog.Logger
}

// EmitOptions converts the options into emitter options
func (o Options) EmitOptions() []emit.Option {
	opts := []emit.Option{
		emit.WithExclusions(o.Exclude...),
		emit.WithCollectionPolicy(o.Collections),
	}
	if o.Logger != nil {
		opts = append(opts, emit.WithLogger(*o.Logger))
	}
	return opts
}
