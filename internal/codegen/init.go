package codegen

import (
	"github.com/okra-platform/argsgen/internal/codegen/csharp"
	"github.com/okra-platform/argsgen/internal/codegen/typescript"
)

// DefaultRegistry is the global registry instance with pre-registered generators
var DefaultRegistry = NewRegistry()

func init() {
	csharpFactory := func(opts Options) Generator {
		return csharp.NewGenerator(opts.Namespace, opts.EmitOptions()...)
	}
	typescriptFactory := func(opts Options) Generator {
		return typescript.NewGenerator(opts.Namespace, opts.EmitOptions()...)
	}

	// Register C# generator
	DefaultRegistry.Register("csharp", csharpFactory)
	DefaultRegistry.Register("cs", csharpFactory)

	// Register TypeScript generator
	DefaultRegistry.Register("typescript", typescriptFactory)

	// Register ts as an alias for typescript
	DefaultRegistry.Register("ts", typescriptFactory)
}
