package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog"

	"github.com/okra-platform/argsgen/internal/codegen"
	"github.com/okra-platform/argsgen/internal/config"
	"github.com/okra-platform/argsgen/internal/schema"
)

// InspectOptions selects what the inspect command dumps
type InspectOptions struct {
	GenerateOptions
	// Component limits the dump to one component; empty dumps all of them
	Component string
	// Raw dumps the parsed catalog entries instead of the resolved members
	Raw bool
}

// InspectCommand prints the members each component resolves to for the
// configured language, without writing any code
type InspectCommand struct {
	opts InspectOptions
	deps GenerateDependencies
	out  io.Writer
}

// NewInspectCommand creates a new inspect command with default dependencies
func NewInspectCommand(opts InspectOptions, logger zerolog.Logger) *InspectCommand {
	return &InspectCommand{
		opts: opts,
		deps: NewGenerateCommand(opts.GenerateOptions, logger).deps,
		out:  os.Stdout,
	}
}

// WithDependencies allows injecting custom dependencies for testing
func (ic *InspectCommand) WithDependencies(deps GenerateDependencies, out io.Writer) *InspectCommand {
	ic.deps = deps
	ic.out = out
	return ic
}

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Execute runs the inspect command
func (ic *InspectCommand) Execute(ctx context.Context) error {
	gc := NewGenerateCommand(ic.opts.GenerateOptions, ic.deps.Logger).WithDependencies(ic.deps)

	cfg, root, err := gc.Config()
	if err != nil {
		return err
	}

	gen, err := gc.Generator(cfg)
	if err != nil {
		return err
	}

	resolver, ok := gen.(codegen.Resolver)
	if !ok && !ic.opts.Raw {
		return fmt.Errorf("language %s cannot report resolved members", cfg.Language)
	}

	catalog, err := schema.LoadFile(config.Resolve(root, cfg.Schema))
	if err != nil {
		return err
	}

	found := false
	for _, c := range catalog.Components {
		if err := ctx.Err(); err != nil {
			return err
		}
		if ic.opts.Component != "" && c.Name != ic.opts.Component {
			continue
		}
		found = true

		fmt.Fprintf(ic.out, "# %s (%s)\n", c.Name, c.ArgsType)
		if ic.opts.Raw {
			dumper.Fdump(ic.out, c)
			continue
		}

		members, err := resolver.Resolve(c)
		if err != nil {
			return err
		}
		dumper.Fdump(ic.out, members)
	}

	if ic.opts.Component != "" && !found {
		return fmt.Errorf("component %s not found in %s", ic.opts.Component, cfg.Schema)
	}

	return nil
}
