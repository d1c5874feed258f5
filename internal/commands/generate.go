package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/okra-platform/argsgen/internal/codegen"
	"github.com/okra-platform/argsgen/internal/codegen/emit"
	"github.com/okra-platform/argsgen/internal/config"
	"github.com/okra-platform/argsgen/internal/schema"
)

// GenerateOptions are the command-line overrides of argsgen.json
type GenerateOptions struct {
	ConfigPath  string
	Schema      string
	Language    string
	Out         string
	Namespace   string
	Exclude     []string
	Collections string
}

// GenerateDependencies for the generate command
type GenerateDependencies struct {
	ConfigLoader ConfigLoader
	Registry     *codegen.Registry
	Output       Output
	Logger       zerolog.Logger
}

// GenerateCommand encapsulates the generate logic with injected dependencies
type GenerateCommand struct {
	opts GenerateOptions
	deps GenerateDependencies
}

// Result describes one successful generation
type Result struct {
	Language   string
	Components int
	Path       string
}

// NewGenerateCommand creates a new generate command with default dependencies
func NewGenerateCommand(opts GenerateOptions, logger zerolog.Logger) *GenerateCommand {
	return &GenerateCommand{
		opts: opts,
		deps: GenerateDependencies{
			ConfigLoader: &defaultConfigLoader{},
			Registry:     codegen.DefaultRegistry,
			Output:       &defaultOutput{},
			Logger:       logger,
		},
	}
}

// WithDependencies allows injecting custom dependencies for testing
func (gc *GenerateCommand) WithDependencies(deps GenerateDependencies) *GenerateCommand {
	gc.deps = deps
	return gc
}

// Execute runs the generate command
func (gc *GenerateCommand) Execute(ctx context.Context) error {
	cfg, root, err := gc.Config()
	if err != nil {
		return err
	}

	result, err := gc.Generate(ctx, cfg, root)
	if err != nil {
		return err
	}

	gc.deps.Output.Printf("Generated %d %s component(s) into %s\n", result.Components, result.Language, result.Path)
	return nil
}

// Config loads the project configuration and applies the command-line overrides.
// It returns the configuration and the directory its relative paths resolve against.
func (gc *GenerateCommand) Config() (*config.Config, string, error) {
	var (
		cfg  *config.Config
		root string
		err  error
	)

	if gc.opts.ConfigPath != "" {
		cfg, err = gc.deps.ConfigLoader.LoadConfigFromPath(gc.opts.ConfigPath)
		if err != nil {
			return nil, "", fmt.Errorf("failed to load project config: %w", err)
		}
		root = filepath.Dir(gc.opts.ConfigPath)
	} else {
		cfg, root, err = gc.deps.ConfigLoader.LoadConfig()
		switch {
		case errors.Is(err, config.ErrConfigNotFound):
			gc.deps.Logger.Debug().Msg("no config file found, using defaults")
			if root, err = os.Getwd(); err != nil {
				return nil, "", fmt.Errorf("failed to get current directory: %w", err)
			}
			cfg = config.Default()
		case err != nil:
			return nil, "", fmt.Errorf("failed to load project config: %w", err)
		}
	}

	if err := gc.applyOverrides(cfg); err != nil {
		return nil, "", err
	}

	return cfg, root, nil
}

func (gc *GenerateCommand) applyOverrides(cfg *config.Config) error {
	abs := func(path string) (string, error) {
		p, err := filepath.Abs(path)
		if err != nil {
			return "", fmt.Errorf("failed to resolve %s: %w", path, err)
		}
		return p, nil
	}

	if gc.opts.Schema != "" {
		p, err := abs(gc.opts.Schema)
		if err != nil {
			return err
		}
		cfg.Schema = p
	}
	if gc.opts.Out != "" {
		p, err := abs(gc.opts.Out)
		if err != nil {
			return err
		}
		cfg.Output = p
	}
	if gc.opts.Language != "" {
		cfg.Language = gc.opts.Language
	}
	if gc.opts.Namespace != "" {
		cfg.Namespace = gc.opts.Namespace
	}
	if gc.opts.Collections != "" {
		cfg.Collections = gc.opts.Collections
	}
	cfg.Exclude = append(cfg.Exclude, gc.opts.Exclude...)

	return nil
}

// Generator builds the code generator a configuration selects
func (gc *GenerateCommand) Generator(cfg *config.Config) (codegen.Generator, error) {
	policy, err := emit.ParseCollectionPolicy(cfg.Collections)
	if err != nil {
		return nil, err
	}

	logger := gc.deps.Logger
	return gc.deps.Registry.Get(cfg.Language, codegen.Options{
		Namespace:   cfg.Namespace,
		Exclude:     cfg.Exclude,
		Collections: policy,
		Logger:      &logger,
	})
}

// Generate loads the catalog, renders it and writes the output file. Nothing is
// written unless every component renders.
func (gc *GenerateCommand) Generate(ctx context.Context, cfg *config.Config, root string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	gen, err := gc.Generator(cfg)
	if err != nil {
		return nil, err
	}

	schemaPath := config.Resolve(root, cfg.Schema)
	gc.deps.Logger.Debug().Str("schema", schemaPath).Str("language", gen.Language()).Msg("loading catalog")

	catalog, err := schema.LoadFile(schemaPath)
	if err != nil {
		return nil, err
	}

	code, err := gen.Generate(catalog)
	if err != nil {
		return nil, err
	}

	outPath := cfg.OutputFile(root, gen.FileExtension())
	if err := writeFileAtomic(outPath, code); err != nil {
		return nil, err
	}

	gc.deps.Logger.Info().
		Str("language", gen.Language()).
		Int("components", len(catalog.Components)).
		Str("output", outPath).
		Msg("generated arguments")

	return &Result{
		Language:   gen.Language(),
		Components: len(catalog.Components),
		Path:       outPath,
	}, nil
}

// writeFileAtomic writes data next to path and renames it into place
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write generated code: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write generated code: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("failed to write generated code: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to write generated code: %w", err)
	}

	return nil
}
