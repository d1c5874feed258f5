// Package commands contains the CLI commands for the application
package commands

import (
	"context"

	"github.com/rs/zerolog"
)

type Flags struct {
	LogLevel string
}

type Controller struct {
	Flags  *Flags
	Logger zerolog.Logger
}

// Generate renders the configured catalog once
func (c *Controller) Generate(ctx context.Context, opts GenerateOptions) error {
	cmd := NewGenerateCommand(opts, c.Logger)
	return cmd.Execute(ctx)
}

// Watch renders the catalog and renders it again whenever a schema file changes
func (c *Controller) Watch(ctx context.Context, opts GenerateOptions) error {
	cmd := NewWatchCommand(opts, c.Logger)
	return cmd.Execute(ctx)
}

// Inspect dumps the members each component resolves to
func (c *Controller) Inspect(ctx context.Context, opts InspectOptions) error {
	cmd := NewInspectCommand(opts, c.Logger)
	return cmd.Execute(ctx)
}

// Languages lists the registered target languages
func (c *Controller) Languages(ctx context.Context) error {
	cmd := NewLanguagesCommand()
	return cmd.Execute(ctx)
}
