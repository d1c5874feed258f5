package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/okra-platform/argsgen/internal/config"
	"github.com/okra-platform/argsgen/internal/watch"
)

// WatchDependencies for the watch command
type WatchDependencies struct {
	Generate       GenerateDependencies
	SignalNotifier SignalNotifier
	Debounce       time.Duration
}

// WatchCommand regenerates the output whenever a watched schema file changes
type WatchCommand struct {
	opts GenerateOptions
	deps WatchDependencies
}

// NewWatchCommand creates a new watch command with default dependencies
func NewWatchCommand(opts GenerateOptions, logger zerolog.Logger) *WatchCommand {
	return &WatchCommand{
		opts: opts,
		deps: WatchDependencies{
			Generate:       NewGenerateCommand(opts, logger).deps,
			SignalNotifier: &defaultSignalNotifier{},
			Debounce:       watch.DefaultDebounce,
		},
	}
}

// WithDependencies allows injecting custom dependencies for testing
func (wc *WatchCommand) WithDependencies(deps WatchDependencies) *WatchCommand {
	wc.deps = deps
	return wc
}

// Execute runs the watch command until it is interrupted
func (wc *WatchCommand) Execute(ctx context.Context) error {
	gen := NewGenerateCommand(wc.opts, wc.deps.Generate.Logger).WithDependencies(wc.deps.Generate)
	out := wc.deps.Generate.Output
	logger := wc.deps.Generate.Logger

	cfg, root, err := gen.Config()
	if err != nil {
		return err
	}

	out.Printf("Watching %s for changes (%s)\n", root, cfg.Language)
	out.Printf("Schema: %s\n", config.Resolve(root, cfg.Schema))

	// Create a context that can be cancelled
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	wc.deps.SignalNotifier.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer wc.deps.SignalNotifier.Stop(sigChan)

	go func() {
		select {
		case <-sigChan:
			out.Println("\nStopping watch...")
			cancel()
		case <-ctx.Done():
		}
	}()

	regenerate := func() {
		result, err := gen.Generate(ctx, cfg, root)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			// Keep watching so the next save can fix the schema
			logger.Error().Err(err).Msg("generation failed")
			out.Printf("Generation failed: %v\n", err)
			return
		}
		out.Printf("Generated %d %s component(s) into %s\n", result.Components, result.Language, result.Path)
	}

	regenerate()

	watcher, err := watch.NewFileWatcher(root, cfg.Watch.Patterns, cfg.Watch.Exclude,
		func(changes []watch.Change) {
			for _, change := range changes {
				logger.Debug().Str("path", change.Path).Stringer("op", change.Op).Msg("file changed")
			}
			regenerate()
		},
		watch.WithDebounce(wc.deps.Debounce),
		watch.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.AddDirectory(root); err != nil {
		return fmt.Errorf("failed to watch %s: %w", root, err)
	}

	if err := watcher.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("watcher error: %w", err)
	}

	return nil
}
