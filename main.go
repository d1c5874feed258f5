package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/okra-platform/argsgen/internal/commands"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	short := commit
	if len(commit) > 7 {
		short = commit[:7]
	}

	return fmt.Sprintf("%s (%s) %s", version, short, date)
}

// generateFlags are shared by every command that renders a catalog
func generateFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "path to argsgen.json (default: searched from the current directory upwards)",
		},
		&cli.StringFlag{
			Name:    "schema",
			Aliases: []string{"s"},
			Usage:   "component catalog (.gql, .yaml or .json)",
		},
		&cli.StringFlag{
			Name:    "language",
			Aliases: []string{"l"},
			Usage:   "target language (see 'argsgen languages')",
		},
		&cli.StringFlag{
			Name:    "out",
			Aliases: []string{"o"},
			Usage:   "output directory or file",
		},
		&cli.StringFlag{
			Name:  "namespace",
			Usage: "namespace wrapping the generated classes",
		},
		&cli.StringSliceFlag{
			Name:  "exclude",
			Usage: "argument long name to leave out (repeatable)",
		},
		&cli.StringFlag{
			Name:  "collections",
			Usage: "generic collection policy (lift, copy)",
		},
	}
}

func generateOptions(c *cli.Command) commands.GenerateOptions {
	return commands.GenerateOptions{
		ConfigPath:  c.String("config"),
		Schema:      c.String("schema"),
		Language:    c.String("language"),
		Out:         c.String("out"),
		Namespace:   c.String("namespace"),
		Exclude:     c.StringSlice("exclude"),
		Collections: c.String("collections"),
	}
}

func main() {
	ctrl := &commands.Controller{
		Flags: &commands.Flags{},
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	app := &cli.Command{
		Name:    "argsgen",
		Usage:   `Generate typed argument wrappers for configurable components from a component catalog.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("ARGSGEN_LOG_LEVEL"),
				Value:       "warn",
				Destination: &ctrl.Flags.LogLevel,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			level, err := zerolog.ParseLevel(ctrl.Flags.LogLevel)
			if err != nil {
				return ctx, fmt.Errorf("failed to parse log level: %w", err)
			}

			log.Logger = log.Level(level)
			ctrl.Logger = log.Logger

			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Create an argsgen.json and a starter schema in the current directory",
				Action: func(ctx context.Context, c *cli.Command) error {
					return ctrl.Init(ctx)
				},
			},
			{
				Name:    "generate",
				Aliases: []string{"gen"},
				Usage:   "Generate argument wrappers for every component in the catalog",
				Flags:   generateFlags(),
				Action: func(ctx context.Context, c *cli.Command) error {
					return ctrl.Generate(ctx, generateOptions(c))
				},
			},
			{
				Name:  "watch",
				Usage: "Generate, then generate again whenever a schema file changes",
				Flags: generateFlags(),
				Action: func(ctx context.Context, c *cli.Command) error {
					return ctrl.Watch(ctx, generateOptions(c))
				},
			},
			{
				Name:  "inspect",
				Usage: "Print the members each component resolves to",
				Flags: append(generateFlags(),
					&cli.StringFlag{
						Name:  "component",
						Usage: "only inspect this component",
					},
					&cli.BoolFlag{
						Name:  "raw",
						Usage: "print the parsed catalog entries instead of resolved members",
					},
				),
				Action: func(ctx context.Context, c *cli.Command) error {
					return ctrl.Inspect(ctx, commands.InspectOptions{
						GenerateOptions: generateOptions(c),
						Component:       c.String("component"),
						Raw:             c.Bool("raw"),
					})
				},
			},
			{
				Name:  "languages",
				Usage: "List the supported target languages",
				Action: func(ctx context.Context, c *cli.Command) error {
					return ctrl.Languages(ctx)
				},
			},
		},
	}

	ctx := context.Background()

	if err := app.Run(ctx, os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run argsgen")
	}
}
