package commands

import (
	"context"
	"sort"
	"strings"

	"github.com/okra-platform/argsgen/internal/codegen"
)

// LanguagesCommand lists the registered target languages with their aliases
type LanguagesCommand struct {
	registry *codegen.Registry
	output   Output
}

// NewLanguagesCommand creates a new languages command with default dependencies
func NewLanguagesCommand() *LanguagesCommand {
	return &LanguagesCommand{
		registry: codegen.DefaultRegistry,
		output:   &defaultOutput{},
	}
}

// Execute runs the languages command
func (lc *LanguagesCommand) Execute(ctx context.Context) error {
	aliases := lc.registry.Aliases()

	languages := make([]string, 0, len(aliases))
	for lang := range aliases {
		languages = append(languages, lang)
	}
	sort.Strings(languages)

	for _, lang := range languages {
		var others []string
		for _, name := range aliases[lang] {
			if name != lang {
				others = append(others, name)
			}
		}
		if len(others) == 0 {
			lc.output.Println(lang)
			continue
		}
		lc.output.Printf("%s (%s)\n", lang, strings.Join(others, ", "))
	}

	return nil
}
