package codegen

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownLanguage is returned for a language nobody registered
var ErrUnknownLanguage = errors.New("unsupported language")

// Factory builds a generator from options
type Factory func(opts Options) Generator

// Registry manages available code generators
type Registry struct {
	mu         sync.RWMutex
	generators map[string]Factory
}

// NewRegistry creates a new generator registry
func NewRegistry() *Registry {
	return &Registry{
		generators: make(map[string]Factory),
	}
}

// Register adds a new generator factory to the registry
func (r *Registry) Register(language string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.generators[language] = factory
}

// Get returns a generator for the specified language
func (r *Registry) Get(language string, opts Options) (Generator, error) {
	r.mu.RLock()
	factory, exists := r.generators[language]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLanguage, language)
	}

	return factory(opts), nil
}

// Languages returns the registered names, aliases included, in sorted order
func (r *Registry) Languages() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	languages := make([]string, 0, len(r.generators))
	for lang := range r.generators {
		languages = append(languages, lang)
	}
	sort.Strings(languages)
	return languages
}

// Aliases groups the registered names by the language their generator reports
func (r *Registry) Aliases() map[string][]string {
	aliases := make(map[string][]string)
	for _, name := range r.Languages() {
		gen, err := r.Get(name, Options{})
		if err != nil {
			continue
		}
		aliases[gen.Language()] = append(aliases[gen.Language()], name)
	}
	return aliases
}
