package typescript

import (
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/okra-platform/argsgen/internal/codegen/emit"
	"github.com/okra-platform/argsgen/internal/codegen/writer"
	"github.com/okra-platform/argsgen/internal/schema"
)

const indent = "  " // TypeScript typically uses 2 spaces

// Generator generates TypeScript classes from a component catalog
type Generator struct {
	moduleName string
	emitter    *emit.Emitter
}

// NewGenerator creates a new TypeScript code generator. A non-empty module
// name wraps the classes in an exported namespace.
func NewGenerator(moduleName string, opts ...emit.Option) *Generator {
	return &Generator{
		moduleName: moduleName,
		emitter:    emit.NewEmitter(Syntax{}, opts...),
	}
}

// Language returns the name of the target language
func (g *Generator) Language() string {
	return "typescript"
}

// FileExtension returns the file extension for generated files
func (g *Generator) FileExtension() string {
	return ".ts"
}

// Generate renders one exported class per component
func (g *Generator) Generate(c *schema.Catalog) ([]byte, error) {
	if len(c.Components) == 0 {
		return nil, emit.ErrNoComponents
	}

	level := 0
	if g.moduleName != "" {
		level = 1
	}

	classes := make([]string, len(c.Components))
	var eg errgroup.Group
	for i := range c.Components {
		eg.Go(func() error {
			w := writer.NewWriter(indent)
			w.SetIndentLevel(level)
			if err := g.generateClass(w, c.Components[i]); err != nil {
				return err
			}
			classes[i] = w.String()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("failed to generate TypeScript: %w", err)
	}

	w := writer.NewWriter(indent)
	w.WriteComment("//", "Code generated by argsgen. DO NOT EDIT.")
	w.BlankLine()

	// Write module declaration if specified
	if g.moduleName != "" {
		w.WriteLinef("export namespace %s {", g.moduleName)
		w.Indent()
	}

	for i, class := range classes {
		if i > 0 {
			w.BlankLine()
		}
		w.WriteRaw(class)
	}

	// Close module if opened
	if g.moduleName != "" {
		w.Dedent()
		w.WriteLine("}")
	}

	return w.Bytes(), nil
}

func (g *Generator) generateClass(w *writer.Writer, c schema.Component) error {
	members, err := g.emitter.Resolve(c)
	if err != nil {
		return err
	}

	g.writeClassDoc(w, c)

	w.WriteBlock(fmt.Sprintf("export class %s {", c.Name), "}", func() {
		g.emitter.StorageBlock(w, members)
		g.emitter.AccessorBlock(w, members)

		w.WriteBlock(fmt.Sprintf("toArguments(): %s {", c.ArgsType), "}", func() {
			w.WriteLinef("const args = new %s();", c.ArgsType)
			g.emitter.AssignmentBlock(w, members)
			w.WriteLine("return args;")
		})
	})

	return nil
}

// writeClassDoc writes the class documentation, if any
func (g *Generator) writeClassDoc(w *writer.Writer, c schema.Component) {
	var lines []string
	if c.HelpText != "" {
		lines = append(lines, emit.EscapeDoc(c.HelpText))
	}
	if c.EntryPoint != "" {
		lines = append(lines, "Entry point: "+c.EntryPoint)
	}
	if len(lines) > 0 {
		writeJSDoc(w, strings.Join(lines, "\n"))
	}
}

// Resolve returns the members rendered for a component
func (g *Generator) Resolve(c schema.Component) ([]emit.Member, error) {
	return g.emitter.Resolve(c)
}
