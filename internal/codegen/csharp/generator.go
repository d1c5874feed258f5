package csharp

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/okra-platform/argsgen/internal/codegen/emit"
	"github.com/okra-platform/argsgen/internal/codegen/writer"
	"github.com/okra-platform/argsgen/internal/schema"
)

const indent = "    "

// usings are the namespaces every generated file imports
var usings = []string{
	"System",
	"System.Linq",
	"Microsoft.ML",
	"Microsoft.ML.CommandLine",
	"Microsoft.ML.Data",
	"Microsoft.ML.Internal.Internallearn",
}

// Generator generates one C# file with a partial class per component
type Generator struct {
	namespace string
	emitter   *emit.Emitter
}

// NewGenerator creates a new C# generator. An empty namespace puts the
// classes in the global namespace.
func NewGenerator(namespace string, opts ...emit.Option) *Generator {
	return &Generator{
		namespace: namespace,
		emitter:   emit.NewEmitter(Syntax{}, opts...),
	}
}

// Language returns the name of the target language
func (g *Generator) Language() string {
	return "csharp"
}

// FileExtension returns the file extension for generated files
func (g *Generator) FileExtension() string {
	return ".cs"
}

// Generate renders every component of the catalog. Components are rendered
// concurrently into separate buffers and joined in catalog order; no output is
// returned unless every component succeeds.
func (g *Generator) Generate(c *schema.Catalog) ([]byte, error) {
	if len(c.Components) == 0 {
		return nil, emit.ErrNoComponents
	}

	level := 0
	if g.namespace != "" {
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
		return nil, fmt.Errorf("failed to generate C#: %w", err)
	}

	w := writer.NewWriter(indent)
	w.WriteComment("//", "<auto-generated>")
	w.WriteComment("//", "    This code was generated by argsgen. Do not edit.")
	w.WriteComment("//", "</auto-generated>")
	w.BlankLine()

	for _, u := range usings {
		w.WriteLinef("using %s;", u)
	}
	w.BlankLine()

	if g.namespace != "" {
		w.WriteLinef("namespace %s", g.namespace)
		w.WriteLine("{")
		w.Indent()
	}

	for i, class := range classes {
		if i > 0 {
			w.BlankLine()
		}
		w.WriteRaw(class)
	}

	if g.namespace != "" {
		w.Dedent()
		w.WriteLine("}")
	}

	return w.Bytes(), nil
}

// generateClass writes fields, properties and the conversion method of one component
func (g *Generator) generateClass(w *writer.Writer, c schema.Component) error {
	members, err := g.emitter.Resolve(c)
	if err != nil {
		return err
	}

	if c.HelpText != "" {
		writeXMLDoc(w, "summary", emit.EscapeDoc(c.HelpText))
	}
	if c.EntryPoint != "" {
		writeXMLDoc(w, "remarks", "Entry point: "+emit.EscapeDoc(c.EntryPoint))
	}

	w.WriteLinef("public sealed partial class %s", c.Name)
	w.WriteBlock("{", "}", func() {
		g.emitter.StorageBlock(w, members)
		g.emitter.AccessorBlock(w, members)

		w.WriteLinef("public %s ToArguments()", c.ArgsType)
		w.WriteBlock("{", "}", func() {
			w.WriteLinef("var args = new %s();", c.ArgsType)
			g.emitter.AssignmentBlock(w, members)
			w.WriteLine("return args;")
		})
	})

	return nil
}

// Resolve returns the members rendered for a component
func (g *Generator) Resolve(c schema.Component) ([]emit.Member, error) {
	return g.emitter.Resolve(c)
}
