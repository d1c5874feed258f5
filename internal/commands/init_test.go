package commands

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okra-platform/argsgen/internal/config"
	"github.com/okra-platform/argsgen/internal/schema"
)

// Test plan:
// 1. Test refusing to overwrite an existing argsgen.json
// 2. Test the written config and starter schema
// 3. Test keeping an existing schema file
// 4. Test invalid collection policy and write errors
// 5. Test form validators
// 6. Test form input with tea.WithInput

type mockFileSystem struct {
	wd           string
	files        map[string][]byte
	mkdirCalls   []string
	writeFileErr error
}

func (m *mockFileSystem) Stat(name string) (os.FileInfo, error) {
	if _, ok := m.files[name]; ok {
		return nil, nil
	}
	return nil, os.ErrNotExist
}

func (m *mockFileSystem) MkdirAll(path string, perm os.FileMode) error {
	m.mkdirCalls = append(m.mkdirCalls, path)
	return nil
}

func (m *mockFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	if m.writeFileErr != nil {
		return m.writeFileErr
	}
	if m.files == nil {
		m.files = make(map[string][]byte)
	}
	m.files[name] = data
	return nil
}

func (m *mockFileSystem) Getwd() (string, error) {
	if m.wd == "" {
		return "/project", nil
	}
	return m.wd, nil
}

func TestInitCommand_Run_AlreadyInitialized(t *testing.T) {
	// Test: an existing argsgen.json is never overwritten
	fs := &mockFileSystem{files: map[string][]byte{"/project/argsgen.json": []byte("{}")}}
	cmd := &InitCommand{filesystem: fs, output: &mockOutput{}, testOptions: &InitOptions{}}

	err := cmd.Run(context.Background())
	assert.ErrorIs(t, err, ErrAlreadyInitialized)
	assert.Equal(t, []byte("{}"), fs.files["/project/argsgen.json"])
}

func TestInitCommand_Run_FullFlow(t *testing.T) {
	// Test: complete successful flow with test options
	fs := &mockFileSystem{}
	output := &mockOutput{}
	cmd := &InitCommand{
		filesystem: fs,
		output:     output,
		testOptions: &InitOptions{
			Name:      "trainers",
			Language:  "typescript",
			Schema:    "./schema/trainers.args.gql",
			Namespace: "Trainers",
		},
	}

	require.NoError(t, cmd.Run(context.Background()))

	var cfg config.Config
	require.Contains(t, fs.files, "/project/argsgen.json")
	require.NoError(t, json.Unmarshal(fs.files["/project/argsgen.json"], &cfg))
	assert.Equal(t, "trainers", cfg.Name)
	assert.Equal(t, "typescript", cfg.Language)
	assert.Equal(t, "Trainers", cfg.Namespace)
	assert.Equal(t, "./generated", cfg.Output)
	assert.Equal(t, "lift", cfg.Collections)
	assert.Equal(t, config.Default().Watch, cfg.Watch)

	assert.Equal(t, []string{"/project/schema"}, fs.mkdirCalls)
	assert.Equal(t, starterSchema, string(fs.files["/project/schema/trainers.args.gql"]))
	assert.Equal(t, "Created starter schema ./schema/trainers.args.gql\nCreated argsgen.json for trainers (typescript)\n", output.String())
}

func TestInitCommand_Run_KeepsExistingSchema(t *testing.T) {
	fs := &mockFileSystem{files: map[string][]byte{"/project/components.args.gql": []byte("scalar Column")}}
	cmd := &InitCommand{filesystem: fs, output: &mockOutput{}, testOptions: &InitOptions{}}

	require.NoError(t, cmd.Run(context.Background()))
	assert.Equal(t, "scalar Column", string(fs.files["/project/components.args.gql"]))
	assert.Empty(t, fs.mkdirCalls)
	assert.Contains(t, fs.files, "/project/argsgen.json")
}

func TestInitCommand_Run_Errors(t *testing.T) {
	cmd := &InitCommand{
		filesystem:  &mockFileSystem{},
		output:      &mockOutput{},
		testOptions: &InitOptions{Collections: "spread"},
	}
	err := cmd.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown collection policy")

	cmd = &InitCommand{
		filesystem:  &mockFileSystem{writeFileErr: errors.New("read-only")},
		output:      &mockOutput{},
		testOptions: &InitOptions{},
	}
	err = cmd.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write argsgen.json")
}

func TestStarterSchema_Loads(t *testing.T) {
	// Test: the starter schema is a valid catalog
	catalog, err := schema.Load([]byte(starterSchema), schema.FormatGraphQL)
	require.NoError(t, err)
	require.Len(t, catalog.Components, 1)
	assert.Equal(t, "SortTransform", catalog.Components[0].Name)
	assert.Len(t, catalog.Components[0].Arguments, 3)
}

func TestInitCommand_Validators(t *testing.T) {
	assert.Error(t, validateName(""))
	assert.Error(t, validateName("  "))
	assert.Error(t, validateName("out/args"))
	assert.NoError(t, validateName("arguments"))

	assert.NoError(t, validateSchemaPath("components.args.gql"))
	assert.NoError(t, validateSchemaPath("catalog.YAML"))
	assert.NoError(t, validateSchemaPath("catalog.json"))
	assert.Error(t, validateSchemaPath("catalog.txt"))

	cmd := NewInitCommand()
	form := cmd.createInitForm(&InitOptions{})
	assert.NotNil(t, form)
}

// Integration test for the form - skip in CI but useful for local development
func TestInitCommand_promptInitOptions_Interactive(t *testing.T) {
	// Always skip this test in automated runs to prevent deadlocks
	if os.Getenv("INTERACTIVE_TEST") != "true" {
		t.Skip("Skipping interactive test. Set INTERACTIVE_TEST=true to run")
	}

	cmd := &InitCommand{filesystem: &mockFileSystem{}, output: &mockOutput{}}

	// Accept the default name, pick TypeScript, accept the rest
	input := strings.NewReader("\n\x1b[B\n\n\n\n\n")

	options, err := cmd.promptInitOptions(
		tea.WithInput(input),
		tea.WithoutRenderer(),
	)
	require.NoError(t, err)
	assert.Equal(t, "arguments", options.Name)
	assert.Equal(t, "typescript", options.Language)
}
