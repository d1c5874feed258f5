package commands

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okra-platform/argsgen/internal/codegen"
)

func newInspectCommand(opts InspectOptions, loader ConfigLoader, out *bytes.Buffer) *InspectCommand {
	return NewInspectCommand(opts, zerolog.Nop()).WithDependencies(GenerateDependencies{
		ConfigLoader: loader,
		Registry:     codegen.DefaultRegistry,
		Output:       &mockOutput{},
		Logger:       zerolog.Nop(),
	}, out)
}

func TestInspectCommand_Execute_Members(t *testing.T) {
	// Test: the resolved members are dumped per component
	dir, cfg := newProject(t)
	loader := new(mockConfigLoader)
	loader.On("LoadConfig").Return(cfg, dir, nil)

	var out bytes.Buffer
	err := newInspectCommand(InspectOptions{}, loader, &out).Execute(context.Background())
	require.NoError(t, err)

	dump := out.String()
	assert.Contains(t, dump, "# LinearTrainer (LinearTrainer.Arguments)\n")
	assert.Contains(t, dump, `"numIterations"`)
	assert.Contains(t, dump, `"l2Reg"`)
	assert.Contains(t, dump, "ShapeSubcomponentGroup")
	assert.Contains(t, dump, "ShapeColumnCollection")
	assert.NotContains(t, dump, `"debugDump"`)
}

func TestInspectCommand_Execute_Raw(t *testing.T) {
	// Test: raw mode dumps the catalog entry, hidden arguments included
	dir, cfg := newProject(t)
	loader := new(mockConfigLoader)
	loader.On("LoadConfig").Return(cfg, dir, nil)

	var out bytes.Buffer
	err := newInspectCommand(InspectOptions{Component: "LinearTrainer", Raw: true}, loader, &out).Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, out.String(), `"debugDump"`)
	assert.Contains(t, out.String(), `"Trainers.Linear"`)
}

func TestInspectCommand_Execute_UnknownComponent(t *testing.T) {
	dir, cfg := newProject(t)
	loader := new(mockConfigLoader)
	loader.On("LoadConfig").Return(cfg, dir, nil)

	var out bytes.Buffer
	err := newInspectCommand(InspectOptions{Component: "Missing"}, loader, &out).Execute(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "component Missing not found")
	assert.Empty(t, out.String())
}

func TestInspectCommand_Execute_Language(t *testing.T) {
	// Test: member types follow the selected language
	dir, cfg := newProject(t)
	loader := new(mockConfigLoader)
	loader.On("LoadConfig").Return(cfg, dir, nil)

	var out bytes.Buffer
	opts := InspectOptions{GenerateOptions: GenerateOptions{Language: "typescript"}}
	err := newInspectCommand(opts, loader, &out).Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, out.String(), `"number"`)
	assert.NotContains(t, out.String(), `"int"`)
}
