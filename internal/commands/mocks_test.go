package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/okra-platform/argsgen/internal/config"
)

// Mock implementations shared by the command tests
type mockConfigLoader struct {
	mock.Mock
}

func (m *mockConfigLoader) LoadConfig() (*config.Config, string, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*config.Config), args.String(1), args.Error(2)
}

func (m *mockConfigLoader) LoadConfigFromPath(path string) (*config.Config, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*config.Config), args.Error(1)
}

type mockSignalNotifier struct {
	mock.Mock
}

func (m *mockSignalNotifier) Notify(c chan<- os.Signal, sig ...os.Signal) {
	m.Called(c, sig)
}

func (m *mockSignalNotifier) Stop(c chan<- os.Signal) {
	m.Called(c)
}

type mockOutput struct {
	mu       sync.Mutex
	messages []string
}

func (m *mockOutput) Printf(format string, a ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, fmt.Sprintf(format, a...))
}

func (m *mockOutput) Println(a ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, fmt.Sprintln(a...))
}

func (m *mockOutput) String() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return strings.Join(m.messages, "")
}

// newProject creates a project directory holding the shared fixture schema
func newProject(t *testing.T) (string, *config.Config) {
	t.Helper()

	dir := t.TempDir()
	data, err := os.ReadFile(filepath.Join("..", "schema", "testdata", "catalog.args.gql"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "components.args.gql"), data, 0644))

	return dir, config.Default()
}
