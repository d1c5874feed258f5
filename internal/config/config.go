package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"
)

// FileName is the project configuration file searched for by LoadConfig
const FileName = "argsgen.json"

// ErrConfigNotFound is returned when no argsgen.json exists in a directory or its parents
var ErrConfigNotFound = errors.New("no " + FileName + " found")

// Config represents the argsgen.json configuration file
type Config struct {
	Name        string      `json:"name"`
	Language    string      `json:"language"`
	Schema      string      `json:"schema"`
	Output      string      `json:"output"`
	Namespace   string      `json:"namespace,omitempty"`
	Exclude     []string    `json:"exclude,omitempty"`
	Collections string      `json:"collections,omitempty"`
	Watch       WatchConfig `json:"watch"`
}

// WatchConfig contains watch mode configuration
type WatchConfig struct {
	Patterns []string `json:"patterns"`
	Exclude  []string `json:"exclude"`
}

// Default returns a configuration with every default applied
func Default() *Config {
	config := &Config{}
	config.ApplyDefaults()
	return config
}

// ApplyDefaults fills every unset field
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "arguments"
	}
	if c.Language == "" {
		c.Language = "csharp"
	}
	if c.Schema == "" {
		c.Schema = "./components.args.gql"
	}
	if c.Output == "" {
		c.Output = "./generated"
	}
	if c.Collections == "" {
		c.Collections = "lift"
	}
	if len(c.Watch.Patterns) == 0 {
		c.Watch.Patterns = []string{"*.args.gql", "**/*.args.gql", "*.args.yaml", "**/*.args.yaml", "*.args.json", "**/*.args.json"}
	}
	if len(c.Watch.Exclude) == 0 {
		c.Watch.Exclude = []string{"generated/", "node_modules/", ".git/", "bin/", "obj/"}
	}
}

// LoadConfig loads argsgen.json from the current directory or a parent directory.
// It returns the configuration and the directory that holds it.
func LoadConfig() (*Config, string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get current directory: %w", err)
	}

	return LoadConfigFromDir(dir)
}

// LoadConfigFromPath loads a configuration file and applies defaults
func LoadConfigFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.ApplyDefaults()
	return &config, nil
}

// LoadConfigFromDir searches for argsgen.json in the given directory and its parents
func LoadConfigFromDir(startDir string) (*Config, string, error) {
	dir := startDir
	for {
		configPath := filepath.Join(dir, FileName)
		if _, err := os.Stat(configPath); err == nil {
			config, err := LoadConfigFromPath(configPath)
			if err != nil {
				return nil, "", err
			}
			return config, dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root directory
			break
		}
		dir = parent
	}

	return nil, "", fmt.Errorf("%w in %s or any parent directory", ErrConfigNotFound, startDir)
}

// Marshal encodes the configuration as indented JSON
func (c *Config) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return append(data, '\n'), nil
}

// OutputFile returns the generated file path for a file extension, relative to baseDir
func (c *Config) OutputFile(baseDir, ext string) string {
	out := c.Output
	if filepath.Ext(out) == "" {
		out = filepath.Join(out, c.Name+ext)
	}
	return Resolve(baseDir, out)
}

// Resolve joins a relative path onto baseDir and leaves absolute paths alone
func Resolve(baseDir, path string) string {
	if filepath.IsAbs(path) || baseDir == "" {
		return path
	}
	return filepath.Join(baseDir, path)
}
