package schema

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Format identifies a catalog encoding
type Format string

const (
	FormatGraphQL Format = "graphql"
	FormatYAML    Format = "yaml"
	FormatJSON    Format = "json"
)

// FormatFromPath picks the catalog format from a file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gql", ".graphql":
		return FormatGraphQL, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedInput, path)
	}
}

// LoadFile reads and resolves a catalog file
func LoadFile(path string) (*Catalog, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	catalog, err := Load(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog %s: %w", path, err)
	}

	return catalog, nil
}

// Load decodes and resolves a catalog in the given format
func Load(data []byte, format Format) (*Catalog, error) {
	var doc Document

	switch format {
	case FormatGraphQL:
		parsed, err := ParseDocument(string(data))
		if err != nil {
			return nil, err
		}
		doc = *parsed

	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
		}

	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
		}

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedInput, format)
	}

	return Build(&doc)
}
