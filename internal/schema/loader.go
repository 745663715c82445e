package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a schema document from the given path.
func LoadFile(path string) (*Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses a YAML or JSON schema document.
func Parse(data []byte) (*Tree, error) {
	var t Tree

	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse schema: %w", err)
	}

	if t.Source == nil {
		return nil, ErrNoSource
	}

	return &t, nil
}
