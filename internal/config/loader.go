package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads a configuration document from the given path as a draft.
func LoadFile(path string) (*Draft, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes a YAML or JSON configuration document into an enriched
// draft. Unknown per-field keys are kept in DraftField.Extra.
func Parse(data []byte) (*Draft, error) {
	var d Draft

	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	d.Enrich()

	return &d, nil
}

// Marshal serializes the canonical configuration to YAML.
func Marshal(cfg *Configuration) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// WriteFile writes the canonical configuration to the given path.
func WriteFile(cfg *Configuration, path string) error {
	data, err := Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write configuration file %s: %w", path, err)
	}

	return nil
}
