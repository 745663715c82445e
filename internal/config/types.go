package config

import (
	"encoding/json"

	"object-builder/internal/schema"
)

// Name is a result name. The empty string stands for "not set" and is
// encoded as null.
type Name string

// MarshalYAML encodes an empty name as null.
func (n Name) MarshalYAML() (any, error) {
	if n == "" {
		return nil, nil
	}

	return string(n), nil
}

// MarshalJSON encodes an empty name as null.
func (n Name) MarshalJSON() ([]byte, error) {
	if n == "" {
		return []byte("null"), nil
	}

	return json.Marshal(string(n))
}

// Configuration is the canonical, persisted mapping definition.
type Configuration struct {
	// ResultName is the name of the object the step produces.
	ResultName Name `yaml:"resultName" json:"resultName" validate:"required"`

	// Fields maps source paths to named output fields, in order.
	Fields []FieldMapping `yaml:"fields" json:"fields" validate:"min=1,dive"`
}

// FieldMapping pulls one source path into a named output field.
type FieldMapping struct {
	FieldName  string   `yaml:"fieldName" json:"fieldName" validate:"required"`
	SourcePath []string `yaml:"sourcePath" json:"sourcePath" validate:"min=1"`
}

// Flattened returns the value form of the source path.
func (f FieldMapping) Flattened() string {
	return schema.JoinPath(f.SourcePath)
}

// Draft is the edit-time form of a Configuration.
type Draft struct {
	ResultName Name         `yaml:"resultName" json:"resultName"`
	Fields     []DraftField `yaml:"fields" json:"fields"`
}

// DraftField is a FieldMapping enriched for editing.
type DraftField struct {
	FieldName  string   `yaml:"fieldName" json:"fieldName"`
	SourcePath []string `yaml:"sourcePath" json:"sourcePath"`

	// Flattened is derived from SourcePath and never emitted.
	Flattened string `yaml:"flattened,omitempty" json:"flattened,omitempty"`

	// Extra holds keys the host attached that are not part of the
	// canonical shape.
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Mapping returns the canonical form of the field.
func (f DraftField) Mapping() FieldMapping {
	return FieldMapping{
		FieldName:  f.FieldName,
		SourcePath: append([]string{}, f.SourcePath...),
	}
}

// Default returns the shape used before any configuration exists.
func Default() *Configuration {
	return &Configuration{ResultName: "", Fields: []FieldMapping{}}
}
