package dataset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest is the serialized record of a dataset inspection and split.
// It is what downstream training consumes instead of re-walking the tree.
type Manifest struct {
	Classes            []string       `yaml:"classes"`
	Counts             map[string]int `yaml:"counts"`
	ValidationFraction float64        `yaml:"validation_fraction"`
	Train              []string       `yaml:"train"`
	Validation         []string       `yaml:"validation"`
	Skipped            []string       `yaml:"skipped,omitempty"`
}

// BuildManifest assembles a manifest from an inspection and its split.
func BuildManifest(ins *Inspection, validationFraction float64) *Manifest {
	train, validation := Split(ins.Entries, validationFraction)

	m := &Manifest{
		Classes:            Classes,
		Counts:             ins.Counts,
		ValidationFraction: validationFraction,
		Train:              make([]string, len(train)),
		Validation:         make([]string, len(validation)),
		Skipped:            ins.Skipped,
	}
	for i, e := range train {
		m.Train[i] = e.Path
	}
	for i, e := range validation {
		m.Validation[i] = e.Path
	}

	return m
}

// Write serializes the manifest as YAML to the given path.
func (m *Manifest) Write(path string) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest %s: %w", path, err)
	}

	return nil
}

// ReadManifest loads a previously written manifest.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}

	return &m, nil
}
