// Package config loads the application configuration file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"dermascan/infrastructure/classifier"
)

// DefaultPath is the configuration file looked up next to the binary.
const DefaultPath = "dermascan.yaml"

// Config holds the application configuration. Every field has a compiled
// default; the file only needs to name what it overrides.
type Config struct {
	// Model artifact settings.
	ModelPath      string `yaml:"model_path"`
	OnnxRuntimeLib string `yaml:"onnxruntime_lib"`
	InputSize      int    `yaml:"input_size"`
	InputTensor    string `yaml:"input_tensor"`
	OutputTensor   string `yaml:"output_tensor"`

	// Window settings.
	WindowTitle  string  `yaml:"window_title"`
	WindowWidth  float32 `yaml:"window_width"`
	WindowHeight float32 `yaml:"window_height"`

	// Dataset tool settings.
	DatasetDir      string  `yaml:"dataset_dir"`
	ValidationSplit float64 `yaml:"validation_split"`
	ManifestPath    string  `yaml:"manifest_path"`
}

// NewDefault returns the compiled-in configuration.
func NewDefault() *Config {
	model := classifier.DefaultConfig()
	return &Config{
		ModelPath:       model.ModelPath,
		InputSize:       model.InputSize,
		InputTensor:     model.InputName,
		OutputTensor:    model.OutputName,
		WindowTitle:     "DermaScan AI - Skin Cancer Detection",
		WindowWidth:     1000,
		WindowHeight:    800,
		DatasetDir:      "melanoma_cancer_dataset/train",
		ValidationSplit: 0.2,
		ManifestPath:    "dataset_manifest.yaml",
	}
}

// Load reads the configuration file at path over the defaults.
// A missing file is not an error; an unparsable one is.
func Load(path string) (*Config, error) {
	cfg := NewDefault()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}

// ClassifierConfig maps the file settings onto the classifier configuration.
func (c *Config) ClassifierConfig() *classifier.Config {
	return &classifier.Config{
		ModelPath:   c.ModelPath,
		LibraryPath: c.OnnxRuntimeLib,
		InputSize:   c.InputSize,
		InputName:   c.InputTensor,
		OutputName:  c.OutputTensor,
	}
}
