// Package classifier provides the lesion classification model infrastructure.
package classifier

import (
	"context"
	"image"
)

// Classifier produces a malignancy score for a lesion image.
type Classifier interface {
	// Classify runs the model on a single image and returns the
	// probability of the malignant class in [0, 1].
	Classify(ctx context.Context, img image.Image) (float32, error)

	// Close releases the model resources.
	Close() error
}

// Config contains configuration for the ONNX classifier.
type Config struct {
	// ModelPath is the path to the serialized model artifact.
	ModelPath string
	// LibraryPath optionally points at the onnxruntime shared library.
	// If empty, the platform default lookup is used.
	LibraryPath string
	// InputSize is the square resolution the model expects.
	InputSize int
	// InputName and OutputName are the model's tensor names.
	InputName  string
	OutputName string
}

// DefaultConfig returns the configuration matching the trained artifact.
func DefaultConfig() *Config {
	return &Config{
		ModelPath:  "skin_cancer_detection.onnx",
		InputSize:  175,
		InputName:  "input",
		OutputName: "output",
	}
}
