package classifier

import (
	"context"
	"fmt"
	"image"
	"os"
	"sync"

	ort "github.com/yalue/onnxruntime_go"
)

// ONNXClassifier runs the lesion model through onnxruntime.
// The session and its tensors are created once at startup and reused
// for every inference; the model is never reloaded.
type ONNXClassifier struct {
	config       *Config
	session      *ort.AdvancedSession
	inputTensor  *ort.Tensor[float32]
	outputTensor *ort.Tensor[float32]

	// The session's tensors are shared buffers; one inference at a time.
	mu sync.Mutex
}

// NewONNXClassifier loads the model artifact and prepares an inference session.
// A missing or corrupt model file is fatal to the caller: no analysis is
// possible without a model.
func NewONNXClassifier(cfg *Config) (*ONNXClassifier, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if _, err := os.Stat(cfg.ModelPath); err != nil {
		return nil, fmt.Errorf("model file %s: %w", cfg.ModelPath, err)
	}

	if cfg.LibraryPath != "" {
		ort.SetSharedLibraryPath(cfg.LibraryPath)
	}

	if err := ort.InitializeEnvironment(); err != nil {
		return nil, fmt.Errorf("failed to initialize ONNX environment: %w", err)
	}

	inputShape := ort.NewShape(1, int64(cfg.InputSize), int64(cfg.InputSize), 3)
	outputShape := ort.NewShape(1, 1)

	inputTensor, err := ort.NewEmptyTensor[float32](inputShape)
	if err != nil {
		return nil, fmt.Errorf("failed to create input tensor: %w", err)
	}

	outputTensor, err := ort.NewEmptyTensor[float32](outputShape)
	if err != nil {
		inputTensor.Destroy()
		return nil, fmt.Errorf("failed to create output tensor: %w", err)
	}

	session, err := ort.NewAdvancedSession(cfg.ModelPath,
		[]string{cfg.InputName}, []string{cfg.OutputName},
		[]ort.ArbitraryTensor{inputTensor}, []ort.ArbitraryTensor{outputTensor},
		nil)
	if err != nil {
		inputTensor.Destroy()
		outputTensor.Destroy()
		return nil, fmt.Errorf("failed to create ONNX session: %w", err)
	}

	return &ONNXClassifier{
		config:       cfg,
		session:      session,
		inputTensor:  inputTensor,
		outputTensor: outputTensor,
	}, nil
}

// Classify preprocesses the image and runs inference, returning the
// model's scalar malignancy score.
func (c *ONNXClassifier) Classify(ctx context.Context, img image.Image) (float32, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	input := Preprocess(img, c.config.InputSize)

	c.mu.Lock()
	defer c.mu.Unlock()

	copy(c.inputTensor.GetData(), input)

	if err := c.session.Run(); err != nil {
		return 0, fmt.Errorf("inference failed: %w", err)
	}

	output := c.outputTensor.GetData()
	if len(output) < 1 {
		return 0, fmt.Errorf("model produced no output")
	}

	return output[0], nil
}

// Close destroys the session, its tensors and the ONNX environment.
func (c *ONNXClassifier) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.inputTensor != nil {
		c.inputTensor.Destroy()
		c.inputTensor = nil
	}
	if c.outputTensor != nil {
		c.outputTensor.Destroy()
		c.outputTensor = nil
	}
	if c.session != nil {
		c.session.Destroy()
		c.session = nil
	}
	ort.DestroyEnvironment()
	return nil
}
