package classifier

import (
	"image"
	"image/color"
	"math"
	"testing"
)

func uniformImage(w, h int, c color.NRGBA) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestPreprocess_TensorShape(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"landscape", 640, 480},
		{"portrait", 480, 640},
		{"tiny", 8, 8},
		{"already target size", 175, 175},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := uniformImage(tt.w, tt.h, color.NRGBA{R: 120, G: 60, B: 30, A: 255})
			data := Preprocess(img, 175)

			if len(data) != 175*175*3 {
				t.Errorf("len = %d, want %d", len(data), 175*175*3)
			}
		})
	}
}

func TestPreprocess_NormalizedRange(t *testing.T) {
	img := uniformImage(200, 100, color.NRGBA{R: 255, G: 0, B: 128, A: 255})
	data := Preprocess(img, 175)

	for i, v := range data {
		if v < 0 || v > 1 {
			t.Fatalf("data[%d] = %v, want value in [0, 1]", i, v)
		}
	}
}

func TestPreprocess_ChannelOrderAndValues(t *testing.T) {
	// A uniform image survives resizing unchanged, so every pixel of the
	// tensor must hold the normalized R, G, B values in that order.
	img := uniformImage(350, 350, color.NRGBA{R: 255, G: 102, B: 0, A: 255})
	data := Preprocess(img, 175)

	wantR := float32(1.0)
	wantG := float32(102) / 255.0
	wantB := float32(0.0)

	const tol = 1e-2 // interpolation rounding
	for p := 0; p < 175*175; p++ {
		r, g, b := data[p*3], data[p*3+1], data[p*3+2]
		if math.Abs(float64(r-wantR)) > tol ||
			math.Abs(float64(g-wantG)) > tol ||
			math.Abs(float64(b-wantB)) > tol {
			t.Fatalf("pixel %d = (%v, %v, %v), want (%v, %v, %v)", p, r, g, b, wantR, wantG, wantB)
		}
	}
}

func TestPreprocess_Deterministic(t *testing.T) {
	img := uniformImage(300, 200, color.NRGBA{R: 10, G: 200, B: 90, A: 255})

	first := Preprocess(img, 175)
	second := Preprocess(img, 175)

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("preprocessing not deterministic at index %d: %v != %v", i, first[i], second[i])
		}
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.ModelPath != "skin_cancer_detection.onnx" {
		t.Errorf("ModelPath = %v", cfg.ModelPath)
	}
	if cfg.InputSize != 175 {
		t.Errorf("InputSize = %d, want 175", cfg.InputSize)
	}
	if cfg.InputName != "input" || cfg.OutputName != "output" {
		t.Errorf("tensor names = %q/%q, want input/output", cfg.InputName, cfg.OutputName)
	}
}
