package classifier

import (
	"image"

	"github.com/disintegration/imaging"
)

// Preprocess converts a decoded image into the model's input tensor data:
// resize (not crop) to size x size with bilinear interpolation, then
// normalize each RGB channel to [0, 1], laid out NHWC.
//
// The resize method and channel order are part of the trained model's
// contract and must not be changed independently of the artifact.
func Preprocess(img image.Image, size int) []float32 {
	resized := imaging.Resize(img, size, size, imaging.Linear)

	data := make([]float32, size*size*3)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			r, g, b, _ := resized.At(x, y).RGBA()
			i := (y*size + x) * 3
			data[i] = float32(r>>8) / 255.0
			data[i+1] = float32(g>>8) / 255.0
			data[i+2] = float32(b>>8) / 255.0
		}
	}

	return data
}
