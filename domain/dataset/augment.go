package dataset

import (
	"image"
	"image/color"
	"image/draw"
	"math/rand"

	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Augmenter produces randomized variants of a training image to expand
// effective dataset diversity. Augmentation applies to training only,
// never to inference input.
type Augmenter struct {
	// MaxRotationDegrees bounds the random rotation in either direction.
	MaxRotationDegrees float64
	// MaxShiftFraction bounds the random translation relative to image size.
	MaxShiftFraction float64
	// MaxShearFraction bounds the random horizontal shear as a fraction of
	// image height.
	MaxShearFraction float64
	// MaxZoomFraction bounds the random zoom-in relative to image size.
	MaxZoomFraction float64
	// HorizontalFlip enables random mirroring.
	HorizontalFlip bool
}

// DefaultAugmenter returns the augmentation parameters the model was
// trained with.
func DefaultAugmenter() *Augmenter {
	return &Augmenter{
		MaxRotationDegrees: 20,
		MaxShiftFraction:   0.2,
		MaxShearFraction:   0.2,
		MaxZoomFraction:    0.2,
		HorizontalFlip:     true,
	}
}

// Apply produces one randomized variant. The output keeps the input's
// dimensions; uncovered regions are filled with black.
func (a *Augmenter) Apply(img image.Image, rng *rand.Rand) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	out := imaging.Clone(img)

	if a.MaxRotationDegrees > 0 {
		angle := (rng.Float64()*2 - 1) * a.MaxRotationDegrees
		rotated := imaging.Rotate(out, angle, color.NRGBA{A: 255})
		// Rotation grows the canvas; crop back to the original size.
		out = imaging.CropCenter(rotated, w, h)
	}

	if a.MaxShearFraction > 0 {
		factor := (rng.Float64()*2 - 1) * a.MaxShearFraction
		out = shearH(out, factor)
	}

	if a.MaxZoomFraction > 0 {
		zoom := 1 + rng.Float64()*a.MaxZoomFraction
		zw := int(float64(w) * zoom)
		zh := int(float64(h) * zoom)
		out = imaging.CropCenter(imaging.Resize(out, zw, zh, imaging.Linear), w, h)
	}

	if a.MaxShiftFraction > 0 {
		dx := int((rng.Float64()*2 - 1) * a.MaxShiftFraction * float64(w))
		dy := int((rng.Float64()*2 - 1) * a.MaxShiftFraction * float64(h))
		canvas := imaging.New(w, h, color.NRGBA{A: 255})
		out = imaging.Paste(canvas, out, image.Pt(dx, dy))
	}

	if a.HorizontalFlip && rng.Intn(2) == 1 {
		out = imaging.FlipH(out)
	}

	return out
}

// shearH shears the image horizontally around its vertical center, keeping
// the input dimensions. imaging has no shear primitive, so this one affine
// pass goes through x/image/draw.
func shearH(img image.Image, factor float64) *image.NRGBA {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), &image.Uniform{C: color.NRGBA{A: 255}}, image.Point{}, draw.Src)

	// x' = x + factor*(y - h/2), y' = y
	m := f64.Aff3{
		1, factor, -factor * float64(h) / 2,
		0, 1, 0,
	}
	xdraw.BiLinear.Transform(dst, m, img, bounds, xdraw.Over, nil)

	return dst
}

// Variants produces n randomized variants using a seeded source, so the
// same seed reproduces the same augmented set.
func (a *Augmenter) Variants(img image.Image, n int, seed int64) []image.Image {
	rng := rand.New(rand.NewSource(seed))

	variants := make([]image.Image, n)
	for i := range variants {
		variants[i] = a.Apply(img, rng)
	}

	return variants
}
