package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/transform"
	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	"golang.org/x/image/draw"
)

// Resizer scales an image to exactly width x height pixels.
//
// Implementations do not preserve the aspect ratio. Callers must pass
// positive dimensions.
type Resizer interface {
	Resize(img image.Image, width, height int) image.Image
}

// ResizerFunc adapts a plain function to the Resizer interface.
type ResizerFunc func(img image.Image, width, height int) image.Image

// Resize calls f(img, width, height).
func (f ResizerFunc) Resize(img image.Image, width, height int) image.Image {
	return f(img, width, height)
}

// LinearResizer uses the triangle (bilinear) filter of disintegration/imaging.
type LinearResizer struct{}

// Resize implements Resizer.
func (LinearResizer) Resize(img image.Image, width, height int) image.Image {
	return imaging.Resize(img, width, height, imaging.Linear)
}

// BildResizer uses bild's linear resample filter.
type BildResizer struct{}

// Resize implements Resizer.
func (BildResizer) Resize(img image.Image, width, height int) image.Image {
	return transform.Resize(img, width, height, transform.Linear)
}

// DrawResizer uses the bilinear scaler from golang.org/x/image/draw.
type DrawResizer struct{}

// Resize implements Resizer.
func (DrawResizer) Resize(img image.Image, width, height int) image.Image {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.BiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// NfntResizer uses the bilinear interpolation of github.com/nfnt/resize.
type NfntResizer struct{}

// Resize implements Resizer.
func (NfntResizer) Resize(img image.Image, width, height int) image.Image {
	return resize.Resize(uint(width), uint(height), img, resize.Bilinear)
}
