package imaging

import (
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// ErrOutOfBounds is returned when a crop rectangle is not fully contained in the image.
var ErrOutOfBounds = errors.New("crop region outside image bounds")

// Crop extracts the rectangle r from img.
//
// r is expressed in the image's own coordinate space. The returned image is a
// new raster whose bounds start at (0,0) and whose size is exactly r.Dx() x r.Dy().
// Crop never clips: a rectangle that is not fully inside img.Bounds() fails
// with ErrOutOfBounds.
func Crop(img image.Image, r image.Rectangle) (image.Image, error) {
	bounds := img.Bounds()

	if r.Min.X < bounds.Min.X || r.Min.Y < bounds.Min.Y || r.Max.X > bounds.Max.X || r.Max.Y > bounds.Max.Y {
		return nil, fmt.Errorf("%w: region (%d,%d)-(%d,%d), image (%d,%d)-(%d,%d)",
			ErrOutOfBounds,
			r.Min.X, r.Min.Y, r.Max.X, r.Max.Y,
			bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}
	if r.Empty() {
		return nil, fmt.Errorf("invalid crop region: %dx%d has no area", r.Dx(), r.Dy())
	}

	return imaging.Crop(img, r), nil
}

// CropAt is the capability form used by the pipeline: origin (x, y) is relative
// to the image's top-left corner and the size is width x height.
func CropAt(img image.Image, x, y, width, height int) (image.Image, error) {
	origin := img.Bounds().Min.Add(image.Pt(x, y))
	return Crop(img, image.Rectangle{Min: origin, Max: origin.Add(image.Pt(width, height))})
}

// Cropper extracts a width x height sub-image whose top-left corner is at
// (x, y) relative to the image's own top-left corner.
type Cropper interface {
	Crop(img image.Image, x, y, width, height int) (image.Image, error)
}

// CropperFunc adapts a plain function to the Cropper interface.
type CropperFunc func(img image.Image, x, y, width, height int) (image.Image, error)

// Crop calls f(img, x, y, width, height).
func (f CropperFunc) Crop(img image.Image, x, y, width, height int) (image.Image, error) {
	return f(img, x, y, width, height)
}
