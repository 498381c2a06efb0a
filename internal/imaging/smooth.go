package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"
)

// Smoother applies a noise-reducing blur of the given radius to an image.
//
// Radius is a pixel extent. A radius of 0 returns the input unchanged.
type Smoother interface {
	Smooth(img image.Image, radius int) image.Image
}

// SmootherFunc adapts a plain function to the Smoother interface.
type SmootherFunc func(img image.Image, radius int) image.Image

// Smooth calls f(img, radius).
func (f SmootherFunc) Smooth(img image.Image, radius int) image.Image {
	return f(img, radius)
}

// GaussianSmoother blurs with a Gaussian kernel whose radius is the requested
// radius in pixels.
type GaussianSmoother struct{}

// Smooth implements Smoother.
func (GaussianSmoother) Smooth(img image.Image, radius int) image.Image {
	if radius <= 0 {
		return img
	}
	return blur.Gaussian(img, float64(radius))
}

// SigmaSmoother blurs with a Gaussian whose standard deviation is a third of
// the radius, so the kernel's three-sigma extent matches the radius.
type SigmaSmoother struct{}

// Smooth implements Smoother.
func (SigmaSmoother) Smooth(img image.Image, radius int) image.Image {
	if radius <= 0 {
		return img
	}
	return imaging.Blur(img, float64(radius)/3)
}
