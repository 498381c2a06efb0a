package imaging

import (
	"fmt"
	"image"

	"github.com/lucasb-eyer/go-colorful"
)

// MeanDelta returns the mean CIE L*a*b* distance between corresponding pixels
// of a and b.
//
// Both images must have the same dimensions; their origins may differ. Fully
// transparent pixels carry no color and are skipped. The result is 0 for
// identical images and grows with visible difference. go-colorful scales L to
// [0, 1], so a just-noticeable difference is about 0.02.
func MeanDelta(a, b image.Image) (float64, error) {
	ab, bb := a.Bounds(), b.Bounds()
	if ab.Dx() != bb.Dx() || ab.Dy() != bb.Dy() {
		return 0, fmt.Errorf("image sizes differ: %dx%d vs %dx%d", ab.Dx(), ab.Dy(), bb.Dx(), bb.Dy())
	}

	var sum float64
	var n int
	for y := 0; y < ab.Dy(); y++ {
		for x := 0; x < ab.Dx(); x++ {
			ca, okA := colorful.MakeColor(a.At(ab.Min.X+x, ab.Min.Y+y))
			cb, okB := colorful.MakeColor(b.At(bb.Min.X+x, bb.Min.Y+y))
			if !okA || !okB {
				continue
			}
			sum += ca.DistanceLab(cb)
			n++
		}
	}

	if n == 0 {
		return 0, nil
	}
	return sum / float64(n), nil
}
