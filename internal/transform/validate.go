package transform

import "fmt"

// Quality bounds, inclusive.
const (
	MinQuality = 0
	MaxQuality = 100
)

// Validate checks p as a single unit and returns the immutable Request it describes.
//
// The request is valid only if every present operation passes its own
// predicate; the predicates do not depend on each other or on any image. On
// failure the returned error is a *ParamError naming each failed field, and
// no Request is produced.
//
// Zero-sized resize and crop targets pass validation. The pipeline rejects
// them when the step runs (see ErrEmptyTarget).
func Validate(p Params) (Request, error) {
	perr := &ParamError{}

	if p.Resize != nil && !ValidResize(*p.Resize) {
		perr.add("resize", fmt.Sprintf("width and height must be >= 0, got %dx%d", p.Resize.Width, p.Resize.Height))
	}
	if !ValidQuality(p.Quality) {
		perr.add("quality", fmt.Sprintf("must be in [%d, %d], got %d", MinQuality, MaxQuality, p.Quality))
	}
	if p.Crop != nil && !ValidCrop(*p.Crop) {
		c := p.Crop
		perr.add("crop", fmt.Sprintf("width, height, x and y must be >= 0, got %d %d %d %d", c.Width, c.Height, c.X, c.Y))
	}
	if !ValidBlur(p.Blur) {
		perr.add("blur", fmt.Sprintf("radius must be >= 0, got %d", p.Blur))
	}
	format, err := ParseFormat(p.Format)
	if err != nil {
		perr.add("format", err.Error())
	}

	if len(perr.Fields) > 0 {
		return Request{}, perr
	}

	req := Request{
		blur:    p.Blur,
		quality: p.Quality,
		format:  format,
	}
	if p.Resize != nil {
		size := *p.Resize
		req.resize = &size
	}
	if p.Crop != nil {
		region := *p.Crop
		req.crop = &region
	}
	return req, nil
}

// ValidResize reports whether both components of a requested resize are non-negative.
func ValidResize(s Size) bool {
	return s.Width >= 0 && s.Height >= 0
}

// ValidQuality reports whether q lies in [MinQuality, MaxQuality].
func ValidQuality(q int) bool {
	return q >= MinQuality && q <= MaxQuality
}

// ValidCrop reports whether all four components of a requested crop are non-negative.
func ValidCrop(r Region) bool {
	return r.Width >= 0 && r.Height >= 0 && r.X >= 0 && r.Y >= 0
}

// ValidBlur reports whether radius is non-negative.
func ValidBlur(radius int) bool {
	return radius >= 0
}
