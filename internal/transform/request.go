package transform

import (
	"fmt"
	"strings"
)

// Format is a supported output encoding.
type Format string

// Supported output formats.
const (
	FormatJPEG Format = "JPEG"
	FormatPNG  Format = "PNG"
)

// ParseFormat matches s against the supported formats, ignoring case only.
// Surrounding whitespace is not trimmed.
func ParseFormat(s string) (Format, error) {
	switch strings.ToUpper(s) {
	case string(FormatJPEG):
		return FormatJPEG, nil
	case string(FormatPNG):
		return FormatPNG, nil
	default:
		return "", fmt.Errorf("unsupported format %q (must be JPEG or PNG)", s)
	}
}

// Extension returns the conventional file extension for f, without the dot.
func (f Format) Extension() string {
	if f == FormatPNG {
		return "png"
	}
	return "jpg"
}

// Size is a resize target in pixels.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Region is a crop rectangle: Width x Height pixels starting at (X, Y), with
// the origin relative to the top-left corner of the working image.
type Region struct {
	Width  int `json:"width"`
	Height int `json:"height"`
	X      int `json:"x"`
	Y      int `json:"y"`
}

// Params is the raw, unvalidated parameter bundle as supplied by a caller.
//
// A nil Resize or Crop means the operation was not requested; Blur 0 means no blur.
type Params struct {
	Resize  *Size   `json:"resize,omitempty"`
	Quality int     `json:"quality"`
	Crop    *Region `json:"crop,omitempty"`
	Blur    int     `json:"blur"`
	Format  string  `json:"format"`
}

// Request is a validated unit of work. Obtain one from Validate.
//
// Request is a value type; its optional fields are copies of the caller's
// Params, so later changes to the Params do not affect it.
type Request struct {
	resize  *Size
	crop    *Region
	blur    int
	quality int
	format  Format
}

// Resize returns the resize target and whether a resize was requested.
func (r Request) Resize() (Size, bool) {
	if r.resize == nil {
		return Size{}, false
	}
	return *r.resize, true
}

// Crop returns the crop region and whether a crop was requested.
func (r Request) Crop() (Region, bool) {
	if r.crop == nil {
		return Region{}, false
	}
	return *r.crop, true
}

// Blur returns the blur radius; 0 means no blur.
func (r Request) Blur() int { return r.blur }

// Quality returns the encode quality in [0, 100].
func (r Request) Quality() int { return r.quality }

// Format returns the normalized output format.
func (r Request) Format() Format { return r.format }

// IsNoop reports whether the request changes no pixels.
func (r Request) IsNoop() bool {
	return r.resize == nil && r.crop == nil && r.blur == 0
}

// Directive pairs the final image with how it should be encoded.
type Directive struct {
	Format Format
	// Quality is the request quality normalized to [0, 1].
	Quality float64
}
