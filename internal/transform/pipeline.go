package transform

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"

	"github.com/ironsheep/image-resizer/internal/imaging"
)

// Stage names a pipeline step.
type Stage string

// Pipeline stages in the order they run.
const (
	StageBlur   Stage = "blur"
	StageCrop   Stage = "crop"
	StageResize Stage = "resize"
)

// Result is the outcome of a successful Process or Apply call.
type Result struct {
	// Image is the final working image. For a request that changes no pixels
	// it is the input image itself.
	Image image.Image

	// Directive tells the encoder how to commit Image.
	Directive Directive

	// Applied lists the stages that ran, in order.
	Applied []Stage
}

// Pipeline applies validated requests to decoded images.
//
// A Pipeline holds no per-request state and may be shared by concurrent
// callers as long as its capabilities are safe for concurrent use (the
// defaults are).
type Pipeline struct {
	smoother imaging.Smoother
	cropper  imaging.Cropper
	resizer  imaging.Resizer
	logger   *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithSmoother replaces the blur capability.
func WithSmoother(s imaging.Smoother) Option {
	return func(p *Pipeline) { p.smoother = s }
}

// WithCropper replaces the crop capability.
func WithCropper(c imaging.Cropper) Option {
	return func(p *Pipeline) { p.cropper = c }
}

// WithResizer replaces the resize capability.
func WithResizer(r imaging.Resizer) Option {
	return func(p *Pipeline) { p.resizer = r }
}

// WithLogger sets the logger used for stage tracing at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) { p.logger = l }
}

// NewPipeline returns a Pipeline using the default imaging backends.
func NewPipeline(opts ...Option) *Pipeline {
	p := &Pipeline{
		smoother: imaging.GaussianSmoother{},
		cropper:  imaging.CropperFunc(imaging.CropAt),
		resizer:  imaging.LinearResizer{},
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process validates params and, if they are well-formed, applies them to img.
//
// Validation runs before any pixel work, so an invalid bundle never touches
// the image.
func (p *Pipeline) Process(img image.Image, params Params) (*Result, error) {
	req, err := Validate(params)
	if err != nil {
		p.logger.Debug("request rejected", "error", err)
		return nil, err
	}
	return p.Apply(img, req)
}

// Apply runs blur, crop and resize for req on img and returns the final
// image with its encode directive.
//
// img is never modified. Any step failure aborts the request and no partial
// result is returned.
func (p *Pipeline) Apply(img image.Image, req Request) (*Result, error) {
	if img == nil {
		return nil, errors.New("no image to transform")
	}
	if req.format == "" {
		return nil, fmt.Errorf("%w: request was not validated", ErrInvalidParameters)
	}

	work := img
	applied := make([]Stage, 0, 3)
	p.logger.Debug("request validated",
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy(),
		"blur", req.blur, "crop", req.crop != nil, "resize", req.resize != nil)

	if radius := req.Blur(); radius != 0 {
		work = p.smoother.Smooth(work, radius)
		applied = append(applied, StageBlur)
		p.logger.Debug("stage applied", "stage", StageBlur, "radius", radius)
	}

	if region, ok := req.Crop(); ok {
		out, err := p.crop(work, region)
		if err != nil {
			return nil, err
		}
		work = out
		applied = append(applied, StageCrop)
		p.logger.Debug("stage applied", "stage", StageCrop,
			"x", region.X, "y", region.Y, "width", region.Width, "height", region.Height)
	}

	if size, ok := req.Resize(); ok {
		if size.Width == 0 || size.Height == 0 {
			return nil, fmt.Errorf("%w: resize to %dx%d", ErrEmptyTarget, size.Width, size.Height)
		}
		work = p.resizer.Resize(work, size.Width, size.Height)
		applied = append(applied, StageResize)
		p.logger.Debug("stage applied", "stage", StageResize, "width", size.Width, "height", size.Height)
	}

	directive := Directive{
		Format:  req.format,
		Quality: float64(req.quality) / MaxQuality,
	}
	p.logger.Debug("encode directive ready", "format", directive.Format, "quality", directive.Quality)

	return &Result{
		Image:     work,
		Directive: directive,
		Applied:   applied,
	}, nil
}

func (p *Pipeline) crop(img image.Image, region Region) (image.Image, error) {
	if region.Width == 0 || region.Height == 0 {
		return nil, fmt.Errorf("%w: crop to %dx%d", ErrEmptyTarget, region.Width, region.Height)
	}

	b := img.Bounds()
	if region.Width > b.Dx()-region.X || region.Height > b.Dy()-region.Y {
		return nil, fmt.Errorf("%w: %dx%d at (%d,%d) does not fit in %dx%d image",
			ErrOutOfBoundsCrop, region.Width, region.Height, region.X, region.Y, b.Dx(), b.Dy())
	}

	out, err := p.cropper.Crop(img, region.X, region.Y, region.Width, region.Height)
	if err != nil {
		if errors.Is(err, imaging.ErrOutOfBounds) {
			return nil, fmt.Errorf("%w: %v", ErrOutOfBoundsCrop, err)
		}
		return nil, fmt.Errorf("crop: %w", err)
	}
	return out, nil
}
