package cli

import (
	"fmt"
	"image"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ironsheep/image-resizer/internal/imaging"
	"github.com/ironsheep/image-resizer/internal/transform"
)

// params collects the transform options given on the command line.
func (a *app) params(cmd *cobra.Command) (transform.Params, error) {
	p := transform.Params{
		Quality: a.quality,
		Blur:    a.blur,
		Format:  a.format,
	}

	if cmd.Flags().Changed("resize") {
		if len(a.resize) != 2 {
			return p, &usageError{fmt.Errorf("--resize takes 2 values (width height), got %d", len(a.resize))}
		}
		p.Resize = &transform.Size{Width: a.resize[0], Height: a.resize[1]}
	}
	if cmd.Flags().Changed("crop") {
		if len(a.crop) != 4 {
			return p, &usageError{fmt.Errorf("--crop takes 4 values (width height x y), got %d", len(a.crop))}
		}
		p.Crop = &transform.Region{Width: a.crop[0], Height: a.crop[1], X: a.crop[2], Y: a.crop[3]}
	}
	return p, nil
}

// run validates the options, transforms input and writes the result to out.
// Nothing is written unless every step succeeds.
func (a *app) run(cmd *cobra.Command, input, out string) error {
	params, err := a.params(cmd)
	if err != nil {
		return err
	}
	req, err := transform.Validate(params)
	if err != nil {
		return err
	}

	pipeline, err := a.pipeline()
	if err != nil {
		return err
	}

	img, err := imaging.Load(input)
	if err != nil {
		return err
	}
	a.logger.Debug("input decoded", "path", input, "width", img.Bounds().Dx(), "height", img.Bounds().Dy())

	if !matchesExtension(out, req.Format()) {
		a.printer.Warning("%s does not have a .%s extension; writing %s anyway", out, req.Format().Extension(), req.Format())
	}

	res, err := pipeline.Apply(img, req)
	if err != nil {
		return err
	}
	if a.logger.Enabled(cmd.Context(), slog.LevelDebug) {
		a.reportBlur(img, res)
	}

	if err := imaging.WriteFile(out, res.Image, string(res.Directive.Format), res.Directive.Quality); err != nil {
		return err
	}

	if len(res.Applied) == 0 {
		a.printer.Info("No operations requested, re-encoding as %s", res.Directive.Format)
	} else {
		a.printer.Info("Applied %s", joinStages(res.Applied))
	}
	b := res.Image.Bounds()
	a.printer.Success("Wrote %s (%dx%d %s, quality %d)", a.printer.Bold(out), b.Dx(), b.Dy(), res.Directive.Format, req.Quality())
	return nil
}

func joinStages(stages []transform.Stage) string {
	names := make([]string, len(stages))
	for i, s := range stages {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

func matchesExtension(path string, format transform.Format) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return format == transform.FormatJPEG
	case ".png":
		return format == transform.FormatPNG
	default:
		return false
	}
}

// reportBlur logs how far a blur-only request moved the pixels.
func (a *app) reportBlur(in image.Image, res *transform.Result) {
	if len(res.Applied) != 1 || res.Applied[0] != transform.StageBlur {
		return
	}
	delta, err := imaging.MeanDelta(in, res.Image)
	if err != nil {
		a.logger.Debug("blur delta unavailable", "error", err)
		return
	}
	a.logger.Debug("blur applied", "mean_lab_delta", delta)
}
