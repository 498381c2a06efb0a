// Package cli implements the resizer command line.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ironsheep/image-resizer/internal/config"
	"github.com/ironsheep/image-resizer/internal/imaging"
	"github.com/ironsheep/image-resizer/internal/output"
	"github.com/ironsheep/image-resizer/internal/transform"
)

// BuildInfo carries the version details injected at link time.
type BuildInfo struct {
	Version   string
	Commit    string
	BuildTime string
}

// app holds the state shared by the root command and its subcommands for a
// single invocation.
type app struct {
	info    BuildInfo
	v       *viper.Viper
	cfg     *config.Config
	logger  *slog.Logger
	printer *output.Printer

	cfgFile   string
	verbose   bool
	quiet     bool
	colorMode string

	resize  []int
	crop    []int
	quality int
	blur    int
	format  string
}

// usageError marks command-line mistakes (bad flags, wrong argument count).
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// configError marks failures loading or validating configuration.
type configError struct {
	err error
}

func (e *configError) Error() string { return e.err.Error() }
func (e *configError) Unwrap() error { return e.err }

// NewRootCommand builds the resizer command tree.
func NewRootCommand(info BuildInfo) *cobra.Command {
	a := &app{info: info, v: viper.New()}
	return a.rootCommand()
}

func (a *app) rootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resizer input-file [options] output-file",
		Short: "Blur, crop and resize an image",
		Long: `resizer transforms a single image and writes the result as JPEG or PNG.

Operations always run in the order blur, crop, resize regardless of the
order the options are given in. Any option may be omitted.

Example usage:
  resizer in.png --resize 200 150 out.jpg
  resizer in.png --crop 400 300 200 150 --resize 200 150 --format PNG out.png
  resizer in.jpg --blur 5 --quality 80 out.jpg`,
		Version:       a.info.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return &usageError{fmt.Errorf("expected an input file and an output file, got %d argument(s)", len(args))}
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, args[0], args[1])
		},
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err}
	})

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default is .resizer.yaml)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	pf.BoolVarP(&a.quiet, "quiet", "q", false, "only report errors")
	pf.StringVar(&a.colorMode, "color", "auto", "color output: auto, always, never")
	pf.String("smooth-backend", "", fmt.Sprintf("blur implementation %v", imaging.SmootherNames()))
	pf.String("resize-backend", "", fmt.Sprintf("resize implementation %v", imaging.ResizerNames()))

	for key, flag := range map[string]string{
		"backend.smooth": "smooth-backend",
		"backend.resize": "resize-backend",
	} {
		if err := a.v.BindPFlag(key, pf.Lookup(flag)); err != nil {
			panic(fmt.Sprintf("bind --%s to %s: %v", flag, key, err))
		}
	}

	f := cmd.Flags()
	f.IntSliceVar(&a.resize, "resize", nil, "resize to `width height` pixels")
	f.IntSliceVar(&a.crop, "crop", nil, "crop a `width height x y` region")
	f.IntVar(&a.quality, "quality", transform.MaxQuality, "encode quality, 0-100")
	f.IntVar(&a.blur, "blur", 0, "Gaussian blur radius in pixels")
	f.StringVar(&a.format, "format", string(transform.FormatJPEG), "output format: JPEG or PNG")

	cmd.AddCommand(a.versionCommand(), a.serveCommand())
	return cmd
}

// initConfig loads configuration and sets up the logger and printer.
func (a *app) initConfig(cmd *cobra.Command) error {
	mode, err := output.ParseColorMode(a.colorMode)
	if err != nil {
		return &usageError{err}
	}

	a.cfg, err = config.LoadWith(a.v, a.cfgFile)
	if err != nil {
		return &configError{err}
	}

	a.logger = newLogger(cmd.ErrOrStderr(), a.cfg.Logging, a.verbose)
	a.printer = output.NewPrinter(output.PrinterOptions{
		ColorMode:    mode,
		ConfigColors: a.cfg.Output.Colors,
		Quiet:        a.quiet,
		Out:          cmd.OutOrStdout(),
		Err:          cmd.ErrOrStderr(),
	})

	a.logger.Debug("configuration loaded",
		"config_file", a.v.ConfigFileUsed(),
		"smooth_backend", a.cfg.Backend.Smooth,
		"resize_backend", a.cfg.Backend.Resize,
	)
	return nil
}

func newLogger(w io.Writer, cfg config.LoggingConfig, verbose bool) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// pipeline builds a Pipeline from the configured backends.
func (a *app) pipeline() (*transform.Pipeline, error) {
	smoother, err := imaging.SmootherByName(a.cfg.Backend.Smooth)
	if err != nil {
		return nil, &configError{err}
	}
	resizer, err := imaging.ResizerByName(a.cfg.Backend.Resize)
	if err != nil {
		return nil, &configError{err}
	}
	return transform.NewPipeline(
		transform.WithSmoother(smoother),
		transform.WithResizer(resizer),
		transform.WithLogger(a.logger),
	), nil
}

// Execute runs the command line in args and returns the process exit code.
// Errors are reported on stderr.
func Execute(info BuildInfo, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := NewRootCommand(info)
	cmd.SetArgs(normalizeArgs(args))
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return output.ExitSuccess
	}

	cliErr := classify(err)
	// Read --color from the raw arguments: flag parsing may have stopped
	// before reaching it.
	mode, perr := output.ParseColorMode(colorArg(args))
	if perr != nil {
		mode = output.ColorAuto
	}
	printer := output.NewPrinter(output.PrinterOptions{
		ColorMode:    mode,
		ConfigColors: true,
		Out:          stdout,
		Err:          stderr,
	})
	printer.FormatError(cliErr)
	return cliErr.ExitCode
}

// colorArg returns the last --color value in args, or "" when none is given.
func colorArg(args []string) string {
	mode := ""
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		if v, ok := strings.CutPrefix(arg, "--color="); ok {
			mode = v
		} else if arg == "--color" && i+1 < len(args) {
			mode = args[i+1]
			i++
		}
	}
	return mode
}

// classify maps an error to the user-facing message and exit code.
func classify(err error) *output.CLIError {
	var cliErr *output.CLIError
	if errors.As(err, &cliErr) {
		return cliErr
	}

	var usage *usageError
	var cfgErr *configError
	var pathErr *os.PathError

	switch {
	case errors.As(err, &usage):
		return &output.CLIError{
			Summary:    usage.Error(),
			Suggestion: "Run 'resizer --help' for usage",
			ExitCode:   output.ExitInvalidInput,
			Err:        err,
		}
	case errors.As(err, &cfgErr):
		return &output.CLIError{
			Summary:    "configuration error",
			Detail:     cfgErr.Error(),
			Suggestion: "Check .resizer.yaml and RESIZER_* environment variables or use --config",
			ExitCode:   output.ExitConfigError,
			Err:        err,
		}
	case errors.Is(err, transform.ErrInvalidParameters):
		return &output.CLIError{
			Summary:    "invalid parameters",
			Detail:     err.Error(),
			Suggestion: "Sizes, offsets and blur must be non-negative, quality 0-100, format JPEG or PNG",
			ExitCode:   output.ExitInvalidInput,
			Err:        err,
		}
	case errors.Is(err, transform.ErrOutOfBoundsCrop):
		return &output.CLIError{
			Summary:    "crop region outside image",
			Detail:     err.Error(),
			Suggestion: "Check the crop rectangle against the input dimensions",
			ExitCode:   output.ExitBounds,
			Err:        err,
		}
	case errors.Is(err, transform.ErrEmptyTarget):
		return &output.CLIError{
			Summary:  "empty output image",
			Detail:   err.Error(),
			ExitCode: output.ExitBounds,
			Err:      err,
		}
	case errors.Is(err, imaging.ErrDecode):
		return &output.CLIError{
			Summary:    "cannot read input image",
			Detail:     err.Error(),
			Suggestion: "Supported inputs are PNG, JPEG, GIF, BMP, TIFF and WebP",
			ExitCode:   output.ExitIO,
			Err:        err,
		}
	case errors.Is(err, imaging.ErrEncode), errors.As(err, &pathErr):
		return &output.CLIError{
			Summary:  "cannot write output image",
			Detail:   err.Error(),
			ExitCode: output.ExitIO,
			Err:      err,
		}
	default:
		return &output.CLIError{
			Summary:  err.Error(),
			ExitCode: output.ExitGeneral,
			Err:      err,
		}
	}
}
