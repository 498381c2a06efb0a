// Package output renders resizer's terminal messages and error reports.
//
// Messages go through a Printer, which decides once, at construction, whether
// to emit ANSI colors. Without colors every line carries a bracketed tag
// ([OK], [WARN], [ERROR]) so logs and scripts can still tell them apart.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// ColorMode is the value of the --color flag.
type ColorMode int

const (
	// ColorAuto colors output unless NO_COLOR is set, TERM is dumb, or the
	// config turns colors off.
	ColorAuto ColorMode = iota
	// ColorAlways colors output unconditionally.
	ColorAlways
	// ColorNever disables colors.
	ColorNever
)

// PrinterOptions holds everything NewPrinter needs.
type PrinterOptions struct {
	ColorMode ColorMode
	// ConfigColors is output.colors from the resizer config; it only
	// matters in ColorAuto mode.
	ConfigColors bool
	// Quiet drops everything except error reports.
	Quiet bool
	// Out and Err default to os.Stdout and os.Stderr.
	Out io.Writer
	Err io.Writer
}

// Printer writes progress lines to Out and diagnostics to Err.
type Printer struct {
	out       io.Writer
	err       io.Writer
	useColors bool
	quiet     bool
}

// ParseColorMode converts a --color value. An empty string means auto.
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	}
	return ColorAuto, fmt.Errorf("--color must be auto, always or never, got %q", s)
}

// ResolveColors reports whether a Printer built with mode should emit colors.
func ResolveColors(mode ColorMode, configColors bool) bool {
	if mode != ColorAuto {
		return mode == ColorAlways
	}
	if _, set := os.LookupEnv("NO_COLOR"); set || os.Getenv("TERM") == "dumb" {
		return false
	}
	return configColors
}

// NewPrinter returns a Printer configured by opts.
func NewPrinter(opts PrinterOptions) *Printer {
	out, errw := opts.Out, opts.Err
	if out == nil {
		out = os.Stdout
	}
	if errw == nil {
		errw = os.Stderr
	}
	return &Printer{
		out:       out,
		err:       errw,
		useColors: ResolveColors(opts.ColorMode, opts.ConfigColors),
		quiet:     opts.Quiet,
	}
}

// line writes one formatted line. With colors it is painted with attrs and
// prefixed by mark; without colors it is prefixed by tag.
func (p *Printer) line(w io.Writer, attrs []color.Attribute, mark, tag, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if !p.useColors {
		fmt.Fprintln(w, tag+msg)
		return
	}
	if len(attrs) == 0 {
		fmt.Fprintln(w, mark+msg)
		return
	}
	color.New(attrs...).Fprintln(w, mark+msg)
}

// Info reports progress, such as which stages ran.
func (p *Printer) Info(format string, args ...interface{}) {
	if p.quiet {
		return
	}
	p.line(p.out, []color.Attribute{color.FgCyan}, "", "", format, args...)
}

// Success reports a written output file.
func (p *Printer) Success(format string, args ...interface{}) {
	if p.quiet {
		return
	}
	p.line(p.out, []color.Attribute{color.FgGreen}, "✓ ", "[OK] ", format, args...)
}

// Warning reports a suspicious but non-fatal condition on Err.
func (p *Printer) Warning(format string, args ...interface{}) {
	if p.quiet {
		return
	}
	p.line(p.err, []color.Attribute{color.FgYellow}, "! ", "[WARN] ", format, args...)
}

// Bold highlights text, typically a file path, when colors are on.
func (p *Printer) Bold(text string) string {
	if !p.useColors {
		return text
	}
	return color.New(color.Bold).Sprint(text)
}
