package output

import (
	"github.com/fatih/color"
)

// Process exit codes. Each failure class of a transform gets its own code so
// scripts can react without parsing messages.
const (
	ExitSuccess      = 0
	ExitGeneral      = 1 // anything not classified below
	ExitInvalidInput = 2 // bad parameters or command-line usage
	ExitBounds       = 3 // crop outside the image or zero-area target
	ExitIO           = 4 // input unreadable or output unwritable
	ExitConfigError  = 5 // config file, environment or backend selection
)

// CLIError is a failure ready to be shown to the user: a one-line Summary,
// optional Detail (usually the wrapped error text) and Suggestion, and the
// exit code the process should end with.
type CLIError struct {
	Summary    string
	Detail     string
	Suggestion string
	ExitCode   int
	Err        error
}

func (e *CLIError) Error() string { return e.Summary }

func (e *CLIError) Unwrap() error { return e.Err }

// FormatError writes e to Err. Error reports ignore quiet mode.
func (p *Printer) FormatError(e *CLIError) {
	p.line(p.err, []color.Attribute{color.FgRed, color.Bold}, "Error: ", "[ERROR] ", "%s", e.Summary)
	if e.Detail != "" {
		p.line(p.err, nil, "", "", "  Cause: %s", e.Detail)
	}
	if e.Suggestion != "" {
		p.line(p.err, []color.Attribute{color.FgCyan}, "", "", "  Suggestion: %s", e.Suggestion)
	}
}
