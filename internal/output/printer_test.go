package output

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestParseColorMode_Valid(t *testing.T) {
	tests := []struct {
		input string
		want  ColorMode
	}{
		{"", ColorAuto},
		{"auto", ColorAuto},
		{"always", ColorAlways},
		{"never", ColorNever},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColorMode(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseColorMode(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseColorMode_Invalid(t *testing.T) {
	if _, err := ParseColorMode("rainbow"); err == nil {
		t.Error("expected error for invalid color mode, got nil")
	}
}

func TestResolveColors(t *testing.T) {
	t.Run("always ignores NO_COLOR", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		if !ResolveColors(ColorAlways, false) {
			t.Error("ColorAlways should enable colors")
		}
	})

	t.Run("never ignores config", func(t *testing.T) {
		if ResolveColors(ColorNever, true) {
			t.Error("ColorNever should disable colors")
		}
	})

	t.Run("auto honors NO_COLOR", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		if ResolveColors(ColorAuto, true) {
			t.Error("NO_COLOR set should disable colors")
		}
	})

	t.Run("auto honors dumb terminal", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		os.Unsetenv("NO_COLOR")
		t.Setenv("TERM", "dumb")
		if ResolveColors(ColorAuto, true) {
			t.Error("TERM=dumb should disable colors")
		}
	})

	t.Run("auto follows config", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		os.Unsetenv("NO_COLOR")
		t.Setenv("TERM", "xterm-256color")
		if !ResolveColors(ColorAuto, true) {
			t.Error("config colors=true should enable colors")
		}
		if ResolveColors(ColorAuto, false) {
			t.Error("config colors=false should disable colors")
		}
	})
}

func newTestPrinter(quiet bool) (*Printer, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	p := NewPrinter(PrinterOptions{
		ColorMode: ColorNever,
		Quiet:     quiet,
		Out:       &stdout,
		Err:       &stderr,
	})
	return p, &stdout, &stderr
}

func TestPrinter_PlainOutput(t *testing.T) {
	p, stdout, stderr := newTestPrinter(false)

	p.Info("decoding %s", "in.png")
	p.Success("Wrote %s", "out.png")
	p.Warning("large image")

	out := stdout.String()
	if !strings.Contains(out, "decoding in.png\n") {
		t.Errorf("missing info line: %q", out)
	}
	if !strings.Contains(out, "[OK] Wrote out.png\n") {
		t.Errorf("missing success line: %q", out)
	}
	if got := stderr.String(); got != "[WARN] large image\n" {
		t.Errorf("warning = %q", got)
	}
	if got := p.Bold("x"); got != "x" {
		t.Errorf("Bold without colors = %q, want plain text", got)
	}
}

func TestPrinter_Quiet(t *testing.T) {
	p, stdout, stderr := newTestPrinter(true)

	p.Info("info")
	p.Success("done")
	p.Warning("careful")

	if stdout.Len() != 0 || stderr.Len() != 0 {
		t.Errorf("quiet printer wrote output: stdout=%q stderr=%q", stdout.String(), stderr.String())
	}
}
