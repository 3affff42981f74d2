package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestCLIError_Error(t *testing.T) {
	err := &CLIError{
		Summary:    "something failed",
		Detail:     "because of reasons",
		Suggestion: "try again",
		ExitCode:   ExitGeneral,
	}

	if err.Error() != "something failed" {
		t.Errorf("Error() = %q, want %q", err.Error(), "something failed")
	}
}

func TestFormatError_AllFields(t *testing.T) {
	var stderr bytes.Buffer
	p := NewPrinterWithOptions(PrinterOptions{
		ColorMode:    ColorNever,
		ConfigColors: false,
	})
	p.err = &stderr

	cliErr := &CLIError{
		Summary:    "unknown model deployment: foo",
		Detail:     "deployment 'foo' is not in the catalog",
		Suggestion: "Run 'llmctl models' to see requestable deployments",
		ExitCode:   ExitUsageError,
	}

	p.FormatError(cliErr)

	out := stderr.String()
	if !strings.Contains(out, "unknown model deployment: foo") {
		t.Errorf("missing summary in output: %q", out)
	}
	if !strings.Contains(out, "deployment 'foo' is not in the catalog") {
		t.Errorf("missing detail in output: %q", out)
	}
	if !strings.Contains(out, "Run 'llmctl models' to see requestable deployments") {
		t.Errorf("missing suggestion in output: %q", out)
	}
}

func TestFormatError_NoDetail(t *testing.T) {
	var stderr bytes.Buffer
	p := NewPrinterWithOptions(PrinterOptions{
		ColorMode:    ColorNever,
		ConfigColors: false,
	})
	p.err = &stderr

	cliErr := &CLIError{
		Summary:  "config file not found",
		ExitCode: ExitConfigError,
	}

	p.FormatError(cliErr)

	out := stderr.String()
	if !strings.Contains(out, "config file not found") {
		t.Errorf("missing summary in output: %q", out)
	}
	if strings.Contains(out, "Cause:") {
		t.Errorf("unexpected Cause line without detail: %q", out)
	}
	if strings.Contains(out, "Suggestion:") {
		t.Errorf("unexpected Suggestion line without suggestion: %q", out)
	}
}
