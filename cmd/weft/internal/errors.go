package internal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/weftlang/weft/internal/types"
)

// Exit code constants for the CLI
const (
	// ExitSuccess indicates successful execution
	ExitSuccess = 0
	// ExitError indicates a general error
	ExitError = 1
	// ExitRenderError indicates the template failed to render
	ExitRenderError = 2
	// ExitCancelled indicates the operation was cancelled
	ExitCancelled = 4
	// ExitConfigError indicates a configuration error
	ExitConfigError = 10
	// ExitTemplateError indicates a template registry error
	ExitTemplateError = 11
)

// CLIError represents a CLI-specific error with an exit code
type CLIError struct {
	Code    int
	Message string
	Cause   error
}

// Error implements the error interface
func (e *CLIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause error
func (e *CLIError) Unwrap() error {
	return e.Cause
}

// WrapError creates a new CLIError wrapping an existing error
func WrapError(code int, message string, err error) *CLIError {
	return &CLIError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// NewCLIError creates a new CLIError with the given code and message
func NewCLIError(code int, message string) *CLIError {
	return &CLIError{
		Code:    code,
		Message: message,
	}
}

// errPrefix is the prefix on CLI error lines. fatih/color degrades to
// plain text when stderr is not a terminal.
func errPrefix() string {
	return color.RedString("Error:")
}

// verboseRequested reports whether the user passed --verbose on this
// invocation.
func verboseRequested(cmd *cobra.Command) bool {
	flag := cmd.Flag("verbose")
	return flag != nil && flag.Changed
}

// HandleError prints err to the command's error output and returns the
// exit code for it. Causes are shown only under --verbose; the
// one-line message is the default surface.
func HandleError(cmd *cobra.Command, err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, context.Canceled) {
		cmd.PrintErrln("Operation cancelled")
		return ExitCancelled
	}

	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		printError(cmd, cliErr.Message, cliErr.Cause)
		return cliErr.Code
	}

	var weftErr *types.WeftError
	if errors.As(err, &weftErr) {
		printError(cmd, weftErr.Message, weftErr.Cause)
		return exitCodeFor(weftErr.Code)
	}

	cmd.PrintErrln(errPrefix(), err)
	return ExitError
}

func printError(cmd *cobra.Command, message string, cause error) {
	cmd.PrintErrln(errPrefix(), message)
	if cause != nil && verboseRequested(cmd) {
		cmd.PrintErrln("Cause:", cause)
	}
}

// exitCodeFor maps an error code to an exit class by its namespace.
// Codes outside the three mapped namespaces fall back to the general
// error code.
func exitCodeFor(code types.ErrorCode) int {
	switch {
	case strings.HasPrefix(string(code), "CONFIG_"):
		return ExitConfigError
	case strings.HasPrefix(string(code), "TEMPLATE_"):
		return ExitTemplateError
	case strings.HasPrefix(string(code), "INTERP_"):
		return ExitRenderError
	default:
		return ExitError
	}
}

// IsVerbose checks if verbose mode is enabled via environment variable or
// command-line argument. Used from panic recovery, where no parsed flag
// set is available.
func IsVerbose() bool {
	if os.Getenv("WEFT_VERBOSE") != "" {
		return true
	}

	for _, arg := range os.Args {
		if arg == "-v" || arg == "--verbose" {
			return true
		}
	}

	return false
}
