package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hustcer/nanoid"
)

// ContextError adds operation and path context to an underlying error.
type ContextError struct {
	Op   string
	Path string
	Err  error
}

// Error returns the formatted error string with context.
func (e *ContextError) Error() string {
	if e.Op != "" && e.Path != "" {
		return e.Op + ": " + e.Path + ": " + e.Err.Error()
	}
	if e.Op != "" {
		return e.Op + ": " + e.Err.Error()
	}
	if e.Path != "" {
		return e.Path + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ContextError) Unwrap() error {
	return e.Err
}

// ExitCoder is implemented by errors that carry a specific process exit code.
type ExitCoder interface {
	ExitCode() int
}

// InvalidInputError marks an error caused by the user's input: a bad flag,
// alphabet or size.
type InvalidInputError struct {
	Err error
}

// Error implements the error interface.
func (e *InvalidInputError) Error() string { return e.Err.Error() }

// Unwrap returns the underlying error.
func (e *InvalidInputError) Unwrap() error { return e.Err }

// ExitCode returns 2.
func (e *InvalidInputError) ExitCode() int { return 2 }

// invalidInputf builds an InvalidInputError from a format string.
func invalidInputf(format string, args ...any) error {
	return &InvalidInputError{Err: fmt.Errorf(format, args...)}
}

// MismatchError is returned by compare when the IDs differ.
type MismatchError struct{}

// Error implements the error interface.
func (e *MismatchError) Error() string { return "ids differ" }

// ExitCode returns 1.
func (e *MismatchError) ExitCode() int { return 1 }

// classify wraps library errors caused by bad input so they exit with 2.
// Random source failures keep the generic exit code.
func classify(err error) error {
	var nerr *nanoid.Error
	if errors.As(err, &nerr) && nerr.Kind != nanoid.KindRandomGeneration {
		return &InvalidInputError{Err: err}
	}
	return err
}

// ExitCodeFromError returns the appropriate exit code for an error.
// nil returns 0, ExitCoder errors return their code, all others return 1.
func ExitCodeFromError(err error) int {
	if err == nil {
		return 0
	}
	var coder ExitCoder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return 1
}

// FormatError formats an error with the "nanoid: " prefix and trailing
// newline. A prefix already present on the message is not repeated.
func FormatError(err error) string {
	return fmt.Sprintf("nanoid: %s\n", strings.TrimPrefix(err.Error(), "nanoid: "))
}

// RunCLI executes the command with the given args, writing output to stdout
// and errors to stderr. It returns the appropriate exit code.
func RunCLI(cmd *cobra.Command, args []string, stdout io.Writer, stderr io.Writer) int {
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err != nil {
		fmt.Fprint(stderr, FormatError(err))
		return ExitCodeFromError(err)
	}
	return 0
}
