// Package exit describes how the ebar process terminates.
package exit

import (
	"errors"
	"fmt"
	"io"
	"os"
)

const (
	CodeSuccess = 0
	CodeError   = 1
	CodeUsage   = 2
)

// Result holds the output destination and exit code for program termination.
type Result struct {
	Output   io.Writer
	ExitCode int
	Message  string
}

// Print writes the result message to the configured output destination.
func (r *Result) Print() {
	if r.Message == "" {
		return
	}
	fmt.Fprint(r.Output, r.Message)
}

// Success creates a successful exit result that outputs to stdout with exit code 0.
func Success(message string) *Result {
	return &Result{
		Output:   os.Stdout,
		ExitCode: CodeSuccess,
		Message:  message,
	}
}

// Error creates an error exit result that outputs to stderr with exit code 1.
func Error(message string) *Result {
	return &Result{
		Output:   os.Stderr,
		ExitCode: CodeError,
		Message:  message,
	}
}

// Errorf creates an error exit result with formatted message.
func Errorf(format string, a ...any) *Result {
	return Error(fmt.Sprintf(format, a...))
}

// Usage creates an exit result for an invalid invocation, written to stderr
// with exit code 2.
func Usage(message string) *Result {
	return &Result{
		Output:   os.Stderr,
		ExitCode: CodeUsage,
		Message:  message,
	}
}

type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// MarkUsage wraps err so FromError reports it with the usage exit code.
func MarkUsage(err error) error {
	if err == nil {
		return nil
	}
	return usageError{err: err}
}

// IsUsage reports whether err, or any error it wraps, was marked with MarkUsage.
func IsUsage(err error) bool {
	var u usageError
	return errors.As(err, &u)
}

// FromError maps a command error to a result. A nil error is a silent success.
func FromError(err error) *Result {
	switch {
	case err == nil:
		return Success("")
	case IsUsage(err):
		return Usage(fmt.Sprintf("Error: %v\n", err))
	default:
		return Errorf("Error: %v\n", err)
	}
}
