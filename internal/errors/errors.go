package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/Karthik0484/Progress-Tracker/internal/logger"
)

// Exit codes returned by the CLI
const (
	ExitFailure   = 1
	ExitRejected  = 2 // a mutation was refused (overlap, invalid range)
	ExitCorrupted = 3 // stored data failed validation; restore a snapshot
)

type codedError struct {
	err  error
	code int
}

func (e *codedError) Error() string { return e.err.Error() }
func (e *codedError) Unwrap() error { return e.err }

// WithExitCode attaches a process exit code to err.
func WithExitCode(err error, code int) error {
	if err == nil {
		return nil
	}
	return &codedError{err: err, code: code}
}

// ExitCode returns the exit code attached to err, or ExitFailure.
func ExitCode(err error) int {
	var coded *codedError
	if stderrors.As(err, &coded) {
		return coded.code
	}
	return ExitFailure
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits with the code attached to it
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(ExitCode(err))
	}
}
