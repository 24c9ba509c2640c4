package cli

import (
	"errors"
	"fmt"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: file I/O errors, archive errors, unexpected failures.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: unknown flags or invalid flag combinations.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: no student with the roll number, unknown snapshot ID.
	ExitNotFound = 3

	// ExitValidation indicates a validation error.
	// Use for: empty name, roll number or grade.
	ExitValidation = 5
)

// CommandError carries an exit code and a machine-readable kind alongside the
// user-facing message of a failed command
type CommandError struct {
	Code       int
	Kind       string
	Message    string
	Suggestion string
	Err        error
}

// NewCommandError wraps err with an exit code and error kind
func NewCommandError(code int, kind string, message string, err error) *CommandError {
	return &CommandError{Code: code, Kind: kind, Message: message, Err: err}
}

// WithSuggestion attaches a hint printed after the error message
func (e *CommandError) WithSuggestion(suggestion string) *CommandError {
	e.Suggestion = suggestion
	return e
}

func (e *CommandError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error returned by a command to a process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *CommandError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitError
}

// errorKind returns the machine-readable kind of err for JSON output
func errorKind(err error) string {
	var exitErr *CommandError
	if errors.As(err, &exitErr) && exitErr.Kind != "" {
		return exitErr.Kind
	}
	return "ERROR"
}

// errorSuggestion returns the hint attached to err, if any
func errorSuggestion(err error) string {
	var exitErr *CommandError
	if errors.As(err, &exitErr) {
		return exitErr.Suggestion
	}
	return ""
}
