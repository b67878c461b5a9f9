package core

import (
	"errors"
	"fmt"
)

// Exit codes returned by the gx CLI.
const (
	ExitOK      = 0
	ExitRuntime = 1
	ExitUsage   = 2
)

// CLIError carries a user-visible message and exit code.
type CLIError struct {
	Code int
	Msg  string
	Err  error
}

func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// WrapError creates a CLIError with an underlying error.
func WrapError(code int, msg string, err error) *CLIError {
	return &CLIError{Code: code, Msg: msg, Err: err}
}

// UsageError reports bad command-line input.
func UsageError(format string, args ...any) *CLIError {
	return &CLIError{Code: ExitUsage, Msg: fmt.Sprintf(format, args...)}
}

// ExitCode returns the CLI exit code from err.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return cliErr.Code
	}
	return ExitRuntime
}
