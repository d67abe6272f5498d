package cli

import (
	"errors"
	"strings"
)

// Process exit codes
const (
	ExitSuccess        = 0
	ExitRuntimeFailure = 1
	ExitInvalidUsage   = 2
	ExitInvalidConfig  = 3
	ExitInterrupted    = 130
)

type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func withExitCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &ExitError{Code: code, Err: err}
}

func mapExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var coded *ExitError
	if errors.As(err, &coded) {
		return coded.Code
	}
	message := err.Error()
	if strings.Contains(message, "unknown command") || strings.Contains(message, "unknown flag") {
		return ExitInvalidUsage
	}
	return ExitRuntimeFailure
}
