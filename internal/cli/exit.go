package cli

import (
	"errors"
	"fmt"

	"dnaflow/internal/appcore"
)

// ExitError carries a process exit code out of a command. An empty Message
// means the failure was already reported on stderr.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		if e.Message == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error { return e.Err }

// exitCode turns a run's exit code into a command error (nil for success).
func exitCode(code int) error {
	if code == appcore.ExitOK {
		return nil
	}
	return &ExitError{Code: code}
}

// ExitCode extracts the exit code from err. Errors that are not ExitErrors
// come from flag or argument parsing and map to the usage code.
func ExitCode(err error) int {
	if err == nil {
		return appcore.ExitOK
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return appcore.ExitUsage
}
