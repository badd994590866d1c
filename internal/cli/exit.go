package cli

import (
	"context"
	"errors"

	"github.com/charmbracelet/huh"

	"github.com/configmaster/configmaster/internal/cli/wizard"
)

// Process exit codes.
const (
	ExitOK        = 0
	ExitError     = 1
	ExitCancelled = 130
)

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled),
		errors.Is(err, wizard.ErrCancelled),
		errors.Is(err, huh.ErrUserAborted):
		return ExitCancelled
	default:
		return ExitError
	}
}

// reportedError marks an error whose details were already written to
// stdout by the command. It still maps to ExitError.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }
