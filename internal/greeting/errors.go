package greeting

import (
	"errors"
	"fmt"
	"time"
)

// ErrOperationTimeout indicates the asynchronous greeting exceeded its deadline.
var ErrOperationTimeout = errors.New("greeting: operation timed out")

// OperationTimeoutError reports an asynchronous greeting that did not
// finish within its deadline. Retrying is safe.
type OperationTimeoutError struct {
	Name    string
	Timeout time.Duration
}

// Error implements the error interface.
func (e *OperationTimeoutError) Error() string {
	return fmt.Sprintf("async greeting for %q timed out after %s", e.Name, e.Timeout)
}

// Unwrap returns ErrOperationTimeout.
func (e *OperationTimeoutError) Unwrap() error {
	return ErrOperationTimeout
}
