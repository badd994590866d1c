// Package validation provides field-keyed validation errors that can
// aggregate several independent failures into a single error value.
package validation

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalid is matched by every validation failure via errors.Is.
var ErrInvalid = errors.New("validation: invalid input")

// Error represents a single validation failure with field context.
type Error struct {
	Field   string
	Message string
	Value   any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap returns ErrInvalid.
func (e *Error) Unwrap() error {
	return ErrInvalid
}

// Errors is a collection of validation failures.
type Errors struct {
	Errors []Error
}

// New returns an aggregate holding one failure.
func New(field, message string) *Errors {
	return &Errors{Errors: []Error{{Field: field, Message: message}}}
}

// Add appends a failure.
func (e *Errors) Add(field, message string, value any) {
	e.Errors = append(e.Errors, Error{Field: field, Message: message, Value: value})
}

// Err returns e when it holds at least one failure, nil otherwise.
func (e *Errors) Err() error {
	if e == nil || len(e.Errors) == 0 {
		return nil
	}
	return e
}

// Error implements the error interface.
func (e *Errors) Error() string {
	if len(e.Errors) == 0 {
		return "validation: no errors"
	}
	msgs := make([]string, len(e.Errors))
	for i := range e.Errors {
		msgs[i] = e.Errors[i].Error()
	}
	return fmt.Sprintf("validation failed with %d error(s): %s", len(e.Errors), strings.Join(msgs, "; "))
}

// Is reports ErrInvalid for any non-empty aggregate.
func (e *Errors) Is(target error) bool {
	return target == ErrInvalid && len(e.Errors) > 0
}

// Fields returns the failures as field name to message. When a field
// failed more than once the messages are joined with "; ".
func (e *Errors) Fields() map[string]string {
	fields := make(map[string]string, len(e.Errors))
	for _, fe := range e.Errors {
		if prev, ok := fields[fe.Field]; ok {
			fields[fe.Field] = prev + "; " + fe.Message
			continue
		}
		fields[fe.Field] = fe.Message
	}
	return fields
}

// Has reports whether field has at least one failure.
func (e *Errors) Has(field string) bool {
	for _, fe := range e.Errors {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// Field returns the first message recorded for field.
func (e *Errors) Field(field string) (string, bool) {
	for _, fe := range e.Errors {
		if fe.Field == field {
			return fe.Message, true
		}
	}
	return "", false
}

// HasField reports whether err is a validation aggregate with a failure
// keyed under field.
func HasField(err error, field string) bool {
	var ve *Errors
	return errors.As(err, &ve) && ve.Has(field)
}
