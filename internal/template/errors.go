package template

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for template operations.
var (
	// ErrTemplateNotFound indicates the requested style is not registered.
	ErrTemplateNotFound = errors.New("template: not found")

	// ErrTemplateFormat indicates a malformed template pattern.
	ErrTemplateFormat = errors.New("template: malformed pattern")
)

// NotFoundError reports a template style missing from the registry.
type NotFoundError struct {
	Style     string
	Available []string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("template style %q not found", e.Style)
	}
	return fmt.Sprintf("template style %q not found (available: %s)", e.Style, strings.Join(e.Available, ", "))
}

// Unwrap returns ErrTemplateNotFound.
func (e *NotFoundError) Unwrap() error {
	return ErrTemplateNotFound
}

// FormatError reports a pattern that cannot be rendered. It points to a
// bug in registry data rather than bad user input.
type FormatError struct {
	Pattern     string
	Placeholder string
	Reason      string
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	if e.Placeholder != "" {
		return fmt.Sprintf("template pattern %q: %s %q", e.Pattern, e.Reason, e.Placeholder)
	}
	return fmt.Sprintf("template pattern %q: %s", e.Pattern, e.Reason)
}

// Unwrap returns ErrTemplateFormat.
func (e *FormatError) Unwrap() error {
	return ErrTemplateFormat
}
