package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/configmaster/configmaster/internal/validation"
)

// TemplateLookup reports whether a template style is registered.
type TemplateLookup interface {
	Has(style string) bool
}

// validLogLevels lists accepted log_level values (case-insensitive).
var validLogLevels = []string{"DEBUG", "INFO", "WARNING", "WARN", "ERROR", "CRITICAL"}

// Validate checks the configuration and returns a *validation.Errors
// holding every failing field, or nil. The language is not checked here:
// models.Language rejects unsupported values when it is parsed or decoded.
func (c *AppConfig) Validate(templates TemplateLookup) error {
	ve := &validation.Errors{}

	if !templates.Has(c.TemplateStyle) {
		ve.Add("template_style", fmt.Sprintf("template style %q is not registered", c.TemplateStyle), nil)
	}

	if !IsValidLogLevel(c.LogLevel) {
		ve.Add("log_level", fmt.Sprintf("must be one of: %s", strings.Join(validLogLevels, ", ")), c.LogLevel)
	}

	return ve.Err()
}

// IsValidLogLevel reports whether level is an accepted log_level value.
func IsValidLogLevel(level string) bool {
	return slices.Contains(validLogLevels, strings.ToUpper(strings.TrimSpace(level)))
}
