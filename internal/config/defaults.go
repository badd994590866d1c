package config

import (
	"github.com/configmaster/configmaster/pkg/models"
)

// Default value constants to avoid magic numbers and strings.
const (
	DefaultLanguage      = models.DefaultLanguage
	DefaultTemplateStyle = "default"
	DefaultLogLevel      = "INFO"
	DebugLogLevel        = "DEBUG"
)

// NewDefault returns an AppConfig with all fields set to compiled defaults.
func NewDefault() *AppConfig {
	return &AppConfig{
		Debug:         false,
		Language:      DefaultLanguage,
		TemplateStyle: DefaultTemplateStyle,
		CustomMessage: nil,
		AsyncMode:     false,
		LogLevel:      DefaultLogLevel,
	}
}
