package config

import (
	"github.com/configmaster/configmaster/pkg/models"
)

// AppConfig holds the options for one greeting invocation. It is built
// from defaults, optionally overridden by a file, the environment and
// CLI flags, and is not mutated once a greeting is resolved.
type AppConfig struct {
	Debug         bool            `json:"debug" yaml:"debug"`
	Language      models.Language `json:"language" yaml:"language"`
	TemplateStyle string          `json:"template_style" yaml:"template_style"`
	CustomMessage *string         `json:"custom_message" yaml:"custom_message"`
	AsyncMode     bool            `json:"async_mode" yaml:"async_mode"`
	LogLevel      string          `json:"log_level" yaml:"log_level"`
}

// Entry is one key/value pair of the ordered configuration view.
type Entry struct {
	Key   string
	Value any
}

// Entries returns the configuration as ordered key/value pairs, in the
// same order and with the same keys as the file format.
func (c *AppConfig) Entries() []Entry {
	var msg any
	if c.CustomMessage != nil {
		msg = *c.CustomMessage
	}
	return []Entry{
		{Key: "debug", Value: c.Debug},
		{Key: "language", Value: string(c.Language)},
		{Key: "template_style", Value: c.TemplateStyle},
		{Key: "custom_message", Value: msg},
		{Key: "async_mode", Value: c.AsyncMode},
		{Key: "log_level", Value: c.LogLevel},
	}
}

// Message returns the custom message, or "" when unset.
func (c *AppConfig) Message() string {
	if c.CustomMessage == nil {
		return ""
	}
	return *c.CustomMessage
}

// SetMessage sets the custom message. An empty string clears it.
func (c *AppConfig) SetMessage(msg string) {
	if msg == "" {
		c.CustomMessage = nil
		return
	}
	c.CustomMessage = &msg
}

// Clone returns a deep copy of c.
func (c *AppConfig) Clone() *AppConfig {
	cp := *c
	if c.CustomMessage != nil {
		msg := *c.CustomMessage
		cp.CustomMessage = &msg
	}
	return &cp
}
