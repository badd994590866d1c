// Package config provides the configmaster application configuration:
// compiled defaults, validation, environment overrides and flat JSON or
// YAML persistence.
package config

import "errors"

// Sentinel errors for configuration operations.
var (
	// ErrInvalidConfigFile indicates a configuration file that could not be parsed.
	ErrInvalidConfigFile = errors.New("config: invalid configuration file")

	// ErrInvalidEnvOverride indicates an environment override with an unusable value.
	ErrInvalidEnvOverride = errors.New("config: invalid environment override")
)
