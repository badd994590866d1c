package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/configmaster/configmaster/pkg/models"
)

// Environment variables that override file values.
const (
	EnvLanguage = "CONFIGMASTER_LANGUAGE"
	EnvStyle    = "CONFIGMASTER_STYLE"
	EnvMessage  = "CONFIGMASTER_MESSAGE"
	EnvDebug    = "CONFIGMASTER_DEBUG"
	EnvAsync    = "CONFIGMASTER_ASYNC"
	EnvLogLevel = "CONFIGMASTER_LOG_LEVEL"
)

// LookupFunc matches the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// ApplyEnvOverrides applies process environment overrides to cfg.
// Environment variables have higher priority than file-based values.
func ApplyEnvOverrides(cfg *AppConfig) error {
	return ApplyEnv(cfg, os.LookupEnv)
}

// ApplyEnv applies the overrides found through lookup. Empty values are
// ignored. An unparseable value fails without modifying cfg further.
func ApplyEnv(cfg *AppConfig, lookup LookupFunc) error {
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get(EnvLanguage); ok {
		lang, err := models.ParseLanguage(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidEnvOverride, EnvLanguage, err)
		}
		cfg.Language = lang
	}
	if v, ok := get(EnvStyle); ok {
		cfg.TemplateStyle = v
	}
	if v, ok := lookup(EnvMessage); ok && v != "" {
		cfg.SetMessage(v)
	}
	if v, ok := get(EnvDebug); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalidEnvOverride, EnvDebug, v)
		}
		cfg.Debug = b
	}
	if v, ok := get(EnvAsync); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalidEnvOverride, EnvAsync, v)
		}
		cfg.AsyncMode = b
	}
	if v, ok := get(EnvLogLevel); ok {
		cfg.LogLevel = strings.ToUpper(v)
	}
	return nil
}
