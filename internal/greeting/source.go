package greeting

import (
	"github.com/configmaster/configmaster/internal/template"
	"github.com/configmaster/configmaster/pkg/models"
)

// Built-in patterns for the "default" style. Japanese uses the
// ideographic comma; every other language shares the Latin pattern.
const (
	cjkDefaultPattern   = "{prefix}、{name}! {message}"
	latinDefaultPattern = "{prefix}, {name}! {message}"
)

// templateSource is where the pattern for a greeting comes from: the
// registry entry itself, or the built-in per-language default.
type templateSource interface {
	pattern() string
	kind() string
}

// registrySource uses the registered pattern unchanged.
type registrySource struct {
	info template.Info
}

func (s registrySource) pattern() string { return s.info.Pattern }
func (s registrySource) kind() string    { return "registry" }

// builtinDefault overrides the registered "default" pattern so the
// punctuation matches the language.
type builtinDefault struct {
	lang models.Language
}

func (s builtinDefault) pattern() string {
	if s.lang == models.LanguageJA {
		return cjkDefaultPattern
	}
	return latinDefaultPattern
}

func (s builtinDefault) kind() string { return "builtin-default" }

// resolveSource picks the template source for style.
func resolveSource(style string, info template.Info, lang models.Language) templateSource {
	if style == template.DefaultStyle {
		return builtinDefault{lang: lang}
	}
	return registrySource{info: info}
}
