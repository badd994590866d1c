package wizard

import (
	"slices"

	"github.com/configmaster/configmaster/internal/config"
	"github.com/configmaster/configmaster/internal/template"
	"github.com/configmaster/configmaster/pkg/models"
)

// logLevels offered by the wizard. WARN is accepted in files but only
// WARNING is offered here.
var logLevels = []string{"DEBUG", "INFO", "WARNING", "ERROR", "CRITICAL"}

// DefaultQuestions returns the config questions, pre-filled from cfg.
// The order is:
// 1. Greeting language
// 2. Template style
// 3. Custom message
// 4. Debug mode
// 5. Log level
func DefaultQuestions(cfg *config.AppConfig, reg *template.Registry) []Question {
	if cfg == nil {
		cfg = config.NewDefault()
	}

	langOpts := make([]Option, 0, len(models.SupportedLanguages()))
	for _, lang := range models.SupportedLanguages() {
		langOpts = append(langOpts, Option{Label: lang.Name(), Value: string(lang)})
	}

	var styleOpts []Option
	for _, e := range reg.Entries() {
		styleOpts = append(styleOpts, Option{Label: e.Style, Value: e.Style, Desc: e.Description})
	}

	levelOpts := make([]Option, len(logLevels))
	for i, lvl := range logLevels {
		levelOpts[i] = Option{Label: lvl, Value: lvl}
	}

	debug := "false"
	if cfg.Debug {
		debug = "true"
	}

	return []Question{
		{
			ID:          IDLanguage,
			Type:        QuestionTypeSelect,
			Title:       "Select greeting language",
			Description: "Prefix and suffix of every greeting are taken from this language.",
			Options:     defaultFirst(langOpts, string(cfg.Language)),
			Default:     string(cfg.Language),
		},
		{
			ID:          IDStyle,
			Type:        QuestionTypeSelect,
			Title:       "Select template style",
			Description: "Run \"configmaster templates\" for full patterns.",
			Options:     defaultFirst(styleOpts, cfg.TemplateStyle),
			Default:     cfg.TemplateStyle,
		},
		{
			ID:          IDMessage,
			Type:        QuestionTypeInput,
			Title:       "Enter a custom message",
			Description: "Inserted verbatim at {message}. Leave empty for none.",
			Default:     cfg.Message(),
		},
		{
			ID:      IDDebug,
			Type:    QuestionTypeConfirm,
			Title:   "Enable debug mode?",
			Default: debug,
		},
		{
			ID:      IDLogLevel,
			Type:    QuestionTypeSelect,
			Title:   "Select log level",
			Options: defaultFirst(levelOpts, normalizeLevel(cfg.LogLevel)),
			Default: normalizeLevel(cfg.LogLevel),
		},
	}
}

// defaultFirst moves the option matching def to the front.
// huh v0.8.x scrolls the viewport to the initially selected index,
// which hides options above it when the default is not first.
func defaultFirst(opts []Option, def string) []Option {
	i := slices.IndexFunc(opts, func(o Option) bool { return o.Value == def })
	if i <= 0 {
		return opts
	}
	out := make([]Option, 0, len(opts))
	out = append(out, opts[i])
	out = append(out, opts[:i]...)
	return append(out, opts[i+1:]...)
}

func normalizeLevel(level string) string {
	if level == "WARN" {
		return "WARNING"
	}
	if slices.Contains(logLevels, level) {
		return level
	}
	return config.DefaultLogLevel
}
