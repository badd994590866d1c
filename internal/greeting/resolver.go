// Package greeting resolves the final greeting string from a name and an
// AppConfig, using the translation catalog and the template registry.
package greeting

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/configmaster/configmaster/internal/config"
	"github.com/configmaster/configmaster/internal/i18n"
	"github.com/configmaster/configmaster/internal/logging"
	"github.com/configmaster/configmaster/internal/template"
	"github.com/configmaster/configmaster/internal/validation"
	"github.com/configmaster/configmaster/pkg/models"
)

// MaxNameLength is the longest accepted name, in characters.
const MaxNameLength = 1000

// Async wrapper defaults.
const (
	DefaultAsyncTimeout = 5 * time.Second
	DefaultAsyncDelay   = 100 * time.Millisecond
)

// Translations looks up greeting affixes by language.
type Translations interface {
	Get(lang models.Language) (i18n.Translation, error)
}

// Templates looks up registered templates by style.
type Templates interface {
	Get(style string) (template.Info, error)
}

// Resolver produces greetings. It holds no mutable state and is safe
// for concurrent use.
type Resolver struct {
	translations Translations
	templates    Templates
	logs         logging.Provider
	asyncTimeout time.Duration
	asyncDelay   time.Duration
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithTranslations replaces the default translation catalog.
func WithTranslations(t Translations) Option {
	return func(r *Resolver) { r.translations = t }
}

// WithTemplates replaces the default template registry.
func WithTemplates(t Templates) Option {
	return func(r *Resolver) { r.templates = t }
}

// WithLogger sets the logger provider. Loggers are requested per call.
func WithLogger(p logging.Provider) Option {
	return func(r *Resolver) { r.logs = p }
}

// WithAsyncTimeout sets the deadline for GreetAsync.
func WithAsyncTimeout(d time.Duration) Option {
	return func(r *Resolver) { r.asyncTimeout = d }
}

// WithAsyncDelay sets the simulated work delay of GreetAsync.
func WithAsyncDelay(d time.Duration) Option {
	return func(r *Resolver) { r.asyncDelay = d }
}

// NewResolver creates a Resolver backed by the built-in catalog and
// registry unless overridden.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		translations: i18n.Default(),
		templates:    template.Default(),
		logs:         logging.Discard(),
		asyncTimeout: DefaultAsyncTimeout,
		asyncDelay:   DefaultAsyncDelay,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ValidateName rejects empty, whitespace-only and over-long names.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return validation.New("name", "Name cannot be empty")
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return validation.New("name", "Name is too long (max 1000 characters)")
	}
	return nil
}

// Greet returns the greeting for name. A nil cfg uses the defaults.
// Lookup errors from the catalog and registry are returned unchanged.
func (r *Resolver) Greet(name string, cfg *config.AppConfig) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}
	if cfg == nil {
		cfg = config.NewDefault()
	}

	log := r.logs.Logger(cfg.Debug)
	log.Debug("generating greeting", "name", name, "language", cfg.Language, "style", cfg.TemplateStyle)

	tr, err := r.translations.Get(cfg.Language)
	if err != nil {
		log.Debug("language lookup failed", "error", err)
		return "", err
	}

	info, err := r.templates.Get(cfg.TemplateStyle)
	if err != nil {
		log.Debug("template lookup failed", "style", cfg.TemplateStyle, "error", err)
		return "", err
	}

	src := resolveSource(cfg.TemplateStyle, info, cfg.Language)
	log.Debug("resolved template", "source", src.kind(), "pattern", src.pattern())

	msg, err := template.Format(src.pattern(), template.Values{
		Name:    name,
		Message: cfg.Message(),
		Prefix:  tr.Prefix,
		Suffix:  tr.Suffix,
	})
	if err != nil {
		log.Debug("template formatting failed", "error", err)
		return "", err
	}
	return msg, nil
}

// GreetAsync runs Greet after a single simulated-work suspension point,
// bounded by a deadline measured from the call. When the deadline passes
// first it returns *OperationTimeoutError; cancellation of ctx is
// returned as ctx.Err(). Outcomes otherwise match Greet exactly.
func (r *Resolver) GreetAsync(ctx context.Context, name string, cfg *config.AppConfig) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.asyncTimeout)
	defer cancel()

	debug := cfg != nil && cfg.Debug
	log := r.logs.Logger(debug)

	timer := time.NewTimer(r.asyncDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		err := ctx.Err()
		if errors.Is(err, context.DeadlineExceeded) {
			log.Warn("async greeting timed out", "name", name, "timeout", r.asyncTimeout)
			return "", &OperationTimeoutError{Name: name, Timeout: r.asyncTimeout}
		}
		return "", err
	case <-timer.C:
	}

	msg, err := r.Greet(name, cfg)
	if err != nil {
		log.Debug("async greeting failed", "error", err)
		return "", err
	}
	return msg, nil
}

// Greet resolves a greeting with a default Resolver.
func Greet(name string, cfg *config.AppConfig) (string, error) {
	return NewResolver().Greet(name, cfg)
}
