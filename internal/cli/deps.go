// Package cli provides the Cobra command tree and dependency injection
// wiring for the configmaster CLI. This file defines the Dependencies
// struct (Composition Root) that wires the domain packages together.
package cli

import (
	"io"
	"os"

	"github.com/configmaster/configmaster/internal/cli/wizard"
	"github.com/configmaster/configmaster/internal/config"
	"github.com/configmaster/configmaster/internal/greeting"
	"github.com/configmaster/configmaster/internal/i18n"
	"github.com/configmaster/configmaster/internal/logging"
	"github.com/configmaster/configmaster/internal/template"
	"github.com/configmaster/configmaster/internal/ui"
)

// Dependencies holds the services used by CLI commands. This is the
// Composition Root: the only place where concrete types are chosen.
// Tests build their own Dependencies instead of calling NewDependencies.
type Dependencies struct {
	Catalog   *i18n.Catalog
	Templates *template.Registry
	// LogOutput receives every log record; stdout is reserved for results.
	LogOutput io.Writer
	LookupEnv config.LookupFunc
	Headless  *ui.HeadlessManager
	RunWizard func([]wizard.Question) (*wizard.Result, error)
	// Color enables lipgloss styling and the auto glamour style.
	Color bool
	// ResolverOptions are appended after the wiring options, so they
	// win. Tests use them to shorten the async delay.
	ResolverOptions []greeting.Option
}

// NewDependencies creates the production wiring.
func NewDependencies() *Dependencies {
	return &Dependencies{
		Catalog:   i18n.Default(),
		Templates: template.Default(),
		LogOutput: os.Stderr,
		LookupEnv: os.LookupEnv,
		Headless:  ui.NewHeadlessManager(),
		RunWizard: wizard.Run,
		Color:     ui.ColorEnabled(os.Stdout),
	}
}

// Logs returns the logger provider for one invocation. An unknown level
// falls back to INFO; AppConfig.Validate reports it to the user.
func (d *Dependencies) Logs(format, level string) logging.Provider {
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		lvl = logging.DefaultLevel
	}
	return logging.NewFactory(d.LogOutput, format, lvl)
}

// Resolver builds a greeting resolver over the injected catalog and
// registry.
func (d *Dependencies) Resolver(logs logging.Provider) *greeting.Resolver {
	opts := []greeting.Option{
		greeting.WithTranslations(d.Catalog),
		greeting.WithTemplates(d.Templates),
		greeting.WithLogger(logs),
	}
	return greeting.NewResolver(append(opts, d.ResolverOptions...)...)
}
