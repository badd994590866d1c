package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/configmaster/configmaster/internal/config"
	"github.com/configmaster/configmaster/internal/greeting"
	"github.com/configmaster/configmaster/internal/template"
	"github.com/configmaster/configmaster/pkg/models"
)

// greetOptions holds the greet flag values.
type greetOptions struct {
	debug      bool
	message    string
	configPath string
	style      string
	language   string
	async      bool
	saveConfig string
}

func newGreetCmd(d *Dependencies) *cobra.Command {
	opts := &greetOptions{}
	cmd := &cobra.Command{
		Use:   "greet <name>",
		Short: "Generate a greeting",
		Long: `Generate a greeting for NAME.

Values come from the config file (--config), then CONFIGMASTER_*
environment variables, then any flag given explicitly on the command line.

Example:
  configmaster greet Taro --language ja
  configmaster greet Sam --style formal --message "Welcome aboard."`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGreet(cmd, d, opts, args[0])
		},
	}

	f := cmd.Flags()
	f.BoolVar(&opts.debug, "debug", false, "Enable debug mode")
	f.StringVar(&opts.message, "message", "", "Additional custom message")
	f.StringVar(&opts.configPath, "config", "", "Path to config file (JSON, or YAML by .yaml/.yml extension)")
	f.StringVar(&opts.style, "style", template.DefaultStyle,
		"Greeting style ("+strings.Join(d.Templates.Names(), ", ")+")")
	f.StringVar(&opts.language, "language", string(models.DefaultLanguage),
		"Greeting language ("+strings.Join(models.SupportedLanguageCodes(), ", ")+")")
	f.BoolVar(&opts.async, "async", false, "Use async mode")
	f.StringVar(&opts.saveConfig, "save-config", "", "Save current settings to config file")
	return cmd
}

func runGreet(cmd *cobra.Command, d *Dependencies, opts *greetOptions, name string) error {
	out := cmd.OutOrStdout()

	if err := greeting.ValidateName(name); err != nil {
		return err
	}

	cfg, err := loadConfig(d, opts.configPath, false)
	if err != nil {
		return err
	}
	if err := applyGreetFlags(cmd.Flags(), opts, cfg); err != nil {
		return err
	}
	if err := cfg.Validate(d.Templates); err != nil {
		return err
	}

	logs := d.Logs(logFormat(cmd), cfg.LogLevel)
	log := logs.Logger(cfg.Debug)
	if cfg.Debug {
		log.Debug("debug mode enabled")
	}
	logConfig(log, cfg)

	if opts.saveConfig != "" {
		if err := cfg.SaveFile(opts.saveConfig); err != nil {
			return err
		}
		log.Info("configuration saved", "path", opts.saveConfig)
	}

	resolver := d.Resolver(logs)
	var result string
	if cfg.AsyncMode {
		result, err = resolver.GreetAsync(cmd.Context(), name, cfg)
	} else {
		result, err = resolver.Greet(name, cfg)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, result)
	return err
}

// applyGreetFlags copies the flags the user actually set onto cfg, so
// flag defaults never mask values loaded from a file or the environment.
// Enabling debug also raises the log level to DEBUG.
func applyGreetFlags(flags *pflag.FlagSet, opts *greetOptions, cfg *config.AppConfig) error {
	if flags.Changed("debug") {
		cfg.Debug = opts.debug
	}
	if flags.Changed("message") {
		cfg.SetMessage(opts.message)
	}
	if flags.Changed("style") {
		cfg.TemplateStyle = opts.style
	}
	if flags.Changed("language") {
		lang, err := models.ParseLanguage(opts.language)
		if err != nil {
			return err
		}
		cfg.Language = lang
	}
	if flags.Changed("async") {
		cfg.AsyncMode = opts.async
	}
	if cfg.Debug {
		cfg.LogLevel = config.DebugLogLevel
	}
	return nil
}
