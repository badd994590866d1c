package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/configmaster/configmaster/internal/cli/wizard"
	"github.com/configmaster/configmaster/internal/config"
	"github.com/configmaster/configmaster/internal/validation"
)

// defaultInitFile is written by "config init" when --file is not given.
const defaultInitFile = "configmaster.json"

func newConfigCmd(d *Dependencies) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long: `View, validate, save or interactively create a configuration file.

Without --file the built-in defaults are used. Environment overrides
(CONFIGMASTER_*) are applied on top of the file in every subcommand.`,
	}
	cmd.PersistentFlags().StringVar(&file, "file", "", "Config file path")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "view",
			Short: "Print the effective configuration as JSON",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runConfigView(cmd, d, file)
			},
		},
		&cobra.Command{
			Use:   "validate",
			Short: "Validate the configuration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runConfigValidate(cmd, d, file)
			},
		},
		&cobra.Command{
			Use:   "save",
			Short: "Write the effective configuration back to --file",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runConfigSave(cmd, d, file)
			},
		},
		newConfigInitCmd(d, &file),
	)
	return cmd
}

func newConfigInitCmd(d *Dependencies, file *string) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a configuration file interactively",
		Long: `Create or update a configuration file with an interactive form.

The form starts from the existing file, if any. With --yes, or when stdin
is not a terminal, the current values are written without prompting.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := *file
			if path == "" {
				path = defaultInitFile
			}
			return runConfigInit(cmd, d, path, yes)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Accept current values without prompting")
	return cmd
}

// loadConfig returns defaults, or the file at path, with environment
// overrides applied. With allowMissing a missing file yields defaults.
func loadConfig(d *Dependencies, path string, allowMissing bool) (*config.AppConfig, error) {
	cfg := config.NewDefault()
	if path != "" {
		loaded, err := config.LoadFile(path)
		switch {
		case err == nil:
			cfg = loaded
		case allowMissing && errors.Is(err, fs.ErrNotExist):
		default:
			return nil, err
		}
	}
	if err := config.ApplyEnv(cfg, d.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, nil
}

// logConfig writes the effective configuration at debug level.
func logConfig(log *slog.Logger, cfg *config.AppConfig) {
	entries := cfg.Entries()
	attrs := make([]any, 0, len(entries))
	for _, e := range entries {
		attrs = append(attrs, slog.Any(e.Key, e.Value))
	}
	log.Debug("effective configuration", attrs...)
}

func runConfigView(cmd *cobra.Command, d *Dependencies, path string) error {
	cfg, err := loadConfig(d, path, false)
	if err != nil {
		return err
	}
	logConfig(d.Logs(logFormat(cmd), cfg.LogLevel).Logger(cfg.Debug), cfg)

	data, err := cfg.Encode(config.FormatJSON)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runConfigValidate(cmd *cobra.Command, d *Dependencies, path string) error {
	out := cmd.OutOrStdout()

	cfg, err := loadConfig(d, path, false)
	if err != nil {
		return err
	}

	err = cfg.Validate(d.Templates)
	if err == nil {
		printSuccess(out, d.Color, "Configuration is valid")
		return nil
	}

	var ve *validation.Errors
	if !errors.As(err, &ve) {
		return err
	}
	_, _ = fmt.Fprintln(out, "Configuration errors:")
	writeFieldErrors(out, ve)
	return &reportedError{err: err}
}

func runConfigSave(cmd *cobra.Command, d *Dependencies, path string) error {
	if path == "" {
		return validation.New("file", "--file is required to save the configuration")
	}

	cfg, err := loadConfig(d, path, true)
	if err != nil {
		return err
	}
	if err := cfg.SaveFile(path); err != nil {
		return err
	}
	printSuccess(cmd.OutOrStdout(), d.Color, "Configuration saved to %s", path)
	return nil
}

func runConfigInit(cmd *cobra.Command, d *Dependencies, path string, yes bool) error {
	cfg, err := loadConfig(d, path, true)
	if err != nil {
		return err
	}
	log := d.Logs(logFormat(cmd), cfg.LogLevel).Logger(cfg.Debug)

	switch {
	case yes:
	case d.Headless.IsHeadless():
		log.Info("no terminal detected, writing current values", "path", path)
	default:
		result, err := d.RunWizard(wizard.DefaultQuestions(cfg, d.Templates))
		if err != nil {
			return err
		}
		if err := result.Apply(cfg); err != nil {
			return err
		}
	}

	if err := cfg.Validate(d.Templates); err != nil {
		return err
	}
	if err := cfg.SaveFile(path); err != nil {
		return err
	}
	printSuccess(cmd.OutOrStdout(), d.Color, "Configuration saved to %s", path)
	return nil
}
