package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/configmaster/configmaster/internal/logging"
	"github.com/configmaster/configmaster/internal/validation"
	"github.com/configmaster/configmaster/pkg/version"
)

// NewRootCmd builds the command tree over d.
func NewRootCmd(d *Dependencies) *cobra.Command {
	root := &cobra.Command{
		Use:   "configmaster",
		Short: "Configurable multilingual greeting generator",
		Long: `configmaster renders greetings from a name and a small configuration:
language, template style, custom message and debug mode.

Configuration comes from a JSON or YAML file, CONFIGMASTER_* environment
variables and command-line flags, in increasing order of priority.`,
		Version:       version.GetVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch format, _ := cmd.Flags().GetString("log-format"); format {
			case logging.FormatText, logging.FormatJSON:
				return nil
			default:
				return validation.New("log_format",
					fmt.Sprintf("unsupported log format %q (valid: %s, %s)", format, logging.FormatText, logging.FormatJSON))
			}
		},
	}
	root.SetVersionTemplate(fmt.Sprintf("configmaster %s\n", version.GetFullVersion()))
	root.PersistentFlags().String("log-format", logging.FormatText, "Log output format (text|json)")

	root.AddCommand(newGreetCmd(d))
	root.AddCommand(newTemplatesCmd(d))
	root.AddCommand(newConfigCmd(d))
	return root
}

// Execute runs the CLI with production dependencies. SIGINT and SIGTERM
// cancel the command context. Errors are reported on stderr before being
// returned; map them to a process status with ExitCode.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	d := NewDependencies()
	root := NewRootCmd(d)
	err := root.ExecuteContext(ctx)
	if err != nil {
		printError(root.ErrOrStderr(), err, d.Color)
	}
	return err
}

// logFormat returns the --log-format value of cmd.
func logFormat(cmd *cobra.Command) string {
	format, err := cmd.Flags().GetString("log-format")
	if err != nil {
		return logging.FormatText
	}
	return format
}
