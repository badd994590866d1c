package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/configmaster/configmaster/internal/template"
	"github.com/configmaster/configmaster/internal/validation"
	"github.com/configmaster/configmaster/pkg/models"
)

// Listing output formats.
const (
	formatText     = "text"
	formatJSON     = "json"
	formatMarkdown = "markdown"
)

func newTemplatesCmd(d *Dependencies) *cobra.Command {
	var category, tags, format string
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List available templates",
		Long: `List the registered greeting templates.

--category takes precedence over --tags. Tags are comma-separated and
match templates carrying any of them.

Example:
  configmaster templates --category formal
  configmaster templates --tags warm,party --format markdown`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTemplates(cmd, d, category, tags, format)
		},
	}
	cmd.Flags().StringVar(&category, "category", "",
		"Filter by category ("+strings.Join(models.TemplateCategoryStrings(), ", ")+")")
	cmd.Flags().StringVar(&tags, "tags", "", "Filter by tags (comma-separated)")
	cmd.Flags().StringVar(&format, "format", formatText, "Output format (text|json|markdown)")
	return cmd
}

func runTemplates(cmd *cobra.Command, d *Dependencies, category, rawTags, format string) error {
	out := cmd.OutOrStdout()

	switch format {
	case formatText, formatJSON, formatMarkdown:
	default:
		return validation.New("format",
			fmt.Sprintf("unsupported format %q (valid: %s, %s, %s)", format, formatText, formatJSON, formatMarkdown))
	}

	var tags []string
	if category == "" && rawTags != "" {
		parsed, err := template.ParseTags(rawTags)
		if err != nil {
			return err
		}
		tags = parsed
	}

	entries, err := d.Templates.Query(category, tags)
	if err != nil {
		return err
	}

	switch format {
	case formatJSON:
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("encode templates: %w", err)
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	case formatMarkdown:
		return renderTemplatesMarkdown(out, entries, d.Color)
	default:
		return renderTemplatesText(out, entries, d.Color)
	}
}
