package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/configmaster/configmaster/internal/template"
	"github.com/configmaster/configmaster/internal/validation"
)

// CLI styles.
var (
	cmPrimary = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#C45A3C", Dark: "#DA7756"})
	cmSuccess = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"})
	cmError   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"})
	cmMuted   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"})
)

// painter applies styles only when color output is enabled.
type painter struct {
	color bool
}

func (p painter) paint(style lipgloss.Style, s string) string {
	if !p.color {
		return s
	}
	return style.Render(s)
}

// renderTemplatesText lists entries in the plain multi-line layout.
func renderTemplatesText(w io.Writer, entries []template.Entry, color bool) error {
	p := painter{color: color}
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "\n%s:\n", p.paint(cmPrimary.Bold(true), e.Style))
		fmt.Fprintf(&b, "  %s %s\n", p.paint(cmMuted, "Pattern:"), e.Pattern)
		fmt.Fprintf(&b, "  %s %s\n", p.paint(cmMuted, "Category:"), e.Category)
		fmt.Fprintf(&b, "  %s %s\n", p.paint(cmMuted, "Tags:"), strings.Join(e.Tags, ", "))
		fmt.Fprintf(&b, "  %s %s\n", p.paint(cmMuted, "Description:"), e.Description)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// templatesMarkdown builds the markdown document for a listing.
func templatesMarkdown(entries []template.Entry) string {
	var b strings.Builder
	b.WriteString("# Greeting templates\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "\n## %s\n\n", e.Style)
		if e.Description != "" {
			fmt.Fprintf(&b, "%s\n\n", e.Description)
		}
		fmt.Fprintf(&b, "- **Pattern:** `%s`\n", e.Pattern)
		fmt.Fprintf(&b, "- **Category:** %s\n", e.Category)
		fmt.Fprintf(&b, "- **Tags:** %s\n", strings.Join(e.Tags, ", "))
	}
	return b.String()
}

// renderTemplatesMarkdown renders the listing through glamour.
func renderTemplatesMarkdown(w io.Writer, entries []template.Entry, color bool) error {
	styleOpt := glamour.WithStandardStyle("notty")
	if color {
		styleOpt = glamour.WithAutoStyle()
	}
	r, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(100))
	if err != nil {
		return fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := r.Render(templatesMarkdown(entries))
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}

// writeFieldErrors writes one "  field: message" line per failure.
func writeFieldErrors(w io.Writer, ve *validation.Errors) {
	for _, fe := range ve.Errors {
		_, _ = fmt.Fprintf(w, "  %s: %s\n", fe.Field, fe.Message)
	}
}

// printError reports err on w. Errors already shown by the command are
// skipped.
func printError(w io.Writer, err error, color bool) {
	var reported *reportedError
	if errors.As(err, &reported) {
		return
	}
	p := painter{color: color}

	if ExitCode(err) == ExitCancelled {
		_, _ = fmt.Fprintln(w, p.paint(cmMuted, "Operation cancelled by user"))
		return
	}

	var ve *validation.Errors
	if errors.As(err, &ve) {
		_, _ = fmt.Fprintf(w, "%s Validation error:\n", p.paint(cmError, "\u2717"))
		writeFieldErrors(w, ve)
		return
	}
	_, _ = fmt.Fprintf(w, "%s Error: %v\n", p.paint(cmError, "\u2717"), err)
}

// printSuccess writes a line in the success color.
func printSuccess(w io.Writer, color bool, format string, args ...any) {
	p := painter{color: color}
	_, _ = fmt.Fprintln(w, p.paint(cmSuccess, fmt.Sprintf(format, args...)))
}
