package cli

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/configmaster/configmaster/internal/template"
	"github.com/configmaster/configmaster/internal/validation"
	"github.com/configmaster/configmaster/pkg/models"
)

// listedStyles returns the style headers of a text listing, in order.
func listedStyles(out string) []string {
	var styles []string
	for line := range strings.SplitSeq(out, "\n") {
		if line != "" && !strings.HasPrefix(line, " ") && strings.HasSuffix(line, ":") {
			styles = append(styles, strings.TrimSuffix(line, ":"))
		}
	}
	return styles
}

func TestTemplatesCommandText(t *testing.T) {
	t.Parallel()

	res := runCLI(t, nil, "templates")
	if res.err != nil {
		t.Fatalf("templates error: %v", res.err)
	}

	want := "\ndefault:\n" +
		"  Pattern: {prefix}, {name}! {message}\n" +
		"  Category: default\n" +
		"  Tags: simple, standard\n" +
		"  Description: Standard greeting with language-aware punctuation\n"
	if !strings.Contains(res.stdout, want) {
		t.Errorf("listing missing default block:\n%s", res.stdout)
	}

	got := strings.Join(listedStyles(res.stdout), ",")
	if got != strings.Join(template.Default().Names(), ",") {
		t.Errorf("listed styles = %s", got)
	}
}

func TestTemplatesCommandFilters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"category", []string{"--category", "formal"}, "business,formal"},
		{"category case-insensitive", []string{"--category", "FESTIVE"}, "celebration"},
		{"tags any match", []string{"--tags", "warm"}, "celebration,friendly"},
		{"tags trimmed", []string{"--tags", " letter , short "}, "business,casual"},
		{"no tag match", []string{"--tags", "unknown"}, ""},
		{"category wins over tags", []string{"--category", "casual", "--tags", "party"}, "casual,friendly"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := runCLI(t, nil, append([]string{"templates"}, tt.args...)...)
			if res.err != nil {
				t.Fatalf("templates error: %v", res.err)
			}
			if got := strings.Join(listedStyles(res.stdout), ","); got != tt.want {
				t.Errorf("styles = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTemplatesCommandErrors(t *testing.T) {
	t.Parallel()

	res := runCLI(t, nil, "templates", "--category", "spooky")
	var ce *models.InvalidCategoryError
	if !errors.As(res.err, &ce) {
		t.Errorf("bad category error = %v", res.err)
	} else if !strings.Contains(ce.Error(), "festive") {
		t.Errorf("category error %q does not list valid categories", ce.Error())
	}

	res = runCLI(t, nil, "templates", "--tags", "warm,,party")
	if got, _ := fieldMessage(res.err, "tags"); got != "Empty tags are not allowed" {
		t.Errorf("empty tag error = %v", res.err)
	}

	res = runCLI(t, nil, "templates", "--tags", "a,b,c,d,e,f,g,h,i,j,k")
	if got, _ := fieldMessage(res.err, "tags"); got != "Too many tags (max 10)" {
		t.Errorf("too many tags error = %v", res.err)
	}

	res = runCLI(t, nil, "templates", "--format", "xml")
	if !validation.HasField(res.err, "format") {
		t.Errorf("bad format error = %v", res.err)
	}
}

func fieldMessage(err error, field string) (string, bool) {
	var ve *validation.Errors
	if !errors.As(err, &ve) {
		return "", false
	}
	return ve.Field(field)
}

func TestTemplatesCommandJSON(t *testing.T) {
	t.Parallel()

	res := runCLI(t, nil, "templates", "--format", "json", "--category", "casual")
	if res.err != nil {
		t.Fatalf("templates error: %v", res.err)
	}

	var got []struct {
		Style    string   `json:"style"`
		Pattern  string   `json:"pattern"`
		Category string   `json:"category"`
		Tags     []string `json:"tags"`
	}
	if err := json.Unmarshal([]byte(res.stdout), &got); err != nil {
		t.Fatalf("decode output: %v\n%s", err, res.stdout)
	}
	if len(got) != 2 || got[0].Style != "casual" || got[1].Style != "friendly" {
		t.Fatalf("entries = %+v", got)
	}
	if got[0].Pattern != "Hey {name}! {message}" || got[0].Category != "casual" {
		t.Errorf("casual entry = %+v", got[0])
	}

	res = runCLI(t, nil, "templates", "--format", "json", "--tags", "unknown")
	if strings.TrimSpace(res.stdout) != "[]" {
		t.Errorf("empty json listing = %q", res.stdout)
	}
}

func TestTemplatesCommandMarkdown(t *testing.T) {
	t.Parallel()

	res := runCLI(t, nil, "templates", "--format", "markdown")
	if res.err != nil {
		t.Fatalf("templates error: %v", res.err)
	}
	for _, style := range template.Default().Names() {
		if !strings.Contains(res.stdout, style) {
			t.Errorf("markdown output missing %q", style)
		}
	}
	if !strings.Contains(res.stdout, "Greeting templates") {
		t.Errorf("markdown output missing title:\n%s", res.stdout)
	}
}

func TestTemplatesMarkdownSource(t *testing.T) {
	t.Parallel()

	entries, err := template.Default().Query("festive", nil)
	if err != nil {
		t.Fatal(err)
	}
	md := templatesMarkdown(entries)
	for _, want := range []string{
		"# Greeting templates\n",
		"## celebration\n",
		"- **Pattern:** `{prefix}, {name}! 🎉 {message} {suffix}`\n",
		"- **Tags:** fun, party, warm\n",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
}
