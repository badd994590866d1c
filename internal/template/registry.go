// Package template provides the greeting template registry and the
// placeholder formatter used to render greetings.
package template

import (
	"bytes"
	_ "embed"
	"fmt"
	"io/fs"
	"maps"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/configmaster/configmaster/pkg/models"
)

// DefaultStyle is the style used when none is configured.
const DefaultStyle = "default"

//go:embed templates.yaml
var builtinTemplates []byte

// Info describes a registered template.
type Info struct {
	Pattern     string                  `yaml:"pattern" json:"pattern"`
	Category    models.TemplateCategory `yaml:"category" json:"category"`
	Tags        []string                `yaml:"tags" json:"tags"`
	Description string                  `yaml:"description" json:"description"`
}

// HasAnyTag reports whether info carries at least one of tags.
func (i Info) HasAnyTag(tags []string) bool {
	for _, t := range tags {
		if slices.Contains(i.Tags, t) {
			return true
		}
	}
	return false
}

func (i Info) clone() Info {
	i.Tags = slices.Clone(i.Tags)
	return i
}

// Entry pairs a style name with its template, for ordered listings.
type Entry struct {
	Style string `json:"style"`
	Info
}

// Registry is an immutable set of named templates. It is safe for
// concurrent use.
type Registry struct {
	templates map[string]Info
	names     []string
}

// registryFile is the on-disk layout of a registry document.
type registryFile struct {
	Templates map[string]Info `yaml:"templates"`
}

var defaultRegistry = mustParse(builtinTemplates)

// Default returns the built-in registry.
func Default() *Registry {
	return defaultRegistry
}

func mustParse(data []byte) *Registry {
	r, err := Parse(data)
	if err != nil {
		panic(fmt.Sprintf("template: invalid built-in registry: %v", err))
	}
	return r
}

// Parse decodes a YAML registry document. Unknown keys are rejected.
func Parse(data []byte) (*Registry, error) {
	var f registryFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("parse template registry: %w", err)
	}
	return NewRegistry(f.Templates)
}

// LoadRegistry reads and parses the named registry document from fsys.
func LoadRegistry(fsys fs.FS, name string) (*Registry, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read template registry %s: %w", name, err)
	}
	return Parse(data)
}

// NewRegistry validates templates and builds a registry from them. Every
// pattern must reference only the reserved placeholders.
func NewRegistry(templates map[string]Info) (*Registry, error) {
	if len(templates) == 0 {
		return nil, fmt.Errorf("template registry is empty")
	}

	r := &Registry{templates: make(map[string]Info, len(templates))}
	for style, info := range templates {
		if strings.TrimSpace(style) == "" {
			return nil, fmt.Errorf("template style name must not be empty")
		}
		if info.Pattern == "" {
			return nil, fmt.Errorf("template %q: pattern must not be empty", style)
		}
		if !info.Category.IsValid() {
			return nil, fmt.Errorf("template %q: %w", style, &models.InvalidCategoryError{Value: string(info.Category)})
		}
		if _, err := Placeholders(info.Pattern); err != nil {
			return nil, fmt.Errorf("template %q: %w", style, err)
		}
		info.Tags = normalizeTags(info.Tags)
		r.templates[style] = info
	}
	r.names = slices.Sorted(maps.Keys(r.templates))
	return r, nil
}

// normalizeTags trims, de-duplicates and sorts tags.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t != "" && !slices.Contains(out, t) {
			out = append(out, t)
		}
	}
	slices.Sort(out)
	return out
}

// Get returns the template registered under style.
func (r *Registry) Get(style string) (Info, error) {
	info, ok := r.templates[style]
	if !ok {
		return Info{}, &NotFoundError{Style: style, Available: r.Names()}
	}
	return info.clone(), nil
}

// Has reports whether style is registered.
func (r *Registry) Has(style string) bool {
	_, ok := r.templates[style]
	return ok
}

// Names returns the registered style names, sorted.
func (r *Registry) Names() []string {
	return slices.Clone(r.names)
}

// Entries returns every registered template, sorted by style name.
func (r *Registry) Entries() []Entry {
	entries := make([]Entry, 0, len(r.names))
	for _, style := range r.names {
		entries = append(entries, Entry{Style: style, Info: r.templates[style].clone()})
	}
	return entries
}

// List returns a snapshot of every registered template.
func (r *Registry) List() map[string]Info {
	return r.filter(func(Info) bool { return true })
}

// ByCategory returns the templates in the given category. raw is checked
// against the closed category set first; a match-less valid category
// yields an empty map.
func (r *Registry) ByCategory(raw string) (map[string]Info, error) {
	cat, err := models.ParseTemplateCategory(raw)
	if err != nil {
		return nil, err
	}
	return r.filter(func(i Info) bool { return i.Category == cat }), nil
}

// SearchByTags returns the templates carrying at least one of tags.
// Tags are validated with ValidateTags before matching.
func (r *Registry) SearchByTags(tags []string) (map[string]Info, error) {
	if err := ValidateTags(tags); err != nil {
		return nil, err
	}
	query := normalizeTags(tags)
	return r.filter(func(i Info) bool { return i.HasAnyTag(query) }), nil
}

// Query returns an ordered listing. A category filter takes precedence
// over a tag filter; with neither, every template is listed.
func (r *Registry) Query(category string, tags []string) ([]Entry, error) {
	var (
		matched map[string]Info
		err     error
	)
	switch {
	case category != "":
		matched, err = r.ByCategory(category)
	case len(tags) > 0:
		matched, err = r.SearchByTags(tags)
	default:
		return r.Entries(), nil
	}
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(matched))
	for _, style := range slices.Sorted(maps.Keys(matched)) {
		entries = append(entries, Entry{Style: style, Info: matched[style]})
	}
	return entries, nil
}

func (r *Registry) filter(keep func(Info) bool) map[string]Info {
	out := make(map[string]Info)
	for style, info := range r.templates {
		if keep(info) {
			out[style] = info.clone()
		}
	}
	return out
}
