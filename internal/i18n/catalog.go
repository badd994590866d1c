// Package i18n holds the per-language greeting affixes used when
// rendering greetings. The catalog is immutable after construction and
// safe for concurrent use.
package i18n

import (
	"maps"
	"slices"

	"github.com/configmaster/configmaster/pkg/models"
)

// Translation holds the greeting affixes for one language.
type Translation struct {
	Prefix string `json:"greeting_prefix" yaml:"greeting_prefix"`
	Suffix string `json:"greeting_suffix" yaml:"greeting_suffix"`
}

// translations maps language code -> greeting affixes.
var translations = map[models.Language]Translation{
	models.LanguageEN: {Prefix: "Hello", Suffix: "Have a great day!"},
	models.LanguageJA: {Prefix: "こんにちは", Suffix: "良い一日を！"},
	models.LanguageES: {Prefix: "Hola", Suffix: "¡Que tengas un buen día!"},
	models.LanguageFR: {Prefix: "Bonjour", Suffix: "Bonne journée !"},
	models.LanguageDE: {Prefix: "Hallo", Suffix: "Einen schönen Tag noch!"},
}

// Catalog provides translation lookups.
type Catalog struct {
	entries map[models.Language]Translation
}

var defaultCatalog = NewCatalog(translations)

// Default returns the process-wide catalog.
func Default() *Catalog {
	return defaultCatalog
}

// NewCatalog creates a catalog from the given entries. The map is copied.
func NewCatalog(entries map[models.Language]Translation) *Catalog {
	c := &Catalog{entries: make(map[models.Language]Translation, len(entries))}
	maps.Copy(c.entries, entries)
	return c
}

// Get returns the translation for lang. Values outside the supported
// set, including raw values decoded from untrusted input, fail with
// *models.UnsupportedLanguageError.
func (c *Catalog) Get(lang models.Language) (Translation, error) {
	if !lang.IsValid() {
		return Translation{}, &models.UnsupportedLanguageError{Value: string(lang)}
	}
	t, ok := c.entries[lang]
	if !ok {
		return Translation{}, &models.UnsupportedLanguageError{Value: string(lang)}
	}
	return t, nil
}

// Languages returns the languages covered by the catalog, sorted by code.
func (c *Catalog) Languages() []models.Language {
	return slices.Sorted(maps.Keys(c.entries))
}

// GetTranslation looks lang up in the default catalog.
func GetTranslation(lang models.Language) (Translation, error) {
	return defaultCatalog.Get(lang)
}
