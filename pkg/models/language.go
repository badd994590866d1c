package models

import (
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// Language is a supported greeting language, identified by its ISO 639-1 code.
type Language string

const (
	LanguageEN Language = "en"
	LanguageJA Language = "ja"
	LanguageES Language = "es"
	LanguageFR Language = "fr"
	LanguageDE Language = "de"
)

// DefaultLanguage is used when no language is configured.
const DefaultLanguage = LanguageEN

var supportedLanguages = []Language{LanguageEN, LanguageJA, LanguageES, LanguageFR, LanguageDE}

// LangNameMap maps language codes to display names.
var LangNameMap = map[Language]string{
	LanguageEN: "English",
	LanguageJA: "Japanese (日本語)",
	LanguageES: "Spanish (Español)",
	LanguageFR: "French (Français)",
	LanguageDE: "German (Deutsch)",
}

// SupportedLanguages returns all supported languages in declaration order.
func SupportedLanguages() []Language {
	return slices.Clone(supportedLanguages)
}

// SupportedLanguageCodes returns the supported languages as plain strings.
func SupportedLanguageCodes() []string {
	codes := make([]string, len(supportedLanguages))
	for i, l := range supportedLanguages {
		codes[i] = string(l)
	}
	return codes
}

// IsValid reports whether l belongs to the supported set.
func (l Language) IsValid() bool {
	return slices.Contains(supportedLanguages, l)
}

// Name returns the display name of l, or the raw code when unsupported.
func (l Language) Name() string {
	if name, ok := LangNameMap[l]; ok {
		return name
	}
	return string(l)
}

// String implements fmt.Stringer.
func (l Language) String() string {
	return string(l)
}

// ParseLanguage converts user input into a Language.
// Codes are matched case-insensitively; BCP 47 tags such as "en-US" or
// "ja-JP" resolve to their base language.
func ParseLanguage(raw string) (Language, error) {
	code := strings.ToLower(strings.TrimSpace(raw))
	if code == "" {
		return "", &UnsupportedLanguageError{Value: raw}
	}
	if l := Language(code); l.IsValid() {
		return l, nil
	}

	tag, err := language.Parse(code)
	if err != nil {
		return "", &UnsupportedLanguageError{Value: raw}
	}
	base, _ := tag.Base()
	if l := Language(base.String()); l.IsValid() {
		return l, nil
	}
	return "", &UnsupportedLanguageError{Value: raw}
}

// MarshalText implements encoding.TextMarshaler.
func (l Language) MarshalText() ([]byte, error) {
	return []byte(l), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Decoding a value
// outside the supported set fails with *UnsupportedLanguageError.
func (l *Language) UnmarshalText(text []byte) error {
	parsed, err := ParseLanguage(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
