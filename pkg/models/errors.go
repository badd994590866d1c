package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnsupportedLanguage indicates a language outside the supported set.
	ErrUnsupportedLanguage = errors.New("models: unsupported language")

	// ErrInvalidCategory indicates a template category outside the valid set.
	ErrInvalidCategory = errors.New("models: invalid template category")
)

// UnsupportedLanguageError reports a language value that is not supported.
type UnsupportedLanguageError struct {
	Value string
}

// Error implements the error interface.
func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("unsupported language %q (valid: %s)", e.Value, strings.Join(SupportedLanguageCodes(), ", "))
}

// Unwrap returns ErrUnsupportedLanguage.
func (e *UnsupportedLanguageError) Unwrap() error {
	return ErrUnsupportedLanguage
}

// Valid returns the supported language codes for user guidance.
func (e *UnsupportedLanguageError) Valid() []string {
	return SupportedLanguageCodes()
}

// InvalidCategoryError reports a template category that is not recognized.
type InvalidCategoryError struct {
	Value string
}

// Error implements the error interface.
func (e *InvalidCategoryError) Error() string {
	return fmt.Sprintf("invalid category %q (valid categories: %s)", e.Value, strings.Join(TemplateCategoryStrings(), ", "))
}

// Unwrap returns ErrInvalidCategory.
func (e *InvalidCategoryError) Unwrap() error {
	return ErrInvalidCategory
}

// Valid returns every valid category for user guidance.
func (e *InvalidCategoryError) Valid() []string {
	return TemplateCategoryStrings()
}
