// Package models provides the shared closed-set types for configmaster.
//
// # Languages
//
// Greetings can be produced in a fixed set of languages. Use [Language] and
// its constants, or parse user input with [ParseLanguage]:
//
//	lang, err := models.ParseLanguage("ja-JP") // models.LanguageJA
//	if err != nil {
//	    var ule *models.UnsupportedLanguageError
//	    errors.As(err, &ule) // ule.Valid() lists the supported codes
//	}
//
// # Template Categories
//
// Registered templates are grouped by [TemplateCategory]:
//   - default: the standard greeting
//   - formal: polite and business greetings
//   - casual: informal greetings
//   - festive: celebratory greetings
//
// Both types are closed sets. Values outside the set are rejected at
// parse and decode time rather than treated as new categories.
package models
