package models

import (
	"slices"
	"strings"
)

// TemplateCategory groups registered greeting templates.
type TemplateCategory string

const (
	CategoryDefault TemplateCategory = "default"
	CategoryFormal  TemplateCategory = "formal"
	CategoryCasual  TemplateCategory = "casual"
	CategoryFestive TemplateCategory = "festive"
)

// ValidTemplateCategories returns all valid template categories.
func ValidTemplateCategories() []TemplateCategory {
	return []TemplateCategory{CategoryDefault, CategoryFormal, CategoryCasual, CategoryFestive}
}

// TemplateCategoryStrings returns the valid categories as plain strings.
func TemplateCategoryStrings() []string {
	cats := ValidTemplateCategories()
	strs := make([]string, len(cats))
	for i, c := range cats {
		strs[i] = string(c)
	}
	return strs
}

// IsValid checks if the category is a valid value.
func (c TemplateCategory) IsValid() bool {
	return slices.Contains(ValidTemplateCategories(), c)
}

// ParseTemplateCategory validates raw against the closed category set.
func ParseTemplateCategory(raw string) (TemplateCategory, error) {
	c := TemplateCategory(strings.ToLower(strings.TrimSpace(raw)))
	if !c.IsValid() {
		return "", &InvalidCategoryError{Value: raw}
	}
	return c, nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *TemplateCategory) UnmarshalText(text []byte) error {
	parsed, err := ParseTemplateCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
