package models

import (
	"errors"
	"strings"
	"testing"
)

func TestParseTemplateCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		want    TemplateCategory
		wantErr bool
	}{
		{"default", CategoryDefault, false},
		{"formal", CategoryFormal, false},
		{"casual", CategoryCasual, false},
		{"festive", CategoryFestive, false},
		{"FORMAL", CategoryFormal, false},
		{" casual ", CategoryCasual, false},
		{"", "", true},
		{"rude", "", true},
		{"formal,casual", "", true},
	}

	for _, tt := range tests {
		t.Run("raw_"+tt.raw, func(t *testing.T) {
			t.Parallel()

			got, err := ParseTemplateCategory(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidCategory) {
					t.Fatalf("ParseTemplateCategory(%q) error = %v, want ErrInvalidCategory", tt.raw, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTemplateCategory(%q) unexpected error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("ParseTemplateCategory(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestInvalidCategoryErrorListsValidCategories(t *testing.T) {
	t.Parallel()

	_, err := ParseTemplateCategory("rude")
	var ice *InvalidCategoryError
	if !errors.As(err, &ice) {
		t.Fatalf("expected *InvalidCategoryError, got %T", err)
	}
	msg := ice.Error()
	for _, c := range TemplateCategoryStrings() {
		if !strings.Contains(msg, c) {
			t.Errorf("error message %q does not mention category %q", msg, c)
		}
	}
	if len(ice.Valid()) != len(ValidTemplateCategories()) {
		t.Errorf("Valid() returned %d categories, want %d", len(ice.Valid()), len(ValidTemplateCategories()))
	}
}
