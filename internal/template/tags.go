package template

import (
	"strings"

	"github.com/configmaster/configmaster/internal/validation"
)

// MaxTags is the largest number of tags accepted in one search.
const MaxTags = 10

// ValidateTags checks a tag query: at most MaxTags entries, none empty
// after trimming. Failures are keyed under "tags".
func ValidateTags(tags []string) error {
	ve := &validation.Errors{}
	for _, t := range tags {
		if strings.TrimSpace(t) == "" {
			ve.Add("tags", "Empty tags are not allowed", nil)
			break
		}
	}
	if len(tags) > MaxTags {
		ve.Add("tags", "Too many tags (max 10)", len(tags))
	}
	return ve.Err()
}

// ParseTags splits a comma-separated tag list. The raw parts are
// validated before trimming and de-duplication, so "a,,b" and eleven
// comma-separated entries both fail.
func ParseTags(raw string) ([]string, error) {
	parts := strings.Split(raw, ",")
	if err := ValidateTags(parts); err != nil {
		return nil, err
	}
	return normalizeTags(parts), nil
}
