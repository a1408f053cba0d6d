package application

import (
	"fmt"
	"strings"

	"jdex/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "indexPath" -> "index path")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"root":      "root folder",
		"indexPath": "index path",
		"key":       "key",
		"entryType": "entry type",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return fieldName
}

// ValidateKey checks that key has the shape of an area, category or id.
// Returns a ValidationError wrapping ErrInvalidKey otherwise.
func ValidateKey(fieldName, key string) error {
	if err := ValidateRequired(fieldName, key); err != nil {
		return err
	}
	if _, ok := domain.KeyType(key); !ok {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%v: %s", ErrInvalidKey, key),
		}
	}
	return nil
}

// ValidateThreshold checks that a fuzzy threshold lies in [0,1]
func ValidateThreshold(value float64) error {
	if value < 0 || value > 1 {
		return &ValidationError{
			Field:   "threshold",
			Message: fmt.Sprintf("must be between 0 and 1, got: %g", value),
		}
	}
	return nil
}
