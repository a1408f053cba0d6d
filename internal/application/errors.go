package application

import (
	"errors"
	"fmt"

	"jdex/internal/domain"
)

// Sentinel errors for common conditions
var (
	ErrNotFound       = errors.New("not found")
	ErrInvalidKey     = errors.New("invalid key")
	ErrNoIndex        = errors.New("no index file")
	ErrMalformedIndex = domain.ErrMalformedIndex
	ErrLegacyFormat   = domain.ErrLegacyFormat
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// KeyError reports a key that is missing from the index or malformed
type KeyError struct {
	Key    string
	Reason error
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("%s: %v", e.Key, e.Reason)
}

func (e *KeyError) Unwrap() error {
	return e.Reason
}
