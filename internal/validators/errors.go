package validators

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrValidationFailed is wrapped by every input validation failure.
	ErrValidationFailed = errors.New("validation failed")

	ErrUnsupportedType = errors.New("unsupported type for validation")
)

// ValidationError carries per-field messages keyed by the JSON name of the
// offending field.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}

	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
