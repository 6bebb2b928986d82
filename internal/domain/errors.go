package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Domain errors.
var (
	ErrUnknownEvent     = errors.New("unknown event")
	ErrDuplicateEmail   = errors.New("email already registered")
	ErrCapacityExceeded = errors.New("event category is full")
	ErrStoreUnavailable = errors.New("registration store unavailable")
	ErrStoreWrite       = errors.New("registration store write failed")
)

// FieldErrors maps field names to human-readable validation messages.
// It is returned by Submit when the registration fails shape validation.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	if len(fe) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(fe))
	for field, msg := range fe {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	sort.Strings(parts)
	return "validation failed: " + strings.Join(parts, "; ")
}

// IsValidation reports whether err carries field-level validation errors.
func IsValidation(err error) (FieldErrors, bool) {
	var fe FieldErrors
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
