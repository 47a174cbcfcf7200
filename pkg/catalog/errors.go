package catalog

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an id is not in the local state
var ErrNotFound = errors.New("not found")

// ValidationError is a form error caught before any network call
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
