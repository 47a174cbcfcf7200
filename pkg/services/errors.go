package services

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks a request the service refuses before touching storage
var ErrInvalidInput = errors.New("invalid input")

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
