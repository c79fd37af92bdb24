package narrator

import (
	"errors"
	"fmt"
)

var (
	// ErrInputNotFound is returned when the markdown input file does not exist.
	ErrInputNotFound = errors.New("input file not found")
	// ErrExternalService is wrapped around failures of the speech provider.
	ErrExternalService = errors.New("external service error")
)

// WrapError wraps an error with additional context.
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}
