package domain

import (
	"errors"
	"fmt"
)

// ValidationError reports a business-rule violation in caller-supplied
// input. Its message is user-facing and names the offending field and the
// allowed bounds. Any other error reaching the adapters is treated as a
// storage failure.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

// NewValidationError builds a ValidationError with a formatted message.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// IsValidationError reports whether err is, or wraps, a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
