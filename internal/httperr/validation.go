package httperr

import (
	"errors"
	"fmt"
)

// ValidationError marks input rejected before it reaches the store.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

func ErrValidation(format string, args ...any) error {
	return ValidationError{Message: fmt.Sprintf(format, args...)}
}

func IsValidation(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}
