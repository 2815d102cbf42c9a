package httperr

import (
	"errors"
	"strings"
)

// BusinessError carries a stable machine-readable code up to the HTTP layer.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// IsNotFound reports any business error whose code ends in "_not_found".
func IsNotFound(err error) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return strings.HasSuffix(be.Code, "_not_found")
	}
	return false
}
