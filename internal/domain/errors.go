package domain

import (
	"errors"
	"fmt"
)

var ErrRecordNotFound = errors.New("User not found")
var ErrInvalidMobile = errors.New("Invalid mobile number")
var ErrInvalidPAN = errors.New("Invalid PAN number")
var ErrInactiveManager = errors.New("Invalid or inactive manager_id")
var ErrInvalidManagerRef = errors.New("Invalid manager_id")
var ErrMissingLocator = errors.New("Provide user_id or mob_num")
var ErrMissingUpdatePayload = errors.New("Missing user_ids or update_data")

// MissingFieldError rejects a request whose payload omits a required field.
// The message names only the first missing field.
type MissingFieldError struct {
	Field string
}

func (e MissingFieldError) Error() string {
	return fmt.Sprintf("Missing required field: %s", e.Field)
}

// IsClientError reports whether err should surface as a 400-class response
// rather than an opaque internal error.
func IsClientError(err error) bool {
	var missing MissingFieldError
	if errors.As(err, &missing) {
		return true
	}

	for _, candidate := range []error{
		ErrInvalidMobile,
		ErrInvalidPAN,
		ErrInactiveManager,
		ErrInvalidManagerRef,
		ErrMissingLocator,
		ErrMissingUpdatePayload,
	} {
		if errors.Is(err, candidate) {
			return true
		}
	}

	return false
}
