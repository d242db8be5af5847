// Package services provides application-level services that orchestrate
// business logic and coordinate between repositories and domain entities.
package services

import (
	"errors"

	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/security"
)

// newID mints the identifier for a freshly created record.
func newID() string {
	return security.GenerateULID()
}

// ErrInvalidCredentials is returned for every login failure, whether the
// account is unknown or the password is wrong.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ValidationError marks an error caused by bad request data. Handlers map
// it to a 400 response with the message as the body.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

// Invalid wraps err as a ValidationError.
func Invalid(err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{msg: err.Error()}
}
