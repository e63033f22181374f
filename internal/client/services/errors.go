package services

import (
	"errors"
	"fmt"
)

// ErrValidation is the parent of every local precondition failure.
var ErrValidation = errors.New("validation error")

var (
	ErrUsernameRequired      = fmt.Errorf("%w: username is required", ErrValidation)
	ErrPasswordRequired      = fmt.Errorf("%w: password is required", ErrValidation)
	ErrEmailRequired         = fmt.Errorf("%w: email is required", ErrValidation)
	ErrPasswordTooShort      = fmt.Errorf("%w: password must be at least %d characters", ErrValidation, MinPasswordLength)
	ErrMessageFieldsRequired = fmt.Errorf("%w: sender, subject and body are required", ErrValidation)
	ErrNoActiveEmail         = fmt.Errorf("%w: classify an email before sending feedback", ErrValidation)
	ErrMissingCategory       = fmt.Errorf("%w: corrected category is required", ErrValidation)
	ErrInvalidCategory       = fmt.Errorf("%w: corrected category must be a numeric id", ErrValidation)
)

// ErrInvalidCredentials is matched by every *AuthError.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthError is a credential rejection; Message is the server's explanation.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	if e.Message == "" {
		return ErrInvalidCredentials.Error()
	}
	return e.Message
}

func (e *AuthError) Unwrap() error { return ErrInvalidCredentials }

// ErrUpload is the parent of local batch upload failures.
var ErrUpload = errors.New("upload error")

var (
	ErrInvalidJSON  = fmt.Errorf("%w: invalid JSON", ErrUpload)
	ErrInvalidShape = fmt.Errorf("%w: expected an object with an `emails` list", ErrUpload)
)

// ErrAccessDenied guards admin-only actions.
var ErrAccessDenied = errors.New("access denied: administrators only")

// ErrSessionCorrupt describes unreadable persisted session state. Restore
// recovers from it by logging out; it is only ever logged.
var ErrSessionCorrupt = errors.New("persisted session is corrupt")
