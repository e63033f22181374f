package services

import "strings"

// MinPasswordLength applies to registration only.
const MinPasswordLength = 6

// ValidateLogin checks the login form before any call is issued.
func ValidateLogin(username, password string) error {
	if strings.TrimSpace(username) == "" {
		return ErrUsernameRequired
	}
	if password == "" {
		return ErrPasswordRequired
	}
	return nil
}

// ValidateRegistration checks the registration form before any call is issued.
func ValidateRegistration(username, email, password string) error {
	if strings.TrimSpace(username) == "" {
		return ErrUsernameRequired
	}
	if strings.TrimSpace(email) == "" {
		return ErrEmailRequired
	}
	if password == "" {
		return ErrPasswordRequired
	}
	if len([]rune(password)) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}
