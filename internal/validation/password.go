package validation

import (
	"errors"
)

// ValidatePassword validates password length.
// Minimum of 6 characters matches what the registration form enforces;
// maximum of 72 bytes is the bcrypt limit (longer input is silently
// truncated by bcrypt, which would be a security risk).
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return errors.New("password must be at least 6 characters")
	}

	if len(password) > 72 {
		return errors.New("password must not exceed 72 characters")
	}

	return nil
}
