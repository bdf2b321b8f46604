// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"regexp"
	"unicode"
)

// handlePattern is the required shape of a user handle: a leading @ followed
// by lowercase letters, digits, underscores, or hyphens.
var handlePattern = regexp.MustCompile(`^@[a-z0-9_-]+$`)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidateHandle checks if a handle meets platform requirements.
func ValidateHandle(handle string) error {
	if len(handle) < 3 {
		return fmt.Errorf("handle must be at least 3 characters long including the leading @")
	}

	if len(handle) > 31 {
		return fmt.Errorf("handle must not exceed 31 characters")
	}

	if handle[0] != '@' {
		return fmt.Errorf("handle must start with @")
	}

	if !handlePattern.MatchString(handle) {
		return fmt.Errorf("handle can only contain lowercase letters, digits, underscores, and hyphens after the leading @")
	}

	// Cannot start or end the name part with underscore/hyphen
	name := handle[1:]
	if name[0] == '_' || name[0] == '-' || name[len(name)-1] == '_' || name[len(name)-1] == '-' {
		return fmt.Errorf("handle cannot start or end with underscore or hyphen")
	}

	return nil
}

// ValidateEmail checks if an email address is plausibly valid.
func ValidateEmail(email string) error {
	if len(email) > 254 {
		return fmt.Errorf("email must not exceed 254 characters")
	}
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("email address is not valid")
	}
	return nil
}

// ValidatePassword checks if a password meets security requirements
func ValidatePassword(password string) error {
	if len(password) < 12 {
		return fmt.Errorf("password must be at least 12 characters long")
	}

	if len(password) > 128 {
		return fmt.Errorf("password must not exceed 128 characters")
	}

	hasUpper := false
	hasLower := false
	hasDigit := false
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper {
		return fmt.Errorf("password must contain at least one uppercase letter")
	}
	if !hasLower {
		return fmt.Errorf("password must contain at least one lowercase letter")
	}
	if !hasDigit {
		return fmt.Errorf("password must contain at least one digit")
	}

	hasSpecial := regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>\/?]`).MatchString(password)
	if !hasSpecial {
		return fmt.Errorf("password must contain at least one special character (!@#$%%^&*)")
	}

	return nil
}
