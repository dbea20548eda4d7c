package user

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Validation constants.
const (
	minNameLength  = 2
	minEmailLength = 5
)

// ValidateName checks if a user name is valid. Lengths count
// characters, not bytes, so multibyte names are measured fairly.
func ValidateName(name string) error {
	if name == "" || utf8.RuneCountInString(strings.TrimSpace(name)) < minNameLength {
		return fmt.Errorf("%w: name must be at least %d characters", ErrInvalidName, minNameLength)
	}
	return nil
}

// ValidateEmail checks if an email is valid. The format check is
// deliberately loose: long enough and contains an "@". Full RFC 5322
// parsing buys nothing for an address that is only ever compared for
// uniqueness.
func ValidateEmail(email string) error {
	if email == "" || utf8.RuneCountInString(strings.TrimSpace(email)) < minEmailLength {
		return fmt.Errorf("%w: email must be at least %d characters", ErrInvalidEmail, minEmailLength)
	}
	if !strings.Contains(email, "@") {
		return fmt.Errorf("%w: invalid email format", ErrInvalidEmail)
	}
	return nil
}

// ValidateID checks that a user identifier is present.
func ValidateID(id string) error {
	if id == "" {
		return fmt.Errorf("%w: user ID cannot be empty", ErrInvalidUserID)
	}
	return nil
}
