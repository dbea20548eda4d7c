package user

import "errors"

// Sentinel errors for user operations.
var (
	// ErrUserNotFound is returned when a user ID does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailExists is returned when an email is already registered
	// to a different account.
	ErrEmailExists = errors.New("email already registered")

	// ErrInvalidName is returned when a user name is too short.
	ErrInvalidName = errors.New("invalid user name")

	// ErrInvalidEmail is returned when an email fails format checks.
	ErrInvalidEmail = errors.New("invalid email")

	// ErrInvalidUserID is returned when a user identifier is empty.
	ErrInvalidUserID = errors.New("invalid user id")
)
