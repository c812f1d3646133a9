package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken is returned when the email is already registered.
	ErrEmailTaken = errors.New("email already in use")

	// ErrUsernameTaken is returned when the username is already registered.
	ErrUsernameTaken = errors.New("username already in use")

	// ErrInvalidCredentials is returned for any failed email/password
	// combination. The message is identical whether the email is unknown
	// or the password is wrong, to resist user enumeration.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
