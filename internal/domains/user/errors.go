package user

import "errors"

// Repository-level errors
var (
	ErrUserNotFound  = errors.New("User not found")
	ErrEmailTaken    = errors.New("Email already registered")
	ErrUsernameTaken = errors.New("Username already taken")
)

// Service-level errors
var (
	// Login deliberately collapses "no such user" and "wrong password"
	// into this single error to avoid account enumeration.
	ErrInvalidCredentials = errors.New("Incorrect username or password")
)
