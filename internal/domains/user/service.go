package user

import "context"

// Service is the business logic contract for the user domain.
type Service interface {
	// Register creates a new account after the one-query duplicate check.
	// Email collisions take precedence over username collisions.
	Register(ctx context.Context, req RegisterRequest) (*UserDTO, error)

	// Login authenticates with username+password and issues an access
	// token. Failures collapse into ErrInvalidCredentials.
	Login(ctx context.Context, req LoginRequest) (*TokenResponse, error)

	// GetByID returns the public shape of an active user.
	GetByID(ctx context.Context, id int64) (*UserDTO, error)
}
