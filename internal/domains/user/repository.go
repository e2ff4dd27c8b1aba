package user

import "context"

// Repository is the data access contract for users. Implemented by
// repository/postgres.go; faked in tests.
type Repository interface {
	// Create inserts a new user and returns its assigned id.
	// Unique violations map to ErrEmailTaken / ErrUsernameTaken.
	Create(ctx context.Context, u *User) (int64, error)

	// FindByID returns an active (not soft-deleted) user.
	FindByID(ctx context.Context, id int64) (*User, error)

	// FindByUsername returns an active user; used by login and the auth
	// middleware.
	FindByUsername(ctx context.Context, username string) (*User, error)

	// FindByEmailOrUsername runs the single OR-condition duplicate check
	// used during registration. Returns ErrUserNotFound when neither
	// matches.
	FindByEmailOrUsername(ctx context.Context, email, username string) (*User, error)

	// FindAnyByID fetches by primary key ignoring the soft-delete flag.
	// Audit path only; never used by the HTTP surface.
	FindAnyByID(ctx context.Context, id int64) (*User, error)
}
