package tag

import "context"

// Repository is the data access contract for tags.
type Repository interface {
	// Create inserts a tag with an already-normalized name.
	// Duplicate names map to ErrNameTaken.
	Create(ctx context.Context, name string) (*Tag, error)

	// FindByIDs returns the non-deleted tags matching ids, in the order
	// the ids were given. Missing or soft-deleted ids are simply absent
	// from the result; callers compare lengths to detect invalid sets.
	FindByIDs(ctx context.Context, ids []int64) ([]Tag, error)

	// List returns all non-deleted tags ordered by name.
	List(ctx context.Context) ([]Tag, error)
}
