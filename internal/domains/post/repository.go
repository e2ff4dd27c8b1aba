package post

import "context"

// Repository is the data access contract for posts. Tag associations
// are written together with the post row inside a single transaction.
type Repository interface {
	// CreateWithTags inserts the post and its tag associations
	// atomically and fills in the generated id and timestamps.
	CreateWithTags(ctx context.Context, p *Post, tagIDs []int64) error

	// FindByID returns an active post with its tags loaded.
	// Missing or soft-deleted posts map to ErrPostNotFound.
	FindByID(ctx context.Context, id int64) (*Post, error)

	// List returns active posts newest-first with tags loaded.
	List(ctx context.Context, skip, limit int) ([]Post, error)

	// Update persists title/content/updated_at. When replaceTags is
	// true the association set is replaced with tagIDs (which may be
	// empty) in the same transaction.
	Update(ctx context.Context, p *Post, replaceTags bool, tagIDs []int64) error

	// SoftDelete marks an active post deleted. Already-deleted or
	// missing posts map to ErrPostNotFound.
	SoftDelete(ctx context.Context, id int64) error

	// FindAnyByID returns the post regardless of its deletion state.
	// Used by audit tooling only.
	FindAnyByID(ctx context.Context, id int64) (*Post, error)
}
