package comment

import "context"

// Repository is the data access contract for comments.
type Repository interface {
	// Create inserts the comment and fills in the generated id.
	Create(ctx context.Context, c *Comment) (int64, error)

	// FindByID returns an active comment. Missing or soft-deleted
	// comments map to ErrCommentNotFound.
	FindByID(ctx context.Context, id int64) (*Comment, error)

	// ListByPost returns active comments on a post, oldest first with
	// id as the tiebreaker so pages are stable.
	ListByPost(ctx context.Context, postID int64, skip, limit int) ([]Comment, error)

	// SoftDelete marks an active comment deleted. Already-deleted or
	// missing comments map to ErrCommentNotFound.
	SoftDelete(ctx context.Context, id int64) error

	// FindAnyByID returns the comment regardless of its deletion state.
	// Used by audit tooling only.
	FindAnyByID(ctx context.Context, id int64) (*Comment, error)
}
