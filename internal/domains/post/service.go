package post

import (
	"context"

	"blog-backend/internal/shared"
)

// Service is the business logic contract for the post domain.
type Service interface {
	// Create publishes a post for the author. Every tag id must resolve
	// to an existing, non-deleted tag or the whole request is rejected.
	Create(ctx context.Context, authorID int64, req CreatePostRequest) (*PostDTO, error)

	// List returns active posts newest-first.
	List(ctx context.Context, p shared.Pagination) ([]PostDTO, error)

	// GetByID returns an active post with its tags.
	GetByID(ctx context.Context, id int64) (*PostDTO, error)

	// Update applies a partial update. Only the author may update;
	// anyone else gets ErrUpdateForbidden.
	Update(ctx context.Context, callerID, postID int64, req UpdatePostRequest) (*PostDTO, error)

	// Delete soft-deletes a post. Only the author may delete;
	// anyone else gets ErrDeleteForbidden.
	Delete(ctx context.Context, callerID, postID int64) error
}
