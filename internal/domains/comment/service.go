package comment

import (
	"context"

	"blog-backend/internal/shared"
)

// Service is the business logic contract for the comment domain.
type Service interface {
	// Create attaches a comment to the post named by req.PostID. A
	// missing or soft-deleted post fails with post.ErrPostNotFound.
	Create(ctx context.Context, authorID int64, req CreateCommentRequest) (*CommentDTO, error)

	// ListByPost returns a post's active comments oldest-first. An
	// unknown post id simply yields an empty list.
	ListByPost(ctx context.Context, postID int64, p shared.Pagination) ([]CommentDTO, error)

	// Delete soft-deletes a comment. Only the author may delete;
	// anyone else gets ErrDeleteForbidden.
	Delete(ctx context.Context, callerID, commentID int64) error
}
