package service

import (
	"context"

	"blog-backend/internal/domains/comment"
	"blog-backend/internal/domains/post"
	"blog-backend/internal/shared"
)

// commentService implements comment.Service. It depends on the post
// repository to refuse comments on missing or soft-deleted posts.
type commentService struct {
	repo  comment.Repository
	posts post.Repository
}

// NewCommentService creates the comment service.
func NewCommentService(repo comment.Repository, posts post.Repository) comment.Service {
	return &commentService{
		repo:  repo,
		posts: posts,
	}
}

// Create attaches a comment to an active post.
func (s *commentService) Create(ctx context.Context, authorID int64, req comment.CreateCommentRequest) (*comment.CommentDTO, error) {
	// 1. NORMALIZE + VALIDATE
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// 2. POST MUST BE ACTIVE - soft-deleted posts reject new comments.
	if _, err := s.posts.FindByID(ctx, req.PostID); err != nil {
		return nil, err
	}

	// 3. BUILD + PERSIST ENTITY
	c := &comment.Comment{
		Content:  req.Content,
		PostID:   req.PostID,
		AuthorID: authorID,
	}
	c.Touch()

	id, err := s.repo.Create(ctx, c)
	if err != nil {
		return nil, err
	}
	c.ID = id

	dto := c.ToDTO()
	return &dto, nil
}

// ListByPost returns a post's active comments oldest-first. No post
// existence check: an unknown post id is an empty list, not a 404.
func (s *commentService) ListByPost(ctx context.Context, postID int64, page shared.Pagination) ([]comment.CommentDTO, error) {
	comments, err := s.repo.ListByPost(ctx, postID, page.Skip, page.Limit)
	if err != nil {
		return nil, err
	}

	dtos := make([]comment.CommentDTO, 0, len(comments))
	for i := range comments {
		dtos = append(dtos, comments[i].ToDTO())
	}

	return dtos, nil
}

// Delete soft-deletes a comment after the ownership check.
func (s *commentService) Delete(ctx context.Context, callerID, commentID int64) error {
	c, err := s.repo.FindByID(ctx, commentID)
	if err != nil {
		return err
	}
	if c.AuthorID != callerID {
		return comment.ErrDeleteForbidden
	}

	return s.repo.SoftDelete(ctx, commentID)
}
