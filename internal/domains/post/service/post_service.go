package service

import (
	"context"
	"fmt"
	"time"

	"blog-backend/internal/domains/post"
	"blog-backend/internal/domains/tag"
	"blog-backend/internal/shared"
)

// postService implements post.Service.
type postService struct {
	repo post.Repository
	tags tag.Repository
}

// NewPostService creates the post service.
func NewPostService(repo post.Repository, tags tag.Repository) post.Service {
	return &postService{
		repo: repo,
		tags: tags,
	}
}

// resolveTags checks that every id maps to an existing, non-deleted tag.
// One missing id fails the whole set.
func (s *postService) resolveTags(ctx context.Context, ids []int64) ([]tag.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	found, err := s.tags.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve tags: %w", err)
	}
	if len(found) != len(ids) {
		return nil, tag.ErrInvalidTagID
	}

	return found, nil
}

// Create publishes a post for the author.
func (s *postService) Create(ctx context.Context, authorID int64, req post.CreatePostRequest) (*post.PostDTO, error) {
	// 1. NORMALIZE + VALIDATE
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// 2. RESOLVE TAGS - all ids must exist before we touch the posts table.
	tags, err := s.resolveTags(ctx, req.TagIDs)
	if err != nil {
		return nil, err
	}

	// 3. BUILD + PERSIST ENTITY
	p := &post.Post{
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: authorID,
		Tags:     tags,
	}
	p.Touch()

	if err := s.repo.CreateWithTags(ctx, p, req.TagIDs); err != nil {
		return nil, err
	}

	dto := p.ToDTO()
	return &dto, nil
}

// List returns active posts newest-first.
func (s *postService) List(ctx context.Context, page shared.Pagination) ([]post.PostDTO, error) {
	posts, err := s.repo.List(ctx, page.Skip, page.Limit)
	if err != nil {
		return nil, err
	}

	dtos := make([]post.PostDTO, 0, len(posts))
	for i := range posts {
		dtos = append(dtos, posts[i].ToDTO())
	}

	return dtos, nil
}

// GetByID returns an active post with its tags.
func (s *postService) GetByID(ctx context.Context, id int64) (*post.PostDTO, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dto := p.ToDTO()
	return &dto, nil
}

// Update applies a partial update after the ownership check.
func (s *postService) Update(ctx context.Context, callerID, postID int64, req post.UpdatePostRequest) (*post.PostDTO, error) {
	// 1. NORMALIZE + VALIDATE
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// 2. LOAD + OWNERSHIP CHECK
	p, err := s.repo.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if p.AuthorID != callerID {
		return nil, post.ErrUpdateForbidden
	}

	// 3. APPLY SUPPLIED FIELDS
	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Content != nil {
		p.Content = *req.Content
	}

	replaceTags := req.TagIDs != nil
	var tagIDs []int64
	if replaceTags {
		tagIDs = *req.TagIDs
		tags, err := s.resolveTags(ctx, tagIDs)
		if err != nil {
			return nil, err
		}
		p.Tags = tags
	}

	// 4. PERSIST
	p.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, p, replaceTags, tagIDs); err != nil {
		return nil, err
	}

	dto := p.ToDTO()
	return &dto, nil
}

// Delete soft-deletes a post after the ownership check.
func (s *postService) Delete(ctx context.Context, callerID, postID int64) error {
	p, err := s.repo.FindByID(ctx, postID)
	if err != nil {
		return err
	}
	if p.AuthorID != callerID {
		return post.ErrDeleteForbidden
	}

	return s.repo.SoftDelete(ctx, postID)
}
