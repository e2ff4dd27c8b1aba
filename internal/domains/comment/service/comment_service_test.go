package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/domains/comment"
	"blog-backend/internal/domains/post"
	"blog-backend/internal/shared"
)

// fakeCommentRepo is an in-memory comment.Repository.
type fakeCommentRepo struct {
	comments map[int64]*comment.Comment
	nextID   int64
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: map[int64]*comment.Comment{}, nextID: 1}
}

func (f *fakeCommentRepo) Create(ctx context.Context, c *comment.Comment) (int64, error) {
	id := f.nextID
	f.nextID++

	stored := *c
	stored.ID = id
	f.comments[id] = &stored
	return id, nil
}

func (f *fakeCommentRepo) FindByID(ctx context.Context, id int64) (*comment.Comment, error) {
	c, ok := f.comments[id]
	if !ok || c.IsDeleted {
		return nil, comment.ErrCommentNotFound
	}
	return c, nil
}

func (f *fakeCommentRepo) ListByPost(ctx context.Context, postID int64, skip, limit int) ([]comment.Comment, error) {
	var result []comment.Comment
	for id := int64(1); id < f.nextID; id++ {
		c, ok := f.comments[id]
		if ok && !c.IsDeleted && c.PostID == postID {
			result = append(result, *c)
		}
	}
	return result, nil
}

func (f *fakeCommentRepo) SoftDelete(ctx context.Context, id int64) error {
	c, ok := f.comments[id]
	if !ok || c.IsDeleted {
		return comment.ErrCommentNotFound
	}
	c.MarkDeleted()
	return nil
}

func (f *fakeCommentRepo) FindAnyByID(ctx context.Context, id int64) (*comment.Comment, error) {
	c, ok := f.comments[id]
	if !ok {
		return nil, comment.ErrCommentNotFound
	}
	return c, nil
}

// fakePostRepo implements only the lookup the comment service needs;
// the write methods are never reached from here.
type fakePostRepo struct {
	posts   map[int64]*post.Post
	lookups int
}

func (f *fakePostRepo) CreateWithTags(ctx context.Context, p *post.Post, tagIDs []int64) error {
	panic("not used in comment service tests")
}

func (f *fakePostRepo) FindByID(ctx context.Context, id int64) (*post.Post, error) {
	f.lookups++

	p, ok := f.posts[id]
	if !ok || p.IsDeleted {
		return nil, post.ErrPostNotFound
	}
	return p, nil
}

func (f *fakePostRepo) List(ctx context.Context, skip, limit int) ([]post.Post, error) {
	panic("not used in comment service tests")
}

func (f *fakePostRepo) Update(ctx context.Context, p *post.Post, replaceTags bool, tagIDs []int64) error {
	panic("not used in comment service tests")
}

func (f *fakePostRepo) SoftDelete(ctx context.Context, id int64) error {
	panic("not used in comment service tests")
}

func (f *fakePostRepo) FindAnyByID(ctx context.Context, id int64) (*post.Post, error) {
	panic("not used in comment service tests")
}

const (
	activePostID  = int64(1)
	deletedPostID = int64(2)
	authorID      = int64(10)
)

func newTestService() (comment.Service, *fakeCommentRepo, *fakePostRepo) {
	repo := newFakeCommentRepo()
	posts := &fakePostRepo{posts: map[int64]*post.Post{
		activePostID:  {ID: activePostID, Title: "Active", AuthorID: authorID},
		deletedPostID: {ID: deletedPostID, Title: "Gone", AuthorID: authorID},
	}}
	posts.posts[deletedPostID].MarkDeleted()

	return NewCommentService(repo, posts), repo, posts
}

func TestCreateComment(t *testing.T) {
	svc, _, _ := newTestService()

	t.Run("success trims content", func(t *testing.T) {
		dto, err := svc.Create(context.Background(), authorID, comment.CreateCommentRequest{
			Content: "  Nice post!  ",
			PostID:  activePostID,
		})
		require.NoError(t, err)
		assert.Equal(t, "Nice post!", dto.Content)
		assert.Equal(t, activePostID, dto.PostID)
		assert.Equal(t, authorID, dto.AuthorID)
	})

	t.Run("missing post", func(t *testing.T) {
		_, err := svc.Create(context.Background(), authorID, comment.CreateCommentRequest{
			Content: "Hello?",
			PostID:  404,
		})
		assert.ErrorIs(t, err, post.ErrPostNotFound)
	})

	// A soft-deleted post behaves exactly like a missing one.
	t.Run("soft-deleted post", func(t *testing.T) {
		_, err := svc.Create(context.Background(), authorID, comment.CreateCommentRequest{
			Content: "Hello?",
			PostID:  deletedPostID,
		})
		assert.ErrorIs(t, err, post.ErrPostNotFound)
	})

	t.Run("missing post id", func(t *testing.T) {
		_, err := svc.Create(context.Background(), authorID, comment.CreateCommentRequest{
			Content: "Hello?",
		})
		assert.Error(t, err)
	})

	t.Run("blank content", func(t *testing.T) {
		_, err := svc.Create(context.Background(), authorID, comment.CreateCommentRequest{
			Content: "   ",
			PostID:  activePostID,
		})
		assert.Error(t, err)
	})

	t.Run("content too long", func(t *testing.T) {
		_, err := svc.Create(context.Background(), authorID, comment.CreateCommentRequest{
			Content: strings.Repeat("x", 1001),
			PostID:  activePostID,
		})
		assert.Error(t, err)
	})
}

func TestListCommentsByPost(t *testing.T) {
	svc, _, posts := newTestService()

	for _, content := range []string{"first", "second", "third"} {
		_, err := svc.Create(context.Background(), authorID, comment.CreateCommentRequest{
			Content: content,
			PostID:  activePostID,
		})
		require.NoError(t, err)
	}

	dtos, err := svc.ListByPost(context.Background(), activePostID, shared.Pagination{Skip: 0, Limit: 10})
	require.NoError(t, err)
	require.Len(t, dtos, 3)
	assert.Equal(t, "first", dtos[0].Content)
	assert.Equal(t, "third", dtos[2].Content)

	// Listing never consults the posts table: an unknown post id is an
	// empty result, not an error.
	lookupsBefore := posts.lookups
	dtos, err = svc.ListByPost(context.Background(), 404, shared.Pagination{Skip: 0, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, dtos)
	assert.Equal(t, lookupsBefore, posts.lookups)

	dtos, err = svc.ListByPost(context.Background(), deletedPostID, shared.Pagination{Skip: 0, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, dtos)
}

func TestDeleteComment(t *testing.T) {
	svc, repo, _ := newTestService()

	dto, err := svc.Create(context.Background(), authorID, comment.CreateCommentRequest{
		Content: "To be removed",
		PostID:  activePostID,
	})
	require.NoError(t, err)

	t.Run("non-author is forbidden", func(t *testing.T) {
		err := svc.Delete(context.Background(), authorID+1, dto.ID)
		assert.ErrorIs(t, err, comment.ErrDeleteForbidden)
	})

	t.Run("author soft-deletes", func(t *testing.T) {
		require.NoError(t, svc.Delete(context.Background(), authorID, dto.ID))

		audited, err := repo.FindAnyByID(context.Background(), dto.ID)
		require.NoError(t, err)
		assert.True(t, audited.IsDeleted)
	})

	t.Run("double delete reports not found", func(t *testing.T) {
		err := svc.Delete(context.Background(), authorID, dto.ID)
		assert.ErrorIs(t, err, comment.ErrCommentNotFound)
	})

	t.Run("unknown comment", func(t *testing.T) {
		err := svc.Delete(context.Background(), authorID, 404)
		assert.ErrorIs(t, err, comment.ErrCommentNotFound)
	})
}
