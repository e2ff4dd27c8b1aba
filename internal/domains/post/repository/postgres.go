package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-backend/internal/domains/post"
	"blog-backend/internal/domains/tag"
	"blog-backend/pkg/cache"
	"blog-backend/pkg/database"
)

const postCacheTTL = 5 * time.Minute

// postgresRepository is the concrete implementation of post.Repository.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

// NewPostgresRepository returns the pgx-backed post repository.
func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) post.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

const postColumns = `
	id, title, content, author_id,
	is_deleted, deleted_at, created_at, updated_at
`

func scanPost(row pgx.Row) (*post.Post, error) {
	var p post.Post
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Content,
		&p.AuthorID,
		&p.IsDeleted,
		&p.DeletedAt,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func postCacheKey(id int64) string {
	return fmt.Sprintf("post:%d", id)
}

// CreateWithTags inserts the post row and its associations atomically.
// The generated id is only assigned once the transaction commits.
func (r *postgresRepository) CreateWithTags(ctx context.Context, p *post.Post, tagIDs []int64) error {
	id, err := database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (int64, error) {
		query := `
			INSERT INTO posts (
				title, content, author_id,
				is_deleted, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`

		var id int64
		err := tx.QueryRow(ctx, query,
			p.Title,
			p.Content,
			p.AuthorID,
			p.IsDeleted,
			p.CreatedAt,
			p.UpdatedAt,
		).Scan(&id)
		if err != nil {
			return 0, fmt.Errorf("create post: %w", err)
		}

		return id, insertPostTags(ctx, tx, id, tagIDs)
	})
	if err != nil {
		return err
	}

	p.ID = id
	return nil
}

// FindByID looks up an active post with cache-aside, then loads its tags.
func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*post.Post, error) {
	cacheKey := postCacheKey(id)

	var cached post.Post
	found, err := r.cache.Get(ctx, cacheKey, &cached)
	if err == nil && found {
		return &cached, nil
	}

	query := `SELECT ` + postColumns + `
		FROM posts
		WHERE id = $1 AND is_deleted = FALSE`

	p, err := scanPost(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, post.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post by id: %w", err)
	}

	tagsByPost, err := r.loadTags(ctx, []int64{p.ID})
	if err != nil {
		return nil, err
	}
	p.Tags = tagsByPost[p.ID]

	// Ignore cache errors; a request must not fail because Redis is down.
	_ = r.cache.Set(ctx, cacheKey, p, postCacheTTL)

	return p, nil
}

// List returns active posts newest-first. Tags are loaded with one extra
// query over the whole page instead of one per post.
func (r *postgresRepository) List(ctx context.Context, skip, limit int) ([]post.Post, error) {
	query := `SELECT ` + postColumns + `
		FROM posts
		WHERE is_deleted = FALSE
		ORDER BY created_at DESC
		OFFSET $1 LIMIT $2`

	rows, err := r.pool.Query(ctx, query, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	var posts []post.Post
	var ids []int64
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, *p)
		ids = append(ids, p.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts: %w", err)
	}

	if len(posts) == 0 {
		return posts, nil
	}

	tagsByPost, err := r.loadTags(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range posts {
		posts[i].Tags = tagsByPost[posts[i].ID]
	}

	return posts, nil
}

// Update persists the mutable fields and, when asked, replaces the tag
// association set inside the same transaction.
func (r *postgresRepository) Update(ctx context.Context, p *post.Post, replaceTags bool, tagIDs []int64) error {
	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		query := `
			UPDATE posts
			SET title = $1, content = $2, updated_at = $3
			WHERE id = $4 AND is_deleted = FALSE
		`

		ct, err := tx.Exec(ctx, query, p.Title, p.Content, p.UpdatedAt, p.ID)
		if err != nil {
			return fmt.Errorf("update post: %w", err)
		}
		if ct.RowsAffected() == 0 {
			return post.ErrPostNotFound
		}

		if !replaceTags {
			return nil
		}

		if _, err := tx.Exec(ctx, `DELETE FROM post_tags WHERE post_id = $1`, p.ID); err != nil {
			return fmt.Errorf("clear post tags: %w", err)
		}
		return insertPostTags(ctx, tx, p.ID, tagIDs)
	})
	if err != nil {
		return err
	}

	_ = r.cache.Delete(ctx, postCacheKey(p.ID))

	return nil
}

// SoftDelete flips the deletion flags on an active post.
func (r *postgresRepository) SoftDelete(ctx context.Context, id int64) error {
	query := `
		UPDATE posts
		SET is_deleted = TRUE, deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND is_deleted = FALSE
	`

	ct, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("soft delete post: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return post.ErrPostNotFound
	}

	_ = r.cache.Delete(ctx, postCacheKey(id))

	return nil
}

// FindAnyByID ignores the soft-delete predicate. Audit use only.
func (r *postgresRepository) FindAnyByID(ctx context.Context, id int64) (*post.Post, error) {
	query := `SELECT ` + postColumns + `
		FROM posts
		WHERE id = $1`

	p, err := scanPost(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, post.ErrPostNotFound
		}
		return nil, fmt.Errorf("find any post by id: %w", err)
	}

	return p, nil
}

// loadTags fetches the non-deleted tags for a set of posts in one query.
func (r *postgresRepository) loadTags(ctx context.Context, postIDs []int64) (map[int64][]tag.Tag, error) {
	query := `
		SELECT pt.post_id, t.id, t.name, t.is_deleted, t.deleted_at, t.created_at, t.updated_at
		FROM post_tags pt
		JOIN tags t ON t.id = pt.tag_id
		WHERE pt.post_id = ANY($1) AND t.is_deleted = FALSE
		ORDER BY pt.post_id, t.id
	`

	rows, err := r.pool.Query(ctx, query, postIDs)
	if err != nil {
		return nil, fmt.Errorf("load post tags: %w", err)
	}
	defer rows.Close()

	result := make(map[int64][]tag.Tag, len(postIDs))
	for rows.Next() {
		var postID int64
		var t tag.Tag
		if err := rows.Scan(
			&postID,
			&t.ID,
			&t.Name,
			&t.IsDeleted,
			&t.DeletedAt,
			&t.CreatedAt,
			&t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan post tag: %w", err)
		}
		result[postID] = append(result[postID], t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate post tags: %w", err)
	}

	return result, nil
}

func insertPostTags(ctx context.Context, tx pgx.Tx, postID int64, tagIDs []int64) error {
	for _, tagID := range tagIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO post_tags (post_id, tag_id) VALUES ($1, $2)`,
			postID, tagID,
		); err != nil {
			return fmt.Errorf("attach tag %d: %w", tagID, err)
		}
	}
	return nil
}
