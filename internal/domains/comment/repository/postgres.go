package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-backend/internal/domains/comment"
)

// postgresRepository is the concrete implementation of comment.Repository.
// Comments are not cached: they are cheap to query and the list endpoint
// is the only hot read path.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository returns the pgx-backed comment repository.
func NewPostgresRepository(pool *pgxpool.Pool) comment.Repository {
	return &postgresRepository{pool: pool}
}

const commentColumns = `
	id, content, post_id, author_id,
	is_deleted, deleted_at, created_at, updated_at
`

func scanComment(row pgx.Row) (*comment.Comment, error) {
	var c comment.Comment
	err := row.Scan(
		&c.ID,
		&c.Content,
		&c.PostID,
		&c.AuthorID,
		&c.IsDeleted,
		&c.DeletedAt,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepository) Create(ctx context.Context, c *comment.Comment) (int64, error) {
	query := `
		INSERT INTO comments (
			content, post_id, author_id,
			is_deleted, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	var id int64
	err := r.pool.QueryRow(ctx, query,
		c.Content,
		c.PostID,
		c.AuthorID,
		c.IsDeleted,
		c.CreatedAt,
		c.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create comment: %w", err)
	}

	return id, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*comment.Comment, error) {
	query := `SELECT ` + commentColumns + `
		FROM comments
		WHERE id = $1 AND is_deleted = FALSE`

	c, err := scanComment(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, comment.ErrCommentNotFound
		}
		return nil, fmt.Errorf("find comment by id: %w", err)
	}

	return c, nil
}

// ListByPost orders oldest-first with id as the tiebreaker so two comments
// created in the same instant page deterministically.
func (r *postgresRepository) ListByPost(ctx context.Context, postID int64, skip, limit int) ([]comment.Comment, error) {
	query := `SELECT ` + commentColumns + `
		FROM comments
		WHERE post_id = $1 AND is_deleted = FALSE
		ORDER BY created_at ASC, id ASC
		OFFSET $2 LIMIT $3`

	rows, err := r.pool.Query(ctx, query, postID, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	var comments []comment.Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments: %w", err)
	}

	return comments, nil
}

func (r *postgresRepository) SoftDelete(ctx context.Context, id int64) error {
	query := `
		UPDATE comments
		SET is_deleted = TRUE, deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND is_deleted = FALSE
	`

	ct, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("soft delete comment: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return comment.ErrCommentNotFound
	}

	return nil
}

// FindAnyByID ignores the soft-delete predicate. Audit use only.
func (r *postgresRepository) FindAnyByID(ctx context.Context, id int64) (*comment.Comment, error) {
	query := `SELECT ` + commentColumns + `
		FROM comments
		WHERE id = $1`

	c, err := scanComment(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, comment.ErrCommentNotFound
		}
		return nil, fmt.Errorf("find any comment by id: %w", err)
	}

	return c, nil
}
