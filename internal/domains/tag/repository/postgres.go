package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-backend/internal/domains/tag"
)

// postgresRepository is the concrete implementation of tag.Repository.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository returns the pgx-backed tag repository.
func NewPostgresRepository(pool *pgxpool.Pool) tag.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, name string) (*tag.Tag, error) {
	query := `
		INSERT INTO tags (name, is_deleted, created_at, updated_at)
		VALUES ($1, FALSE, NOW(), NOW())
		RETURNING id, name, is_deleted, deleted_at, created_at, updated_at
	`

	var t tag.Tag
	err := r.pool.QueryRow(ctx, query, name).Scan(
		&t.ID,
		&t.Name,
		&t.IsDeleted,
		&t.DeletedAt,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, tag.ErrNameTaken
		}
		return nil, fmt.Errorf("create tag: %w", err)
	}

	return &t, nil
}

// FindByIDs resolves ids against non-deleted tags. The result preserves
// the input order so post associations keep first-occurrence order.
func (r *postgresRepository) FindByIDs(ctx context.Context, ids []int64) ([]tag.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `
		SELECT id, name, is_deleted, deleted_at, created_at, updated_at
		FROM tags
		WHERE id = ANY($1) AND is_deleted = FALSE
	`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("find tags by ids: %w", err)
	}
	defer rows.Close()

	byID := make(map[int64]tag.Tag, len(ids))
	for rows.Next() {
		var t tag.Tag
		if err := rows.Scan(
			&t.ID,
			&t.Name,
			&t.IsDeleted,
			&t.DeletedAt,
			&t.CreatedAt,
			&t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		byID[t.ID] = t
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tags: %w", err)
	}

	result := make([]tag.Tag, 0, len(byID))
	for _, id := range ids {
		if t, ok := byID[id]; ok {
			result = append(result, t)
		}
	}

	return result, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]tag.Tag, error) {
	query := `
		SELECT id, name, is_deleted, deleted_at, created_at, updated_at
		FROM tags
		WHERE is_deleted = FALSE
		ORDER BY name
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	defer rows.Close()

	var tags []tag.Tag
	for rows.Next() {
		var t tag.Tag
		if err := rows.Scan(
			&t.ID,
			&t.Name,
			&t.IsDeleted,
			&t.DeletedAt,
			&t.CreatedAt,
			&t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tags: %w", err)
	}

	return tags, nil
}
