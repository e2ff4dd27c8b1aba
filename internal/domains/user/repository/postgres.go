package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-backend/internal/domains/user"
	"blog-backend/pkg/cache"
)

const userCacheTTL = 15 * time.Minute

// postgresRepository is the concrete implementation of user.Repository.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

// NewPostgresRepository returns the pgx-backed user repository.
func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) user.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

const userColumns = `
	id, email, username, hashed_password, full_name,
	is_deleted, deleted_at, created_at, updated_at
`

func scanUser(row pgx.Row) (*user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.Username,
		&u.HashedPassword,
		&u.FullName,
		&u.IsDeleted,
		&u.DeletedAt,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user. Unique violations on the email or username
// indexes map to the corresponding domain errors; this is the backstop for
// races that slip past the service-level duplicate check.
func (r *postgresRepository) Create(ctx context.Context, u *user.User) (int64, error) {
	query := `
		INSERT INTO users (
			email, username, hashed_password, full_name,
			is_deleted, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	var id int64
	err := r.pool.QueryRow(ctx, query,
		u.Email,
		u.Username,
		u.HashedPassword,
		u.FullName,
		u.IsDeleted,
		u.CreatedAt,
		u.UpdatedAt,
	).Scan(&id)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			if strings.Contains(pgErr.ConstraintName, "email") {
				return 0, user.ErrEmailTaken
			}
			return 0, user.ErrUsernameTaken
		}
		return 0, fmt.Errorf("create user: %w", err)
	}

	return id, nil
}

// FindByID looks up an active user with cache-aside: check Redis first,
// fall back to the database and populate the cache.
func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*user.User, error) {
	cacheKey := fmt.Sprintf("user:%d", id)

	var cached user.User
	found, err := r.cache.Get(ctx, cacheKey, &cached)
	if err == nil && found {
		return &cached, nil
	}

	query := `SELECT ` + userColumns + `
		FROM users
		WHERE id = $1 AND is_deleted = FALSE`

	u, err := scanUser(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}

	// Ignore cache errors; a request must not fail because Redis is down.
	_ = r.cache.Set(ctx, cacheKey, u, userCacheTTL)

	return u, nil
}

// FindByUsername is used by login and the auth middleware. Not cached:
// tokens carry the username, so staleness here would delay the effect of
// a soft delete.
func (r *postgresRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	query := `SELECT ` + userColumns + `
		FROM users
		WHERE username = $1 AND is_deleted = FALSE`

	u, err := scanUser(r.pool.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by username: %w", err)
	}

	return u, nil
}

// FindByEmailOrUsername is the registration duplicate pre-check: one query
// with an OR condition. Soft-deleted rows still count as collisions since
// the unique indexes cover them.
func (r *postgresRepository) FindByEmailOrUsername(ctx context.Context, email, username string) (*user.User, error) {
	query := `SELECT ` + userColumns + `
		FROM users
		WHERE email = $1 OR username = $2`

	u, err := scanUser(r.pool.QueryRow(ctx, query, email, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email or username: %w", err)
	}

	return u, nil
}

// FindAnyByID ignores the soft-delete predicate. Audit use only.
func (r *postgresRepository) FindAnyByID(ctx context.Context, id int64) (*user.User, error) {
	query := `SELECT ` + userColumns + `
		FROM users
		WHERE id = $1`

	u, err := scanUser(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("find any user by id: %w", err)
	}

	return u, nil
}
