package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"securenest/internal/domain/user"
)

const uniqueViolation = "23505"

type UserRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewUserRepository(pool *pgxpool.Pool, log *slog.Logger) *UserRepository {
	return &UserRepository{
		pool: pool,
		log:  log.With("component", "user_repository"),
	}
}

func (r *UserRepository) Create(ctx context.Context, username, email, passwordHash string) (user.User, error) {
	const query = `
		INSERT INTO users (username, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	u := user.User{Username: username, Email: email, Password: passwordHash}
	err := r.pool.QueryRow(ctx, query, username, email, passwordHash).
		Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return user.User{}, user.ErrDuplicateEmail
		}
		r.log.Error("failed to create user", "email", email, "error", err)
		return user.User{}, fmt.Errorf("create user: %w", err)
	}

	return u, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int) (user.User, error) {
	const query = `
		SELECT id, username, email, password_hash, avatar_url, avatar_object_key, phone, created_at
		FROM users WHERE id = $1`

	return r.scanUser(r.pool.QueryRow(ctx, query, id))
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (user.User, error) {
	const query = `
		SELECT id, username, email, password_hash, avatar_url, avatar_object_key, phone, created_at
		FROM users WHERE email = $1`

	return r.scanUser(r.pool.QueryRow(ctx, query, email))
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id int, passwordHash string) error {
	const query = `UPDATE users SET password_hash = $1 WHERE id = $2`

	result, err := r.pool.Exec(ctx, query, passwordHash, id)
	if err != nil {
		r.log.Error("failed to update password", "user_id", id, "error", err)
		return fmt.Errorf("update password: %w", err)
	}
	if result.RowsAffected() == 0 {
		return user.ErrNotFound
	}
	return nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id int, username, phone string) error {
	const query = `UPDATE users SET username = $1, phone = $2 WHERE id = $3`

	result, err := r.pool.Exec(ctx, query, username, phone, id)
	if err != nil {
		r.log.Error("failed to update profile", "user_id", id, "error", err)
		return fmt.Errorf("update profile: %w", err)
	}
	if result.RowsAffected() == 0 {
		return user.ErrNotFound
	}
	return nil
}

func (r *UserRepository) UpdateAvatar(ctx context.Context, id int, url, objectKey string) error {
	const query = `UPDATE users SET avatar_url = $1, avatar_object_key = $2 WHERE id = $3`

	result, err := r.pool.Exec(ctx, query, url, objectKey, id)
	if err != nil {
		r.log.Error("failed to update avatar", "user_id", id, "error", err)
		return fmt.Errorf("update avatar: %w", err)
	}
	if result.RowsAffected() == 0 {
		return user.ErrNotFound
	}
	return nil
}

// Delete removes the account row. Documents and notifications go with it via
// ON DELETE CASCADE on their foreign keys.
func (r *UserRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM users WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("failed to delete user", "user_id", id, "error", err)
		return fmt.Errorf("delete user: %w", err)
	}
	if result.RowsAffected() == 0 {
		return user.ErrNotFound
	}
	return nil
}

func (r *UserRepository) scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Password,
		&u.AvatarURL, &u.AvatarObjectKey, &u.Phone, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, fmt.Errorf("scan user: %w", err)
	}
	return u, nil
}
