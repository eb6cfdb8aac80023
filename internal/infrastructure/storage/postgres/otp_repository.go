package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"securenest/internal/domain/otp"
)

type OTPRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewOTPRepository(pool *pgxpool.Pool, log *slog.Logger) *OTPRepository {
	return &OTPRepository{
		pool: pool,
		log:  log.With("component", "otp_repository"),
	}
}

func (r *OTPRepository) Create(ctx context.Context, p otp.PendingOTP) error {
	const query = `
		INSERT INTO otps (email, code, expires_at, signup_username, signup_password_hash)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.pool.Exec(ctx, query,
		p.Email, p.Code, p.ExpiresAt, p.SignupUsername, p.SignupPasswordHash)
	if err != nil {
		r.log.Error("failed to create otp", "email", p.Email, "error", err)
		return fmt.Errorf("create otp: %w", err)
	}
	return nil
}

func (r *OTPRepository) FindValid(ctx context.Context, email, code string, now time.Time) (otp.PendingOTP, error) {
	const query = `
		SELECT id, email, code, created_at, expires_at, signup_username, signup_password_hash
		FROM otps
		WHERE email = $1 AND code = $2 AND expires_at > $3`

	return r.scanOTP(r.pool.QueryRow(ctx, query, email, code, now))
}

func (r *OTPRepository) FindByEmail(ctx context.Context, email string, now time.Time) (otp.PendingOTP, error) {
	const query = `
		SELECT id, email, code, created_at, expires_at, signup_username, signup_password_hash
		FROM otps
		WHERE email = $1 AND expires_at > $2`

	return r.scanOTP(r.pool.QueryRow(ctx, query, email, now))
}

// UpdateCode swaps the code without touching expires_at, so a resend never
// extends the original deadline.
func (r *OTPRepository) UpdateCode(ctx context.Context, id int, code string) error {
	const query = `UPDATE otps SET code = $1 WHERE id = $2`

	result, err := r.pool.Exec(ctx, query, code, id)
	if err != nil {
		r.log.Error("failed to update otp code", "otp_id", id, "error", err)
		return fmt.Errorf("update otp code: %w", err)
	}
	if result.RowsAffected() == 0 {
		return otp.ErrNoPending
	}
	return nil
}

func (r *OTPRepository) DeleteByEmail(ctx context.Context, email string) error {
	const query = `DELETE FROM otps WHERE email = $1`

	if _, err := r.pool.Exec(ctx, query, email); err != nil {
		r.log.Error("failed to delete otps", "email", email, "error", err)
		return fmt.Errorf("delete otps: %w", err)
	}
	return nil
}

func (r *OTPRepository) DeleteExpired(ctx context.Context, now time.Time) error {
	const query = `DELETE FROM otps WHERE expires_at <= $1`

	if _, err := r.pool.Exec(ctx, query, now); err != nil {
		r.log.Error("failed to purge expired otps", "error", err)
		return fmt.Errorf("purge expired otps: %w", err)
	}
	return nil
}

func (r *OTPRepository) scanOTP(row pgx.Row) (otp.PendingOTP, error) {
	var p otp.PendingOTP
	err := row.Scan(&p.ID, &p.Email, &p.Code, &p.CreatedAt, &p.ExpiresAt,
		&p.SignupUsername, &p.SignupPasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return otp.PendingOTP{}, otp.ErrNoPending
		}
		return otp.PendingOTP{}, fmt.Errorf("scan otp: %w", err)
	}
	return p, nil
}
