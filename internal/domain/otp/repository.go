package otp

import (
	"context"
	"time"
)

// Repository persists pending OTP records. Lookups that find nothing return
// ErrNoPending; the service maps that to the caller-facing error.
type Repository interface {
	Create(ctx context.Context, p PendingOTP) error
	// FindValid matches (email, code) among records whose deadline is
	// still ahead of now.
	FindValid(ctx context.Context, email, code string, now time.Time) (PendingOTP, error)
	// FindByEmail fetches the live record for an email regardless of code.
	FindByEmail(ctx context.Context, email string, now time.Time) (PendingOTP, error)
	// UpdateCode swaps the code in place without touching the expiry clock.
	UpdateCode(ctx context.Context, id int, code string) error
	DeleteByEmail(ctx context.Context, email string) error
	// DeleteExpired purges records past their deadline so expiry behaves
	// as deletion rather than filtering.
	DeleteExpired(ctx context.Context, now time.Time) error
}
