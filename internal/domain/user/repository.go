package user

import "context"

// Repository is the persistence contract for accounts. Implementations
// return ErrNotFound / ErrDuplicateEmail where applicable.
type Repository interface {
	Create(ctx context.Context, username, email, passwordHash string) (User, error)
	FindByID(ctx context.Context, id int) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	UpdatePassword(ctx context.Context, id int, passwordHash string) error
	UpdateProfile(ctx context.Context, id int, username, phone string) error
	UpdateAvatar(ctx context.Context, id int, url, objectKey string) error
	// Delete removes the account; documents and notifications cascade at
	// the storage layer.
	Delete(ctx context.Context, id int) error
}
