package user

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

// Notifier records an activity entry for a user. Failures are handled by
// the implementation and never surface here.
type Notifier interface {
	Record(ctx context.Context, userID int, title, message string)
}

// AssetStorage stores avatar binaries in the remote object store.
type AssetStorage interface {
	Upload(ctx context.Context, data []byte, filename, contentType string) (url, objectKey string, err error)
	Delete(ctx context.Context, objectKey string) error
}

type Servicer interface {
	Create(ctx context.Context, username, email, passwordHash string) (User, error)
	Get(ctx context.Context, id int) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	Authenticate(ctx context.Context, email, password string) (User, error)
	ResetPassword(ctx context.Context, email, newPassword string) error
	UpdateProfile(ctx context.Context, id int, username, phone string) (User, error)
	UpdateAvatar(ctx context.Context, id int, data []byte, filename, contentType string) (User, error)
	Delete(ctx context.Context, id int) error
}

type Service struct {
	repo     Repository
	assets   AssetStorage
	notifier Notifier
	log      *slog.Logger
}

func NewService(repo Repository, assets AssetStorage, notifier Notifier, log *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		assets:   assets,
		notifier: notifier,
		log:      log.With(slog.String("component", "user_service")),
	}
}

// HashPassword produces the bcrypt hash stored in place of a password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// NormalizeEmail lower-cases and trims an address; emails are unique in
// normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Create persists a new account. It is only reached after an OTP match, so
// the password argument is already a bcrypt hash.
func (s *Service) Create(ctx context.Context, username, email, passwordHash string) (User, error) {
	u, err := s.repo.Create(ctx, username, NormalizeEmail(email), passwordHash)
	if err != nil {
		return User{}, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

func (s *Service) Get(ctx context.Context, id int) (User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) FindByEmail(ctx context.Context, email string) (User, error) {
	return s.repo.FindByEmail(ctx, NormalizeEmail(email))
}

// Authenticate verifies an email/password pair for login. A missing user
// and a wrong password both map to ErrInvalidAuth.
func (s *Service) Authenticate(ctx context.Context, email, password string) (User, error) {
	u, err := s.repo.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return User{}, ErrInvalidAuth
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return User{}, ErrInvalidAuth
	}

	return u, nil
}

// ResetPassword replaces the stored hash after an OTP-verified reset. The
// strength policy applies before anything is hashed or persisted.
func (s *Service) ResetPassword(ctx context.Context, email, newPassword string) error {
	u, err := s.repo.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return err
	}

	newPassword = strings.TrimSpace(newPassword)
	if IsWeak(newPassword) {
		return ErrWeakPassword
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}

	if err := s.repo.UpdatePassword(ctx, u.ID, hash); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	s.notifier.Record(ctx, u.ID, "Password Changed", "Your password has been changed successfully.")
	return nil
}

func (s *Service) UpdateProfile(ctx context.Context, id int, username, phone string) (User, error) {
	if strings.TrimSpace(username) == "" {
		return User{}, fmt.Errorf("%w: username is required", ErrInvalidInput)
	}

	if err := s.repo.UpdateProfile(ctx, id, strings.TrimSpace(username), strings.TrimSpace(phone)); err != nil {
		return User{}, fmt.Errorf("update profile: %w", err)
	}

	return s.repo.FindByID(ctx, id)
}

// UpdateAvatar replaces the profile image. The previous remote object is
// deleted first; a failed remote delete aborts the whole operation so no
// orphaned object is left behind a forgotten key.
func (s *Service) UpdateAvatar(ctx context.Context, id int, data []byte, filename, contentType string) (User, error) {
	if len(data) == 0 {
		return User{}, fmt.Errorf("%w: image file is required", ErrInvalidInput)
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return User{}, err
	}

	if u.AvatarObjectKey != "" {
		if err := s.assets.Delete(ctx, u.AvatarObjectKey); err != nil {
			s.log.Error("failed to delete previous avatar", "user_id", id, "object_key", u.AvatarObjectKey, "error", err)
			return User{}, fmt.Errorf("delete previous avatar: %w", err)
		}
	}

	url, objectKey, err := s.assets.Upload(ctx, data, filename, contentType)
	if err != nil {
		return User{}, fmt.Errorf("upload avatar: %w", err)
	}

	if err := s.repo.UpdateAvatar(ctx, id, url, objectKey); err != nil {
		return User{}, fmt.Errorf("update avatar: %w", err)
	}

	return s.repo.FindByID(ctx, id)
}

// Delete removes the account. Documents and notifications owned by it are
// cascaded by the storage layer; the session cookie is cleared by the
// handler in the same response.
func (s *Service) Delete(ctx context.Context, id int) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
