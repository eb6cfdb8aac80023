package notification

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	Record(ctx context.Context, userID int, title, message string)
	ListFor(ctx context.Context, userID int) ([]Notification, error)
	MarkAllRead(ctx context.Context, userID int) error
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With(slog.String("component", "notification_service")),
	}
}

// Record stores an unread notification. A storage failure is logged and
// swallowed so the operation that triggered the notification still succeeds.
func (s *Service) Record(ctx context.Context, userID int, title, message string) {
	n := Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
	}
	if err := s.repo.Create(ctx, &n); err != nil {
		s.log.Error("failed to record notification",
			"user_id", userID, "title", title, "error", err)
	}
}

// ListFor returns the user's notifications newest-first.
func (s *Service) ListFor(ctx context.Context, userID int) ([]Notification, error) {
	list, err := s.repo.ListFor(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return list, nil
}

// MarkAllRead flips every unread notification to read. Calling it with no
// unread notifications is a no-op, not an error.
func (s *Service) MarkAllRead(ctx context.Context, userID int) error {
	if err := s.repo.MarkAllRead(ctx, userID); err != nil {
		return fmt.Errorf("mark notifications read: %w", err)
	}
	return nil
}
