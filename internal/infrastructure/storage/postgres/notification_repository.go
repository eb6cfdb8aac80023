package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"securenest/internal/domain/notification"
)

type NotificationRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewNotificationRepository(pool *pgxpool.Pool, log *slog.Logger) *NotificationRepository {
	return &NotificationRepository{
		pool: pool,
		log:  log.With("component", "notification_repository"),
	}
}

func (r *NotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	const query = `
		INSERT INTO notifications (user_id, title, message)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, query, n.UserID, n.Title, n.Message).
		Scan(&n.ID, &n.CreatedAt)
	if err != nil {
		r.log.Error("failed to create notification",
			"user_id", n.UserID, "error", err)
		return fmt.Errorf("create notification: %w", err)
	}
	return nil
}

func (r *NotificationRepository) ListFor(ctx context.Context, userID int) ([]notification.Notification, error) {
	const query = `
		SELECT id, user_id, title, message, read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("failed to list notifications", "user_id", userID, "error", err)
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var list []notification.Notification
	for rows.Next() {
		var n notification.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.Read, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		list = append(list, n)
	}
	return list, rows.Err()
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID int) error {
	const query = `UPDATE notifications SET read = TRUE WHERE user_id = $1 AND read = FALSE`

	if _, err := r.pool.Exec(ctx, query, userID); err != nil {
		r.log.Error("failed to mark notifications read", "user_id", userID, "error", err)
		return fmt.Errorf("mark notifications read: %w", err)
	}
	return nil
}
