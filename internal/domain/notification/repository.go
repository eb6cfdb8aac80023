package notification

import "context"

type Repository interface {
	Create(ctx context.Context, n *Notification) error
	ListFor(ctx context.Context, userID int) ([]Notification, error)
	MarkAllRead(ctx context.Context, userID int) error
}
