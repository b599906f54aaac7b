package repository

import (
	"context"

	"campuslink/internal/domain/entity"
)

type NotificationRepository interface {
	Create(ctx context.Context, recipientID string, notif *entity.Notification) error
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Notification, int64, error)

	// MarkAllRead flips every unread notification of the user in a single
	// batched write.
	MarkAllRead(ctx context.Context, userID string) error
}
