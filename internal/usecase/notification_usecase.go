package usecase

import (
	"context"

	"campuslink/internal/domain/entity"
	"campuslink/internal/domain/repository"
	"campuslink/pkg/errors"
)

type NotificationUseCase struct {
	notificationRepo repository.NotificationRepository
}

func NewNotificationUseCase(notificationRepo repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{
		notificationRepo: notificationRepo,
	}
}

func (uc *NotificationUseCase) List(ctx context.Context, sess *Session, limit, offset int) ([]*entity.Notification, int64, error) {
	notifications, total, err := uc.notificationRepo.ListByUser(ctx, sess.UserID, limit, offset)
	if err != nil {
		return nil, 0, errors.Internal("Failed to list notifications", err)
	}
	return notifications, total, nil
}

// MarkAllRead flips every unread notification of the caller in one batched
// write.
func (uc *NotificationUseCase) MarkAllRead(ctx context.Context, sess *Session) error {
	if err := uc.notificationRepo.MarkAllRead(ctx, sess.UserID); err != nil {
		return errors.Internal("Failed to mark notifications read", err)
	}
	return nil
}
