package repository

import (
	"context"

	"campuslink/internal/domain/entity"
)

// CommentRepository manages the comments subcollection under any commentable
// content kind. Add and Delete pair the subcollection mutation with the
// parent's commentCount update in one transaction.
type CommentRepository interface {
	// Add creates the comment and increments the parent's commentCount.
	// When notif is non-nil it is fanned out to the parent's author in the
	// same transaction, unless the commenter is the author.
	Add(ctx context.Context, kind entity.ContentKind, parentID string, comment *entity.Comment, notif *entity.Notification) error

	// Delete removes the comment and decrements the parent's commentCount.
	Delete(ctx context.Context, kind entity.ContentKind, parentID, commentID string) error

	GetByID(ctx context.Context, kind entity.ContentKind, parentID, commentID string) (*entity.Comment, error)
	List(ctx context.Context, kind entity.ContentKind, parentID string) ([]*entity.Comment, error)
	Count(ctx context.Context, kind entity.ContentKind, parentID string) (int, error)
}
