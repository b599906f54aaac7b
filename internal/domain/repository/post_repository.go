package repository

import (
	"context"

	"campuslink/internal/domain/entity"
)

type PostRepository interface {
	Create(ctx context.Context, post *entity.Post) error
	GetByID(ctx context.Context, id string) (*entity.Post, error)

	// ListFeed returns posts ordered pinned-first then newest-first, capped
	// at limit. Ordering is fully delegated to the store query.
	ListFeed(ctx context.Context, limit int) ([]*entity.Post, error)
	ListByAuthor(ctx context.Context, authorID string, limit, offset int) ([]*entity.Post, int64, error)
	Delete(ctx context.Context, id string) error

	// Like adds userID to the post's like set, creates the like
	// subdocument and, when notif is non-nil, fans it out to the author,
	// all in one transaction. Unlike reverses the like set and
	// subdocument.
	Like(ctx context.Context, postID, userID string, notif *entity.Notification) error
	Unlike(ctx context.Context, postID, userID string) error

	MarkViewed(ctx context.Context, postID, userID string) error
	SetPinned(ctx context.Context, postID string, pinned bool) error
}
