package repository

import (
	"context"

	"campuslink/internal/domain/entity"
)

type ConfessionRepository interface {
	Create(ctx context.Context, confession *entity.Confession) error
	GetByID(ctx context.Context, id string) (*entity.Confession, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Confession, int64, error)
	Delete(ctx context.Context, id string) error

	// React toggles userID's reaction to emoji: a repeated reaction is
	// removed, a different one is moved between buckets. Both array
	// mutations commit in one transaction.
	React(ctx context.Context, id, userID, emoji string) error
}
