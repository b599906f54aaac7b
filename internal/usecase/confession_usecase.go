package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"campuslink/internal/domain/entity"
	"campuslink/internal/domain/repository"
	"campuslink/pkg/errors"
)

type ConfessionUseCase struct {
	confessionRepo repository.ConfessionRepository
	limiter        Limiter
}

func NewConfessionUseCase(confessionRepo repository.ConfessionRepository, limiter Limiter) *ConfessionUseCase {
	return &ConfessionUseCase{
		confessionRepo: confessionRepo,
		limiter:        limiter,
	}
}

// Create publishes a confession. The author id is stored for moderation and
// self-deletion but never rendered; confessions are always anonymous.
func (uc *ConfessionUseCase) Create(ctx context.Context, sess *Session, text string) (*entity.Confession, error) {
	if allowed, wait := uc.limiter.Allow(sess.UserID, "create_post"); !allowed {
		return nil, errors.TooManyRequests("Posting too fast, retry in " + wait.Round(time.Second).String())
	}

	confession := &entity.Confession{
		ID:           uuid.New().String(),
		Text:         text,
		AuthorID:     sess.UserID,
		College:      sess.User.College,
		Reactions:    map[string][]string{},
		CommentCount: 0,
		Timestamp:    time.Now(),
	}

	if err := uc.confessionRepo.Create(ctx, confession); err != nil {
		return nil, errors.Internal("Failed to create confession", err)
	}
	return confession, nil
}

func (uc *ConfessionUseCase) List(ctx context.Context, limit, offset int) ([]*entity.Confession, int64, error) {
	confessions, total, err := uc.confessionRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, errors.Internal("Failed to list confessions", err)
	}
	return confessions, total, nil
}

// React toggles the caller's emoji reaction. Reacting with the current emoji
// removes it; reacting with a different one moves the caller between
// buckets.
func (uc *ConfessionUseCase) React(ctx context.Context, sess *Session, id, emoji string) (*entity.Confession, error) {
	if emoji == "" {
		return nil, errors.BadRequest("Reaction emoji is required", nil)
	}

	if err := uc.confessionRepo.React(ctx, id, sess.UserID, emoji); err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return nil, err
		}
		return nil, errors.Internal("Failed to react to confession", err)
	}

	confession, err := uc.confessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFound("Confession", err)
	}
	return confession, nil
}

// Delete removes a confession. Only the hidden author or an admin may
// delete.
func (uc *ConfessionUseCase) Delete(ctx context.Context, sess *Session, id string) error {
	confession, err := uc.confessionRepo.GetByID(ctx, id)
	if err != nil {
		return errors.NotFound("Confession", err)
	}

	if confession.AuthorID != sess.UserID && !sess.IsAdmin() {
		return errors.Forbidden("Not allowed to delete this confession", nil)
	}

	if err := uc.confessionRepo.Delete(ctx, id); err != nil {
		return errors.Internal("Failed to delete confession", err)
	}
	return nil
}
