package usecase

import (
	"context"

	"campuslink/internal/domain/entity"
	"campuslink/internal/domain/repository"
	"campuslink/pkg/errors"
	"campuslink/pkg/logger"
)

type AdminUseCase struct {
	userRepo       repository.UserRepository
	postRepo       repository.PostRepository
	moderationRepo repository.ModerationRepository
	auth           AuthClient
}

func NewAdminUseCase(userRepo repository.UserRepository, postRepo repository.PostRepository, moderationRepo repository.ModerationRepository, auth AuthClient) *AdminUseCase {
	return &AdminUseCase{
		userRepo:       userRepo,
		postRepo:       postRepo,
		moderationRepo: moderationRepo,
		auth:           auth,
	}
}

func (uc *AdminUseCase) ListUsers(ctx context.Context, limit, offset int) ([]*entity.User, int64, error) {
	users, total, err := uc.userRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, errors.Internal("Failed to list users", err)
	}
	return users, total, nil
}

// SetSuspended flips a user's suspension flag. Suspending also revokes the
// user's refresh tokens so their next auth observation forces them out.
func (uc *AdminUseCase) SetSuspended(ctx context.Context, sess *Session, userID string, suspended bool) error {
	if sess.UserID == userID {
		return errors.BadRequest("Cannot suspend yourself", nil)
	}

	if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
		return errors.NotFound("User", err)
	}

	if err := uc.userRepo.SetSuspended(ctx, userID, suspended); err != nil {
		return errors.Internal("Failed to update suspension", err)
	}

	if suspended {
		if err := uc.auth.RevokeSessions(ctx, userID); err != nil {
			logger.Error("failed to revoke sessions for %s: %v", userID, err)
		}
	}

	logger.Info("admin %s set suspended=%t for user %s", sess.UserID, suspended, userID)
	return nil
}

func (uc *AdminUseCase) ListContent(ctx context.Context, kind entity.ContentKind, limit, offset int) ([]*repository.ContentSummary, int64, error) {
	summaries, total, err := uc.moderationRepo.ListContent(ctx, kind, limit, offset)
	if err != nil {
		return nil, 0, errors.Internal("Failed to list content", err)
	}
	return summaries, total, nil
}

func (uc *AdminUseCase) DeleteContent(ctx context.Context, sess *Session, kind entity.ContentKind, id string) error {
	if err := uc.moderationRepo.DeleteContent(ctx, kind, id); err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return err
		}
		return errors.Internal("Failed to delete content", err)
	}

	logger.Info("admin %s deleted %s %s", sess.UserID, kind.String(), id)
	return nil
}

// SetPinned pins or unpins a post. Pinned posts sort ahead of everything in
// the feed.
func (uc *AdminUseCase) SetPinned(ctx context.Context, postID string, pinned bool) error {
	if _, err := uc.postRepo.GetByID(ctx, postID); err != nil {
		return errors.NotFound("Post", err)
	}

	if err := uc.postRepo.SetPinned(ctx, postID, pinned); err != nil {
		return errors.Internal("Failed to update pin state", err)
	}
	return nil
}

// Backfill recomputes denormalized counters and missing defaults for one
// content kind. This is the manual recovery pass for drift left behind by
// interrupted writers.
func (uc *AdminUseCase) Backfill(ctx context.Context, kind entity.ContentKind) (*repository.BackfillResult, error) {
	result, err := uc.moderationRepo.BackfillCounters(ctx, kind)
	if err != nil {
		return nil, errors.Internal("Backfill failed", err)
	}
	return result, nil
}
