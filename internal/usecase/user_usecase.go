package usecase

import (
	"context"
	"strings"
	"time"

	"campuslink/internal/domain/entity"
	"campuslink/internal/domain/repository"
	"campuslink/pkg/errors"
)

// searchWindow bounds how many user documents a filtered search scans. The
// store has no substring queries, so matching happens here over a capped
// page.
const searchWindow = 200

type UserUseCase struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
}

func NewUserUseCase(userRepo repository.UserRepository, followRepo repository.FollowRepository) *UserUseCase {
	return &UserUseCase{
		userRepo:   userRepo,
		followRepo: followRepo,
	}
}

type UpdateProfileInput struct {
	Name      string
	Branch    string
	Year      string
	College   string
	Bio       string
	Instagram string
	Whatsapp  string
	PhotoURL  string
}

func (uc *UserUseCase) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}
	return user, nil
}

func (uc *UserUseCase) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Branch != "" {
		user.Branch = input.Branch
	}
	if input.Year != "" {
		user.Year = input.Year
	}
	if input.College != "" {
		user.College = input.College
	}
	if input.Bio != "" {
		user.Bio = input.Bio
	}
	if input.Instagram != "" {
		user.Instagram = input.Instagram
	}
	if input.Whatsapp != "" {
		user.Whatsapp = input.Whatsapp
	}
	if input.PhotoURL != "" {
		user.PhotoURL = input.PhotoURL
	}
	user.UpdatedAt = time.Now()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Internal("Failed to update user record", err)
	}

	return user, nil
}

// Search lists users for the find-people screen. A non-empty query filters
// by case-insensitive substring match on name or email.
func (uc *UserUseCase) Search(ctx context.Context, query string, limit, offset int) ([]*entity.User, int64, error) {
	if query == "" {
		users, total, err := uc.userRepo.List(ctx, limit, offset)
		if err != nil {
			return nil, 0, errors.Internal("Failed to list users", err)
		}
		return users, total, nil
	}

	users, _, err := uc.userRepo.List(ctx, searchWindow, 0)
	if err != nil {
		return nil, 0, errors.Internal("Failed to list users", err)
	}

	q := strings.ToLower(query)
	matched := make([]*entity.User, 0)
	for _, user := range users {
		if strings.Contains(strings.ToLower(user.Name), q) || strings.Contains(strings.ToLower(user.Email), q) {
			matched = append(matched, user)
		}
	}

	total := int64(len(matched))
	if offset >= len(matched) {
		return []*entity.User{}, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

// Follow records sess's follow of targetID. The relationship documents, both
// counters and the follow notification commit atomically in the repository.
func (uc *UserUseCase) Follow(ctx context.Context, sess *Session, targetID string) error {
	if sess.UserID == targetID {
		return errors.BadRequest("Cannot follow yourself", nil)
	}

	if _, err := uc.userRepo.GetByID(ctx, targetID); err != nil {
		return errors.NotFound("User", err)
	}

	notif := &entity.Notification{
		Type:        entity.NotificationFollow,
		SenderID:    sess.UserID,
		SenderName:  sess.User.Name,
		SenderPhoto: sess.User.PhotoURL,
		Timestamp:   time.Now(),
	}

	if err := uc.followRepo.Follow(ctx, sess.UserID, targetID, notif); err != nil {
		return errors.Internal("Failed to follow user", err)
	}
	return nil
}

func (uc *UserUseCase) Unfollow(ctx context.Context, sess *Session, targetID string) error {
	if sess.UserID == targetID {
		return errors.BadRequest("Cannot unfollow yourself", nil)
	}

	if err := uc.followRepo.Unfollow(ctx, sess.UserID, targetID); err != nil {
		return errors.Internal("Failed to unfollow user", err)
	}
	return nil
}

func (uc *UserUseCase) IsFollowing(ctx context.Context, followerID, targetID string) (bool, error) {
	following, err := uc.followRepo.IsFollowing(ctx, followerID, targetID)
	if err != nil {
		return false, errors.Internal("Failed to check follow state", err)
	}
	return following, nil
}

func (uc *UserUseCase) ListFollowers(ctx context.Context, userID string, limit, offset int) ([]*entity.User, int64, error) {
	ids, total, err := uc.followRepo.ListFollowers(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, errors.Internal("Failed to list followers", err)
	}
	users, err := uc.resolveUsers(ctx, ids)
	return users, total, err
}

func (uc *UserUseCase) ListFollowing(ctx context.Context, userID string, limit, offset int) ([]*entity.User, int64, error) {
	ids, total, err := uc.followRepo.ListFollowing(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, errors.Internal("Failed to list following", err)
	}
	users, err := uc.resolveUsers(ctx, ids)
	return users, total, err
}

// resolveUsers expands relationship doc ids into profiles, skipping ids
// whose user document has since been deleted.
func (uc *UserUseCase) resolveUsers(ctx context.Context, ids []string) ([]*entity.User, error) {
	users := make([]*entity.User, 0, len(ids))
	for _, id := range ids {
		user, err := uc.userRepo.GetByID(ctx, id)
		if err != nil {
			continue
		}
		users = append(users, user)
	}
	return users, nil
}
