package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"campuslink/internal/domain/entity"
	"campuslink/internal/domain/repository"
	"campuslink/pkg/errors"
)

type PostUseCase struct {
	postRepo repository.PostRepository
	limiter  Limiter
	feedSize int
}

func NewPostUseCase(postRepo repository.PostRepository, limiter Limiter, feedSize int) *PostUseCase {
	return &PostUseCase{
		postRepo: postRepo,
		limiter:  limiter,
		feedSize: feedSize,
	}
}

type CreatePostInput struct {
	Text        string
	ImageURL    string
	IsAnonymous bool
}

// Create publishes a new post. The author always starts in viewedBy so
// their own post never shows up as unseen to them.
func (uc *PostUseCase) Create(ctx context.Context, sess *Session, input CreatePostInput) (*entity.Post, error) {
	if allowed, wait := uc.limiter.Allow(sess.UserID, "create_post"); !allowed {
		return nil, errors.TooManyRequests("Posting too fast, retry in " + wait.Round(time.Second).String())
	}

	post := &entity.Post{
		ID:             uuid.New().String(),
		Text:           input.Text,
		ImageURL:       input.ImageURL,
		AuthorID:       sess.UserID,
		AuthorName:     sess.User.Name,
		AuthorPhoto:    sess.User.PhotoURL,
		AuthorVerified: sess.User.IsVerified,
		IsAnonymous:    input.IsAnonymous,
		College:        sess.User.College,
		Likes:          []string{},
		ViewedBy:       []string{sess.UserID},
		IsPinned:       false,
		CommentCount:   0,
		Timestamp:      time.Now(),
	}

	if input.IsAnonymous {
		post.AuthorName = "Anonymous"
		post.AuthorPhoto = ""
		post.AuthorVerified = false
	}

	if err := uc.postRepo.Create(ctx, post); err != nil {
		return nil, errors.Internal("Failed to create post", err)
	}
	return post, nil
}

func (uc *PostUseCase) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	post, err := uc.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFound("Post", err)
	}
	return post, nil
}

// Feed returns the pinned-first, newest-first page the home screen shows.
func (uc *PostUseCase) Feed(ctx context.Context) ([]*entity.Post, error) {
	posts, err := uc.postRepo.ListFeed(ctx, uc.feedSize)
	if err != nil {
		return nil, errors.Internal("Failed to load feed", err)
	}
	return posts, nil
}

func (uc *PostUseCase) ListByAuthor(ctx context.Context, authorID string, limit, offset int) ([]*entity.Post, int64, error) {
	posts, total, err := uc.postRepo.ListByAuthor(ctx, authorID, limit, offset)
	if err != nil {
		return nil, 0, errors.Internal("Failed to list posts", err)
	}
	return posts, total, nil
}

// ToggleLike likes the post when the caller is not in the like set and
// unlikes it when they are. Only the like path fans out a notification.
func (uc *PostUseCase) ToggleLike(ctx context.Context, sess *Session, postID string) (*entity.Post, error) {
	post, err := uc.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, errors.NotFound("Post", err)
	}

	if post.LikedBy(sess.UserID) {
		if err := uc.postRepo.Unlike(ctx, postID, sess.UserID); err != nil {
			if errors.Is(err, "NOT_FOUND") {
				return nil, err
			}
			return nil, errors.Internal("Failed to unlike post", err)
		}
	} else {
		notif := &entity.Notification{
			Type:        entity.NotificationLike,
			SenderID:    sess.UserID,
			SenderName:  sess.User.Name,
			SenderPhoto: sess.User.PhotoURL,
			PostID:      postID,
			Timestamp:   time.Now(),
		}
		if err := uc.postRepo.Like(ctx, postID, sess.UserID, notif); err != nil {
			// The post may vanish between the read above and the
			// repository transaction.
			if errors.Is(err, "NOT_FOUND") {
				return nil, err
			}
			return nil, errors.Internal("Failed to like post", err)
		}
	}

	post, err = uc.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, errors.NotFound("Post", err)
	}
	return post, nil
}

func (uc *PostUseCase) MarkViewed(ctx context.Context, sess *Session, postID string) error {
	if err := uc.postRepo.MarkViewed(ctx, postID, sess.UserID); err != nil {
		return errors.Internal("Failed to mark post viewed", err)
	}
	return nil
}

// Delete removes a post. Only the author or an admin may delete.
func (uc *PostUseCase) Delete(ctx context.Context, sess *Session, postID string) error {
	post, err := uc.postRepo.GetByID(ctx, postID)
	if err != nil {
		return errors.NotFound("Post", err)
	}

	if post.AuthorID != sess.UserID && !sess.IsAdmin() {
		return errors.Forbidden("Not allowed to delete this post", nil)
	}

	if err := uc.postRepo.Delete(ctx, postID); err != nil {
		return errors.Internal("Failed to delete post", err)
	}
	return nil
}
