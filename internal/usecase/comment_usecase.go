package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"campuslink/internal/domain/entity"
	"campuslink/internal/domain/repository"
	"campuslink/pkg/errors"
)

type CommentUseCase struct {
	commentRepo repository.CommentRepository
}

func NewCommentUseCase(commentRepo repository.CommentRepository) *CommentUseCase {
	return &CommentUseCase{
		commentRepo: commentRepo,
	}
}

// Add appends a comment under any commentable content kind. The comment, the
// parent's counter bump and the author notification commit atomically.
func (uc *CommentUseCase) Add(ctx context.Context, sess *Session, kind entity.ContentKind, parentID, text string) (*entity.Comment, error) {
	if !kind.Commentable() {
		return nil, errors.BadRequest("Content does not accept comments", nil)
	}

	comment := &entity.Comment{
		ID:         uuid.New().String(),
		Text:       text,
		AuthorID:   sess.UserID,
		AuthorName: sess.User.Name,
		Timestamp:  time.Now(),
	}

	notif := &entity.Notification{
		Type:        entity.NotificationComment,
		SenderID:    sess.UserID,
		SenderName:  sess.User.Name,
		SenderPhoto: sess.User.PhotoURL,
		PostID:      parentID,
		Timestamp:   comment.Timestamp,
	}

	if err := uc.commentRepo.Add(ctx, kind, parentID, comment, notif); err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return nil, err
		}
		return nil, errors.Internal("Failed to add comment", err)
	}
	return comment, nil
}

func (uc *CommentUseCase) List(ctx context.Context, kind entity.ContentKind, parentID string) ([]*entity.Comment, error) {
	if !kind.Commentable() {
		return nil, errors.BadRequest("Content does not accept comments", nil)
	}

	comments, err := uc.commentRepo.List(ctx, kind, parentID)
	if err != nil {
		return nil, errors.Internal("Failed to list comments", err)
	}
	return comments, nil
}

// Delete removes a comment. Only its author or an admin may delete; the
// parent's counter is decremented in the same transaction.
func (uc *CommentUseCase) Delete(ctx context.Context, sess *Session, kind entity.ContentKind, parentID, commentID string) error {
	comment, err := uc.commentRepo.GetByID(ctx, kind, parentID, commentID)
	if err != nil {
		return errors.NotFound("Comment", err)
	}

	if comment.AuthorID != sess.UserID && !sess.IsAdmin() {
		return errors.Forbidden("Not allowed to delete this comment", nil)
	}

	if err := uc.commentRepo.Delete(ctx, kind, parentID, commentID); err != nil {
		return errors.Internal("Failed to delete comment", err)
	}
	return nil
}
