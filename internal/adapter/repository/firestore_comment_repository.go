package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"campuslink/internal/domain/entity"
	"campuslink/internal/domain/repository"
	"campuslink/pkg/errors"
)

type firestoreCommentRepository struct {
	client *firestore.Client
}

func NewFirestoreCommentRepository(client *firestore.Client) repository.CommentRepository {
	return &firestoreCommentRepository{
		client: client,
	}
}

func (r *firestoreCommentRepository) parentRef(kind entity.ContentKind, parentID string) *firestore.DocumentRef {
	return r.client.Collection(kind.Collection()).Doc(parentID)
}

func (r *firestoreCommentRepository) Add(ctx context.Context, kind entity.ContentKind, parentID string, comment *entity.Comment, notif *entity.Notification) error {
	if comment.ID == "" {
		comment.ID = uuid.New().String()
	}
	if comment.Timestamp.IsZero() {
		comment.Timestamp = time.Now()
	}

	parentRef := r.parentRef(kind, parentID)
	commentRef := parentRef.Collection("comments").Doc(comment.ID)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		parentDoc, err := tx.Get(parentRef)
		if err != nil {
			return err
		}

		if err := tx.Set(commentRef, comment); err != nil {
			return err
		}
		if err := tx.Update(parentRef, []firestore.Update{
			{Path: "commentCount", Value: firestore.Increment(1)},
		}); err != nil {
			return err
		}

		if notif != nil {
			recipient, _ := parentDoc.DataAt(kind.AuthorField())
			recipientID, _ := recipient.(string)
			if recipientID != "" && recipientID != comment.AuthorID {
				if notif.ID == "" {
					notif.ID = uuid.New().String()
				}
				notif.Timestamp = comment.Timestamp
				notifRef := r.client.Collection("users").Doc(recipientID).Collection("notifications").Doc(notif.ID)
				if err := tx.Set(notifRef, notif); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Content", err)
		}
		return errors.Internal("Failed to add comment", err)
	}
	return nil
}

func (r *firestoreCommentRepository) Delete(ctx context.Context, kind entity.ContentKind, parentID, commentID string) error {
	parentRef := r.parentRef(kind, parentID)
	commentRef := parentRef.Collection("comments").Doc(commentID)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		commentDoc, err := tx.Get(commentRef)
		if err != nil {
			return err
		}
		if !commentDoc.Exists() {
			return status.Error(codes.NotFound, "comment not found")
		}

		if err := tx.Delete(commentRef); err != nil {
			return err
		}
		return tx.Update(parentRef, []firestore.Update{
			{Path: "commentCount", Value: firestore.Increment(-1)},
		})
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Comment", err)
		}
		return errors.Internal("Failed to delete comment", err)
	}
	return nil
}

func (r *firestoreCommentRepository) GetByID(ctx context.Context, kind entity.ContentKind, parentID, commentID string) (*entity.Comment, error) {
	doc, err := r.parentRef(kind, parentID).Collection("comments").Doc(commentID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Comment", err)
		}
		return nil, errors.Internal("Failed to get comment", err)
	}

	var comment entity.Comment
	if err := doc.DataTo(&comment); err != nil {
		return nil, errors.Internal("Failed to parse comment data", err)
	}
	comment.ID = doc.Ref.ID
	return &comment, nil
}

func (r *firestoreCommentRepository) List(ctx context.Context, kind entity.ContentKind, parentID string) ([]*entity.Comment, error) {
	query := r.parentRef(kind, parentID).Collection("comments").OrderBy("timestamp", firestore.Asc)

	iter := query.Documents(ctx)
	var comments []*entity.Comment
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate comments", err)
		}

		var comment entity.Comment
		if err := doc.DataTo(&comment); err != nil {
			return nil, errors.Internal("Failed to parse comment data", err)
		}
		comment.ID = doc.Ref.ID
		comments = append(comments, &comment)
	}

	return comments, nil
}

func (r *firestoreCommentRepository) Count(ctx context.Context, kind entity.ContentKind, parentID string) (int, error) {
	docs, err := r.parentRef(kind, parentID).Collection("comments").Documents(ctx).GetAll()
	if err != nil {
		return 0, errors.Internal("Failed to count comments", err)
	}
	return len(docs), nil
}
