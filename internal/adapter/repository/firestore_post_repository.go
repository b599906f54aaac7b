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

type firestorePostRepository struct {
	client *firestore.Client
}

func NewFirestorePostRepository(client *firestore.Client) repository.PostRepository {
	return &firestorePostRepository{
		client: client,
	}
}

func (r *firestorePostRepository) Create(ctx context.Context, post *entity.Post) error {
	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	if post.Timestamp.IsZero() {
		post.Timestamp = time.Now()
	}

	_, err := r.client.Collection("posts").Doc(post.ID).Set(ctx, post)
	if err != nil {
		return errors.Internal("Failed to create post", err)
	}
	return nil
}

func (r *firestorePostRepository) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	doc, err := r.client.Collection("posts").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Post", err)
		}
		return nil, errors.Internal("Failed to get post", err)
	}

	var post entity.Post
	if err := doc.DataTo(&post); err != nil {
		return nil, errors.Internal("Failed to parse post data", err)
	}
	post.ID = doc.Ref.ID

	return &post, nil
}

// ListFeed needs the composite index (isPinned desc, timestamp desc); the
// store reports a missing index as FailedPrecondition with a creation link.
func (r *firestorePostRepository) ListFeed(ctx context.Context, limit int) ([]*entity.Post, error) {
	query := r.client.Collection("posts").
		OrderBy("isPinned", firestore.Desc).
		OrderBy("timestamp", firestore.Desc).
		Limit(limit)

	iter := query.Documents(ctx)
	var posts []*entity.Post

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate feed", err)
		}

		var post entity.Post
		if err := doc.DataTo(&post); err != nil {
			return nil, errors.Internal("Failed to parse post data", err)
		}
		post.ID = doc.Ref.ID
		posts = append(posts, &post)
	}

	return posts, nil
}

func (r *firestorePostRepository) ListByAuthor(ctx context.Context, authorID string, limit, offset int) ([]*entity.Post, int64, error) {
	query := r.client.Collection("posts").
		Where("authorId", "==", authorID).
		OrderBy("timestamp", firestore.Desc)

	countDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count posts by author", err)
	}
	total := int64(len(countDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var posts []*entity.Post
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate posts by author", err)
		}

		var post entity.Post
		if err := doc.DataTo(&post); err != nil {
			return nil, 0, errors.Internal("Failed to parse post data", err)
		}
		post.ID = doc.Ref.ID
		posts = append(posts, &post)
	}

	return posts, total, nil
}

func (r *firestorePostRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("posts").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete post", err)
	}
	return nil
}

func (r *firestorePostRepository) Like(ctx context.Context, postID, userID string, notif *entity.Notification) error {
	postRef := r.client.Collection("posts").Doc(postID)
	likeRef := postRef.Collection("likes").Doc(userID)

	now := time.Now()

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		postDoc, err := tx.Get(postRef)
		if err != nil {
			return err
		}

		var post entity.Post
		if err := postDoc.DataTo(&post); err != nil {
			return err
		}
		if post.LikedBy(userID) {
			// Repeated like is a no-op.
			return nil
		}

		if err := tx.Update(postRef, []firestore.Update{
			{Path: "likes", Value: firestore.ArrayUnion(userID)},
		}); err != nil {
			return err
		}
		if err := tx.Set(likeRef, map[string]interface{}{
			"userId":    userID,
			"timestamp": now,
		}); err != nil {
			return err
		}

		if notif != nil && post.AuthorID != "" && post.AuthorID != userID {
			if notif.ID == "" {
				notif.ID = uuid.New().String()
			}
			notif.Timestamp = now
			notifRef := r.client.Collection("users").Doc(post.AuthorID).Collection("notifications").Doc(notif.ID)
			if err := tx.Set(notifRef, notif); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Post", err)
		}
		return errors.Internal("Failed to like post", err)
	}
	return nil
}

func (r *firestorePostRepository) Unlike(ctx context.Context, postID, userID string) error {
	postRef := r.client.Collection("posts").Doc(postID)
	likeRef := postRef.Collection("likes").Doc(userID)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if _, err := tx.Get(postRef); err != nil {
			return err
		}
		if err := tx.Update(postRef, []firestore.Update{
			{Path: "likes", Value: firestore.ArrayRemove(userID)},
		}); err != nil {
			return err
		}
		return tx.Delete(likeRef)
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Post", err)
		}
		return errors.Internal("Failed to unlike post", err)
	}
	return nil
}

func (r *firestorePostRepository) MarkViewed(ctx context.Context, postID, userID string) error {
	_, err := r.client.Collection("posts").Doc(postID).Update(ctx, []firestore.Update{
		{Path: "viewedBy", Value: firestore.ArrayUnion(userID)},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Post", err)
		}
		return errors.Internal("Failed to mark post viewed", err)
	}
	return nil
}

func (r *firestorePostRepository) SetPinned(ctx context.Context, postID string, pinned bool) error {
	_, err := r.client.Collection("posts").Doc(postID).Update(ctx, []firestore.Update{
		{Path: "isPinned", Value: pinned},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Post", err)
		}
		return errors.Internal("Failed to update pin status", err)
	}
	return nil
}
