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

type firestoreFollowRepository struct {
	client *firestore.Client
}

func NewFirestoreFollowRepository(client *firestore.Client) repository.FollowRepository {
	return &firestoreFollowRepository{
		client: client,
	}
}

func (r *firestoreFollowRepository) Follow(ctx context.Context, followerID, targetID string, notif *entity.Notification) error {
	targetRef := r.client.Collection("users").Doc(targetID)
	followerRef := r.client.Collection("users").Doc(followerID)
	followerDocRef := targetRef.Collection("followers").Doc(followerID)
	followingDocRef := followerRef.Collection("following").Doc(targetID)

	now := time.Now()

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		// Reads must precede writes inside a Firestore transaction.
		existing, err := tx.Get(followerDocRef)
		if err != nil && status.Code(err) != codes.NotFound {
			return err
		}
		if existing != nil && existing.Exists() {
			// Already following; nothing to commit.
			return nil
		}

		if err := tx.Set(followerDocRef, map[string]interface{}{"timestamp": now}); err != nil {
			return err
		}
		if err := tx.Set(followingDocRef, map[string]interface{}{"timestamp": now}); err != nil {
			return err
		}
		if err := tx.Update(targetRef, []firestore.Update{{Path: "followerCount", Value: firestore.Increment(1)}}); err != nil {
			return err
		}
		if err := tx.Update(followerRef, []firestore.Update{{Path: "followingCount", Value: firestore.Increment(1)}}); err != nil {
			return err
		}

		if notif != nil {
			if notif.ID == "" {
				notif.ID = uuid.New().String()
			}
			notif.Timestamp = now
			notifRef := targetRef.Collection("notifications").Doc(notif.ID)
			if err := tx.Set(notifRef, notif); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return errors.Internal("Failed to follow user", err)
	}
	return nil
}

func (r *firestoreFollowRepository) Unfollow(ctx context.Context, followerID, targetID string) error {
	targetRef := r.client.Collection("users").Doc(targetID)
	followerRef := r.client.Collection("users").Doc(followerID)
	followerDocRef := targetRef.Collection("followers").Doc(followerID)
	followingDocRef := followerRef.Collection("following").Doc(targetID)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		existing, err := tx.Get(followerDocRef)
		if err != nil && status.Code(err) != codes.NotFound {
			return err
		}
		if existing == nil || !existing.Exists() {
			// Not following; decrementing would corrupt the counters.
			return nil
		}

		if err := tx.Delete(followerDocRef); err != nil {
			return err
		}
		if err := tx.Delete(followingDocRef); err != nil {
			return err
		}
		if err := tx.Update(targetRef, []firestore.Update{{Path: "followerCount", Value: firestore.Increment(-1)}}); err != nil {
			return err
		}
		return tx.Update(followerRef, []firestore.Update{{Path: "followingCount", Value: firestore.Increment(-1)}})
	})
	if err != nil {
		return errors.Internal("Failed to unfollow user", err)
	}
	return nil
}

func (r *firestoreFollowRepository) IsFollowing(ctx context.Context, followerID, targetID string) (bool, error) {
	doc, err := r.client.Collection("users").Doc(targetID).Collection("followers").Doc(followerID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}
		return false, errors.Internal("Failed to check follow status", err)
	}
	return doc.Exists(), nil
}

func (r *firestoreFollowRepository) ListFollowers(ctx context.Context, userID string, limit, offset int) ([]string, int64, error) {
	return r.listRelation(ctx, r.client.Collection("users").Doc(userID).Collection("followers"), limit, offset)
}

func (r *firestoreFollowRepository) ListFollowing(ctx context.Context, userID string, limit, offset int) ([]string, int64, error) {
	return r.listRelation(ctx, r.client.Collection("users").Doc(userID).Collection("following"), limit, offset)
}

func (r *firestoreFollowRepository) listRelation(ctx context.Context, col *firestore.CollectionRef, limit, offset int) ([]string, int64, error) {
	query := col.OrderBy("timestamp", firestore.Desc)

	countDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count relationship documents", err)
	}
	total := int64(len(countDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var ids []string
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate relationship documents", err)
		}
		ids = append(ids, doc.Ref.ID)
	}

	return ids, total, nil
}
