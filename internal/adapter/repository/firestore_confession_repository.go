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

type firestoreConfessionRepository struct {
	client *firestore.Client
}

func NewFirestoreConfessionRepository(client *firestore.Client) repository.ConfessionRepository {
	return &firestoreConfessionRepository{
		client: client,
	}
}

func (r *firestoreConfessionRepository) Create(ctx context.Context, confession *entity.Confession) error {
	if confession.ID == "" {
		confession.ID = uuid.New().String()
	}
	if confession.Timestamp.IsZero() {
		confession.Timestamp = time.Now()
	}
	if confession.Reactions == nil {
		confession.Reactions = map[string][]string{}
	}

	_, err := r.client.Collection("confessions").Doc(confession.ID).Set(ctx, confession)
	if err != nil {
		return errors.Internal("Failed to create confession", err)
	}
	return nil
}

func (r *firestoreConfessionRepository) GetByID(ctx context.Context, id string) (*entity.Confession, error) {
	doc, err := r.client.Collection("confessions").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Confession", err)
		}
		return nil, errors.Internal("Failed to get confession", err)
	}

	var confession entity.Confession
	if err := doc.DataTo(&confession); err != nil {
		return nil, errors.Internal("Failed to parse confession data", err)
	}
	confession.ID = doc.Ref.ID
	return &confession, nil
}

func (r *firestoreConfessionRepository) List(ctx context.Context, limit, offset int) ([]*entity.Confession, int64, error) {
	query := r.client.Collection("confessions").OrderBy("timestamp", firestore.Desc)

	countDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count confessions", err)
	}
	total := int64(len(countDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var confessions []*entity.Confession
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate confessions", err)
		}

		var confession entity.Confession
		if err := doc.DataTo(&confession); err != nil {
			return nil, 0, errors.Internal("Failed to parse confession data", err)
		}
		confession.ID = doc.Ref.ID
		confessions = append(confessions, &confession)
	}

	return confessions, total, nil
}

func (r *firestoreConfessionRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("confessions").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete confession", err)
	}
	return nil
}

func (r *firestoreConfessionRepository) React(ctx context.Context, id, userID, emoji string) error {
	confessionRef := r.client.Collection("confessions").Doc(id)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(confessionRef)
		if err != nil {
			return err
		}

		var confession entity.Confession
		if err := doc.DataTo(&confession); err != nil {
			return err
		}

		current := confession.ReactionOf(userID)
		updates := []firestore.Update{}

		switch {
		case current == emoji:
			// Same emoji again removes the reaction.
			updates = append(updates, firestore.Update{
				FieldPath: firestore.FieldPath{"reactions", emoji},
				Value:     firestore.ArrayRemove(userID),
			})
		case current != "":
			// Move the user between buckets in one commit.
			updates = append(updates,
				firestore.Update{
					FieldPath: firestore.FieldPath{"reactions", current},
					Value:     firestore.ArrayRemove(userID),
				},
				firestore.Update{
					FieldPath: firestore.FieldPath{"reactions", emoji},
					Value:     firestore.ArrayUnion(userID),
				})
		default:
			updates = append(updates, firestore.Update{
				FieldPath: firestore.FieldPath{"reactions", emoji},
				Value:     firestore.ArrayUnion(userID),
			})
		}

		return tx.Update(confessionRef, updates)
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Confession", err)
		}
		return errors.Internal("Failed to update reaction", err)
	}
	return nil
}
