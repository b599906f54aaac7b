package repository

import (
	"context"

	"cloud.google.com/go/firestore"

	"campuslink/internal/domain/entity"
	"campuslink/internal/domain/repository"
	"campuslink/pkg/errors"
	"campuslink/pkg/logger"
)

type firestoreModerationRepository struct {
	client *firestore.Client
}

func NewFirestoreModerationRepository(client *firestore.Client) repository.ModerationRepository {
	return &firestoreModerationRepository{
		client: client,
	}
}

func (r *firestoreModerationRepository) ListContent(ctx context.Context, kind entity.ContentKind, limit, offset int) ([]*repository.ContentSummary, int64, error) {
	query := r.client.Collection(kind.Collection()).OrderBy("timestamp", firestore.Desc)

	docs, total, err := paginate(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, errors.Internal("Failed to list content", err)
	}

	var summaries []*repository.ContentSummary
	for _, doc := range docs {
		data := doc.Data()

		summary := &repository.ContentSummary{
			ID:     doc.Ref.ID,
			Kind:   kind.String(),
			Fields: data,
		}
		if author, ok := data[kind.AuthorField()].(string); ok {
			summary.AuthorID = author
		}
		if pinned, ok := data["isPinned"].(bool); ok {
			summary.IsPinned = pinned
		}
		if count, ok := data["commentCount"].(int64); ok {
			summary.CommentCount = int(count)
		}
		summaries = append(summaries, summary)
	}

	return summaries, total, nil
}

func (r *firestoreModerationRepository) DeleteContent(ctx context.Context, kind entity.ContentKind, id string) error {
	_, err := r.client.Collection(kind.Collection()).Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete content", err)
	}
	return nil
}

func (r *firestoreModerationRepository) BackfillCounters(ctx context.Context, kind entity.ContentKind) (*repository.BackfillResult, error) {
	docs, err := r.client.Collection(kind.Collection()).Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to scan collection for backfill", err)
	}

	result := &repository.BackfillResult{}

	for _, doc := range docs {
		result.Scanned++
		data := doc.Data()
		var updates []firestore.Update

		if kind.Commentable() {
			commentDocs, err := doc.Ref.Collection("comments").Documents(ctx).GetAll()
			if err != nil {
				logger.Warn("Backfill: failed to count comments for %s/%s: %v", kind.Collection(), doc.Ref.ID, err)
				continue
			}
			actual := int64(len(commentDocs))
			stored, _ := data["commentCount"].(int64)
			if stored != actual {
				updates = append(updates, firestore.Update{Path: "commentCount", Value: actual})
				result.CountersFixed++
			}
		}

		if kind == entity.KindPost {
			if _, ok := data["isPinned"]; !ok {
				updates = append(updates, firestore.Update{Path: "isPinned", Value: false})
				result.FieldsBackfilled++
			}
			if _, ok := data["likes"]; !ok {
				updates = append(updates, firestore.Update{Path: "likes", Value: []string{}})
				result.FieldsBackfilled++
			}
		}

		if len(updates) > 0 {
			if _, err := doc.Ref.Update(ctx, updates); err != nil {
				logger.Warn("Backfill: failed to update %s/%s: %v", kind.Collection(), doc.Ref.ID, err)
			}
		}
	}

	logger.Info("Backfill over %s: scanned=%d countersFixed=%d fieldsBackfilled=%d",
		kind.Collection(), result.Scanned, result.CountersFixed, result.FieldsBackfilled)

	return result, nil
}
