package repository

import (
	"context"

	"campuslink/internal/domain/entity"
)

// ContentSummary is the kind-agnostic projection the admin surface lists.
type ContentSummary struct {
	ID           string                 `json:"id"`
	Kind         string                 `json:"kind"`
	AuthorID     string                 `json:"author_id"`
	IsPinned     bool                   `json:"is_pinned,omitempty"`
	CommentCount int                    `json:"comment_count"`
	Fields       map[string]interface{} `json:"fields"`
}

// BackfillResult reports what a counter backfill pass touched.
type BackfillResult struct {
	Scanned         int `json:"scanned"`
	CountersFixed   int `json:"counters_fixed"`
	FieldsBackfilled int `json:"fields_backfilled"`
}

// ModerationRepository is the admin's kind-agnostic view over all content
// collections.
type ModerationRepository interface {
	ListContent(ctx context.Context, kind entity.ContentKind, limit, offset int) ([]*ContentSummary, int64, error)
	DeleteContent(ctx context.Context, kind entity.ContentKind, id string) error

	// BackfillCounters recomputes each document's commentCount from its
	// comments subcollection and overwrites drifted values. For posts it
	// also backfills missing isPinned/likes fields. This is the manual
	// recovery pass for counter drift left by interrupted writers.
	BackfillCounters(ctx context.Context, kind entity.ContentKind) (*BackfillResult, error)
}
