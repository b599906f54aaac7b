package repository

import (
	"context"

	"campuslink/internal/domain/entity"
)

type ListingRepository interface {
	CreateMarketplaceItem(ctx context.Context, item *entity.MarketplaceItem) error
	GetMarketplaceItem(ctx context.Context, id string) (*entity.MarketplaceItem, error)
	ListMarketplaceItems(ctx context.Context, category string, limit, offset int) ([]*entity.MarketplaceItem, int64, error)

	CreateRoommateListing(ctx context.Context, listing *entity.RoommateListing) error
	ListRoommateListings(ctx context.Context, limit, offset int) ([]*entity.RoommateListing, int64, error)

	CreateStudyLink(ctx context.Context, link *entity.StudyLink) error
	ListStudyLinks(ctx context.Context, limit, offset int) ([]*entity.StudyLink, int64, error)

	CreateAssignment(ctx context.Context, assignment *entity.Assignment) error
	ListAssignments(ctx context.Context, branch, year string, limit, offset int) ([]*entity.Assignment, int64, error)

	// GetAuthorID resolves the owning user of any listing kind, for
	// permission checks ahead of deletion.
	GetAuthorID(ctx context.Context, kind entity.ContentKind, id string) (string, error)
	Delete(ctx context.Context, kind entity.ContentKind, id string) error
}
