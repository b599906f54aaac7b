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

type firestoreListingRepository struct {
	client *firestore.Client
}

func NewFirestoreListingRepository(client *firestore.Client) repository.ListingRepository {
	return &firestoreListingRepository{
		client: client,
	}
}

func (r *firestoreListingRepository) CreateMarketplaceItem(ctx context.Context, item *entity.MarketplaceItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if item.Timestamp.IsZero() {
		item.Timestamp = time.Now()
	}

	_, err := r.client.Collection(entity.KindMarketplaceItem.Collection()).Doc(item.ID).Set(ctx, item)
	if err != nil {
		return errors.Internal("Failed to create marketplace item", err)
	}
	return nil
}

func (r *firestoreListingRepository) GetMarketplaceItem(ctx context.Context, id string) (*entity.MarketplaceItem, error) {
	doc, err := r.client.Collection(entity.KindMarketplaceItem.Collection()).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Marketplace item", err)
		}
		return nil, errors.Internal("Failed to get marketplace item", err)
	}

	var item entity.MarketplaceItem
	if err := doc.DataTo(&item); err != nil {
		return nil, errors.Internal("Failed to parse marketplace item", err)
	}
	item.ID = doc.Ref.ID
	return &item, nil
}

func (r *firestoreListingRepository) ListMarketplaceItems(ctx context.Context, category string, limit, offset int) ([]*entity.MarketplaceItem, int64, error) {
	query := r.client.Collection(entity.KindMarketplaceItem.Collection()).Query
	if category != "" && category != "All" {
		query = query.Where("category", "==", category)
	}
	query = query.OrderBy("timestamp", firestore.Desc)

	docs, total, err := paginate(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, errors.Internal("Failed to list marketplace items", err)
	}

	var items []*entity.MarketplaceItem
	for _, doc := range docs {
		var item entity.MarketplaceItem
		if err := doc.DataTo(&item); err != nil {
			return nil, 0, errors.Internal("Failed to parse marketplace item", err)
		}
		item.ID = doc.Ref.ID
		items = append(items, &item)
	}
	return items, total, nil
}

func (r *firestoreListingRepository) CreateRoommateListing(ctx context.Context, listing *entity.RoommateListing) error {
	if listing.ID == "" {
		listing.ID = uuid.New().String()
	}
	if listing.Timestamp.IsZero() {
		listing.Timestamp = time.Now()
	}

	_, err := r.client.Collection(entity.KindRoommateListing.Collection()).Doc(listing.ID).Set(ctx, listing)
	if err != nil {
		return errors.Internal("Failed to create roommate listing", err)
	}
	return nil
}

func (r *firestoreListingRepository) ListRoommateListings(ctx context.Context, limit, offset int) ([]*entity.RoommateListing, int64, error) {
	query := r.client.Collection(entity.KindRoommateListing.Collection()).OrderBy("timestamp", firestore.Desc)

	docs, total, err := paginate(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, errors.Internal("Failed to list roommate listings", err)
	}

	var listings []*entity.RoommateListing
	for _, doc := range docs {
		var listing entity.RoommateListing
		if err := doc.DataTo(&listing); err != nil {
			return nil, 0, errors.Internal("Failed to parse roommate listing", err)
		}
		listing.ID = doc.Ref.ID
		listings = append(listings, &listing)
	}
	return listings, total, nil
}

func (r *firestoreListingRepository) CreateStudyLink(ctx context.Context, link *entity.StudyLink) error {
	if link.ID == "" {
		link.ID = uuid.New().String()
	}
	if link.Timestamp.IsZero() {
		link.Timestamp = time.Now()
	}

	_, err := r.client.Collection(entity.KindStudyLink.Collection()).Doc(link.ID).Set(ctx, link)
	if err != nil {
		return errors.Internal("Failed to create study link", err)
	}
	return nil
}

func (r *firestoreListingRepository) ListStudyLinks(ctx context.Context, limit, offset int) ([]*entity.StudyLink, int64, error) {
	query := r.client.Collection(entity.KindStudyLink.Collection()).OrderBy("timestamp", firestore.Desc)

	docs, total, err := paginate(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, errors.Internal("Failed to list study links", err)
	}

	var links []*entity.StudyLink
	for _, doc := range docs {
		var link entity.StudyLink
		if err := doc.DataTo(&link); err != nil {
			return nil, 0, errors.Internal("Failed to parse study link", err)
		}
		link.ID = doc.Ref.ID
		links = append(links, &link)
	}
	return links, total, nil
}

func (r *firestoreListingRepository) CreateAssignment(ctx context.Context, assignment *entity.Assignment) error {
	if assignment.ID == "" {
		assignment.ID = uuid.New().String()
	}
	if assignment.Timestamp.IsZero() {
		assignment.Timestamp = time.Now()
	}

	_, err := r.client.Collection(entity.KindAssignment.Collection()).Doc(assignment.ID).Set(ctx, assignment)
	if err != nil {
		return errors.Internal("Failed to create assignment", err)
	}
	return nil
}

func (r *firestoreListingRepository) ListAssignments(ctx context.Context, branch, year string, limit, offset int) ([]*entity.Assignment, int64, error) {
	query := r.client.Collection(entity.KindAssignment.Collection()).Query
	if branch != "" {
		query = query.Where("branch", "==", branch)
	}
	if year != "" {
		query = query.Where("year", "==", year)
	}
	query = query.OrderBy("timestamp", firestore.Desc)

	docs, total, err := paginate(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, errors.Internal("Failed to list assignments", err)
	}

	var assignments []*entity.Assignment
	for _, doc := range docs {
		var assignment entity.Assignment
		if err := doc.DataTo(&assignment); err != nil {
			return nil, 0, errors.Internal("Failed to parse assignment", err)
		}
		assignment.ID = doc.Ref.ID
		assignments = append(assignments, &assignment)
	}
	return assignments, total, nil
}

func (r *firestoreListingRepository) GetAuthorID(ctx context.Context, kind entity.ContentKind, id string) (string, error) {
	doc, err := r.client.Collection(kind.Collection()).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return "", errors.NotFound("Listing", err)
		}
		return "", errors.Internal("Failed to get listing", err)
	}

	author, err := doc.DataAt(kind.AuthorField())
	if err != nil {
		return "", errors.Internal("Failed to read listing author", err)
	}
	authorID, _ := author.(string)
	return authorID, nil
}

func (r *firestoreListingRepository) Delete(ctx context.Context, kind entity.ContentKind, id string) error {
	_, err := r.client.Collection(kind.Collection()).Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete listing", err)
	}
	return nil
}

// paginate runs the query once for the total and again with limit/offset
// applied, the same shape every list endpoint uses.
func paginate(ctx context.Context, query firestore.Query, limit, offset int) ([]*firestore.DocumentSnapshot, int64, error) {
	countDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, err
	}
	total := int64(len(countDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var docs []*firestore.DocumentSnapshot
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, err
		}
		docs = append(docs, doc)
	}
	return docs, total, nil
}
