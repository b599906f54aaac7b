package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"campuslink/internal/domain/entity"
	"campuslink/internal/domain/repository"
	"campuslink/pkg/errors"
)

type ListingUseCase struct {
	listingRepo repository.ListingRepository
	chatUseCase *ChatUseCase
	limiter     Limiter
}

func NewListingUseCase(listingRepo repository.ListingRepository, chatUseCase *ChatUseCase, limiter Limiter) *ListingUseCase {
	return &ListingUseCase{
		listingRepo: listingRepo,
		chatUseCase: chatUseCase,
		limiter:     limiter,
	}
}

type CreateMarketplaceItemInput struct {
	Title       string
	Description string
	Price       int64
	Category    string
	ImageURL    string
	Whatsapp    string
}

type CreateRoommateListingInput struct {
	Type        string
	Location    string
	Rent        int64
	Description string
	Whatsapp    string
}

type CreateStudyLinkInput struct {
	Title       string
	URL         string
	Subject     string
	Description string
}

type CreateAssignmentInput struct {
	Title    string
	Subject  string
	Caption  string
	Price    int64
	Whatsapp string
	Branch   string
	Year     string
	FileURL  string
}

func validCategory(category string) bool {
	for _, c := range entity.MarketplaceCategories {
		if c == category {
			return true
		}
	}
	return false
}

func (uc *ListingUseCase) allowCreate(sess *Session) error {
	if allowed, wait := uc.limiter.Allow(sess.UserID, "create_post"); !allowed {
		return errors.TooManyRequests("Posting too fast, retry in " + wait.Round(time.Second).String())
	}
	return nil
}

func (uc *ListingUseCase) CreateMarketplaceItem(ctx context.Context, sess *Session, input CreateMarketplaceItemInput) (*entity.MarketplaceItem, error) {
	if !validCategory(input.Category) {
		return nil, errors.BadRequest("Unknown marketplace category", nil)
	}
	if err := uc.allowCreate(sess); err != nil {
		return nil, err
	}

	item := &entity.MarketplaceItem{
		ID:          uuid.New().String(),
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		ImageURL:    input.ImageURL,
		SellerID:    sess.UserID,
		SellerName:  sess.User.Name,
		Whatsapp:    input.Whatsapp,
		Timestamp:   time.Now(),
	}

	if err := uc.listingRepo.CreateMarketplaceItem(ctx, item); err != nil {
		return nil, errors.Internal("Failed to create marketplace item", err)
	}
	return item, nil
}

func (uc *ListingUseCase) ListMarketplaceItems(ctx context.Context, category string, limit, offset int) ([]*entity.MarketplaceItem, int64, error) {
	if category != "" && !validCategory(category) {
		return nil, 0, errors.BadRequest("Unknown marketplace category", nil)
	}

	items, total, err := uc.listingRepo.ListMarketplaceItems(ctx, category, limit, offset)
	if err != nil {
		return nil, 0, errors.Internal("Failed to list marketplace items", err)
	}
	return items, total, nil
}

// ContactSeller opens (or reuses) the buyer-seller chat and drops the
// prefilled interest message in it.
func (uc *ListingUseCase) ContactSeller(ctx context.Context, sess *Session, itemID string) (*entity.Chat, error) {
	item, err := uc.listingRepo.GetMarketplaceItem(ctx, itemID)
	if err != nil {
		return nil, errors.NotFound("Marketplace item", err)
	}

	if item.SellerID == sess.UserID {
		return nil, errors.BadRequest("Cannot contact yourself", nil)
	}

	return uc.chatUseCase.Open(ctx, sess, item.SellerID, "Hi, I'm interested in buying: "+item.Title)
}

func (uc *ListingUseCase) CreateRoommateListing(ctx context.Context, sess *Session, input CreateRoommateListingInput) (*entity.RoommateListing, error) {
	if err := uc.allowCreate(sess); err != nil {
		return nil, err
	}

	listing := &entity.RoommateListing{
		ID:          uuid.New().String(),
		Type:        input.Type,
		Location:    input.Location,
		Rent:        input.Rent,
		Description: input.Description,
		AuthorID:    sess.UserID,
		AuthorName:  sess.User.Name,
		Whatsapp:    input.Whatsapp,
		Timestamp:   time.Now(),
	}

	if err := uc.listingRepo.CreateRoommateListing(ctx, listing); err != nil {
		return nil, errors.Internal("Failed to create roommate listing", err)
	}
	return listing, nil
}

func (uc *ListingUseCase) ListRoommateListings(ctx context.Context, limit, offset int) ([]*entity.RoommateListing, int64, error) {
	listings, total, err := uc.listingRepo.ListRoommateListings(ctx, limit, offset)
	if err != nil {
		return nil, 0, errors.Internal("Failed to list roommate listings", err)
	}
	return listings, total, nil
}

func (uc *ListingUseCase) CreateStudyLink(ctx context.Context, sess *Session, input CreateStudyLinkInput) (*entity.StudyLink, error) {
	if err := uc.allowCreate(sess); err != nil {
		return nil, err
	}

	link := &entity.StudyLink{
		ID:          uuid.New().String(),
		Title:       input.Title,
		URL:         input.URL,
		Subject:     input.Subject,
		Description: input.Description,
		AuthorID:    sess.UserID,
		AuthorName:  sess.User.Name,
		Timestamp:   time.Now(),
	}

	if err := uc.listingRepo.CreateStudyLink(ctx, link); err != nil {
		return nil, errors.Internal("Failed to create study link", err)
	}
	return link, nil
}

func (uc *ListingUseCase) ListStudyLinks(ctx context.Context, limit, offset int) ([]*entity.StudyLink, int64, error) {
	links, total, err := uc.listingRepo.ListStudyLinks(ctx, limit, offset)
	if err != nil {
		return nil, 0, errors.Internal("Failed to list study links", err)
	}
	return links, total, nil
}

func (uc *ListingUseCase) CreateAssignment(ctx context.Context, sess *Session, input CreateAssignmentInput) (*entity.Assignment, error) {
	if err := uc.allowCreate(sess); err != nil {
		return nil, err
	}

	assignment := &entity.Assignment{
		ID:         uuid.New().String(),
		Title:      input.Title,
		Subject:    input.Subject,
		Caption:    input.Caption,
		Price:      input.Price,
		Whatsapp:   input.Whatsapp,
		Branch:     input.Branch,
		Year:       input.Year,
		FileURL:    input.FileURL,
		AuthorID:   sess.UserID,
		AuthorName: sess.User.Name,
		Timestamp:  time.Now(),
	}

	if err := uc.listingRepo.CreateAssignment(ctx, assignment); err != nil {
		return nil, errors.Internal("Failed to create assignment", err)
	}
	return assignment, nil
}

// ListAssignments filters by the caller's branch and year when provided, so
// students only browse material for their own cohort.
func (uc *ListingUseCase) ListAssignments(ctx context.Context, branch, year string, limit, offset int) ([]*entity.Assignment, int64, error) {
	assignments, total, err := uc.listingRepo.ListAssignments(ctx, branch, year, limit, offset)
	if err != nil {
		return nil, 0, errors.Internal("Failed to list assignments", err)
	}
	return assignments, total, nil
}

// Delete removes any listing kind. Only the owner or an admin may delete.
func (uc *ListingUseCase) Delete(ctx context.Context, sess *Session, kind entity.ContentKind, id string) error {
	authorID, err := uc.listingRepo.GetAuthorID(ctx, kind, id)
	if err != nil {
		return errors.NotFound(kind.String(), err)
	}

	if authorID != sess.UserID && !sess.IsAdmin() {
		return errors.Forbidden("Not allowed to delete this listing", nil)
	}

	if err := uc.listingRepo.Delete(ctx, kind, id); err != nil {
		return errors.Internal("Failed to delete listing", err)
	}
	return nil
}
