package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"campuslink/internal/domain/entity"
	"campuslink/pkg/errors"
)

func newListingUseCase(s *store) *ListingUseCase {
	return NewListingUseCase(&fakeListingRepo{s}, newChatUseCase(s), allowAllLimiter{})
}

func TestCreateMarketplaceItemValidatesCategory(t *testing.T) {
	s := newStore()
	alice := s.addUser("alice", "Alice")
	uc := newListingUseCase(s)

	_, err := uc.CreateMarketplaceItem(context.Background(), sessionFor(alice), CreateMarketplaceItemInput{
		Title:    "Mystery box",
		Category: "Contraband",
	})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	item, err := uc.CreateMarketplaceItem(context.Background(), sessionFor(alice), CreateMarketplaceItemInput{
		Title:    "Signals textbook",
		Category: "Books",
		Price:    250,
	})
	assert.NoError(t, err)
	assert.Equal(t, "alice", item.SellerID)
}

func TestContactSellerPrefillsInterestMessage(t *testing.T) {
	s := newStore()
	seller := s.addUser("seller", "Seller")
	buyer := s.addUser("buyer", "Buyer")
	uc := newListingUseCase(s)

	item, err := uc.CreateMarketplaceItem(context.Background(), sessionFor(seller), CreateMarketplaceItemInput{
		Title:    "Lab Coat",
		Category: "Lab Coat/Apron",
	})
	assert.NoError(t, err)

	chat, err := uc.ContactSeller(context.Background(), sessionFor(buyer), item.ID)
	assert.NoError(t, err)
	assert.Equal(t, entity.ChatID("buyer", "seller"), chat.ID)
	assert.Equal(t, "Hi, I'm interested in buying: Lab Coat", chat.LastMessage)
}

func TestContactSellerRejectsOwnListing(t *testing.T) {
	s := newStore()
	seller := s.addUser("seller", "Seller")
	uc := newListingUseCase(s)

	item, _ := uc.CreateMarketplaceItem(context.Background(), sessionFor(seller), CreateMarketplaceItemInput{
		Title:    "Calculator",
		Category: "Electronics",
	})

	_, err := uc.ContactSeller(context.Background(), sessionFor(seller), item.ID)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestDeleteListingOwnerOnly(t *testing.T) {
	s := newStore()
	seller := s.addUser("seller", "Seller")
	other := s.addUser("other", "Other")
	uc := newListingUseCase(s)

	item, _ := uc.CreateMarketplaceItem(context.Background(), sessionFor(seller), CreateMarketplaceItemInput{
		Title:    "Drafter",
		Category: "Tools",
	})

	err := uc.Delete(context.Background(), sessionFor(other), entity.KindMarketplaceItem, item.ID)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	assert.NoError(t, uc.Delete(context.Background(), sessionFor(seller), entity.KindMarketplaceItem, item.ID))
	assert.NotContains(t, s.items, item.ID)
}
