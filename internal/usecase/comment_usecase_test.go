package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"campuslink/internal/domain/entity"
	"campuslink/pkg/errors"
)

func TestDeletingOnlyCommentRestoresCounter(t *testing.T) {
	s := newStore()
	alice := s.addUser("alice", "Alice")
	bob := s.addUser("bob", "Bob")
	postUC := newPostUseCase(s)
	uc := NewCommentUseCase(&fakeCommentRepo{s})

	post, _ := postUC.Create(context.Background(), sessionFor(alice), CreatePostInput{Text: "discuss"})

	comment, err := uc.Add(context.Background(), sessionFor(bob), entity.KindPost, post.ID, "first!")
	assert.NoError(t, err)
	assert.Equal(t, 1, s.posts[post.ID].CommentCount)

	assert.NoError(t, uc.Delete(context.Background(), sessionFor(bob), entity.KindPost, post.ID, comment.ID))
	assert.Zero(t, s.posts[post.ID].CommentCount)
}

func TestCommentNotifiesParentAuthor(t *testing.T) {
	s := newStore()
	alice := s.addUser("alice", "Alice")
	bob := s.addUser("bob", "Bob")
	postUC := newPostUseCase(s)
	uc := NewCommentUseCase(&fakeCommentRepo{s})

	post, _ := postUC.Create(context.Background(), sessionFor(alice), CreatePostInput{Text: "discuss"})

	_, err := uc.Add(context.Background(), sessionFor(bob), entity.KindPost, post.ID, "nice")
	assert.NoError(t, err)
	assert.Len(t, s.notifs["alice"], 1)
	assert.Equal(t, entity.NotificationComment, s.notifs["alice"][0].Type)

	// Commenting on your own post stays silent.
	_, err = uc.Add(context.Background(), sessionFor(alice), entity.KindPost, post.ID, "thanks")
	assert.NoError(t, err)
	assert.Len(t, s.notifs["alice"], 1)
}

func TestCommentOnMarketplaceItemBumpsItsCounter(t *testing.T) {
	s := newStore()
	s.addUser("seller", "Seller")
	buyer := s.addUser("buyer", "Buyer")
	s.items["item1"] = &entity.MarketplaceItem{ID: "item1", Title: "Textbook", SellerID: "seller"}
	uc := NewCommentUseCase(&fakeCommentRepo{s})

	_, err := uc.Add(context.Background(), sessionFor(buyer), entity.KindMarketplaceItem, "item1", "still available?")

	assert.NoError(t, err)
	assert.Equal(t, 1, s.items["item1"].CommentCount)
	assert.Len(t, s.notifs["seller"], 1)
}

func TestDeleteCommentRequiresAuthorOrAdmin(t *testing.T) {
	s := newStore()
	alice := s.addUser("alice", "Alice")
	bob := s.addUser("bob", "Bob")
	postUC := newPostUseCase(s)
	uc := NewCommentUseCase(&fakeCommentRepo{s})

	post, _ := postUC.Create(context.Background(), sessionFor(alice), CreatePostInput{Text: "discuss"})
	comment, _ := uc.Add(context.Background(), sessionFor(bob), entity.KindPost, post.ID, "mine")

	err := uc.Delete(context.Background(), sessionFor(alice), entity.KindPost, post.ID, comment.ID)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestCommentOnMissingParentFails(t *testing.T) {
	s := newStore()
	bob := s.addUser("bob", "Bob")
	uc := NewCommentUseCase(&fakeCommentRepo{s})

	_, err := uc.Add(context.Background(), sessionFor(bob), entity.KindPost, "ghost", "anyone?")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}
