package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"campuslink/internal/domain/entity"
	"campuslink/pkg/errors"
)

func newConfessionUseCase(s *store) *ConfessionUseCase {
	return NewConfessionUseCase(&fakeConfessionRepo{s}, allowAllLimiter{})
}

func TestConfessionKeepsAuthorForModerationOnly(t *testing.T) {
	s := newStore()
	alice := s.addUser("alice", "Alice")
	uc := newConfessionUseCase(s)

	confession, err := uc.Create(context.Background(), sessionFor(alice), "i never studied for finals")

	assert.NoError(t, err)
	assert.Equal(t, "alice", confession.AuthorID)
	assert.NotNil(t, confession.Reactions)
	assert.Zero(t, confession.CommentCount)
}

func TestReactToggleAndMove(t *testing.T) {
	s := newStore()
	alice := s.addUser("alice", "Alice")
	bob := s.addUser("bob", "Bob")
	uc := newConfessionUseCase(s)

	confession, _ := uc.Create(context.Background(), sessionFor(alice), "confession")

	// First reaction adds the user to the bucket.
	got, err := uc.React(context.Background(), sessionFor(bob), confession.ID, "❤️")
	assert.NoError(t, err)
	assert.Equal(t, "❤️", got.ReactionOf("bob"))

	// A different emoji moves the user between buckets.
	got, err = uc.React(context.Background(), sessionFor(bob), confession.ID, "😂")
	assert.NoError(t, err)
	assert.Equal(t, "😂", got.ReactionOf("bob"))
	assert.NotContains(t, got.Reactions["❤️"], "bob")

	// Repeating the current emoji removes the reaction.
	got, err = uc.React(context.Background(), sessionFor(bob), confession.ID, "😂")
	assert.NoError(t, err)
	assert.Equal(t, "", got.ReactionOf("bob"))
}

func TestDeleteConfessionAuthorOrAdmin(t *testing.T) {
	s := newStore()
	alice := s.addUser("alice", "Alice")
	bob := s.addUser("bob", "Bob")
	admin := s.addUser("root", "Root")
	admin.Role = entity.RoleAdmin
	uc := newConfessionUseCase(s)

	confession, _ := uc.Create(context.Background(), sessionFor(alice), "delete me")

	err := uc.Delete(context.Background(), sessionFor(bob), confession.ID)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	assert.NoError(t, uc.Delete(context.Background(), sessionFor(admin), confession.ID))
	assert.NotContains(t, s.confessions, confession.ID)
}
