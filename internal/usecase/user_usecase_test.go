package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"campuslink/internal/domain/entity"
	"campuslink/pkg/errors"
)

func TestFollowUnfollowRestoresCounters(t *testing.T) {
	s := newStore()
	alice := s.addUser("alice", "Alice")
	s.addUser("bob", "Bob")
	uc := NewUserUseCase(&fakeUserRepo{s}, &fakeFollowRepo{s})

	assert.NoError(t, uc.Follow(context.Background(), sessionFor(alice), "bob"))
	assert.Equal(t, 1, s.users["alice"].FollowingCount)
	assert.Equal(t, 1, s.users["bob"].FollowerCount)

	following, _ := uc.IsFollowing(context.Background(), "alice", "bob")
	assert.True(t, following)

	assert.NoError(t, uc.Unfollow(context.Background(), sessionFor(alice), "bob"))
	assert.Zero(t, s.users["alice"].FollowingCount)
	assert.Zero(t, s.users["bob"].FollowerCount)

	following, _ = uc.IsFollowing(context.Background(), "alice", "bob")
	assert.False(t, following)
}

func TestFollowNotifiesTargetExactlyOnce(t *testing.T) {
	s := newStore()
	alice := s.addUser("alice", "Alice")
	s.addUser("bob", "Bob")
	uc := NewUserUseCase(&fakeUserRepo{s}, &fakeFollowRepo{s})

	assert.NoError(t, uc.Follow(context.Background(), sessionFor(alice), "bob"))
	// A repeated follow is a no-op and must not duplicate the notification.
	assert.NoError(t, uc.Follow(context.Background(), sessionFor(alice), "bob"))

	assert.Len(t, s.notifs["bob"], 1)
	assert.Equal(t, entity.NotificationFollow, s.notifs["bob"][0].Type)
	assert.Equal(t, "alice", s.notifs["bob"][0].SenderID)
	assert.Equal(t, 1, s.users["bob"].FollowerCount)
}

func TestFollowSelfRejected(t *testing.T) {
	s := newStore()
	alice := s.addUser("alice", "Alice")
	uc := NewUserUseCase(&fakeUserRepo{s}, &fakeFollowRepo{s})

	err := uc.Follow(context.Background(), sessionFor(alice), "alice")
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestFollowUnknownUserRejected(t *testing.T) {
	s := newStore()
	alice := s.addUser("alice", "Alice")
	uc := NewUserUseCase(&fakeUserRepo{s}, &fakeFollowRepo{s})

	err := uc.Follow(context.Background(), sessionFor(alice), "ghost")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestListFollowersResolvesProfiles(t *testing.T) {
	s := newStore()
	alice := s.addUser("alice", "Alice")
	s.addUser("bob", "Bob")
	uc := NewUserUseCase(&fakeUserRepo{s}, &fakeFollowRepo{s})

	assert.NoError(t, uc.Follow(context.Background(), sessionFor(alice), "bob"))

	followers, total, err := uc.ListFollowers(context.Background(), "bob", 20, 0)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "Alice", followers[0].Name)
}

func TestUpdateProfileKeepsUnsetFields(t *testing.T) {
	s := newStore()
	alice := s.addUser("alice", "Alice")
	alice.College = "GEC"
	uc := NewUserUseCase(&fakeUserRepo{s}, &fakeFollowRepo{s})

	user, err := uc.UpdateProfile(context.Background(), "alice", UpdateProfileInput{Bio: "hi there"})

	assert.NoError(t, err)
	assert.Equal(t, "hi there", user.Bio)
	assert.Equal(t, "GEC", user.College)
	assert.Equal(t, "Alice", user.Name)
}

func TestSearchMatchesNameOrEmail(t *testing.T) {
	s := newStore()
	s.addUser("alice", "Alice")
	s.addUser("bob", "Bob")
	s.addUser("carol", "Carol")
	uc := NewUserUseCase(&fakeUserRepo{s}, &fakeFollowRepo{s})

	users, total, err := uc.Search(context.Background(), "ali", 20, 0)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "Alice", users[0].Name)

	// Email fragments match too.
	users, total, err = uc.Search(context.Background(), "bob@campus", 20, 0)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "Bob", users[0].Name)
}

func TestSearchWithoutQueryListsEveryone(t *testing.T) {
	s := newStore()
	s.addUser("alice", "Alice")
	s.addUser("bob", "Bob")
	uc := NewUserUseCase(&fakeUserRepo{s}, &fakeFollowRepo{s})

	users, total, err := uc.Search(context.Background(), "", 20, 0)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, users, 2)
}

func TestSearchPaginatesMatches(t *testing.T) {
	s := newStore()
	s.addUser("alice", "Alice")
	s.addUser("bob", "Bob")
	uc := NewUserUseCase(&fakeUserRepo{s}, &fakeFollowRepo{s})

	users, total, err := uc.Search(context.Background(), "campus.test", 1, 0)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, users, 1)

	users, total, err = uc.Search(context.Background(), "campus.test", 1, 5)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Empty(t, users)
}

func TestSearchNoMatches(t *testing.T) {
	s := newStore()
	s.addUser("alice", "Alice")
	uc := NewUserUseCase(&fakeUserRepo{s}, &fakeFollowRepo{s})

	users, total, err := uc.Search(context.Background(), "nobody", 20, 0)
	assert.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, users)
}
