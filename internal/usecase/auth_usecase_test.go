package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"campuslink/pkg/errors"
)

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	s := newStore()
	s.addUser("alice", "Alice")
	uc := NewAuthUseCase(&fakeUserRepo{s}, &fakeAuthClient{s: s})

	_, err := uc.Register(context.Background(), RegisterInput{
		Email:    "alice@campus.test",
		Password: "password123",
		Name:     "Alice Again",
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestRegisterCreatesUserAndToken(t *testing.T) {
	s := newStore()
	auth := &fakeAuthClient{s: s, nextUID: "uid-bob"}
	uc := NewAuthUseCase(&fakeUserRepo{s}, auth)

	result, err := uc.Register(context.Background(), RegisterInput{
		Email:    "bob@campus.test",
		Password: "password123",
		Name:     "Bob",
	})

	assert.NoError(t, err)
	assert.Equal(t, "uid-bob", result.User.ID)
	assert.Equal(t, "user", result.User.Role)
	assert.NotEmpty(t, result.Token)
	assert.Contains(t, s.users, "uid-bob")
}

func TestSuspendedUserIsForcedOut(t *testing.T) {
	s := newStore()
	user := s.addUser("alice", "Alice")
	user.IsSuspended = true
	auth := &fakeAuthClient{s: s}
	uc := NewAuthUseCase(&fakeUserRepo{s}, auth)

	sess, err := uc.CurrentSession(context.Background(), "alice")

	assert.Nil(t, sess)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
	assert.Contains(t, auth.revoked, "alice")
}

func TestCurrentSessionResolvesRole(t *testing.T) {
	s := newStore()
	user := s.addUser("root", "Root")
	user.Role = "admin"
	uc := NewAuthUseCase(&fakeUserRepo{s}, &fakeAuthClient{s: s})

	sess, err := uc.CurrentSession(context.Background(), "root")

	assert.NoError(t, err)
	assert.True(t, sess.IsAdmin())
	assert.Equal(t, "root", sess.UserID)
}

func TestCurrentSessionRejectsUnknownToken(t *testing.T) {
	s := newStore()
	uc := NewAuthUseCase(&fakeUserRepo{s}, &fakeAuthClient{s: s})

	_, err := uc.CurrentSession(context.Background(), "nobody")

	assert.Error(t, err)
}

func TestCompleteProfile(t *testing.T) {
	s := newStore()
	s.addUser("alice", "Alice")
	uc := NewAuthUseCase(&fakeUserRepo{s}, &fakeAuthClient{s: s})

	user, err := uc.CompleteProfile(context.Background(), "alice", ProfileSetupInput{
		Name:    "Alice K",
		Branch:  "CSE",
		Year:    "3rd",
		College: "GEC",
	})

	assert.NoError(t, err)
	assert.Equal(t, "CSE", user.Branch)
	assert.Equal(t, "3rd", user.Year)
	assert.Equal(t, "GEC", s.users["alice"].College)
}
