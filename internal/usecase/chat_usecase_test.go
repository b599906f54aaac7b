package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"campuslink/internal/domain/entity"
	"campuslink/internal/domain/repository"
	"campuslink/pkg/errors"
)

func newChatUseCase(s *store) *ChatUseCase {
	return NewChatUseCase(&fakeChatRepo{s}, &fakeUserRepo{s}, allowAllLimiter{})
}

func TestOpenFromEitherDirectionSharesOneChat(t *testing.T) {
	s := newStore()
	alice := s.addUser("alice", "Alice")
	bob := s.addUser("bob", "Bob")
	uc := newChatUseCase(s)

	first, err := uc.Open(context.Background(), sessionFor(alice), "bob", "hey")
	assert.NoError(t, err)

	second, err := uc.Open(context.Background(), sessionFor(bob), "alice", "")
	assert.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, s.chats, 1)
}

func TestOpenSelfChatRejected(t *testing.T) {
	s := newStore()
	alice := s.addUser("alice", "Alice")
	uc := newChatUseCase(s)

	_, err := uc.Open(context.Background(), sessionFor(alice), "alice", "")
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestOpenWithInitialMessageUpdatesLastMessage(t *testing.T) {
	s := newStore()
	alice := s.addUser("alice", "Alice")
	s.addUser("bob", "Bob")
	uc := newChatUseCase(s)

	chat, err := uc.Open(context.Background(), sessionFor(alice), "bob", "hello bob")

	assert.NoError(t, err)
	assert.Equal(t, "hello bob", chat.LastMessage)
	assert.Equal(t, "alice", chat.LastMessageBy)
}

func TestSendMessageRequiresParticipation(t *testing.T) {
	s := newStore()
	alice := s.addUser("alice", "Alice")
	s.addUser("bob", "Bob")
	carol := s.addUser("carol", "Carol")
	uc := newChatUseCase(s)

	chat, _ := uc.Open(context.Background(), sessionFor(alice), "bob", "")

	_, err := uc.SendMessage(context.Background(), sessionFor(carol), chat.ID, "let me in")
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestSendMessageRateLimited(t *testing.T) {
	s := newStore()
	alice := s.addUser("alice", "Alice")
	s.addUser("bob", "Bob")
	uc := NewChatUseCase(&fakeChatRepo{s}, &fakeUserRepo{s}, denyLimiter{action: "send_message"})

	chat, err := uc.Open(context.Background(), sessionFor(alice), "bob", "")
	assert.NoError(t, err)

	_, err = uc.SendMessage(context.Background(), sessionFor(alice), chat.ID, "spam")
	assert.True(t, errors.Is(err, "TOO_MANY_REQUESTS"))
}

func TestDeleteNewestMessagePromotesPrevious(t *testing.T) {
	s := newStore()
	alice := s.addUser("alice", "Alice")
	bob := s.addUser("bob", "Bob")
	uc := newChatUseCase(s)

	chat, _ := uc.Open(context.Background(), sessionFor(alice), "bob", "")
	first, err := uc.SendMessage(context.Background(), sessionFor(alice), chat.ID, "first")
	assert.NoError(t, err)
	second, err := uc.SendMessage(context.Background(), sessionFor(bob), chat.ID, "second")
	assert.NoError(t, err)

	assert.NoError(t, uc.DeleteMessage(context.Background(), sessionFor(bob), chat.ID, second.ID))
	assert.Equal(t, "first", s.chats[chat.ID].LastMessage)
	assert.Equal(t, "alice", s.chats[chat.ID].LastMessageBy)

	assert.NoError(t, uc.DeleteMessage(context.Background(), sessionFor(alice), chat.ID, first.ID))
	assert.Empty(t, s.chats[chat.ID].LastMessage)
	assert.Empty(t, s.chats[chat.ID].LastMessageBy)
}

func TestDeleteMessageSenderOnly(t *testing.T) {
	s := newStore()
	alice := s.addUser("alice", "Alice")
	bob := s.addUser("bob", "Bob")
	uc := newChatUseCase(s)

	chat, _ := uc.Open(context.Background(), sessionFor(alice), "bob", "")
	message, _ := uc.SendMessage(context.Background(), sessionFor(alice), chat.ID, "mine")

	err := uc.DeleteMessage(context.Background(), sessionFor(bob), chat.ID, message.ID)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestInboxResolvesOtherUser(t *testing.T) {
	s := newStore()
	alice := s.addUser("alice", "Alice")
	s.addUser("bob", "Bob")
	uc := newChatUseCase(s)

	_, err := uc.Open(context.Background(), sessionFor(alice), "bob", "hi")
	assert.NoError(t, err)

	views, total, err := uc.Inbox(context.Background(), sessionFor(alice), 20, 0)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "Bob", views[0].OtherUser.Name)
}

func TestMarkRead(t *testing.T) {
	s := newStore()
	alice := s.addUser("alice", "Alice")
	bob := s.addUser("bob", "Bob")
	uc := newChatUseCase(s)

	chat, _ := uc.Open(context.Background(), sessionFor(alice), "bob", "unread")
	assert.Equal(t, []string{"alice"}, s.chats[chat.ID].ReadBy)

	assert.NoError(t, uc.MarkRead(context.Background(), sessionFor(bob), chat.ID))
	assert.Contains(t, s.chats[chat.ID].ReadBy, "bob")
}

// vanishingChatRepo simulates a chat deleted between the use case's read and
// the repository transaction.
type vanishingChatRepo struct{ repository.ChatRepository }

func (vanishingChatRepo) SendMessage(context.Context, string, *entity.Message) error {
	return errors.NotFound("Chat", nil)
}

func TestSendMessageSurfacesVanishedChat(t *testing.T) {
	s := newStore()
	alice := s.addUser("alice", "Alice")
	s.addUser("bob", "Bob")
	chat, err := newChatUseCase(s).Open(context.Background(), sessionFor(alice), "bob", "")
	assert.NoError(t, err)

	uc := NewChatUseCase(vanishingChatRepo{&fakeChatRepo{s}}, &fakeUserRepo{s}, allowAllLimiter{})
	_, err = uc.SendMessage(context.Background(), sessionFor(alice), chat.ID, "hello")

	// A concurrent delete must surface as not-found, not as an internal error.
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}
