package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"campuslink/internal/domain/entity"
	"campuslink/internal/domain/repository"
	"campuslink/pkg/errors"
)

type ChatUseCase struct {
	chatRepo repository.ChatRepository
	userRepo repository.UserRepository
	limiter  Limiter
}

func NewChatUseCase(chatRepo repository.ChatRepository, userRepo repository.UserRepository, limiter Limiter) *ChatUseCase {
	return &ChatUseCase{
		chatRepo: chatRepo,
		userRepo: userRepo,
		limiter:  limiter,
	}
}

// ChatView is a chat joined with the other participant's profile, for the
// inbox screen.
type ChatView struct {
	Chat      *entity.Chat `json:"chat"`
	OtherUser *entity.User `json:"other_user,omitempty"`
}

// Open resolves the single chat between the caller and otherID, creating it
// when it does not exist yet. The document id is derived from the sorted
// participant pair, so first contact from either direction lands on the same
// chat. An optional initial message is sent after creation.
func (uc *ChatUseCase) Open(ctx context.Context, sess *Session, otherID, initialMessage string) (*entity.Chat, error) {
	if otherID == sess.UserID {
		return nil, errors.BadRequest("Cannot start a chat with yourself", nil)
	}

	if _, err := uc.userRepo.GetByID(ctx, otherID); err != nil {
		return nil, errors.NotFound("User", err)
	}

	if allowed, wait := uc.limiter.Allow(sess.UserID, "create_chat"); !allowed {
		return nil, errors.TooManyRequests("Creating chats too fast, retry in " + wait.Round(time.Second).String())
	}

	now := time.Now()
	chat := &entity.Chat{
		ID:           entity.ChatID(sess.UserID, otherID),
		Participants: []string{sess.UserID, otherID},
		ReadBy:       []string{sess.UserID},
		CreatedAt:    now,
	}

	chat, _, err := uc.chatRepo.GetOrCreate(ctx, chat)
	if err != nil {
		return nil, errors.Internal("Failed to open chat", err)
	}

	if initialMessage != "" {
		if _, err := uc.SendMessage(ctx, sess, chat.ID, initialMessage); err != nil {
			return nil, err
		}
		chat, err = uc.chatRepo.GetByID(ctx, chat.ID)
		if err != nil {
			return nil, errors.Internal("Failed to reload chat", err)
		}
	}

	return chat, nil
}

func (uc *ChatUseCase) SendMessage(ctx context.Context, sess *Session, chatID, text string) (*entity.Message, error) {
	chat, err := uc.chatRepo.GetByID(ctx, chatID)
	if err != nil {
		return nil, errors.NotFound("Chat", err)
	}
	if !chat.HasParticipant(sess.UserID) {
		return nil, errors.Forbidden("Not a participant of this chat", nil)
	}

	if allowed, wait := uc.limiter.Allow(sess.UserID, "send_message"); !allowed {
		return nil, errors.TooManyRequests("Sending messages too fast, retry in " + wait.Round(time.Second).String())
	}

	message := &entity.Message{
		ID:        uuid.New().String(),
		Text:      text,
		SenderID:  sess.UserID,
		Timestamp: time.Now(),
	}

	if err := uc.chatRepo.SendMessage(ctx, chatID, message); err != nil {
		// The chat may vanish between the read above and the repository
		// transaction.
		if errors.Is(err, "NOT_FOUND") {
			return nil, err
		}
		return nil, errors.Internal("Failed to send message", err)
	}
	return message, nil
}

// DeleteMessage removes one of the caller's own messages. When the deleted
// message was the newest, the chat's cached last-message fields are
// recomputed from what remains.
func (uc *ChatUseCase) DeleteMessage(ctx context.Context, sess *Session, chatID, messageID string) error {
	chat, err := uc.chatRepo.GetByID(ctx, chatID)
	if err != nil {
		return errors.NotFound("Chat", err)
	}
	if !chat.HasParticipant(sess.UserID) {
		return errors.Forbidden("Not a participant of this chat", nil)
	}

	message, err := uc.chatRepo.GetMessageByID(ctx, chatID, messageID)
	if err != nil {
		return errors.NotFound("Message", err)
	}
	if message.SenderID != sess.UserID {
		return errors.Forbidden("Only the sender can delete a message", nil)
	}

	if err := uc.chatRepo.DeleteMessage(ctx, chatID, messageID); err != nil {
		return errors.Internal("Failed to delete message", err)
	}
	return nil
}

func (uc *ChatUseCase) Inbox(ctx context.Context, sess *Session, limit, offset int) ([]*ChatView, int64, error) {
	chats, total, err := uc.chatRepo.ListByUserID(ctx, sess.UserID, limit, offset)
	if err != nil {
		return nil, 0, errors.Internal("Failed to list chats", err)
	}

	views := make([]*ChatView, 0, len(chats))
	for _, chat := range chats {
		view := &ChatView{Chat: chat}
		if otherID := chat.OtherParticipant(sess.UserID); otherID != "" {
			if other, err := uc.userRepo.GetByID(ctx, otherID); err == nil {
				view.OtherUser = other
			}
		}
		views = append(views, view)
	}
	return views, total, nil
}

func (uc *ChatUseCase) Messages(ctx context.Context, sess *Session, chatID string, limit, offset int) ([]*entity.Message, int64, error) {
	chat, err := uc.chatRepo.GetByID(ctx, chatID)
	if err != nil {
		return nil, 0, errors.NotFound("Chat", err)
	}
	if !chat.HasParticipant(sess.UserID) {
		return nil, 0, errors.Forbidden("Not a participant of this chat", nil)
	}

	messages, total, err := uc.chatRepo.ListMessages(ctx, chatID, limit, offset)
	if err != nil {
		return nil, 0, errors.Internal("Failed to list messages", err)
	}
	return messages, total, nil
}

func (uc *ChatUseCase) MarkRead(ctx context.Context, sess *Session, chatID string) error {
	chat, err := uc.chatRepo.GetByID(ctx, chatID)
	if err != nil {
		return errors.NotFound("Chat", err)
	}
	if !chat.HasParticipant(sess.UserID) {
		return errors.Forbidden("Not a participant of this chat", nil)
	}

	if err := uc.chatRepo.MarkRead(ctx, chatID, sess.UserID); err != nil {
		return errors.Internal("Failed to mark chat read", err)
	}
	return nil
}

// CanAccess reports whether the user participates in the chat. The live
// layer uses it to authorize chat topic subscriptions.
func (uc *ChatUseCase) CanAccess(ctx context.Context, userID, chatID string) bool {
	chat, err := uc.chatRepo.GetByID(ctx, chatID)
	if err != nil {
		return false
	}
	return chat.HasParticipant(userID)
}
