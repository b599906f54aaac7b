package repository

import (
	"context"

	"campuslink/internal/domain/entity"
)

type ChatRepository interface {
	// GetOrCreate fetches the chat at chat.ID and creates it when absent.
	// The boolean result reports whether a new document was created. The
	// id must be derived with entity.ChatID so both directions of first
	// contact resolve to the same document.
	GetOrCreate(ctx context.Context, chat *entity.Chat) (*entity.Chat, bool, error)

	GetByID(ctx context.Context, id string) (*entity.Chat, error)
	ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.Chat, int64, error)

	// SendMessage appends to the messages subcollection and updates the
	// parent's cached last-message fields in one transaction.
	SendMessage(ctx context.Context, chatID string, message *entity.Message) error

	// DeleteMessage atomically removes the message and, when it was the
	// newest, recomputes the parent's cached last-message fields from the
	// remaining messages (clearing them if none remain).
	DeleteMessage(ctx context.Context, chatID, messageID string) error

	GetMessageByID(ctx context.Context, chatID, messageID string) (*entity.Message, error)
	ListMessages(ctx context.Context, chatID string, limit, offset int) ([]*entity.Message, int64, error)
	MarkRead(ctx context.Context, chatID, userID string) error
}
