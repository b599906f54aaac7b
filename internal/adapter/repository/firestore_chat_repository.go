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

type firestoreChatRepository struct {
	client *firestore.Client
}

func NewFirestoreChatRepository(client *firestore.Client) repository.ChatRepository {
	return &firestoreChatRepository{
		client: client,
	}
}

func (r *firestoreChatRepository) GetOrCreate(ctx context.Context, chat *entity.Chat) (*entity.Chat, bool, error) {
	chatRef := r.client.Collection("chats").Doc(chat.ID)

	var result entity.Chat
	created := false

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(chatRef)
		if err != nil && status.Code(err) != codes.NotFound {
			return err
		}

		if doc != nil && doc.Exists() {
			if err := doc.DataTo(&result); err != nil {
				return err
			}
			result.ID = doc.Ref.ID
			return nil
		}

		now := time.Now()
		chat.CreatedAt = now
		chat.LastMessageTimestamp = now
		if chat.ReadBy == nil {
			chat.ReadBy = []string{}
		}
		if err := tx.Set(chatRef, chat); err != nil {
			return err
		}
		result = *chat
		created = true
		return nil
	})
	if err != nil {
		return nil, false, errors.Internal("Failed to get or create chat", err)
	}

	return &result, created, nil
}

func (r *firestoreChatRepository) GetByID(ctx context.Context, id string) (*entity.Chat, error) {
	doc, err := r.client.Collection("chats").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Chat", err)
		}
		return nil, errors.Internal("Failed to get chat", err)
	}

	var chat entity.Chat
	if err := doc.DataTo(&chat); err != nil {
		return nil, errors.Internal("Failed to parse chat data", err)
	}
	chat.ID = doc.Ref.ID

	return &chat, nil
}

func (r *firestoreChatRepository) ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.Chat, int64, error) {
	query := r.client.Collection("chats").
		Where("participants", "array-contains", userID).
		OrderBy("lastMessageTimestamp", firestore.Desc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to fetch chats", err)
	}

	total := int64(len(allDocs))

	start := offset
	if start > len(allDocs) {
		start = len(allDocs)
	}
	end := len(allDocs)
	if limit > 0 && start+limit < end {
		end = start + limit
	}

	var chats []*entity.Chat
	for i := start; i < end; i++ {
		var chat entity.Chat
		if err := allDocs[i].DataTo(&chat); err != nil {
			continue // skip malformed documents
		}
		chat.ID = allDocs[i].Ref.ID
		chats = append(chats, &chat)
	}

	return chats, total, nil
}

func (r *firestoreChatRepository) SendMessage(ctx context.Context, chatID string, message *entity.Message) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	if message.Timestamp.IsZero() {
		message.Timestamp = time.Now()
	}

	chatRef := r.client.Collection("chats").Doc(chatID)
	messageRef := chatRef.Collection("messages").Doc(message.ID)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if _, err := tx.Get(chatRef); err != nil {
			return err
		}

		if err := tx.Set(messageRef, message); err != nil {
			return err
		}
		// The message append and the cached summary commit together, so
		// other clients can never observe one without the other.
		return tx.Update(chatRef, []firestore.Update{
			{Path: "lastMessage", Value: message.Text},
			{Path: "lastMessageBy", Value: message.SenderID},
			{Path: "lastMessageTimestamp", Value: message.Timestamp},
			{Path: "readBy", Value: []string{message.SenderID}},
		})
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Chat", err)
		}
		return errors.Internal("Failed to send message", err)
	}
	return nil
}

func (r *firestoreChatRepository) DeleteMessage(ctx context.Context, chatID, messageID string) error {
	chatRef := r.client.Collection("chats").Doc(chatID)
	messageRef := chatRef.Collection("messages").Doc(messageID)

	// The remaining messages are read outside the transaction; the
	// transaction re-reads the deleted message and the summary fields stay
	// consistent because the recompute and the delete commit together.
	remaining, _, err := r.ListMessages(ctx, chatID, 0, 0)
	if err != nil {
		return err
	}

	err = r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(messageRef)
		if err != nil {
			return err
		}
		if !doc.Exists() {
			return status.Error(codes.NotFound, "message not found")
		}

		var deleted entity.Message
		if err := doc.DataTo(&deleted); err != nil {
			return err
		}
		deleted.ID = doc.Ref.ID

		if err := tx.Delete(messageRef); err != nil {
			return err
		}

		survivors := make([]*entity.Message, 0, len(remaining))
		for _, m := range remaining {
			if m.ID != deleted.ID {
				survivors = append(survivors, m)
			}
		}

		latest := entity.LatestMessage(survivors)
		if latest == nil {
			// Subcollection is now empty; clear the cached fields.
			return tx.Update(chatRef, []firestore.Update{
				{Path: "lastMessage", Value: ""},
				{Path: "lastMessageBy", Value: ""},
				{Path: "lastMessageTimestamp", Value: time.Time{}},
			})
		}
		if !deleted.Timestamp.Before(latest.Timestamp) {
			// Deleted the newest message; promote the next one.
			return tx.Update(chatRef, []firestore.Update{
				{Path: "lastMessage", Value: latest.Text},
				{Path: "lastMessageBy", Value: latest.SenderID},
				{Path: "lastMessageTimestamp", Value: latest.Timestamp},
			})
		}
		return nil
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Message", err)
		}
		return errors.Internal("Failed to delete message", err)
	}
	return nil
}

func (r *firestoreChatRepository) GetMessageByID(ctx context.Context, chatID, messageID string) (*entity.Message, error) {
	doc, err := r.client.Collection("chats").Doc(chatID).Collection("messages").Doc(messageID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Message", err)
		}
		return nil, errors.Internal("Failed to get message", err)
	}

	var message entity.Message
	if err := doc.DataTo(&message); err != nil {
		return nil, errors.Internal("Failed to parse message data", err)
	}
	message.ID = doc.Ref.ID
	return &message, nil
}

func (r *firestoreChatRepository) ListMessages(ctx context.Context, chatID string, limit, offset int) ([]*entity.Message, int64, error) {
	query := r.client.Collection("chats").Doc(chatID).Collection("messages").OrderBy("timestamp", firestore.Asc)

	countDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count messages", err)
	}
	total := int64(len(countDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var messages []*entity.Message
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate messages", err)
		}

		var message entity.Message
		if err := doc.DataTo(&message); err != nil {
			return nil, 0, errors.Internal("Failed to parse message data", err)
		}
		message.ID = doc.Ref.ID
		messages = append(messages, &message)
	}

	return messages, total, nil
}

func (r *firestoreChatRepository) MarkRead(ctx context.Context, chatID, userID string) error {
	_, err := r.client.Collection("chats").Doc(chatID).Update(ctx, []firestore.Update{
		{Path: "readBy", Value: firestore.ArrayUnion(userID)},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Chat", err)
		}
		return errors.Internal("Failed to mark chat read", err)
	}
	return nil
}
