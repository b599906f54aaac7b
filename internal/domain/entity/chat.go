package entity

import (
	"sort"
	"strings"
	"time"
)

// chatIDSeparator joins the two sorted participant ids into the chat
// document key. The derived id doubles as an idempotent get-or-create key,
// so at most one chat document can exist per pair of users.
const chatIDSeparator = "_"

// ChatID derives the deterministic chat document id for a pair of users.
// The result is identical regardless of which user initiates contact.
func ChatID(a, b string) string {
	ids := []string{a, b}
	sort.Strings(ids)
	return strings.Join(ids, chatIDSeparator)
}

type Chat struct {
	ID                   string    `json:"id" firestore:"id"`
	Participants         []string  `json:"participants" firestore:"participants"`
	LastMessage          string    `json:"last_message" firestore:"lastMessage"`
	LastMessageBy        string    `json:"last_message_by,omitempty" firestore:"lastMessageBy,omitempty"`
	LastMessageTimestamp time.Time `json:"last_message_timestamp" firestore:"lastMessageTimestamp"`
	ReadBy               []string  `json:"read_by" firestore:"readBy"`
	CreatedAt            time.Time `json:"created_at" firestore:"createdAt"`
}

// OtherParticipant returns the participant that is not userID, or "" for a
// malformed chat document.
func (c *Chat) OtherParticipant(userID string) string {
	for _, id := range c.Participants {
		if id != userID {
			return id
		}
	}
	return ""
}

func (c *Chat) HasParticipant(userID string) bool {
	for _, id := range c.Participants {
		if id == userID {
			return true
		}
	}
	return false
}

type Message struct {
	ID        string    `json:"id" firestore:"id"`
	Text      string    `json:"text" firestore:"text"`
	SenderID  string    `json:"sender_id" firestore:"senderId"`
	Timestamp time.Time `json:"timestamp" firestore:"timestamp"`
}

// LatestMessage picks the most recent message of a set. Used to recompute a
// chat's cached last-message fields after a deletion; returns nil for an
// empty set, which means the cached fields must be cleared.
func LatestMessage(messages []*Message) *Message {
	var latest *Message
	for _, m := range messages {
		if latest == nil || m.Timestamp.After(latest.Timestamp) {
			latest = m
		}
	}
	return latest
}
