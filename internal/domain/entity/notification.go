package entity

import "time"

const (
	NotificationLike    = "like"
	NotificationComment = "comment"
	NotificationFollow  = "follow"
)

type Notification struct {
	ID          string    `json:"id" firestore:"id"`
	Type        string    `json:"type" firestore:"type"`
	SenderID    string    `json:"sender_id" firestore:"senderId"`
	SenderName  string    `json:"sender_name" firestore:"senderName"`
	SenderPhoto string    `json:"sender_photo,omitempty" firestore:"senderPhoto,omitempty"`
	PostID      string    `json:"post_id,omitempty" firestore:"postId,omitempty"`
	IsRead      bool      `json:"is_read" firestore:"isRead"`
	Timestamp   time.Time `json:"timestamp" firestore:"timestamp"`
}
