package entity

import "time"

type Post struct {
	ID             string    `json:"id" firestore:"id"`
	Text           string    `json:"text" firestore:"text"`
	ImageURL       string    `json:"image_url,omitempty" firestore:"imageUrl,omitempty"`
	AuthorID       string    `json:"author_id" firestore:"authorId"`
	AuthorName     string    `json:"author_name" firestore:"authorName"`
	AuthorPhoto    string    `json:"author_photo,omitempty" firestore:"authorPhoto,omitempty"`
	AuthorVerified bool      `json:"author_verified" firestore:"authorVerified"`
	IsAnonymous    bool      `json:"is_anonymous" firestore:"isAnonymous"`
	College        string    `json:"college,omitempty" firestore:"college,omitempty"`
	Likes          []string  `json:"likes" firestore:"likes"`
	ViewedBy       []string  `json:"viewed_by" firestore:"viewedBy"`
	IsPinned       bool      `json:"is_pinned" firestore:"isPinned"`
	CommentCount   int       `json:"comment_count" firestore:"commentCount"`
	Timestamp      time.Time `json:"timestamp" firestore:"timestamp"`
}

func (p *Post) LikedBy(userID string) bool {
	for _, id := range p.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

type Comment struct {
	ID         string    `json:"id" firestore:"id"`
	Text       string    `json:"text" firestore:"text"`
	AuthorID   string    `json:"author_id" firestore:"authorId"`
	AuthorName string    `json:"author_name" firestore:"authorName"`
	Timestamp  time.Time `json:"timestamp" firestore:"timestamp"`
}
