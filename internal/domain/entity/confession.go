package entity

import "time"

// Confession is an always-anonymous post. Reactions maps an emoji to the set
// of user ids currently reacting with it; a user may occupy at most one
// bucket at a time.
type Confession struct {
	ID           string              `json:"id" firestore:"id"`
	Text         string              `json:"text" firestore:"text"`
	AuthorID     string              `json:"author_id" firestore:"authorId"`
	College      string              `json:"college,omitempty" firestore:"college,omitempty"`
	Reactions    map[string][]string `json:"reactions" firestore:"reactions"`
	CommentCount int                 `json:"comment_count" firestore:"commentCount"`
	Timestamp    time.Time           `json:"timestamp" firestore:"timestamp"`
}

// ReactionOf returns the emoji the user currently reacts with, or "".
func (c *Confession) ReactionOf(userID string) string {
	for emoji, users := range c.Reactions {
		for _, id := range users {
			if id == userID {
				return emoji
			}
		}
	}
	return ""
}
