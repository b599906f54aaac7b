package entity

import (
	"time"
)

type User struct {
	ID       string `json:"id" firestore:"id"`
	Email    string `json:"email" firestore:"email"`
	Name     string `json:"name" firestore:"name"`
	Branch   string `json:"branch" firestore:"branch"`
	Year     string `json:"year" firestore:"year"`
	College  string `json:"college" firestore:"college"`
	Bio      string `json:"bio,omitempty" firestore:"bio,omitempty"`
	PhotoURL string `json:"photo_url,omitempty" firestore:"photoURL,omitempty"`

	Instagram string `json:"instagram,omitempty" firestore:"instagram,omitempty"`
	Whatsapp  string `json:"whatsapp,omitempty" firestore:"whatsapp,omitempty"`

	Role        string `json:"role" firestore:"role"`
	IsVerified  bool   `json:"is_verified" firestore:"isVerified"`
	IsSuspended bool   `json:"is_suspended" firestore:"isSuspended"`

	// Denormalized counters, kept in sync transactionally with the
	// followers/following subcollections.
	FollowerCount  int `json:"follower_count" firestore:"followerCount"`
	FollowingCount int `json:"following_count" firestore:"followingCount"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
