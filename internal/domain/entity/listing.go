package entity

import "time"

// MarketplaceCategories is the closed set accepted for marketplace items.
var MarketplaceCategories = []string{"Books", "Electronics", "Stationery", "Lab Coat/Apron", "Tools", "Other"}

type MarketplaceItem struct {
	ID           string    `json:"id" firestore:"id"`
	Title        string    `json:"title" firestore:"title"`
	Description  string    `json:"description,omitempty" firestore:"description,omitempty"`
	Price        int64     `json:"price" firestore:"price"`
	Category     string    `json:"category" firestore:"category"`
	ImageURL     string    `json:"image_url,omitempty" firestore:"imageUrl,omitempty"`
	SellerID     string    `json:"seller_id" firestore:"sellerId"`
	SellerName   string    `json:"seller_name" firestore:"sellerName"`
	Whatsapp     string    `json:"whatsapp,omitempty" firestore:"whatsapp,omitempty"`
	CommentCount int       `json:"comment_count" firestore:"commentCount"`
	Timestamp    time.Time `json:"timestamp" firestore:"timestamp"`
}

type RoommateListing struct {
	ID           string    `json:"id" firestore:"id"`
	Type         string    `json:"type" firestore:"type"` // "Flat", "PG", "Hostel"
	Location     string    `json:"location" firestore:"location"`
	Rent         int64     `json:"rent" firestore:"rent"`
	Description  string    `json:"description,omitempty" firestore:"description,omitempty"`
	AuthorID     string    `json:"author_id" firestore:"authorId"`
	AuthorName   string    `json:"author_name" firestore:"authorName"`
	Whatsapp     string    `json:"whatsapp,omitempty" firestore:"whatsapp,omitempty"`
	CommentCount int       `json:"comment_count" firestore:"commentCount"`
	Timestamp    time.Time `json:"timestamp" firestore:"timestamp"`
}

type StudyLink struct {
	ID           string    `json:"id" firestore:"id"`
	Title        string    `json:"title" firestore:"title"`
	URL          string    `json:"url" firestore:"url"`
	Subject      string    `json:"subject,omitempty" firestore:"subject,omitempty"`
	Description  string    `json:"description,omitempty" firestore:"description,omitempty"`
	AuthorID     string    `json:"author_id" firestore:"authorId"`
	AuthorName   string    `json:"author_name" firestore:"authorName"`
	CommentCount int       `json:"comment_count" firestore:"commentCount"`
	Timestamp    time.Time `json:"timestamp" firestore:"timestamp"`
}

type Assignment struct {
	ID           string    `json:"id" firestore:"id"`
	Title        string    `json:"title" firestore:"title"`
	Subject      string    `json:"subject" firestore:"subject"`
	Caption      string    `json:"caption,omitempty" firestore:"caption,omitempty"`
	Price        int64     `json:"price" firestore:"price"`
	Whatsapp     string    `json:"whatsapp,omitempty" firestore:"whatsapp,omitempty"`
	Branch       string    `json:"branch" firestore:"branch"`
	Year         string    `json:"year" firestore:"year"`
	FileURL      string    `json:"file_url,omitempty" firestore:"fileUrl,omitempty"`
	AuthorID     string    `json:"author_id" firestore:"authorId"`
	AuthorName   string    `json:"author_name" firestore:"authorName"`
	CommentCount int       `json:"comment_count" firestore:"commentCount"`
	Timestamp    time.Time `json:"timestamp" firestore:"timestamp"`
}
