package entity

import "fmt"

// ContentKind is a closed variant over the moderatable/commentable content
// types. Handlers and the admin surface dispatch on it instead of comparing
// raw collection strings.
type ContentKind int

const (
	KindPost ContentKind = iota
	KindConfession
	KindMarketplaceItem
	KindRoommateListing
	KindStudyLink
	KindAssignment
)

type contentKindInfo struct {
	name        string
	collection  string
	commentable bool
	authorField string
}

var contentKinds = map[ContentKind]contentKindInfo{
	KindPost:            {name: "posts", collection: "posts", commentable: true, authorField: "authorId"},
	KindConfession:      {name: "confessions", collection: "confessions", commentable: true, authorField: "authorId"},
	KindMarketplaceItem: {name: "marketplace", collection: "marketplace_items", commentable: true, authorField: "sellerId"},
	KindRoommateListing: {name: "roommates", collection: "roommate_posts", commentable: true, authorField: "authorId"},
	KindStudyLink:       {name: "study_links", collection: "study_links", commentable: true, authorField: "authorId"},
	KindAssignment:      {name: "assignments", collection: "assignments", commentable: true, authorField: "authorId"},
}

// AllContentKinds lists every kind in a stable order.
func AllContentKinds() []ContentKind {
	return []ContentKind{KindPost, KindConfession, KindMarketplaceItem, KindRoommateListing, KindStudyLink, KindAssignment}
}

// ParseContentKind resolves the public name of a kind (as used in routes and
// admin filters) to its variant.
func ParseContentKind(name string) (ContentKind, error) {
	for kind, info := range contentKinds {
		if info.name == name {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("unknown content kind %q", name)
}

func (k ContentKind) String() string {
	return contentKinds[k].name
}

// Collection is the Firestore collection backing this kind.
func (k ContentKind) Collection() string {
	return contentKinds[k].collection
}

func (k ContentKind) Commentable() bool {
	return contentKinds[k].commentable
}

// AuthorField is the document field holding the owning user id.
func (k ContentKind) AuthorField() string {
	return contentKinds[k].authorField
}
