package usecase

import (
	"context"
	"time"

	"campuslink/internal/domain/entity"
	"campuslink/internal/domain/repository"
	"campuslink/pkg/errors"
)

// store is the shared in-memory backing for the fake repositories. The fakes
// mirror the Firestore adapters' transactional behavior: counter updates,
// relationship documents and notification fan-out land together.
type store struct {
	users       map[string]*entity.User
	posts       map[string]*entity.Post
	comments    map[string]map[string]*entity.Comment
	follows     map[string]map[string]bool
	notifs      map[string][]*entity.Notification
	chats       map[string]*entity.Chat
	messages    map[string]map[string]*entity.Message
	confessions map[string]*entity.Confession
	items       map[string]*entity.MarketplaceItem
}

func newStore() *store {
	return &store{
		users:       map[string]*entity.User{},
		posts:       map[string]*entity.Post{},
		comments:    map[string]map[string]*entity.Comment{},
		follows:     map[string]map[string]bool{},
		notifs:      map[string][]*entity.Notification{},
		chats:       map[string]*entity.Chat{},
		messages:    map[string]map[string]*entity.Message{},
		confessions: map[string]*entity.Confession{},
		items:       map[string]*entity.MarketplaceItem{},
	}
}

func (s *store) addUser(id, name string) *entity.User {
	user := &entity.User{ID: id, Email: id + "@campus.test", Name: name, Role: entity.RoleUser}
	s.users[id] = user
	return user
}

func (s *store) notify(recipientID string, notif *entity.Notification) {
	s.notifs[recipientID] = append(s.notifs[recipientID], notif)
}

type fakeUserRepo struct{ s *store }

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.s.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	user, ok := r.s.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range r.s.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	r.s.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	delete(r.s.users, id)
	return nil
}

func (r *fakeUserRepo) List(_ context.Context, limit, offset int) ([]*entity.User, int64, error) {
	users := make([]*entity.User, 0, len(r.s.users))
	for _, user := range r.s.users {
		users = append(users, user)
	}
	return users, int64(len(users)), nil
}

func (r *fakeUserRepo) SetSuspended(_ context.Context, id string, suspended bool) error {
	user, ok := r.s.users[id]
	if !ok {
		return errors.NotFound("User", nil)
	}
	user.IsSuspended = suspended
	return nil
}

type fakeFollowRepo struct{ s *store }

func (r *fakeFollowRepo) Follow(_ context.Context, followerID, targetID string, notif *entity.Notification) error {
	if r.s.follows[followerID][targetID] {
		return nil
	}
	if r.s.follows[followerID] == nil {
		r.s.follows[followerID] = map[string]bool{}
	}
	r.s.follows[followerID][targetID] = true
	r.s.users[followerID].FollowingCount++
	r.s.users[targetID].FollowerCount++
	if notif != nil {
		r.s.notify(targetID, notif)
	}
	return nil
}

func (r *fakeFollowRepo) Unfollow(_ context.Context, followerID, targetID string) error {
	if !r.s.follows[followerID][targetID] {
		return nil
	}
	delete(r.s.follows[followerID], targetID)
	r.s.users[followerID].FollowingCount--
	r.s.users[targetID].FollowerCount--
	return nil
}

func (r *fakeFollowRepo) IsFollowing(_ context.Context, followerID, targetID string) (bool, error) {
	return r.s.follows[followerID][targetID], nil
}

func (r *fakeFollowRepo) ListFollowers(_ context.Context, userID string, limit, offset int) ([]string, int64, error) {
	var ids []string
	for follower, targets := range r.s.follows {
		if targets[userID] {
			ids = append(ids, follower)
		}
	}
	return ids, int64(len(ids)), nil
}

func (r *fakeFollowRepo) ListFollowing(_ context.Context, userID string, limit, offset int) ([]string, int64, error) {
	var ids []string
	for target := range r.s.follows[userID] {
		ids = append(ids, target)
	}
	return ids, int64(len(ids)), nil
}

type fakePostRepo struct{ s *store }

func (r *fakePostRepo) Create(_ context.Context, post *entity.Post) error {
	r.s.posts[post.ID] = post
	return nil
}

func (r *fakePostRepo) GetByID(_ context.Context, id string) (*entity.Post, error) {
	post, ok := r.s.posts[id]
	if !ok {
		return nil, errors.NotFound("Post", nil)
	}
	return post, nil
}

func (r *fakePostRepo) ListFeed(_ context.Context, limit int) ([]*entity.Post, error) {
	posts := make([]*entity.Post, 0, len(r.s.posts))
	for _, post := range r.s.posts {
		posts = append(posts, post)
	}
	return posts, nil
}

func (r *fakePostRepo) ListByAuthor(_ context.Context, authorID string, limit, offset int) ([]*entity.Post, int64, error) {
	var posts []*entity.Post
	for _, post := range r.s.posts {
		if post.AuthorID == authorID {
			posts = append(posts, post)
		}
	}
	return posts, int64(len(posts)), nil
}

func (r *fakePostRepo) Delete(_ context.Context, id string) error {
	delete(r.s.posts, id)
	return nil
}

func (r *fakePostRepo) Like(_ context.Context, postID, userID string, notif *entity.Notification) error {
	post, ok := r.s.posts[postID]
	if !ok {
		return errors.NotFound("Post", nil)
	}
	if post.LikedBy(userID) {
		return nil
	}
	post.Likes = append(post.Likes, userID)
	if notif != nil && post.AuthorID != userID {
		r.s.notify(post.AuthorID, notif)
	}
	return nil
}

func (r *fakePostRepo) Unlike(_ context.Context, postID, userID string) error {
	post, ok := r.s.posts[postID]
	if !ok {
		return errors.NotFound("Post", nil)
	}
	likes := post.Likes[:0]
	for _, id := range post.Likes {
		if id != userID {
			likes = append(likes, id)
		}
	}
	post.Likes = likes
	return nil
}

func (r *fakePostRepo) MarkViewed(_ context.Context, postID, userID string) error {
	post, ok := r.s.posts[postID]
	if !ok {
		return errors.NotFound("Post", nil)
	}
	for _, id := range post.ViewedBy {
		if id == userID {
			return nil
		}
	}
	post.ViewedBy = append(post.ViewedBy, userID)
	return nil
}

func (r *fakePostRepo) SetPinned(_ context.Context, postID string, pinned bool) error {
	post, ok := r.s.posts[postID]
	if !ok {
		return errors.NotFound("Post", nil)
	}
	post.IsPinned = pinned
	return nil
}

type fakeCommentRepo struct{ s *store }

func commentKey(kind entity.ContentKind, parentID string) string {
	return kind.String() + "/" + parentID
}

func (r *fakeCommentRepo) Add(_ context.Context, kind entity.ContentKind, parentID string, comment *entity.Comment, notif *entity.Notification) error {
	var authorID string
	switch kind {
	case entity.KindPost:
		post, ok := r.s.posts[parentID]
		if !ok {
			return errors.NotFound("Post", nil)
		}
		post.CommentCount++
		authorID = post.AuthorID
	case entity.KindConfession:
		confession, ok := r.s.confessions[parentID]
		if !ok {
			return errors.NotFound("Confession", nil)
		}
		confession.CommentCount++
		authorID = confession.AuthorID
	default:
		item, ok := r.s.items[parentID]
		if !ok {
			return errors.NotFound("Listing", nil)
		}
		item.CommentCount++
		authorID = item.SellerID
	}

	key := commentKey(kind, parentID)
	if r.s.comments[key] == nil {
		r.s.comments[key] = map[string]*entity.Comment{}
	}
	r.s.comments[key][comment.ID] = comment

	if notif != nil && authorID != comment.AuthorID {
		r.s.notify(authorID, notif)
	}
	return nil
}

func (r *fakeCommentRepo) Delete(_ context.Context, kind entity.ContentKind, parentID, commentID string) error {
	key := commentKey(kind, parentID)
	if _, ok := r.s.comments[key][commentID]; !ok {
		return errors.NotFound("Comment", nil)
	}
	delete(r.s.comments[key], commentID)

	switch kind {
	case entity.KindPost:
		r.s.posts[parentID].CommentCount--
	case entity.KindConfession:
		r.s.confessions[parentID].CommentCount--
	default:
		r.s.items[parentID].CommentCount--
	}
	return nil
}

func (r *fakeCommentRepo) GetByID(_ context.Context, kind entity.ContentKind, parentID, commentID string) (*entity.Comment, error) {
	comment, ok := r.s.comments[commentKey(kind, parentID)][commentID]
	if !ok {
		return nil, errors.NotFound("Comment", nil)
	}
	return comment, nil
}

func (r *fakeCommentRepo) List(_ context.Context, kind entity.ContentKind, parentID string) ([]*entity.Comment, error) {
	var comments []*entity.Comment
	for _, comment := range r.s.comments[commentKey(kind, parentID)] {
		comments = append(comments, comment)
	}
	return comments, nil
}

func (r *fakeCommentRepo) Count(_ context.Context, kind entity.ContentKind, parentID string) (int, error) {
	return len(r.s.comments[commentKey(kind, parentID)]), nil
}

type fakeChatRepo struct{ s *store }

func (r *fakeChatRepo) GetOrCreate(_ context.Context, chat *entity.Chat) (*entity.Chat, bool, error) {
	if existing, ok := r.s.chats[chat.ID]; ok {
		return existing, false, nil
	}
	r.s.chats[chat.ID] = chat
	r.s.messages[chat.ID] = map[string]*entity.Message{}
	return chat, true, nil
}

func (r *fakeChatRepo) GetByID(_ context.Context, id string) (*entity.Chat, error) {
	chat, ok := r.s.chats[id]
	if !ok {
		return nil, errors.NotFound("Chat", nil)
	}
	return chat, nil
}

func (r *fakeChatRepo) ListByUserID(_ context.Context, userID string, limit, offset int) ([]*entity.Chat, int64, error) {
	var chats []*entity.Chat
	for _, chat := range r.s.chats {
		if chat.HasParticipant(userID) {
			chats = append(chats, chat)
		}
	}
	return chats, int64(len(chats)), nil
}

func (r *fakeChatRepo) SendMessage(_ context.Context, chatID string, message *entity.Message) error {
	chat, ok := r.s.chats[chatID]
	if !ok {
		return errors.NotFound("Chat", nil)
	}
	r.s.messages[chatID][message.ID] = message
	chat.LastMessage = message.Text
	chat.LastMessageBy = message.SenderID
	chat.LastMessageTimestamp = message.Timestamp
	chat.ReadBy = []string{message.SenderID}
	return nil
}

func (r *fakeChatRepo) DeleteMessage(_ context.Context, chatID, messageID string) error {
	chat, ok := r.s.chats[chatID]
	if !ok {
		return errors.NotFound("Chat", nil)
	}
	if _, ok := r.s.messages[chatID][messageID]; !ok {
		return errors.NotFound("Message", nil)
	}
	delete(r.s.messages[chatID], messageID)

	var remaining []*entity.Message
	for _, message := range r.s.messages[chatID] {
		remaining = append(remaining, message)
	}
	if latest := entity.LatestMessage(remaining); latest != nil {
		chat.LastMessage = latest.Text
		chat.LastMessageBy = latest.SenderID
		chat.LastMessageTimestamp = latest.Timestamp
	} else {
		chat.LastMessage = ""
		chat.LastMessageBy = ""
		chat.LastMessageTimestamp = time.Time{}
	}
	return nil
}

func (r *fakeChatRepo) GetMessageByID(_ context.Context, chatID, messageID string) (*entity.Message, error) {
	message, ok := r.s.messages[chatID][messageID]
	if !ok {
		return nil, errors.NotFound("Message", nil)
	}
	return message, nil
}

func (r *fakeChatRepo) ListMessages(_ context.Context, chatID string, limit, offset int) ([]*entity.Message, int64, error) {
	var messages []*entity.Message
	for _, message := range r.s.messages[chatID] {
		messages = append(messages, message)
	}
	return messages, int64(len(messages)), nil
}

func (r *fakeChatRepo) MarkRead(_ context.Context, chatID, userID string) error {
	chat, ok := r.s.chats[chatID]
	if !ok {
		return errors.NotFound("Chat", nil)
	}
	for _, id := range chat.ReadBy {
		if id == userID {
			return nil
		}
	}
	chat.ReadBy = append(chat.ReadBy, userID)
	return nil
}

type fakeNotificationRepo struct{ s *store }

func (r *fakeNotificationRepo) Create(_ context.Context, recipientID string, notif *entity.Notification) error {
	r.s.notify(recipientID, notif)
	return nil
}

func (r *fakeNotificationRepo) ListByUser(_ context.Context, userID string, limit, offset int) ([]*entity.Notification, int64, error) {
	notifs := r.s.notifs[userID]
	return notifs, int64(len(notifs)), nil
}

func (r *fakeNotificationRepo) MarkAllRead(_ context.Context, userID string) error {
	for _, notif := range r.s.notifs[userID] {
		notif.IsRead = true
	}
	return nil
}

type fakeConfessionRepo struct{ s *store }

func (r *fakeConfessionRepo) Create(_ context.Context, confession *entity.Confession) error {
	r.s.confessions[confession.ID] = confession
	return nil
}

func (r *fakeConfessionRepo) GetByID(_ context.Context, id string) (*entity.Confession, error) {
	confession, ok := r.s.confessions[id]
	if !ok {
		return nil, errors.NotFound("Confession", nil)
	}
	return confession, nil
}

func (r *fakeConfessionRepo) List(_ context.Context, limit, offset int) ([]*entity.Confession, int64, error) {
	var confessions []*entity.Confession
	for _, confession := range r.s.confessions {
		confessions = append(confessions, confession)
	}
	return confessions, int64(len(confessions)), nil
}

func (r *fakeConfessionRepo) Delete(_ context.Context, id string) error {
	delete(r.s.confessions, id)
	return nil
}

func (r *fakeConfessionRepo) React(_ context.Context, id, userID, emoji string) error {
	confession, ok := r.s.confessions[id]
	if !ok {
		return errors.NotFound("Confession", nil)
	}
	current := confession.ReactionOf(userID)
	if current != "" {
		users := confession.Reactions[current][:0]
		for _, uid := range confession.Reactions[current] {
			if uid != userID {
				users = append(users, uid)
			}
		}
		confession.Reactions[current] = users
	}
	if current != emoji {
		confession.Reactions[emoji] = append(confession.Reactions[emoji], userID)
	}
	return nil
}

type fakeListingRepo struct{ s *store }

func (r *fakeListingRepo) CreateMarketplaceItem(_ context.Context, item *entity.MarketplaceItem) error {
	r.s.items[item.ID] = item
	return nil
}

func (r *fakeListingRepo) GetMarketplaceItem(_ context.Context, id string) (*entity.MarketplaceItem, error) {
	item, ok := r.s.items[id]
	if !ok {
		return nil, errors.NotFound("Marketplace item", nil)
	}
	return item, nil
}

func (r *fakeListingRepo) ListMarketplaceItems(_ context.Context, category string, limit, offset int) ([]*entity.MarketplaceItem, int64, error) {
	var items []*entity.MarketplaceItem
	for _, item := range r.s.items {
		if category == "" || item.Category == category {
			items = append(items, item)
		}
	}
	return items, int64(len(items)), nil
}

func (r *fakeListingRepo) CreateRoommateListing(_ context.Context, listing *entity.RoommateListing) error {
	return nil
}

func (r *fakeListingRepo) ListRoommateListings(_ context.Context, limit, offset int) ([]*entity.RoommateListing, int64, error) {
	return nil, 0, nil
}

func (r *fakeListingRepo) CreateStudyLink(_ context.Context, link *entity.StudyLink) error {
	return nil
}

func (r *fakeListingRepo) ListStudyLinks(_ context.Context, limit, offset int) ([]*entity.StudyLink, int64, error) {
	return nil, 0, nil
}

func (r *fakeListingRepo) CreateAssignment(_ context.Context, assignment *entity.Assignment) error {
	return nil
}

func (r *fakeListingRepo) ListAssignments(_ context.Context, branch, year string, limit, offset int) ([]*entity.Assignment, int64, error) {
	return nil, 0, nil
}

func (r *fakeListingRepo) GetAuthorID(_ context.Context, kind entity.ContentKind, id string) (string, error) {
	if kind == entity.KindMarketplaceItem {
		item, ok := r.s.items[id]
		if !ok {
			return "", errors.NotFound("Marketplace item", nil)
		}
		return item.SellerID, nil
	}
	return "", errors.NotFound("Listing", nil)
}

func (r *fakeListingRepo) Delete(_ context.Context, kind entity.ContentKind, id string) error {
	delete(r.s.items, id)
	return nil
}

// fakeAuthClient models the auth provider: tokens are user ids, and revoked
// session uids are recorded for assertion.
type fakeAuthClient struct {
	s       *store
	revoked []string
	nextUID string
}

func (a *fakeAuthClient) CreateUser(_ context.Context, email, password, displayName string) (string, error) {
	if a.nextUID == "" {
		a.nextUID = "uid-" + displayName
	}
	return a.nextUID, nil
}

func (a *fakeAuthClient) VerifyToken(_ context.Context, token string) (string, error) {
	if _, ok := a.s.users[token]; !ok {
		return "", errors.Unauthorized("Invalid or expired token", nil)
	}
	return token, nil
}

func (a *fakeAuthClient) GenerateToken(_ context.Context, uid string) (string, error) {
	return "token-" + uid, nil
}

func (a *fakeAuthClient) RevokeSessions(_ context.Context, uid string) error {
	a.revoked = append(a.revoked, uid)
	return nil
}

func (a *fakeAuthClient) DeleteUser(_ context.Context, uid string) error {
	delete(a.s.users, uid)
	return nil
}

type allowAllLimiter struct{}

func (allowAllLimiter) Allow(userID, action string) (bool, time.Duration) {
	return true, 0
}

type denyLimiter struct{ action string }

func (l denyLimiter) Allow(userID, action string) (bool, time.Duration) {
	if action == l.action {
		return false, time.Minute
	}
	return true, 0
}

func sessionFor(user *entity.User) *Session {
	return &Session{UserID: user.ID, Role: user.Role, User: user}
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)
var _ repository.FollowRepository = (*fakeFollowRepo)(nil)
var _ repository.PostRepository = (*fakePostRepo)(nil)
var _ repository.CommentRepository = (*fakeCommentRepo)(nil)
var _ repository.ChatRepository = (*fakeChatRepo)(nil)
var _ repository.NotificationRepository = (*fakeNotificationRepo)(nil)
var _ repository.ConfessionRepository = (*fakeConfessionRepo)(nil)
var _ repository.ListingRepository = (*fakeListingRepo)(nil)
var _ AuthClient = (*fakeAuthClient)(nil)
