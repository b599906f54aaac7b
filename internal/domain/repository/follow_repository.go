package repository

import (
	"context"

	"campuslink/internal/domain/entity"
)

// FollowRepository maintains the directional relationship documents and the
// denormalized follower/following counters. Follow and Unfollow commit the
// relationship docs, both counter updates and (on follow) the notification
// fan-out as a single atomic transaction, so the counters cannot drift from
// the relationship sets under partial failure.
type FollowRepository interface {
	// Follow creates users/{target}/followers/{follower} and
	// users/{follower}/following/{target}, increments both counters and
	// writes notif into the target's notification subcollection.
	Follow(ctx context.Context, followerID, targetID string, notif *entity.Notification) error

	// Unfollow removes both relationship documents and decrements both
	// counters.
	Unfollow(ctx context.Context, followerID, targetID string) error

	IsFollowing(ctx context.Context, followerID, targetID string) (bool, error)
	ListFollowers(ctx context.Context, userID string, limit, offset int) ([]string, int64, error)
	ListFollowing(ctx context.Context, userID string, limit, offset int) ([]string, int64, error)
}
