package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenBucketExhaustion(t *testing.T) {
	bucket := NewTokenBucket(2, 1, time.Minute)

	allowed, _ := bucket.Allow()
	assert.True(t, allowed)
	allowed, _ = bucket.Allow()
	assert.True(t, allowed)

	allowed, wait := bucket.Allow()
	assert.False(t, allowed)
	assert.Greater(t, wait, time.Duration(0))
}

func TestBucketsAreIsolatedPerUserAndAction(t *testing.T) {
	limiter := NewRateLimiter()

	for i := 0; i < 5; i++ {
		allowed, _ := limiter.Allow("alice", "create_chat")
		assert.True(t, allowed)
	}
	allowed, _ := limiter.Allow("alice", "create_chat")
	assert.False(t, allowed)

	// Another user and another action still have their own budget.
	allowed, _ = limiter.Allow("bob", "create_chat")
	assert.True(t, allowed)
	allowed, _ = limiter.Allow("alice", "send_message")
	assert.True(t, allowed)
}

func TestCleanupEvictsIdleBuckets(t *testing.T) {
	limiter := NewRateLimiter()
	limiter.Allow("alice", "send_message")

	limiter.buckets["alice:send_message"].lastRefill = time.Now().Add(-2 * time.Hour)
	limiter.Cleanup()

	assert.NotContains(t, limiter.buckets, "alice:send_message")
}
