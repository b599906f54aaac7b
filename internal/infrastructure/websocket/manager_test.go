package websocket

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingHooks struct {
	active []string
	idle   []string
}

func (h *recordingHooks) TopicActive(topic string) { h.active = append(h.active, topic) }
func (h *recordingHooks) TopicIdle(topic string)   { h.idle = append(h.idle, topic) }

func newTestClient(userID string) *Client {
	return &Client{UserID: userID, Send: make(chan []byte, 8)}
}

func TestFirstSubscribeActivatesTopic(t *testing.T) {
	m := NewManager()
	hooks := &recordingHooks{}
	m.SetTopicHooks(hooks)

	alice := newTestClient("alice")
	bob := newTestClient("bob")

	m.Subscribe(alice, "feed")
	m.Subscribe(bob, "feed")

	assert.Equal(t, []string{"feed"}, hooks.active)
	assert.Equal(t, 2, m.SubscriberCount("feed"))
}

func TestLastUnsubscribeIdlesTopic(t *testing.T) {
	m := NewManager()
	hooks := &recordingHooks{}
	m.SetTopicHooks(hooks)

	alice := newTestClient("alice")
	bob := newTestClient("bob")
	m.Subscribe(alice, "feed")
	m.Subscribe(bob, "feed")

	m.Unsubscribe(alice, "feed")
	assert.Empty(t, hooks.idle)

	m.Unsubscribe(bob, "feed")
	assert.Equal(t, []string{"feed"}, hooks.idle)
	assert.Zero(t, m.SubscriberCount("feed"))
}

func TestPublishReachesOnlySubscribers(t *testing.T) {
	m := NewManager()
	alice := newTestClient("alice")
	bob := newTestClient("bob")

	m.Subscribe(alice, "confessions")

	m.Publish("confessions", []byte("snapshot"))

	assert.Equal(t, []byte("snapshot"), <-alice.Send)
	assert.Empty(t, bob.Send)
}

func TestRemoveClientIdlesItsTopics(t *testing.T) {
	m := NewManager()
	hooks := &recordingHooks{}
	m.SetTopicHooks(hooks)

	alice := newTestClient("alice")
	m.clients[alice] = true
	m.Subscribe(alice, "feed")
	m.Subscribe(alice, "chat:alice_bob")

	m.removeClient(alice)

	assert.ElementsMatch(t, []string{"feed", "chat:alice_bob"}, hooks.idle)
	assert.Zero(t, m.SubscriberCount("feed"))
}

func TestPublishSurvivesConcurrentRemoval(t *testing.T) {
	m := NewManager()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	m.Start(ctx)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				m.Publish("feed", []byte("tick"))
			}
		}()
	}

	// Connections churn while publishers are active. Closing a client's
	// send channel must never overlap a publish to it.
	for i := 0; i < 50; i++ {
		client := &Client{UserID: "alice", Send: make(chan []byte, 1)}
		m.Register <- client
		m.Subscribe(client, "feed")
		m.Unregister <- client
	}
	wg.Wait()
}
