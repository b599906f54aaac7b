package websocket

import (
	"context"
	"sync"

	"github.com/gorilla/websocket"

	"campuslink/pkg/logger"
)

// Client represents a WebSocket connection client
type Client struct {
	UserID string
	Conn   *websocket.Conn
	Send   chan []byte
}

// TopicHooks is notified when a topic gains its first subscriber or loses
// its last one. The live broker uses this to start and stop store listeners.
type TopicHooks interface {
	TopicActive(topic string)
	TopicIdle(topic string)
}

// MessageFunc handles an inbound client frame (subscribe/unsubscribe
// requests).
type MessageFunc func(client *Client, message []byte)

// Manager tracks active connections and their topic subscriptions.
type Manager struct {
	clients    map[*Client]bool
	topics     map[string]map[*Client]bool
	Register   chan *Client
	Unregister chan *Client
	mutex      sync.RWMutex
	hooks      TopicHooks
	onMessage  MessageFunc
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[*Client]bool),
		topics:     make(map[string]map[*Client]bool),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// SetTopicHooks wires the broker in after construction (the broker needs the
// manager to publish, so the two cannot be built in one step).
func (m *Manager) SetTopicHooks(hooks TopicHooks) {
	m.hooks = hooks
}

func (m *Manager) SetMessageFunc(fn MessageFunc) {
	m.onMessage = fn
}

// Start runs the manager's main loop in a goroutine
func (m *Manager) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-m.Register:
				m.mutex.Lock()
				m.clients[client] = true
				m.mutex.Unlock()
				logger.Debug("Client registered: %s", client.UserID)

			case client := <-m.Unregister:
				m.removeClient(client)
				logger.Debug("Client unregistered: %s", client.UserID)

			case <-ctx.Done():
				return
			}
		}
	}()
}

func (m *Manager) removeClient(client *Client) {
	var idle []string

	m.mutex.Lock()
	if _, ok := m.clients[client]; ok {
		delete(m.clients, client)
		close(client.Send)
	}
	for topic, subs := range m.topics {
		if subs[client] {
			delete(subs, client)
			if len(subs) == 0 {
				delete(m.topics, topic)
				idle = append(idle, topic)
			}
		}
	}
	m.mutex.Unlock()

	for _, topic := range idle {
		if m.hooks != nil {
			m.hooks.TopicIdle(topic)
		}
	}
}

// Subscribe adds the client to a topic. The first subscriber activates the
// topic's store listener.
func (m *Manager) Subscribe(client *Client, topic string) {
	m.mutex.Lock()
	subs, ok := m.topics[topic]
	if !ok {
		subs = make(map[*Client]bool)
		m.topics[topic] = subs
	}
	first := len(subs) == 0
	subs[client] = true
	m.mutex.Unlock()

	if first && m.hooks != nil {
		m.hooks.TopicActive(topic)
	}
}

// Unsubscribe removes the client from a topic. The last unsubscribe is the
// only cancellation primitive: it tears down the topic's store listener.
func (m *Manager) Unsubscribe(client *Client, topic string) {
	m.mutex.Lock()
	subs, ok := m.topics[topic]
	if ok {
		delete(subs, client)
		if len(subs) == 0 {
			delete(m.topics, topic)
		} else {
			ok = false
		}
	}
	m.mutex.Unlock()

	if ok && m.hooks != nil {
		m.hooks.TopicIdle(topic)
	}
}

// Publish sends a message to every subscriber of a topic. Sends happen under
// the read lock so they cannot race the close in removeClient, which holds
// the write lock.
func (m *Manager) Publish(topic string, message []byte) {
	m.mutex.RLock()
	var slow []*Client
	for client := range m.topics[topic] {
		select {
		case client.Send <- message:
		default:
			slow = append(slow, client)
		}
	}
	m.mutex.RUnlock()

	// Slow consumers are dropped rather than blocked on. Unregistering
	// must wait until the lock is released or the manager loop deadlocks.
	for _, client := range slow {
		m.Unregister <- client
	}
}

// SendToUser sends a message to every connection of a specific user.
func (m *Manager) SendToUser(userID string, message []byte) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	for client := range m.clients {
		if client.UserID == userID {
			select {
			case client.Send <- message:
			default:
			}
		}
	}
}

// SubscriberCount reports the current subscriber count of a topic.
func (m *Manager) SubscriberCount(topic string) int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.topics[topic])
}

// ReadPump reads frames from the WebSocket connection
func (c *Client) ReadPump(m *Manager) {
	defer func() {
		m.Unregister <- c
		c.Conn.Close()
	}()

	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("websocket read error: %v", err)
			}
			break
		}

		if m.onMessage != nil {
			m.onMessage(c, message)
		}
	}
}

// WritePump sends messages to the WebSocket connection
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for {
		message, ok := <-c.Send
		if !ok {
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			logger.Warn("websocket write error: %v", err)
			return
		}
	}
}
