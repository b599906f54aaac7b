package live

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"campuslink/internal/domain/entity"
	"campuslink/pkg/logger"
)

const snapshotLimit = 50

// Publisher delivers an encoded event to every subscriber of a topic.
type Publisher interface {
	Publish(topic string, message []byte)
}

// Event is the wire format for live updates. A snapshot carries the full
// current result set; consumers replace their local copy rather than patch
// it. An event with Error set is terminal for the topic.
type Event struct {
	Topic string                   `json:"topic"`
	Items []map[string]interface{} `json:"items,omitempty"`
	Error string                   `json:"error,omitempty"`
}

// Broker runs one store listener per active topic and republishes each
// snapshot to the topic's subscribers. It implements websocket.TopicHooks:
// a topic's listener starts on the first subscribe and stops on the last
// unsubscribe.
type Broker struct {
	client  *firestore.Client
	pub     Publisher
	ctx     context.Context
	mutex   sync.Mutex
	cancels map[string]context.CancelFunc
}

func NewBroker(ctx context.Context, client *firestore.Client, pub Publisher) *Broker {
	return &Broker{
		client:  client,
		pub:     pub,
		ctx:     ctx,
		cancels: make(map[string]context.CancelFunc),
	}
}

func (b *Broker) TopicActive(topic string) {
	query, err := b.queryFor(topic)
	if err != nil {
		b.publishError(topic, err.Error())
		return
	}

	b.mutex.Lock()
	if _, ok := b.cancels[topic]; ok {
		b.mutex.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(b.ctx)
	b.cancels[topic] = cancel
	b.mutex.Unlock()

	logger.Debug("live listener started: %s", topic)
	go b.watch(ctx, topic, query)
}

func (b *Broker) TopicIdle(topic string) {
	b.mutex.Lock()
	cancel, ok := b.cancels[topic]
	if ok {
		delete(b.cancels, topic)
	}
	b.mutex.Unlock()

	if ok {
		cancel()
		logger.Debug("live listener stopped: %s", topic)
	}
}

// queryFor maps a topic name to its store query. Topic grammar:
//
//	feed
//	confessions
//	listings:<kind>
//	comments:<kind>:<id>
//	chat:<chatID>
//	notifications:<userID>
func (b *Broker) queryFor(topic string) (firestore.Query, error) {
	parts := strings.Split(topic, ":")

	switch parts[0] {
	case "feed":
		if len(parts) != 1 {
			return firestore.Query{}, errBadTopic(topic)
		}
		return b.client.Collection("posts").
			OrderBy("isPinned", firestore.Desc).
			OrderBy("timestamp", firestore.Desc).
			Limit(snapshotLimit), nil

	case "confessions":
		if len(parts) != 1 {
			return firestore.Query{}, errBadTopic(topic)
		}
		return b.client.Collection("confessions").
			OrderBy("timestamp", firestore.Desc).
			Limit(snapshotLimit), nil

	case "listings":
		if len(parts) != 2 {
			return firestore.Query{}, errBadTopic(topic)
		}
		kind, err := entity.ParseContentKind(parts[1])
		if err != nil {
			return firestore.Query{}, err
		}
		return b.client.Collection(kind.Collection()).
			OrderBy("timestamp", firestore.Desc).
			Limit(snapshotLimit), nil

	case "comments":
		if len(parts) != 3 || parts[2] == "" {
			return firestore.Query{}, errBadTopic(topic)
		}
		kind, err := entity.ParseContentKind(parts[1])
		if err != nil {
			return firestore.Query{}, err
		}
		if !kind.Commentable() {
			return firestore.Query{}, errBadTopic(topic)
		}
		return b.client.Collection(kind.Collection()).Doc(parts[2]).
			Collection("comments").
			OrderBy("timestamp", firestore.Asc), nil

	case "chat":
		if len(parts) != 2 || parts[1] == "" {
			return firestore.Query{}, errBadTopic(topic)
		}
		return b.client.Collection("chats").Doc(parts[1]).
			Collection("messages").
			OrderBy("timestamp", firestore.Asc), nil

	case "notifications":
		if len(parts) != 2 || parts[1] == "" {
			return firestore.Query{}, errBadTopic(topic)
		}
		return b.client.Collection("users").Doc(parts[1]).
			Collection("notifications").
			OrderBy("timestamp", firestore.Desc).
			Limit(snapshotLimit), nil
	}

	return firestore.Query{}, errBadTopic(topic)
}

func (b *Broker) watch(ctx context.Context, topic string, query firestore.Query) {
	it := query.Snapshots(ctx)
	defer it.Stop()

	for {
		snap, err := it.Next()
		if err != nil {
			if ctx.Err() != nil || status.Code(err) == codes.Canceled {
				return
			}
			// Listener errors are terminal: report once, tear down, and
			// let the client resubscribe if it wants a new attempt.
			logger.Error("live listener failed: %s: %v", topic, err)
			b.publishError(topic, "listener terminated")
			b.TopicIdle(topic)
			return
		}

		docs, err := snap.Documents.GetAll()
		if err != nil {
			logger.Error("live snapshot read failed: %s: %v", topic, err)
			b.publishError(topic, "listener terminated")
			b.TopicIdle(topic)
			return
		}

		items := make([]map[string]interface{}, 0, len(docs))
		for _, doc := range docs {
			data := doc.Data()
			data["id"] = doc.Ref.ID
			items = append(items, data)
		}

		b.publish(Event{Topic: topic, Items: items})
	}
}

func (b *Broker) publish(event Event) {
	message, err := json.Marshal(event)
	if err != nil {
		logger.Error("failed to encode live event: %v", err)
		return
	}
	b.pub.Publish(event.Topic, message)
}

func (b *Broker) publishError(topic, message string) {
	b.publish(Event{Topic: topic, Error: message})
}

type errBadTopic string

func (e errBadTopic) Error() string {
	return "unknown topic: " + string(e)
}
