package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"campuslink/internal/adapter/api/middleware"
	"campuslink/internal/usecase"
	ws "campuslink/internal/infrastructure/websocket"
	"campuslink/pkg/errors"
	"campuslink/pkg/logger"
)

// WebSocketHandler upgrades authenticated connections and relays
// subscribe/unsubscribe frames into the topic hub. Topic authorization
// happens here: chat topics require participation, notification topics are
// rewritten to the caller's own.
type WebSocketHandler struct {
	wsManager      *ws.Manager
	authMiddleware *middleware.AuthMiddleware
	chatUseCase    *usecase.ChatUseCase
}

var upgrader = gorillaws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var webSocketHandler *WebSocketHandler

func SetupWebSocketHandler(wsManager *ws.Manager, authMiddleware *middleware.AuthMiddleware, chatUseCase *usecase.ChatUseCase) {
	webSocketHandler = &WebSocketHandler{
		wsManager:      wsManager,
		authMiddleware: authMiddleware,
		chatUseCase:    chatUseCase,
	}
	wsManager.SetMessageFunc(webSocketHandler.handleFrame)
}

func GetWebSocketHandler() *WebSocketHandler {
	return webSocketHandler
}

type wsFrame struct {
	Action string `json:"action"`
	Topic  string `json:"topic"`
}

type wsAck struct {
	Topic string `json:"topic"`
	Ack   string `json:"ack,omitempty"`
	Error string `json:"error,omitempty"`
}

func (h *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return errors.Unauthorized("Authentication token is required", nil)
	}

	sess, err := h.authMiddleware.SessionFromToken(c, token)
	if err != nil {
		return err
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return errors.Internal("Failed to upgrade connection", err)
	}

	client := &ws.Client{
		UserID: sess.UserID,
		Conn:   conn,
		Send:   make(chan []byte, 256),
	}

	h.wsManager.Register <- client

	go client.ReadPump(h.wsManager)
	go client.WritePump()

	return nil
}

func (h *WebSocketHandler) handleFrame(client *ws.Client, message []byte) {
	var frame wsFrame
	if err := json.Unmarshal(message, &frame); err != nil {
		h.reply(client, wsAck{Error: "malformed frame"})
		return
	}

	topic, err := h.authorizeTopic(client, frame.Topic)
	if err != nil {
		h.reply(client, wsAck{Topic: frame.Topic, Error: err.Error()})
		return
	}

	switch frame.Action {
	case "subscribe":
		h.wsManager.Subscribe(client, topic)
		h.reply(client, wsAck{Topic: topic, Ack: "subscribed"})
	case "unsubscribe":
		h.wsManager.Unsubscribe(client, topic)
		h.reply(client, wsAck{Topic: topic, Ack: "unsubscribed"})
	default:
		h.reply(client, wsAck{Topic: topic, Error: "unknown action"})
	}
}

// authorizeTopic validates a topic request against the caller's identity.
// The bare "notifications" topic is rewritten to the caller's own stream so
// no one can name another user's.
func (h *WebSocketHandler) authorizeTopic(client *ws.Client, topic string) (string, error) {
	switch {
	case topic == "notifications":
		return "notifications:" + client.UserID, nil

	case strings.HasPrefix(topic, "notifications:"):
		if topic != "notifications:"+client.UserID {
			return "", errors.Forbidden("Cannot subscribe to another user's notifications", nil)
		}
		return topic, nil

	case strings.HasPrefix(topic, "chat:"):
		chatID := strings.TrimPrefix(topic, "chat:")
		if !h.chatUseCase.CanAccess(context.Background(), client.UserID, chatID) {
			return "", errors.Forbidden("Not a participant of this chat", nil)
		}
		return topic, nil

	case topic == "feed" || topic == "confessions" ||
		strings.HasPrefix(topic, "listings:") || strings.HasPrefix(topic, "comments:"):
		return topic, nil
	}

	return "", errors.BadRequest("Unknown topic", nil)
}

func (h *WebSocketHandler) reply(client *ws.Client, ack wsAck) {
	payload, err := json.Marshal(ack)
	if err != nil {
		logger.Error("failed to encode ws ack: %v", err)
		return
	}
	select {
	case client.Send <- payload:
	default:
	}
}
