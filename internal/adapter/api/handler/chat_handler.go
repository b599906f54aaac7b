package handler

import (
	"github.com/labstack/echo/v4"

	"campuslink/internal/adapter/api/middleware"
	"campuslink/internal/usecase"
	"campuslink/pkg/errors"
	"campuslink/pkg/response"
	"campuslink/pkg/utils"
)

type ChatHandler struct {
	chatUseCase *usecase.ChatUseCase
}

func NewChatHandler(chatUseCase *usecase.ChatUseCase) *ChatHandler {
	return &ChatHandler{
		chatUseCase: chatUseCase,
	}
}

type openChatRequest struct {
	UserID  string `json:"user_id" validate:"required"`
	Message string `json:"message" validate:"omitempty,max=2000"`
}

type sendMessageRequest struct {
	Text string `json:"text" validate:"required,min=1,max=2000"`
}

// Open resolves the single chat with another user, creating it when absent.
func (h *ChatHandler) Open(c echo.Context) error {
	sess := middleware.CurrentSession(c)

	var req openChatRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	chat, err := h.chatUseCase.Open(c.Request().Context(), sess, req.UserID, req.Message)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, chat)
}

func (h *ChatHandler) Inbox(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	params := utils.GetPaginationParams(c)

	chats, total, err := h.chatUseCase.Inbox(c.Request().Context(), sess, params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Paginated(c, chats, total, params.Page, params.PageSize)
}

func (h *ChatHandler) Messages(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	params := utils.GetPaginationParams(c)

	messages, total, err := h.chatUseCase.Messages(c.Request().Context(), sess, c.Param("id"), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Paginated(c, messages, total, params.Page, params.PageSize)
}

func (h *ChatHandler) SendMessage(c echo.Context) error {
	sess := middleware.CurrentSession(c)

	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	message, err := h.chatUseCase.SendMessage(c.Request().Context(), sess, c.Param("id"), req.Text)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, message)
}

func (h *ChatHandler) DeleteMessage(c echo.Context) error {
	sess := middleware.CurrentSession(c)

	if err := h.chatUseCase.DeleteMessage(c.Request().Context(), sess, c.Param("id"), c.Param("messageId")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]bool{"deleted": true})
}

func (h *ChatHandler) MarkRead(c echo.Context) error {
	sess := middleware.CurrentSession(c)

	if err := h.chatUseCase.MarkRead(c.Request().Context(), sess, c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]bool{"read": true})
}
