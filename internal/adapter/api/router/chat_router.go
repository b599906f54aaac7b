package router

import (
	"github.com/labstack/echo/v4"

	"campuslink/internal/adapter/api/handler"
	"campuslink/internal/adapter/api/middleware"
)

func SetupChatRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	chatHandler := handler.GetChatHandler()

	chats := e.Group("/v1/chats")
	chats.Use(authMiddleware.Authenticate)

	chats.POST("", chatHandler.Open)
	chats.GET("", chatHandler.Inbox)
	chats.GET("/:id/messages", chatHandler.Messages)
	chats.POST("/:id/messages", chatHandler.SendMessage)
	chats.DELETE("/:id/messages/:messageId", chatHandler.DeleteMessage)
	chats.POST("/:id/read", chatHandler.MarkRead)
}
