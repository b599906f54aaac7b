package router

import (
	"github.com/labstack/echo/v4"

	"campuslink/internal/adapter/api/handler"
)

// SetupWebSocketRouter mounts the live subscription endpoint. The handler
// authenticates via the token query parameter before upgrading.
func SetupWebSocketRouter(e *echo.Echo) {
	wsHandler := handler.GetWebSocketHandler()

	e.GET("/v1/ws", wsHandler.HandleWebSocket)
}
