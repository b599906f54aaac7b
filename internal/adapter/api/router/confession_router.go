package router

import (
	"github.com/labstack/echo/v4"

	"campuslink/internal/adapter/api/handler"
	"campuslink/internal/adapter/api/middleware"
)

func SetupConfessionRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	confessionHandler := handler.GetConfessionHandler()

	confessions := e.Group("/v1/confessions")
	confessions.Use(authMiddleware.Authenticate)

	confessions.POST("", confessionHandler.Create)
	confessions.GET("", confessionHandler.List)
	confessions.POST("/:id/react", confessionHandler.React)
	confessions.DELETE("/:id", confessionHandler.Delete)
}
