package router

import (
	"github.com/labstack/echo/v4"

	"campuslink/internal/adapter/api/handler"
	"campuslink/internal/adapter/api/middleware"
)

func SetupPostRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	postHandler := handler.GetPostHandler()

	posts := e.Group("/v1/posts")
	posts.Use(authMiddleware.Authenticate)

	posts.POST("", postHandler.Create)
	posts.GET("/feed", postHandler.Feed)
	posts.GET("/:id", postHandler.GetByID)
	posts.POST("/:id/like", postHandler.ToggleLike)
	posts.POST("/:id/view", postHandler.MarkViewed)
	posts.DELETE("/:id", postHandler.Delete)
}
