package router

import (
	"github.com/labstack/echo/v4"

	"campuslink/internal/adapter/api/handler"
	"campuslink/internal/adapter/api/middleware"
)

func SetupUserRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	userHandler := handler.GetUserHandler()

	users := e.Group("/v1/users")
	users.Use(authMiddleware.Authenticate)

	users.GET("", userHandler.Search)
	users.PATCH("/me", userHandler.UpdateProfile)
	users.GET("/:id", userHandler.GetProfile)
	users.GET("/:id/posts", userHandler.ListPosts)
	users.GET("/:id/followers", userHandler.ListFollowers)
	users.GET("/:id/following", userHandler.ListFollowing)
	users.POST("/:id/follow", userHandler.Follow)
	users.DELETE("/:id/follow", userHandler.Unfollow)
}
