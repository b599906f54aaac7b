package router

import (
	"github.com/labstack/echo/v4"

	"campuslink/internal/adapter/api/handler"
	"campuslink/internal/adapter/api/middleware"
)

// SetupCommentRouter mounts the kind-generic comment routes. :kind names any
// commentable content kind (post, confession, marketplace_item, ...).
func SetupCommentRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	commentHandler := handler.GetCommentHandler()

	comments := e.Group("/v1/content/:kind/:id/comments")
	comments.Use(authMiddleware.Authenticate)

	comments.POST("", commentHandler.Add)
	comments.GET("", commentHandler.List)
	comments.DELETE("/:commentId", commentHandler.Delete)
}
