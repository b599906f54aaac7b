package router

import (
	"github.com/labstack/echo/v4"

	"campuslink/internal/adapter/api/handler"
	"campuslink/internal/adapter/api/middleware"
)

func SetupAdminRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	adminHandler := handler.GetAdminHandler()

	admin := e.Group("/v1/admin")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.GET("/users", adminHandler.ListUsers)
	admin.PATCH("/users/:id/suspend", adminHandler.SetSuspended)
	admin.GET("/content/:kind", adminHandler.ListContent)
	admin.DELETE("/content/:kind/:id", adminHandler.DeleteContent)
	admin.PATCH("/posts/:id/pin", adminHandler.SetPinned)
	admin.POST("/content/:kind/backfill", adminHandler.Backfill)
}
