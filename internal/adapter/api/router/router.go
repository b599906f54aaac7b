package router

import (
	"github.com/labstack/echo/v4"

	"campuslink/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	SetupAuthRouter(e, authMiddleware)
	SetupUserRouter(e, authMiddleware)
	SetupPostRouter(e, authMiddleware)
	SetupCommentRouter(e, authMiddleware)
	SetupChatRouter(e, authMiddleware)
	SetupConfessionRouter(e, authMiddleware)
	SetupListingRouter(e, authMiddleware)
	SetupNotificationRouter(e, authMiddleware)
	SetupAdminRouter(e, authMiddleware, adminMiddleware)
	SetupFileRouter(e, authMiddleware)
	SetupWebSocketRouter(e)
	SetupHealthRouter(e)
}
