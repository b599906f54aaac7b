package router

import (
	"github.com/labstack/echo/v4"

	"campuslink/internal/adapter/api/handler"
)

// SetupDevRouter mounts development-only helpers. Called only when the
// environment is "development".
func SetupDevRouter(e *echo.Echo) {
	devTokenHandler := handler.GetDevTokenHandler()

	e.POST("/v1/dev/token", devTokenHandler.GenerateToken)
}
