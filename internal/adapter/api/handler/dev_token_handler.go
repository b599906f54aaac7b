package handler

import (
	"github.com/labstack/echo/v4"

	"campuslink/internal/usecase"
	"campuslink/pkg/errors"
	"campuslink/pkg/response"
)

// DevTokenHandler mints custom tokens for known users. Wired only in the
// development environment.
type DevTokenHandler struct {
	authUseCase *usecase.AuthUseCase
}

var devTokenHandler *DevTokenHandler

func SetupDevTokenHandler(authUseCase *usecase.AuthUseCase) {
	devTokenHandler = &DevTokenHandler{authUseCase: authUseCase}
}

func GetDevTokenHandler() *DevTokenHandler {
	return devTokenHandler
}

func (h *DevTokenHandler) GenerateToken(c echo.Context) error {
	var req struct {
		UserID string `json:"user_id" validate:"required"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	token, err := h.authUseCase.DevToken(c.Request().Context(), req.UserID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"token": token})
}
