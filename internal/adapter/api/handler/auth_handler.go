package handler

import (
	"github.com/labstack/echo/v4"

	"campuslink/internal/adapter/api/middleware"
	"campuslink/internal/usecase"
	"campuslink/pkg/errors"
	"campuslink/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required,min=2"`
}

type profileSetupRequest struct {
	Name      string `json:"name" validate:"required,min=2"`
	Branch    string `json:"branch" validate:"required"`
	Year      string `json:"year" validate:"required"`
	College   string `json:"college" validate:"required"`
	Bio       string `json:"bio" validate:"omitempty,max=300"`
	Instagram string `json:"instagram"`
	Whatsapp  string `json:"whatsapp"`
	PhotoURL  string `json:"photo_url" validate:"omitempty,url"`
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Register(c.Request().Context(), usecase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, map[string]interface{}{
		"user":  result.User,
		"token": result.Token,
	})
}

// CompleteProfile fills the campus profile collected after first sign-in.
func (h *AuthHandler) CompleteProfile(c echo.Context) error {
	sess := middleware.CurrentSession(c)

	var req profileSetupRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.authUseCase.CompleteProfile(c.Request().Context(), sess.UserID, usecase.ProfileSetupInput{
		Name:      req.Name,
		Branch:    req.Branch,
		Year:      req.Year,
		College:   req.College,
		Bio:       req.Bio,
		Instagram: req.Instagram,
		Whatsapp:  req.Whatsapp,
		PhotoURL:  req.PhotoURL,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *AuthHandler) Me(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	return response.Success(c, sess.User)
}
