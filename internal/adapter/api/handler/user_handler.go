package handler

import (
	"github.com/labstack/echo/v4"

	"campuslink/internal/adapter/api/middleware"
	"campuslink/internal/usecase"
	"campuslink/pkg/errors"
	"campuslink/pkg/response"
	"campuslink/pkg/utils"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
	postUseCase *usecase.PostUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase, postUseCase *usecase.PostUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		postUseCase: postUseCase,
	}
}

type updateProfileRequest struct {
	Name      string `json:"name" validate:"omitempty,min=2"`
	Branch    string `json:"branch"`
	Year      string `json:"year"`
	College   string `json:"college"`
	Bio       string `json:"bio" validate:"omitempty,max=300"`
	Instagram string `json:"instagram"`
	Whatsapp  string `json:"whatsapp"`
	PhotoURL  string `json:"photo_url" validate:"omitempty,url"`
}

// Search backs the find-people screen. The optional q parameter narrows the
// listing by name or email.
func (h *UserHandler) Search(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	users, total, err := h.userUseCase.Search(c.Request().Context(), c.QueryParam("q"), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Paginated(c, users, total, params.Page, params.PageSize)
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	userID := c.Param("id")

	user, err := h.userUseCase.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	sess := middleware.CurrentSession(c)
	following, _ := h.userUseCase.IsFollowing(c.Request().Context(), sess.UserID, userID)

	return response.Success(c, map[string]interface{}{
		"user":         user,
		"is_following": following,
	})
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	sess := middleware.CurrentSession(c)

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.UpdateProfile(c.Request().Context(), sess.UserID, usecase.UpdateProfileInput{
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

func (h *UserHandler) Follow(c echo.Context) error {
	sess := middleware.CurrentSession(c)

	if err := h.userUseCase.Follow(c.Request().Context(), sess, c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]bool{"following": true})
}

func (h *UserHandler) Unfollow(c echo.Context) error {
	sess := middleware.CurrentSession(c)

	if err := h.userUseCase.Unfollow(c.Request().Context(), sess, c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]bool{"following": false})
}

func (h *UserHandler) ListFollowers(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	users, total, err := h.userUseCase.ListFollowers(c.Request().Context(), c.Param("id"), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Paginated(c, users, total, params.Page, params.PageSize)
}

func (h *UserHandler) ListFollowing(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	users, total, err := h.userUseCase.ListFollowing(c.Request().Context(), c.Param("id"), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Paginated(c, users, total, params.Page, params.PageSize)
}

func (h *UserHandler) ListPosts(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	posts, total, err := h.postUseCase.ListByAuthor(c.Request().Context(), c.Param("id"), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Paginated(c, posts, total, params.Page, params.PageSize)
}
