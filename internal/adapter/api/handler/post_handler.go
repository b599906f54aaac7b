package handler

import (
	"github.com/labstack/echo/v4"

	"campuslink/internal/adapter/api/middleware"
	"campuslink/internal/usecase"
	"campuslink/pkg/errors"
	"campuslink/pkg/response"
)

type PostHandler struct {
	postUseCase *usecase.PostUseCase
}

func NewPostHandler(postUseCase *usecase.PostUseCase) *PostHandler {
	return &PostHandler{
		postUseCase: postUseCase,
	}
}

type createPostRequest struct {
	Text        string `json:"text" validate:"required,min=1,max=2000"`
	ImageURL    string `json:"image_url" validate:"omitempty,url"`
	IsAnonymous bool   `json:"is_anonymous"`
}

func (h *PostHandler) Create(c echo.Context) error {
	sess := middleware.CurrentSession(c)

	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	post, err := h.postUseCase.Create(c.Request().Context(), sess, usecase.CreatePostInput{
		Text:        req.Text,
		ImageURL:    req.ImageURL,
		IsAnonymous: req.IsAnonymous,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, post)
}

func (h *PostHandler) Feed(c echo.Context) error {
	posts, err := h.postUseCase.Feed(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, posts)
}

func (h *PostHandler) GetByID(c echo.Context) error {
	post, err := h.postUseCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, post)
}

func (h *PostHandler) ToggleLike(c echo.Context) error {
	sess := middleware.CurrentSession(c)

	post, err := h.postUseCase.ToggleLike(c.Request().Context(), sess, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, post)
}

func (h *PostHandler) MarkViewed(c echo.Context) error {
	sess := middleware.CurrentSession(c)

	if err := h.postUseCase.MarkViewed(c.Request().Context(), sess, c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]bool{"viewed": true})
}

func (h *PostHandler) Delete(c echo.Context) error {
	sess := middleware.CurrentSession(c)

	if err := h.postUseCase.Delete(c.Request().Context(), sess, c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]bool{"deleted": true})
}
