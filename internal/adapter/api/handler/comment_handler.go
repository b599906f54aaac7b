package handler

import (
	"github.com/labstack/echo/v4"

	"campuslink/internal/adapter/api/middleware"
	"campuslink/internal/domain/entity"
	"campuslink/internal/usecase"
	"campuslink/pkg/errors"
	"campuslink/pkg/response"
)

type CommentHandler struct {
	commentUseCase *usecase.CommentUseCase
}

func NewCommentHandler(commentUseCase *usecase.CommentUseCase) *CommentHandler {
	return &CommentHandler{
		commentUseCase: commentUseCase,
	}
}

type addCommentRequest struct {
	Text string `json:"text" validate:"required,min=1,max=1000"`
}

func contentKindParam(c echo.Context) (entity.ContentKind, error) {
	kind, err := entity.ParseContentKind(c.Param("kind"))
	if err != nil {
		return 0, errors.BadRequest("Unknown content kind", err)
	}
	return kind, nil
}

func (h *CommentHandler) Add(c echo.Context) error {
	sess := middleware.CurrentSession(c)

	kind, err := contentKindParam(c)
	if err != nil {
		return response.Error(c, err)
	}

	var req addCommentRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	comment, err := h.commentUseCase.Add(c.Request().Context(), sess, kind, c.Param("id"), req.Text)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, comment)
}

func (h *CommentHandler) List(c echo.Context) error {
	kind, err := contentKindParam(c)
	if err != nil {
		return response.Error(c, err)
	}

	comments, err := h.commentUseCase.List(c.Request().Context(), kind, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, comments)
}

func (h *CommentHandler) Delete(c echo.Context) error {
	sess := middleware.CurrentSession(c)

	kind, err := contentKindParam(c)
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.commentUseCase.Delete(c.Request().Context(), sess, kind, c.Param("id"), c.Param("commentId")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]bool{"deleted": true})
}
