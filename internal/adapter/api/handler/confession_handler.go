package handler

import (
	"github.com/labstack/echo/v4"

	"campuslink/internal/adapter/api/middleware"
	"campuslink/internal/usecase"
	"campuslink/pkg/errors"
	"campuslink/pkg/response"
	"campuslink/pkg/utils"
)

type ConfessionHandler struct {
	confessionUseCase *usecase.ConfessionUseCase
}

func NewConfessionHandler(confessionUseCase *usecase.ConfessionUseCase) *ConfessionHandler {
	return &ConfessionHandler{
		confessionUseCase: confessionUseCase,
	}
}

type createConfessionRequest struct {
	Text string `json:"text" validate:"required,min=1,max=2000"`
}

type reactRequest struct {
	Emoji string `json:"emoji" validate:"required"`
}

func (h *ConfessionHandler) Create(c echo.Context) error {
	sess := middleware.CurrentSession(c)

	var req createConfessionRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	confession, err := h.confessionUseCase.Create(c.Request().Context(), sess, req.Text)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, confession)
}

func (h *ConfessionHandler) List(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	confessions, total, err := h.confessionUseCase.List(c.Request().Context(), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Paginated(c, confessions, total, params.Page, params.PageSize)
}

func (h *ConfessionHandler) React(c echo.Context) error {
	sess := middleware.CurrentSession(c)

	var req reactRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	confession, err := h.confessionUseCase.React(c.Request().Context(), sess, c.Param("id"), req.Emoji)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, confession)
}

func (h *ConfessionHandler) Delete(c echo.Context) error {
	sess := middleware.CurrentSession(c)

	if err := h.confessionUseCase.Delete(c.Request().Context(), sess, c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]bool{"deleted": true})
}
