package handler

import (
	"github.com/labstack/echo/v4"

	"campuslink/internal/adapter/api/middleware"
	"campuslink/internal/usecase"
	"campuslink/pkg/errors"
	"campuslink/pkg/response"
	"campuslink/pkg/utils"
)

type AdminHandler struct {
	adminUseCase *usecase.AdminUseCase
}

func NewAdminHandler(adminUseCase *usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{
		adminUseCase: adminUseCase,
	}
}

type suspendRequest struct {
	Suspended bool `json:"suspended"`
}

type pinRequest struct {
	Pinned bool `json:"pinned"`
}

func (h *AdminHandler) ListUsers(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	users, total, err := h.adminUseCase.ListUsers(c.Request().Context(), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Paginated(c, users, total, params.Page, params.PageSize)
}

func (h *AdminHandler) SetSuspended(c echo.Context) error {
	sess := middleware.CurrentSession(c)

	var req suspendRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := h.adminUseCase.SetSuspended(c.Request().Context(), sess, c.Param("id"), req.Suspended); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]bool{"suspended": req.Suspended})
}

func (h *AdminHandler) ListContent(c echo.Context) error {
	kind, err := contentKindParam(c)
	if err != nil {
		return response.Error(c, err)
	}
	params := utils.GetPaginationParams(c)

	summaries, total, err := h.adminUseCase.ListContent(c.Request().Context(), kind, params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Paginated(c, summaries, total, params.Page, params.PageSize)
}

func (h *AdminHandler) DeleteContent(c echo.Context) error {
	sess := middleware.CurrentSession(c)

	kind, err := contentKindParam(c)
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.adminUseCase.DeleteContent(c.Request().Context(), sess, kind, c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]bool{"deleted": true})
}

func (h *AdminHandler) SetPinned(c echo.Context) error {
	var req pinRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := h.adminUseCase.SetPinned(c.Request().Context(), c.Param("id"), req.Pinned); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]bool{"pinned": req.Pinned})
}

// Backfill recomputes denormalized counters for one content kind.
func (h *AdminHandler) Backfill(c echo.Context) error {
	kind, err := contentKindParam(c)
	if err != nil {
		return response.Error(c, err)
	}

	result, err := h.adminUseCase.Backfill(c.Request().Context(), kind)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, result)
}
