package handler

import (
	"github.com/labstack/echo/v4"

	"campuslink/internal/adapter/api/middleware"
	"campuslink/internal/usecase"
	"campuslink/pkg/errors"
	"campuslink/pkg/response"
	"campuslink/pkg/utils"
)

type ListingHandler struct {
	listingUseCase *usecase.ListingUseCase
}

func NewListingHandler(listingUseCase *usecase.ListingUseCase) *ListingHandler {
	return &ListingHandler{
		listingUseCase: listingUseCase,
	}
}

type createMarketplaceItemRequest struct {
	Title       string `json:"title" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"omitempty,max=1000"`
	Price       int64  `json:"price" validate:"min=0"`
	Category    string `json:"category" validate:"required"`
	ImageURL    string `json:"image_url" validate:"omitempty,url"`
	Whatsapp    string `json:"whatsapp"`
}

type createRoommateListingRequest struct {
	Type        string `json:"type" validate:"required,oneof=Flat PG Hostel"`
	Location    string `json:"location" validate:"required"`
	Rent        int64  `json:"rent" validate:"min=0"`
	Description string `json:"description" validate:"omitempty,max=1000"`
	Whatsapp    string `json:"whatsapp"`
}

type createStudyLinkRequest struct {
	Title       string `json:"title" validate:"required,min=2,max=100"`
	URL         string `json:"url" validate:"required,url"`
	Subject     string `json:"subject"`
	Description string `json:"description" validate:"omitempty,max=1000"`
}

type createAssignmentRequest struct {
	Title    string `json:"title" validate:"required,min=2,max=100"`
	Subject  string `json:"subject" validate:"required"`
	Caption  string `json:"caption" validate:"omitempty,max=1000"`
	Price    int64  `json:"price" validate:"min=0"`
	Whatsapp string `json:"whatsapp"`
	Branch   string `json:"branch" validate:"required"`
	Year     string `json:"year" validate:"required"`
	FileURL  string `json:"file_url" validate:"omitempty,url"`
}

func (h *ListingHandler) CreateMarketplaceItem(c echo.Context) error {
	sess := middleware.CurrentSession(c)

	var req createMarketplaceItemRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	item, err := h.listingUseCase.CreateMarketplaceItem(c.Request().Context(), sess, usecase.CreateMarketplaceItemInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		Whatsapp:    req.Whatsapp,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, item)
}

func (h *ListingHandler) ListMarketplaceItems(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	items, total, err := h.listingUseCase.ListMarketplaceItems(c.Request().Context(), c.QueryParam("category"), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Paginated(c, items, total, params.Page, params.PageSize)
}

// ContactSeller opens the buyer-seller chat with the prefilled interest
// message.
func (h *ListingHandler) ContactSeller(c echo.Context) error {
	sess := middleware.CurrentSession(c)

	chat, err := h.listingUseCase.ContactSeller(c.Request().Context(), sess, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, chat)
}

func (h *ListingHandler) CreateRoommateListing(c echo.Context) error {
	sess := middleware.CurrentSession(c)

	var req createRoommateListingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	listing, err := h.listingUseCase.CreateRoommateListing(c.Request().Context(), sess, usecase.CreateRoommateListingInput{
		Type:        req.Type,
		Location:    req.Location,
		Rent:        req.Rent,
		Description: req.Description,
		Whatsapp:    req.Whatsapp,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, listing)
}

func (h *ListingHandler) ListRoommateListings(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	listings, total, err := h.listingUseCase.ListRoommateListings(c.Request().Context(), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Paginated(c, listings, total, params.Page, params.PageSize)
}

func (h *ListingHandler) CreateStudyLink(c echo.Context) error {
	sess := middleware.CurrentSession(c)

	var req createStudyLinkRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	link, err := h.listingUseCase.CreateStudyLink(c.Request().Context(), sess, usecase.CreateStudyLinkInput{
		Title:       req.Title,
		URL:         req.URL,
		Subject:     req.Subject,
		Description: req.Description,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, link)
}

func (h *ListingHandler) ListStudyLinks(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	links, total, err := h.listingUseCase.ListStudyLinks(c.Request().Context(), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Paginated(c, links, total, params.Page, params.PageSize)
}

func (h *ListingHandler) CreateAssignment(c echo.Context) error {
	sess := middleware.CurrentSession(c)

	var req createAssignmentRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	assignment, err := h.listingUseCase.CreateAssignment(c.Request().Context(), sess, usecase.CreateAssignmentInput{
		Title:    req.Title,
		Subject:  req.Subject,
		Caption:  req.Caption,
		Price:    req.Price,
		Whatsapp: req.Whatsapp,
		Branch:   req.Branch,
		Year:     req.Year,
		FileURL:  req.FileURL,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, assignment)
}

func (h *ListingHandler) ListAssignments(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	assignments, total, err := h.listingUseCase.ListAssignments(c.Request().Context(), c.QueryParam("branch"), c.QueryParam("year"), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Paginated(c, assignments, total, params.Page, params.PageSize)
}

func (h *ListingHandler) Delete(c echo.Context) error {
	sess := middleware.CurrentSession(c)

	kind, err := contentKindParam(c)
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.listingUseCase.Delete(c.Request().Context(), sess, kind, c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]bool{"deleted": true})
}
