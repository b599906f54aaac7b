package router

import (
	"github.com/labstack/echo/v4"

	"campuslink/internal/adapter/api/handler"
	"campuslink/internal/adapter/api/middleware"
)

func SetupListingRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	listingHandler := handler.GetListingHandler()

	marketplace := e.Group("/v1/marketplace")
	marketplace.Use(authMiddleware.Authenticate)
	marketplace.POST("", listingHandler.CreateMarketplaceItem)
	marketplace.GET("", listingHandler.ListMarketplaceItems)
	marketplace.POST("/:id/contact", listingHandler.ContactSeller)

	roommates := e.Group("/v1/roommates")
	roommates.Use(authMiddleware.Authenticate)
	roommates.POST("", listingHandler.CreateRoommateListing)
	roommates.GET("", listingHandler.ListRoommateListings)

	studyLinks := e.Group("/v1/study-links")
	studyLinks.Use(authMiddleware.Authenticate)
	studyLinks.POST("", listingHandler.CreateStudyLink)
	studyLinks.GET("", listingHandler.ListStudyLinks)

	assignments := e.Group("/v1/assignments")
	assignments.Use(authMiddleware.Authenticate)
	assignments.POST("", listingHandler.CreateAssignment)
	assignments.GET("", listingHandler.ListAssignments)

	// Kind-generic owner deletion for every listing kind.
	listings := e.Group("/v1/listings")
	listings.Use(authMiddleware.Authenticate)
	listings.DELETE("/:kind/:id", listingHandler.Delete)
}
