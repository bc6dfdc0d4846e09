package handlers

import (
	"github.com/gin-gonic/gin"
)

// Register wires the JSON API routes. Public reads live under /api, writes
// under /api/admin; none of the admin routes are authenticated.
func Register(router *gin.Engine, h *Handler) {
	api := router.Group("/api")
	api.GET("/health", h.Health)
	api.GET("/settings", h.GetSettings)
	api.GET("/cities", h.ListCities)
	api.GET("/places", h.ListPlaces)
	api.GET("/hotels", h.ListHotels)
	api.GET("/reviews", h.ListReviews)

	admin := api.Group("/admin")
	admin.POST("/settings", h.UpdateSettings)
	admin.POST("/cities", h.CreateCity)
	admin.DELETE("/cities/:id", h.DeleteCity)
	admin.POST("/places/:id", h.UpdatePlace)
	admin.POST("/hotels/:id", h.UpdateHotel)
	admin.POST("/reviews", h.CreateReview)
}
