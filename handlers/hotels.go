package handlers

import (
	"net/http"
	"strconv"
	"time"
	"tourserver/metrics"
	"tourserver/models"

	"github.com/gin-gonic/gin"
)

type HotelUpdateRequest struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	PricePerNight int     `json:"price_per_night"`
	Rating        float64 `json:"rating"`
	Image         string  `json:"image"`
}

// ListHotels returns all hotels ordered for display.
func (h *Handler) ListHotels(c *gin.Context) {
	defer metrics.TrackDBOperation("hotels_list")(time.Now())
	hotels := []models.Hotel{}
	if err := h.DB.Order("sort_order").Find(&hotels).Error; err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, hotels)
}

// UpdateHotel overwrites the editable fields of the hotel with the given id.
func (h *Handler) UpdateHotel(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		bindError(c, err)
		return
	}
	req := HotelUpdateRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	defer metrics.TrackDBOperation("hotels_update")(time.Now())
	err = h.DB.Model(&models.Hotel{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":            req.Name,
		"description":     req.Description,
		"price_per_night": req.PricePerNight,
		"rating":          req.Rating,
		"image":           req.Image,
	}).Error
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
