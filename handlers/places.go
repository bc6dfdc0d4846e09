package handlers

import (
	"net/http"
	"strconv"
	"time"
	"tourserver/metrics"
	"tourserver/models"

	"github.com/gin-gonic/gin"
)

type PlaceUpdateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	Image       string `json:"image"`
}

// ListPlaces returns all places ordered for display.
func (h *Handler) ListPlaces(c *gin.Context) {
	defer metrics.TrackDBOperation("places_list")(time.Now())
	places := []models.Place{}
	if err := h.DB.Order("sort_order").Find(&places).Error; err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, places)
}

// UpdatePlace overwrites the editable fields of the place with the given id.
// SortOrder is not editable through the API. Unknown ids are a no-op that
// still reports success.
func (h *Handler) UpdatePlace(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		bindError(c, err)
		return
	}
	req := PlaceUpdateRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	defer metrics.TrackDBOperation("places_update")(time.Now())
	err = h.DB.Model(&models.Place{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":        req.Name,
		"description": req.Description,
		"price":       req.Price,
		"image":       req.Image,
	}).Error
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
