package handlers

import (
	"net/http"
	"strconv"
	"time"
	"tourserver/metrics"
	"tourserver/models"

	"github.com/gin-gonic/gin"
)

type CityCreateRequest struct {
	Name string `json:"name" binding:"required"`
}

// ListCities returns the active cities ordered by name.
func (h *Handler) ListCities(c *gin.Context) {
	defer metrics.TrackDBOperation("cities_list")(time.Now())
	cities := []models.City{}
	err := h.DB.Where("is_active = ?", true).Order("name").Find(&cities).Error
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cities)
}

// CreateCity inserts a new active city. A duplicate name trips the unique
// index and surfaces as a store error.
func (h *Handler) CreateCity(c *gin.Context) {
	req := CityCreateRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	defer metrics.TrackDBOperation("cities_create")(time.Now())
	city := models.City{Name: req.Name, IsActive: true}
	if err := h.DB.Create(&city).Error; err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": city.ID, "success": true})
}

// DeleteCity removes a city by id. A missing id is still reported as
// success, matching the no-op contract.
func (h *Handler) DeleteCity(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		bindError(c, err)
		return
	}
	defer metrics.TrackDBOperation("cities_delete")(time.Now())
	if err := h.DB.Delete(&models.City{}, id).Error; err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
