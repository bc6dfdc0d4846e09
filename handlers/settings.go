package handlers

import (
	"errors"
	"net/http"
	"time"
	"tourserver/metrics"
	"tourserver/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SettingsUpdateRequest struct {
	SiteName string `json:"site_name"`
	MainCity string `json:"main_city"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

// GetSettings returns the singleton settings row, or an empty object when
// the row does not exist yet.
func (h *Handler) GetSettings(c *gin.Context) {
	defer metrics.TrackDBOperation("settings_get")(time.Now())
	settings := models.Settings{}
	err := h.DB.First(&settings, 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateSettings overwrites all four fields of the settings row with id 1.
// Fields absent from the body are written as empty strings.
func (h *Handler) UpdateSettings(c *gin.Context) {
	req := SettingsUpdateRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	defer metrics.TrackDBOperation("settings_update")(time.Now())
	err := h.DB.Model(&models.Settings{}).Where("id = ?", 1).Updates(map[string]interface{}{
		"site_name": req.SiteName,
		"main_city": req.MainCity,
		"phone":     req.Phone,
		"email":     req.Email,
	}).Error
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
