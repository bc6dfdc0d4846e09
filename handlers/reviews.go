package handlers

import (
	"net/http"
	"time"
	"tourserver/metrics"
	"tourserver/models"

	"github.com/gin-gonic/gin"
)

const reviewListLimit = 5

type ReviewCreateRequest struct {
	Author string `json:"author" binding:"required"`
	Text   string `json:"text" binding:"required"`
	Rating int    `json:"rating"`
}

// ListReviews returns the most recent reviews, newest date first.
func (h *Handler) ListReviews(c *gin.Context) {
	defer metrics.TrackDBOperation("reviews_list")(time.Now())
	reviews := []models.Review{}
	err := h.DB.Order("date DESC").Limit(reviewListLimit).Find(&reviews).Error
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// CreateReview inserts a new review stamped with the current UTC day.
// Any date supplied in the body is ignored.
func (h *Handler) CreateReview(c *gin.Context) {
	req := ReviewCreateRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	defer metrics.TrackDBOperation("reviews_create")(time.Now())
	review := models.Review{
		Author: req.Author,
		Text:   req.Text,
		Rating: req.Rating,
		Date:   time.Now().UTC().Format("2006-01-02"),
	}
	if err := h.DB.Create(&review).Error; err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": review.ID, "success": true})
}
