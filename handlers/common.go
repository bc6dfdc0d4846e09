package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Handler carries the shared store handle. All request handlers are methods
// on it so tests can run against their own isolated instance.
type Handler struct {
	DB *gorm.DB
}

func New(dbc *gorm.DB) *Handler {
	return &Handler{DB: dbc}
}

// storeError maps a failed store operation to a 500 with the driver message.
func storeError(c *gin.Context, err error) {
	if l, ok := c.Get("logger"); ok {
		if log, ok := l.(*zap.Logger); ok {
			log.Error("Store operation failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
		}
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// bindError maps a malformed or incomplete request body to a 400.
func bindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
