package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Health reports process and store liveness.
func (h *Handler) Health(c *gin.Context) {
	response := gin.H{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	}
	sqlDB, err := h.DB.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		response["status"] = "error"
		response["error"] = err.Error()
		c.JSON(http.StatusInternalServerError, response)
		return
	}
	c.JSON(http.StatusOK, response)
}
