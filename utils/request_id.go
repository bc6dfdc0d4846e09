package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const requestIDHeader = "X-Request-ID"

// RequestIDMiddleware stamps every request and response with a unique id and
// stores a request-scoped logger in the gin context.
func RequestIDMiddleware(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		c.Request.Header.Set(requestIDHeader, requestID)
		c.Header(requestIDHeader, requestID)
		c.Set("request_id", requestID)
		c.Set("logger", log.With(zap.String("request_id", requestID)))
		c.Next()
	}
}
