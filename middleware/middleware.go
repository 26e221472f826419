package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey is the context key carrying the per-request id.
const RequestIDKey = "requestID"

// RequestID assigns every request a unique id, stored on the context
// and echoed in the X-Request-Id header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set(RequestIDKey, id)
		c.Header("X-Request-Id", id)
		c.Next()
	}
}

// RequestLogger writes one line per request with its outcome.
func RequestLogger() gin.HandlerFunc {
	logger := log.New(log.Writer(), "[http] ", log.LstdFlags)
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		id, _ := c.Get(RequestIDKey)
		logger.Printf("%s %s %d %s id=%v",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start), id)
	}
}

// Recovery converts panics into the generic JSON failure instead of
// leaking internals to the client.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, err any) {
		log.Printf("panic recovered: %v", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	})
}
