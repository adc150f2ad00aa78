// File: middleware/request_id.go
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey is the gin context key under which the request id is stored.
const RequestIDKey = "requestID"

// RequestID tags every request with a fresh UUID, echoed in the
// X-Request-ID response header so log lines can be correlated with a
// specific page load.
func RequestID(c *gin.Context) {
	id := c.GetHeader("X-Request-ID")
	if id == "" {
		id = uuid.NewString()
	}

	c.Set(RequestIDKey, id)
	c.Writer.Header().Set("X-Request-ID", id)
	c.Next()
}

// GetRequestID returns the id tagged by RequestID, or "" when the middleware
// is not installed. Controllers prefix their log lines with it.
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
