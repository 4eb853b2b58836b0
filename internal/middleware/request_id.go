package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"calendar-attendees/pkg/log"
)

const HeaderRequestID = "X-Request-ID"

// RequestID reuses the caller's X-Request-ID or mints one, echoes it back and
// stores it on the request context for the logger.
func (mw Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.SetRequestID(c.Request.Context(), id))
		c.Next()
	}
}
