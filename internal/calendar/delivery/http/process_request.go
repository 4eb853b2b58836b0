package http

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"calendar-attendees/internal/calendar"
)

// processCallbackReq binds the callback query. Google reports a denied
// consent through the error parameter instead of a code.
func (h *handler) processCallbackReq(c *gin.Context) (callbackReq, error) {
	var req callbackReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	if req.Error != "" {
		return req, fmt.Errorf("%w: %s", calendar.ErrMissingCode, req.Error)
	}
	return req, req.validate()
}
