package http

import (
	"github.com/gin-gonic/gin"

	"calendar-attendees/internal/middleware"
)

const CallbackPath = "/auth/google/callback"

// RegisterRoutes maps the index page and the OAuth callback. Only the
// callback is rate limited since it fans out to the provider.
func RegisterRoutes(r gin.IRouter, h Handler, mw middleware.Middleware) {
	r.GET("/", h.Index)
	r.GET(CallbackPath, mw.RateLimit(), h.Callback)
}
