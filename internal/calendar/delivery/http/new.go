package http

import (
	"github.com/gin-gonic/gin"

	"calendar-attendees/internal/auth"
	"calendar-attendees/internal/calendar"
	"calendar-attendees/pkg/log"
)

// Handler is the public interface for the calendar HTTP delivery layer.
type Handler interface {
	Index(c *gin.Context)
	Callback(c *gin.Context)
}

type handler struct {
	l         log.Logger
	uc        calendar.UseCase
	session   auth.Session
	authInput auth.AuthURLInput
}

// New creates a new HTTP handler for the calendar domain. authInput decides
// the scopes and access type of the link served on the index page.
func New(l log.Logger, uc calendar.UseCase, session auth.Session, authInput auth.AuthURLInput) Handler {
	return &handler{
		l:         l,
		uc:        uc,
		session:   session,
		authInput: authInput,
	}
}
