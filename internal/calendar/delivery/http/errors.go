package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"calendar-attendees/internal/auth"
	"calendar-attendees/internal/calendar"
	pkgErrors "calendar-attendees/pkg/errors"
	"calendar-attendees/pkg/response"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Unknown errors are returned unchanged.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, calendar.ErrMissingCode):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, auth.ErrExchangeRejected), errors.Is(err, auth.ErrNotAuthenticated):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, "authorization rejected, please re-authorize")
	case errors.Is(err, calendar.ErrProvider):
		var pErr *calendar.ProviderError
		if errors.As(err, &pErr) && pErr.StatusCode != 0 {
			return pkgErrors.NewHTTPErrorf(http.StatusBadGateway, "%s: %s returned status %d", calendar.ErrProvider, pErr.Op, pErr.StatusCode)
		}
		return pkgErrors.NewHTTPError(http.StatusBadGateway, calendar.ErrProvider.Error())
	default:
		return err
	}
}

func (h *handler) respondError(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if mapped := h.mapError(err); errors.As(mapped, &httpErr) {
		response.Error(c, httpErr)
		return
	}
	response.InternalError(c, err)
}
