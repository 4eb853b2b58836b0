package http

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"calendar-attendees/pkg/response"
)

// Index godoc
// @Summary     Authorization page
// @Description Serves an HTML page linking to the Google consent screen.
// @Tags        Calendar
// @Produce     html
// @Success     200 {string} string "HTML page"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      / [GET]
func (h *handler) Index(c *gin.Context) {
	ctx := c.Request.Context()

	url, err := h.session.AuthURL(h.authInput)
	if err != nil {
		h.l.Errorf(ctx, "session.AuthURL: %v", err)
		response.InternalError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := indexTmpl.Execute(&buf, indexData{AuthURL: url}); err != nil {
		h.l.Errorf(ctx, "indexTmpl.Execute: %v", err)
		response.InternalError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// Callback godoc
// @Summary     OAuth callback and attendee aggregation
// @Description Exchanges the authorization code, reads the next 30 days of events
// @Description across every calendar and returns the events with their unique attendees.
// @Tags        Calendar
// @Produce     json
// @Param       code    query string   true  "Authorization code"
// @Param       exclude query []string false "Attendee emails to leave out" collectionFormat(multi)
// @Success     200 {object} callbackResp
// @Failure     400 {object} response.Resp "Missing code"
// @Failure     401 {object} response.Resp "Code rejected"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Failure     502 {object} response.Resp "Calendar provider failure"
// @Router      /auth/google/callback [GET]
func (h *handler) Callback(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCallbackReq(c)
	if err != nil {
		h.l.Warnf(ctx, "processCallbackReq: %v", err)
		h.respondError(c, err)
		return
	}

	output, err := h.uc.Aggregate(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Aggregate: %v", err)
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.newCallbackResp(output))
}
