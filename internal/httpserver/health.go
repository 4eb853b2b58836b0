package httpserver

import (
	"context"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"calendar-attendees/pkg/response"
)

const (
	ServiceName    = "calendar-attendees"
	ServiceVersion = "1.0.0"

	checkOK = "ok"
)

// ReadinessCheck reports whether one dependency of the callback flow is usable.
// It must not call the provider.
type ReadinessCheck func(ctx context.Context) error

// statusHandler answers a fixed status for the process-level endpoints.
// @Summary Liveness and health
// @Description Reports that the process is up. No dependency is checked.
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp
// @Router /health [get]
// @Router /live [get]
func (srv HTTPServer) statusHandler(status string) gin.HandlerFunc {
	return func(c *gin.Context) {
		response.OK(c, gin.H{
			"status":  status,
			"service": ServiceName,
			"version": ServiceVersion,
		})
	}
}

// readyCheck runs every registered readiness check.
// @Summary Readiness Check
// @Description Runs the configured readiness checks, such as the OAuth client configuration.
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "All checks passed"
// @Failure 503 {object} response.Resp "At least one check failed"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	names := make([]string, 0, len(srv.readinessChecks))
	for name := range srv.readinessChecks {
		names = append(names, name)
	}
	sort.Strings(names)

	ready := true
	results := make(map[string]string, len(names))
	for _, name := range names {
		if err := srv.readinessChecks[name](ctx); err != nil {
			srv.l.Warnf(ctx, "httpserver.readyCheck: %s: %v", name, err)
			results[name] = err.Error()
			ready = false
			continue
		}
		results[name] = checkOK
	}

	data := gin.H{
		"service": ServiceName,
		"version": ServiceVersion,
		"checks":  results,
	}
	if !ready {
		data["status"] = "not ready"
		c.JSON(http.StatusServiceUnavailable, response.Resp{
			ErrorCode: http.StatusServiceUnavailable,
			Message:   "Service Unavailable",
			Data:      data,
		})
		return
	}

	data["status"] = "ready"
	response.OK(c, data)
}
