package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	calendarHTTP "calendar-attendees/internal/calendar/delivery/http"
	"calendar-attendees/internal/middleware"
	"calendar-attendees/pkg/log"
	"calendar-attendees/pkg/metrics"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Shared
	middleware      middleware.Middleware
	metrics         *metrics.Metrics
	readinessChecks map[string]ReadinessCheck

	// Calendar domain
	calendarHandler calendarHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Middleware middleware.Middleware
	Metrics    *metrics.Metrics
	// ReadinessChecks are run by GET /ready, keyed by the name reported back.
	ReadinessChecks map[string]ReadinessCheck

	CalendarHandler calendarHTTP.Handler
}

// New creates a new HTTPServer instance and maps its routes.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		middleware:      cfg.Middleware,
		metrics:         cfg.Metrics,
		readinessChecks: cfg.ReadinessChecks,
		calendarHandler: cfg.CalendarHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.calendarHandler == nil {
		return errors.New("calendar handler is required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
