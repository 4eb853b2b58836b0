package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	calendarHTTP "calendar-attendees/internal/calendar/delivery/http"
	"calendar-attendees/internal/model"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.middleware.RequestID())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Server mode: production")
	} else {
		srv.gin.Use(gin.Logger())
		srv.l.Infof(ctx, "Server mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	for path, status := range map[string]string{"/health": "healthy", "/live": "alive"} {
		srv.gin.GET(path, srv.statusHandler(status))
	}
	srv.gin.GET("/ready", srv.readyCheck)

	if srv.metrics != nil {
		srv.gin.GET("/metrics", gin.WrapH(srv.metrics.Handler()))
	}

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	calendarHTTP.RegisterRoutes(srv.gin, srv.calendarHandler, srv.middleware)
	srv.l.Infof(ctx, "Calendar routes registered at GET / and GET %s", calendarHTTP.CallbackPath)

	return nil
}
