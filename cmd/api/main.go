package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"calendar-attendees/config"
	_ "calendar-attendees/docs" // Swagger docs
	"calendar-attendees/internal/auth"
	authSession "calendar-attendees/internal/auth/session"
	calendarHTTP "calendar-attendees/internal/calendar/delivery/http"
	googleRepo "calendar-attendees/internal/calendar/repository/google"
	"calendar-attendees/internal/calendar/usecase"
	"calendar-attendees/internal/httpserver"
	"calendar-attendees/internal/middleware"
	"calendar-attendees/pkg/log"
	"calendar-attendees/pkg/metrics"
)

// @title       Calendar Attendees API
// @description Collects the unique attendees of the next 30 days of Google Calendar events.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Calendar Attendees...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "OAuth callback: %s", cfg.GoogleOAuth.CallbackURL)

	// 3. Auth session
	session, err := authSession.New(logger, authSession.Config{
		ClientID:     cfg.GoogleOAuth.ClientID,
		ClientSecret: cfg.GoogleOAuth.ClientSecret,
		CallbackURL:  cfg.GoogleOAuth.CallbackURL,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize auth session: ", err)
		os.Exit(1)
	}

	// 4. Calendar domain
	m := metrics.New()
	repo := googleRepo.New(logger)
	uc := usecase.New(logger, repo, session, m, usecase.Config{
		WindowDays:   cfg.Aggregation.WindowDays,
		OrderBy:      cfg.Aggregation.OrderBy,
		SingleEvents: cfg.Aggregation.SingleEvents,
	})
	authInput := auth.AuthURLInput{
		AccessType: cfg.GoogleOAuth.AccessType,
		Scopes:     cfg.GoogleOAuth.Scopes,
	}
	calendarHandler := calendarHTTP.New(logger, uc, session, authInput)

	// 5. HTTP Server
	readinessChecks := map[string]httpserver.ReadinessCheck{
		"oauth_client": func(context.Context) error {
			_, err := session.AuthURL(authInput)
			return err
		},
	}
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      middleware.New(logger, cfg.RateLimit.CallbackPerMin),
		Metrics:         m,
		ReadinessChecks: readinessChecks,
		CalendarHandler: calendarHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
