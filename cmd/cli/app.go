package main

import (
	"calendar-attendees/config"
	"calendar-attendees/internal/auth"
	authSession "calendar-attendees/internal/auth/session"
	"calendar-attendees/internal/calendar"
	googleRepo "calendar-attendees/internal/calendar/repository/google"
	"calendar-attendees/internal/calendar/usecase"
	"calendar-attendees/pkg/log"
)

// app is the wired calendar domain the commands run against.
type app struct {
	session   auth.Session
	uc        calendar.UseCase
	authInput auth.AuthURLInput
}

type appBuilder func() (*app, error)

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
		Stderr:       true,
	})

	session, err := authSession.New(logger, authSession.Config{
		ClientID:     cfg.GoogleOAuth.ClientID,
		ClientSecret: cfg.GoogleOAuth.ClientSecret,
		CallbackURL:  cfg.GoogleOAuth.CallbackURL,
	})
	if err != nil {
		return nil, err
	}

	uc := usecase.New(logger, googleRepo.New(logger), session, nil, usecase.Config{
		WindowDays:   cfg.Aggregation.WindowDays,
		OrderBy:      cfg.Aggregation.OrderBy,
		SingleEvents: cfg.Aggregation.SingleEvents,
	})

	return &app{
		session: session,
		uc:      uc,
		authInput: auth.AuthURLInput{
			AccessType: cfg.GoogleOAuth.AccessType,
			Scopes:     cfg.GoogleOAuth.Scopes,
		},
	}, nil
}
