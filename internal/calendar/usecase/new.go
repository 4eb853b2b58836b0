package usecase

import (
	"time"

	"calendar-attendees/internal/auth"
	"calendar-attendees/internal/calendar"
	"calendar-attendees/internal/calendar/repository"
	"calendar-attendees/pkg/log"
	"calendar-attendees/pkg/metrics"
)

const (
	// CalendarPageSize is the page size ceiling for calendar enumeration.
	CalendarPageSize int64 = 250
	// EventPageSize is the page size ceiling for event fetches.
	EventPageSize int64 = 2500

	DefaultWindowDays = 30
	DefaultOrderBy    = "startTime"
)

// Config controls the aggregation window and event ordering.
type Config struct {
	WindowDays   int    // days after now covered by Aggregate, default 30
	OrderBy      string // default "startTime"
	SingleEvents bool   // expand recurring events into instances
	Now          func() time.Time
}

// implUseCase is the private implementation of calendar.UseCase.
type implUseCase struct {
	l       log.Logger
	repo    repository.Repository
	session auth.Session
	metrics *metrics.Metrics

	windowDays   int
	orderBy      string
	singleEvents bool
	now          func() time.Time
}

// New creates a new calendar UseCase implementation. m may be nil.
func New(l log.Logger, repo repository.Repository, session auth.Session, m *metrics.Metrics, cfg Config) calendar.UseCase {
	uc := &implUseCase{
		l:            l,
		repo:         repo,
		session:      session,
		metrics:      m,
		windowDays:   cfg.WindowDays,
		orderBy:      cfg.OrderBy,
		singleEvents: cfg.SingleEvents,
		now:          cfg.Now,
	}
	if uc.windowDays <= 0 {
		uc.windowDays = DefaultWindowDays
	}
	if uc.orderBy == "" {
		uc.orderBy = DefaultOrderBy
	}
	if uc.now == nil {
		uc.now = time.Now
	}
	return uc
}
