package repository

import (
	"context"

	"calendar-attendees/internal/auth"
)

// Repository is the provider boundary of the calendar domain. Each call
// fetches exactly one page.
type Repository interface {
	ListCalendarsPage(ctx context.Context, cred auth.Credential, opt ListCalendarsOptions) (CalendarPage, error)
	ListEventsPage(ctx context.Context, cred auth.Credential, opt ListEventsOptions) (EventPage, error)
}
