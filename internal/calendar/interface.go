package calendar

import (
	"context"

	"calendar-attendees/internal/auth"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// ListAllCalendars follows the calendar list cursor until it is exhausted.
	ListAllCalendars(ctx context.Context, cred auth.Credential) ([]CalendarListEntry, error)
	// ListEvents follows the event list cursor of one calendar until it is exhausted.
	ListEvents(ctx context.Context, cred auth.Credential, input ListEventsInput) ([]Event, error)
	// Aggregate runs authenticate, enumerate, fetch and dedupe for one callback.
	Aggregate(ctx context.Context, input AggregateInput) (AggregateOutput, error)
}
