package usecase

import (
	"context"

	"github.com/google/uuid"

	"calendar-attendees/internal/auth"
	"calendar-attendees/internal/calendar"
)

// Aggregate authenticates with input.Code, enumerates every calendar, fetches
// each calendar's events over [now, now+window] one calendar at a time, and
// dedupes the attendees of the merged events. Any failure aborts the run.
func (uc *implUseCase) Aggregate(ctx context.Context, input calendar.AggregateInput) (output calendar.AggregateOutput, err error) {
	runID := uuid.NewString()
	defer func() {
		uc.metrics.ObserveRun(len(output.Attendees), err)
	}()

	cred, err := uc.session.Authenticate(ctx, input.Code)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Aggregate run=%s Authenticate: %v", runID, err)
		return calendar.AggregateOutput{}, err
	}
	if !cred.Authenticated() {
		return calendar.AggregateOutput{}, auth.ErrNotAuthenticated
	}

	calendars, err := uc.ListAllCalendars(ctx, cred)
	if err != nil {
		return calendar.AggregateOutput{}, err
	}

	timeMin := uc.now()
	timeMax := timeMin.AddDate(0, 0, uc.windowDays)

	events := make([]calendar.Event, 0)
	for _, cal := range calendars {
		calEvents, err := uc.ListEvents(ctx, cred, calendar.ListEventsInput{
			CalendarID:   cal.ID,
			TimeMin:      timeMin,
			TimeMax:      timeMax,
			OrderBy:      uc.orderBy,
			SingleEvents: uc.singleEvents,
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Aggregate run=%s calendar=%s: aborting: %v", runID, cal.ID, err)
			return calendar.AggregateOutput{}, err
		}
		events = append(events, calEvents...)
	}

	attendees := DedupeAttendees(events, input.ExcludeEmails)

	uc.l.Infof(ctx, "uc.Aggregate run=%s: %d calendars, %d events, %d unique attendees",
		runID, len(calendars), len(events), len(attendees))

	return calendar.AggregateOutput{
		RunID:     runID,
		TimeMin:   timeMin,
		TimeMax:   timeMax,
		Calendars: calendars,
		Events:    events,
		Attendees: attendees,
	}, nil
}
