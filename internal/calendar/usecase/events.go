package usecase

import (
	"context"

	"calendar-attendees/internal/auth"
	"calendar-attendees/internal/calendar"
	"calendar-attendees/internal/calendar/repository"
	"calendar-attendees/pkg/metrics"
)

// ListEvents walks the event list cursor of one calendar and returns every
// event in provider order. A failing page discards the calendar's events.
func (uc *implUseCase) ListEvents(ctx context.Context, cred auth.Credential, input calendar.ListEventsInput) ([]calendar.Event, error) {
	if !cred.Authenticated() {
		return nil, auth.ErrNotAuthenticated
	}

	var (
		events    []calendar.Event
		pageToken string
		pages     int
	)
	for {
		page, err := uc.repo.ListEventsPage(ctx, cred, repository.ListEventsOptions{
			CalendarID:   input.CalendarID,
			TimeMin:      input.TimeMin,
			TimeMax:      input.TimeMax,
			OrderBy:      input.OrderBy,
			SingleEvents: input.SingleEvents,
			PageToken:    pageToken,
			MaxResults:   EventPageSize,
		})
		uc.metrics.ObservePage(metrics.EndpointEventList, len(page.Items), err)
		if err != nil {
			uc.l.Errorf(ctx, "uc.ListEvents calendar=%s page %d: %v", input.CalendarID, pages+1, err)
			return nil, err
		}
		pages++
		events = append(events, page.Items...)

		if page.NextPageToken == "" {
			break
		}
		if page.NextPageToken == pageToken {
			return nil, &calendar.ProviderError{Op: "events.list", CalendarID: input.CalendarID, Err: repository.ErrCursorNotAdvanced}
		}
		pageToken = page.NextPageToken
	}

	uc.l.Debugf(ctx, "uc.ListEvents calendar=%s: %d events in %d pages", input.CalendarID, len(events), pages)
	return events, nil
}
