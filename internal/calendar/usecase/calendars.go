package usecase

import (
	"context"

	"calendar-attendees/internal/auth"
	"calendar-attendees/internal/calendar"
	"calendar-attendees/internal/calendar/repository"
	"calendar-attendees/pkg/metrics"
)

// ListAllCalendars walks the calendar list cursor and returns every entry in
// provider order. A failing page discards everything fetched so far.
func (uc *implUseCase) ListAllCalendars(ctx context.Context, cred auth.Credential) ([]calendar.CalendarListEntry, error) {
	if !cred.Authenticated() {
		return nil, auth.ErrNotAuthenticated
	}

	var (
		calendars []calendar.CalendarListEntry
		pageToken string
		pages     int
	)
	for {
		page, err := uc.repo.ListCalendarsPage(ctx, cred, repository.ListCalendarsOptions{
			PageToken:  pageToken,
			MaxResults: CalendarPageSize,
		})
		uc.metrics.ObservePage(metrics.EndpointCalendarList, len(page.Items), err)
		if err != nil {
			uc.l.Errorf(ctx, "uc.ListAllCalendars page %d: %v", pages+1, err)
			return nil, err
		}
		pages++
		calendars = append(calendars, page.Items...)

		if page.NextPageToken == "" {
			break
		}
		if page.NextPageToken == pageToken {
			return nil, &calendar.ProviderError{Op: "calendarList.list", Err: repository.ErrCursorNotAdvanced}
		}
		pageToken = page.NextPageToken
	}

	uc.l.Debugf(ctx, "uc.ListAllCalendars: %d calendars in %d pages", len(calendars), pages)
	return calendars, nil
}
