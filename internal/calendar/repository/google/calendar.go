package google

import (
	"context"

	"calendar-attendees/internal/auth"
	"calendar-attendees/internal/calendar/repository"
	"calendar-attendees/pkg/gcalendar"
)

// ListCalendarsPage fetches one page of the calendar list.
func (r *implRepository) ListCalendarsPage(ctx context.Context, cred auth.Credential, opt repository.ListCalendarsOptions) (repository.CalendarPage, error) {
	client, err := r.client(ctx, cred)
	if err != nil {
		return repository.CalendarPage{}, err
	}

	page, err := client.ListCalendarsPage(ctx, gcalendar.ListCalendarsRequest{
		PageToken:  opt.PageToken,
		MaxResults: opt.MaxResults,
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListCalendarsPage"), err)
		return repository.CalendarPage{}, providerError(opCalendarList, "", err)
	}

	items, err := toCalendarEntries(page.Items)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListCalendarsPage"), err)
		return repository.CalendarPage{}, providerError(opCalendarList, "", err)
	}

	return repository.CalendarPage{Items: items, NextPageToken: page.NextPageToken}, nil
}
