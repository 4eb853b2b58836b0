package google

import (
	"context"

	"calendar-attendees/internal/auth"
	"calendar-attendees/internal/calendar/repository"
	"calendar-attendees/pkg/gcalendar"
)

// ListEventsPage fetches one page of events for opt.CalendarID.
func (r *implRepository) ListEventsPage(ctx context.Context, cred auth.Credential, opt repository.ListEventsOptions) (repository.EventPage, error) {
	client, err := r.client(ctx, cred)
	if err != nil {
		return repository.EventPage{}, err
	}

	page, err := client.ListEventsPage(ctx, gcalendar.ListEventsRequest{
		CalendarID:   opt.CalendarID,
		TimeMin:      opt.TimeMin,
		TimeMax:      opt.TimeMax,
		OrderBy:      opt.OrderBy,
		SingleEvents: opt.SingleEvents,
		PageToken:    opt.PageToken,
		MaxResults:   opt.MaxResults,
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: calendar=%s: %v", r.dsn("ListEventsPage"), opt.CalendarID, err)
		return repository.EventPage{}, providerError(opEventList, opt.CalendarID, err)
	}

	items, err := toEvents(opt.CalendarID, page.TimeZone, page.Items)
	if err != nil {
		r.l.Errorf(ctx, "%s: calendar=%s: %v", r.dsn("ListEventsPage"), opt.CalendarID, err)
		return repository.EventPage{}, providerError(opEventList, opt.CalendarID, err)
	}

	return repository.EventPage{Items: items, NextPageToken: page.NextPageToken}, nil
}
