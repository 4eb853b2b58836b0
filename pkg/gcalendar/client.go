package gcalendar

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// ErrNilItem is returned when a list response carries a null entry.
var ErrNilItem = errors.New("gcalendar: null entry in list response")

// Client wraps the Google Calendar API service. Every list method fetches
// exactly one page; callers own the cursor loop.
type Client struct {
	service *calendar.Service
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
// The HTTP client is expected to carry the OAuth2 credential.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client, opts ...option.ClientOption) (*Client, error) {
	opts = append([]option.ClientOption{option.WithHTTPClient(httpClient)}, opts...)
	svc, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// ListCalendarsPage fetches one page of the authenticated user's calendar list.
func (c *Client) ListCalendarsPage(ctx context.Context, req ListCalendarsRequest) (CalendarPage, error) {
	call := c.service.CalendarList.List().
		MaxResults(clampPageSize(req.MaxResults, MaxCalendarPageSize)).
		Context(ctx)
	if req.PageToken != "" {
		call = call.PageToken(req.PageToken)
	}

	list, err := call.Do()
	if err != nil {
		return CalendarPage{}, fmt.Errorf("failed to list calendars: %w", err)
	}

	page := CalendarPage{NextPageToken: list.NextPageToken}
	for i, item := range list.Items {
		if item == nil {
			return CalendarPage{}, fmt.Errorf("%w: calendar list items[%d]", ErrNilItem, i)
		}
		page.Items = append(page.Items, CalendarEntry{
			ID:         item.Id,
			Summary:    item.Summary,
			TimeZone:   item.TimeZone,
			AccessRole: item.AccessRole,
			Primary:    item.Primary,
		})
	}
	return page, nil
}

// ListEventsPage fetches one page of events for a calendar.
func (c *Client) ListEventsPage(ctx context.Context, req ListEventsRequest) (EventPage, error) {
	call := c.service.Events.List(req.CalendarID).
		MaxResults(clampPageSize(req.MaxResults, MaxEventPageSize)).
		SingleEvents(req.SingleEvents).
		Context(ctx)
	if !req.TimeMin.IsZero() {
		call = call.TimeMin(req.TimeMin.Format(time.RFC3339))
	}
	if !req.TimeMax.IsZero() {
		call = call.TimeMax(req.TimeMax.Format(time.RFC3339))
	}
	if req.OrderBy != "" {
		call = call.OrderBy(req.OrderBy)
	}
	if req.PageToken != "" {
		call = call.PageToken(req.PageToken)
	}

	events, err := call.Do()
	if err != nil {
		return EventPage{}, fmt.Errorf("failed to list events for calendar %s: %w", req.CalendarID, err)
	}

	page := EventPage{NextPageToken: events.NextPageToken, TimeZone: events.TimeZone}
	for i, item := range events.Items {
		if item == nil {
			return EventPage{}, fmt.Errorf("%w: calendar %s items[%d]", ErrNilItem, req.CalendarID, i)
		}
		ev, err := toEvent(item)
		if err != nil {
			return EventPage{}, fmt.Errorf("calendar %s items[%d]: %w", req.CalendarID, i, err)
		}
		page.Items = append(page.Items, ev)
	}
	return page, nil
}

func toEvent(item *calendar.Event) (Event, error) {
	ev := Event{
		ID:       item.Id,
		Summary:  item.Summary,
		Status:   item.Status,
		HtmlLink: item.HtmlLink,
		Start:    toEventTime(item.Start),
		End:      toEventTime(item.End),
	}
	if item.Organizer != nil {
		ev.OrganizerEmail = item.Organizer.Email
	}
	for j, a := range item.Attendees {
		if a == nil {
			return Event{}, fmt.Errorf("%w: event %s attendees[%d]", ErrNilItem, item.Id, j)
		}
		ev.Attendees = append(ev.Attendees, Attendee{
			Email:          a.Email,
			DisplayName:    a.DisplayName,
			Organizer:      a.Organizer,
			Self:           a.Self,
			ResponseStatus: a.ResponseStatus,
		})
	}
	return ev, nil
}

func toEventTime(t *calendar.EventDateTime) EventTime {
	if t == nil {
		return EventTime{}
	}
	return EventTime{DateTime: t.DateTime, Date: t.Date, TimeZone: t.TimeZone}
}

func clampPageSize(requested, ceiling int64) int64 {
	if requested <= 0 || requested > ceiling {
		return ceiling
	}
	return requested
}
