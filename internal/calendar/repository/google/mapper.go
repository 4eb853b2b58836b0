package google

import (
	"fmt"
	"time"
	_ "time/tzdata"

	"calendar-attendees/internal/calendar"
	"calendar-attendees/internal/calendar/repository"
	"calendar-attendees/pkg/gcalendar"
)

const dateLayout = "2006-01-02"

func toCalendarEntries(items []gcalendar.CalendarEntry) ([]calendar.CalendarListEntry, error) {
	entries := make([]calendar.CalendarListEntry, 0, len(items))
	for i, item := range items {
		if item.ID == "" {
			return nil, fmt.Errorf("%w: calendar at index %d has no id", repository.ErrMalformedResponse, i)
		}
		entries = append(entries, calendar.CalendarListEntry{
			ID:         item.ID,
			Summary:    item.Summary,
			TimeZone:   item.TimeZone,
			AccessRole: item.AccessRole,
			Primary:    item.Primary,
		})
	}
	return entries, nil
}

func toEvents(calendarID, pageTimeZone string, items []gcalendar.Event) ([]calendar.Event, error) {
	events := make([]calendar.Event, 0, len(items))
	for i, item := range items {
		ev, err := toEvent(calendarID, pageTimeZone, item)
		if err != nil {
			return nil, fmt.Errorf("event at index %d: %w", i, err)
		}
		events = append(events, ev)
	}
	return events, nil
}

func toEvent(calendarID, pageTimeZone string, item gcalendar.Event) (calendar.Event, error) {
	if item.ID == "" {
		return calendar.Event{}, fmt.Errorf("%w: event has no id", repository.ErrMalformedResponse)
	}

	start, allDay, err := parseEventTime(item.Start, pageTimeZone)
	if err != nil {
		return calendar.Event{}, fmt.Errorf("event %s start: %w", item.ID, err)
	}
	end, _, err := parseEventTime(item.End, pageTimeZone)
	if err != nil {
		return calendar.Event{}, fmt.Errorf("event %s end: %w", item.ID, err)
	}

	attendees := make([]calendar.Attendee, 0, len(item.Attendees))
	for _, a := range item.Attendees {
		attendees = append(attendees, calendar.Attendee{
			Email:          a.Email,
			DisplayName:    a.DisplayName,
			Organizer:      a.Organizer,
			Self:           a.Self,
			ResponseStatus: a.ResponseStatus,
		})
	}

	return calendar.Event{
		ID:             item.ID,
		CalendarID:     calendarID,
		Summary:        item.Summary,
		Status:         item.Status,
		HTMLLink:       item.HtmlLink,
		Start:          start,
		End:            end,
		AllDay:         allDay,
		OrganizerEmail: item.OrganizerEmail,
		Attendees:      attendees,
	}, nil
}

// parseEventTime reads an RFC3339 DateTime, or a Date in the event's zone
// (falling back to the calendar's zone, then UTC) for all-day events.
func parseEventTime(t gcalendar.EventTime, pageTimeZone string) (time.Time, bool, error) {
	switch {
	case t.DateTime != "":
		parsed, err := time.Parse(time.RFC3339, t.DateTime)
		if err != nil {
			return time.Time{}, false, fmt.Errorf("%w: %v", repository.ErrMalformedResponse, err)
		}
		return parsed, false, nil
	case t.Date != "":
		parsed, err := time.ParseInLocation(dateLayout, t.Date, location(t.TimeZone, pageTimeZone))
		if err != nil {
			return time.Time{}, false, fmt.Errorf("%w: %v", repository.ErrMalformedResponse, err)
		}
		return parsed, true, nil
	default:
		return time.Time{}, false, fmt.Errorf("%w: neither dateTime nor date is set", repository.ErrMalformedResponse)
	}
}

func location(names ...string) *time.Location {
	for _, name := range names {
		if name == "" {
			continue
		}
		if loc, err := time.LoadLocation(name); err == nil {
			return loc
		}
	}
	return time.UTC
}
