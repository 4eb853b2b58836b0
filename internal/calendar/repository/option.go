package repository

import (
	"time"

	"calendar-attendees/internal/calendar"
)

// ListCalendarsOptions holds parameters for one calendar list page.
type ListCalendarsOptions struct {
	PageToken  string
	MaxResults int64
}

// ListEventsOptions holds parameters for one event list page.
type ListEventsOptions struct {
	CalendarID   string
	TimeMin      time.Time
	TimeMax      time.Time
	OrderBy      string
	SingleEvents bool
	PageToken    string
	MaxResults   int64
}

// CalendarPage is one page of calendars. An empty NextPageToken ends the listing.
type CalendarPage struct {
	Items         []calendar.CalendarListEntry
	NextPageToken string
}

// EventPage is one page of events. An empty NextPageToken ends the listing.
type EventPage struct {
	Items         []calendar.Event
	NextPageToken string
}
