package gcalendar

import "time"

const (
	// MaxCalendarPageSize is the largest page calendarList.list accepts.
	MaxCalendarPageSize int64 = 250
	// MaxEventPageSize is the largest page events.list accepts.
	MaxEventPageSize int64 = 2500
)

// ListCalendarsRequest is the input for one calendarList.list page.
type ListCalendarsRequest struct {
	PageToken  string
	MaxResults int64
}

// CalendarPage is one page of calendarList.list.
type CalendarPage struct {
	Items         []CalendarEntry
	NextPageToken string
}

// CalendarEntry is a simplified calendarList entry.
type CalendarEntry struct {
	ID         string
	Summary    string
	TimeZone   string
	AccessRole string
	Primary    bool
}

// ListEventsRequest is the input for one events.list page.
// Zero TimeMin/TimeMax are not sent.
type ListEventsRequest struct {
	CalendarID   string
	TimeMin      time.Time
	TimeMax      time.Time
	OrderBy      string
	SingleEvents bool
	PageToken    string
	MaxResults   int64
}

// EventPage is one page of events.list.
type EventPage struct {
	Items         []Event
	NextPageToken string
	TimeZone      string // calendar default zone, used for all-day events
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID             string
	Summary        string
	Status         string
	HtmlLink       string
	Start          EventTime
	End            EventTime
	OrganizerEmail string
	Attendees      []Attendee
}

// EventTime mirrors EventDateTime: exactly one of DateTime (RFC3339) or Date
// (yyyy-mm-dd, all-day events) is set.
type EventTime struct {
	DateTime string
	Date     string
	TimeZone string
}

// Attendee is a simplified event attendee.
type Attendee struct {
	Email          string
	DisplayName    string
	Organizer      bool
	Self           bool
	ResponseStatus string
}
