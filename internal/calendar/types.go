package calendar

import "time"

// --- Domain Model ---

// CalendarListEntry is one calendar visible to the authenticated identity.
type CalendarListEntry struct {
	ID         string
	Summary    string
	TimeZone   string
	AccessRole string
	Primary    bool
}

// Event is a single event instance. Start and End of all-day events hold
// midnight in the event's zone and AllDay is set.
type Event struct {
	ID             string
	CalendarID     string
	Summary        string
	Status         string
	HTMLLink       string
	Start          time.Time
	End            time.Time
	AllDay         bool
	OrganizerEmail string
	Attendees      []Attendee
}

// Attendee is one entry of an event's attendee list. Email is the identity key
// and may be empty for resources the provider could not resolve.
type Attendee struct {
	Email          string
	DisplayName    string
	Organizer      bool
	Self           bool
	ResponseStatus string
}

// UniqueAttendee is one row of the deduplicated attendee set.
type UniqueAttendee struct {
	Email       string
	DisplayName string
}

// --- UseCase Inputs ---

// ListEventsInput scopes an event fetch to one calendar. Zero time bounds
// leave the window open on that side.
type ListEventsInput struct {
	CalendarID   string
	TimeMin      time.Time
	TimeMax      time.Time
	OrderBy      string
	SingleEvents bool
}

type AggregateInput struct {
	Code          string
	ExcludeEmails []string
}

// --- UseCase Outputs ---

type AggregateOutput struct {
	RunID     string
	TimeMin   time.Time
	TimeMax   time.Time
	Calendars []CalendarListEntry
	Events    []Event
	Attendees []UniqueAttendee
}
