package http

import (
	"html/template"
	"time"

	"calendar-attendees/internal/calendar"
)

// --- Request DTOs ---

type callbackReq struct {
	Code    string   `form:"code"`
	Error   string   `form:"error"`
	Exclude []string `form:"exclude"`
}

func (r callbackReq) validate() error {
	if r.Code == "" {
		return calendar.ErrMissingCode
	}
	return nil
}

func (r callbackReq) toInput() calendar.AggregateInput {
	return calendar.AggregateInput{
		Code:          r.Code,
		ExcludeEmails: r.Exclude,
	}
}

// --- Response DTOs ---

type attendeeResp struct {
	Email          string `json:"email"`
	DisplayName    string `json:"displayName,omitempty"`
	Organizer      bool   `json:"organizer,omitempty"`
	Self           bool   `json:"self,omitempty"`
	ResponseStatus string `json:"responseStatus,omitempty"`
}

type eventResp struct {
	ID             string         `json:"id"`
	CalendarID     string         `json:"calendarId"`
	Summary        string         `json:"summary,omitempty"`
	Status         string         `json:"status,omitempty"`
	HTMLLink       string         `json:"htmlLink,omitempty"`
	Start          time.Time      `json:"start"`
	End            time.Time      `json:"end"`
	AllDay         bool           `json:"allDay"`
	OrganizerEmail string         `json:"organizerEmail,omitempty"`
	Attendees      []attendeeResp `json:"attendees"`
}

type uniqueAttendeeResp struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName,omitempty"`
}

type callbackResp struct {
	Events    []eventResp          `json:"events"`
	Attendees []uniqueAttendeeResp `json:"attendees"`
}

func newEventResp(ev calendar.Event) eventResp {
	attendees := make([]attendeeResp, len(ev.Attendees))
	for i, a := range ev.Attendees {
		attendees[i] = attendeeResp{
			Email:          a.Email,
			DisplayName:    a.DisplayName,
			Organizer:      a.Organizer,
			Self:           a.Self,
			ResponseStatus: a.ResponseStatus,
		}
	}
	return eventResp{
		ID:             ev.ID,
		CalendarID:     ev.CalendarID,
		Summary:        ev.Summary,
		Status:         ev.Status,
		HTMLLink:       ev.HTMLLink,
		Start:          ev.Start,
		End:            ev.End,
		AllDay:         ev.AllDay,
		OrganizerEmail: ev.OrganizerEmail,
		Attendees:      attendees,
	}
}

func (h *handler) newCallbackResp(out calendar.AggregateOutput) callbackResp {
	events := make([]eventResp, len(out.Events))
	for i, ev := range out.Events {
		events[i] = newEventResp(ev)
	}
	attendees := make([]uniqueAttendeeResp, len(out.Attendees))
	for i, a := range out.Attendees {
		attendees[i] = uniqueAttendeeResp{Email: a.Email, DisplayName: a.DisplayName}
	}
	return callbackResp{Events: events, Attendees: attendees}
}

// --- Index page ---

type indexData struct {
	AuthURL string
}

var indexTmpl = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Calendar attendees</title></head>
<body>
<p><a href="{{.AuthURL}}">Authorize Google Calendar access</a></p>
</body>
</html>
`))
